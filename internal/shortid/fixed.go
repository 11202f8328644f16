package shortid

// Fixed always returns the same identifier. Test double for deterministic
// create paths.
type Fixed struct {
	id string
}

func NewFixed(id string) *Fixed {
	return &Fixed{id: id}
}

func (p *Fixed) Provide() string {
	return p.id
}
