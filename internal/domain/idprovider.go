package domain

// IDProvider produces short, URL-safe identifier strings on demand. Provide
// is synchronous and never fails; identifiers carry no meaning beyond
// uniqueness as a store key.
type IDProvider interface {
	Provide() string
}
