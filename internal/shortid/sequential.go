package shortid

import (
	"fmt"
	"sync/atomic"

	"github.com/sqids/sqids-go"
)

// Sequential derives identifiers from an atomic counter encoded with sqids,
// so consecutive values do not look consecutive on the wire. The counter
// starts fresh each process, which is fine for a store that lives and dies
// with the process.
type Sequential struct {
	encoder *sqids.Sqids
	counter atomic.Uint64
}

func NewSequential(minLength int) (*Sequential, error) {
	if minLength <= 0 {
		return nil, fmt.Errorf("shortid: min length must be positive, got %d", minLength)
	}
	encoder, err := sqids.New(sqids.Options{MinLength: uint8(minLength)})
	if err != nil {
		return nil, fmt.Errorf("shortid: sqids init: %w", err)
	}
	return &Sequential{encoder: encoder}, nil
}

func (p *Sequential) Provide() string {
	n := p.counter.Add(1)
	id, err := p.encoder.Encode([]uint64{n})
	if err != nil {
		// Encode only fails for out-of-range numbers, which a counter
		// starting at 1 cannot produce.
		panic("shortid: sqids encode: " + err.Error())
	}
	return id
}
