// Package shortid implements the identifier providers: a crypto/rand nanoid
// generator for production, a sqids-backed sequential generator, and a fixed
// generator for deterministic tests.
package shortid

import (
	"crypto/rand"
	"fmt"
)

// nanoid's default URL-safe alphabet. 64 symbols, so one random byte masked
// to 6 bits maps to exactly one symbol without modulo bias.
const alphabet = "useandom-26T198340PX75pxJACKVERYMINDBUSHWOLF_GQZbfghjklqvwyzrict"

// DefaultLength matches the 7-character identifiers the service has always
// produced. 64^7 is about 4.4e12 keys, which is plenty for a process-lifetime
// store.
const DefaultLength = 7

// NanoID generates fixed-length random identifiers from a cryptographic
// randomness source.
type NanoID struct {
	length int
}

func NewNanoID(length int) (*NanoID, error) {
	if length <= 0 {
		return nil, fmt.Errorf("shortid: length must be positive, got %d", length)
	}
	return &NanoID{length: length}, nil
}

// Provide returns a new random identifier. crypto/rand.Read never fails on
// the supported platforms; if it ever does the process cannot produce safe
// identifiers and panicking is the only honest option.
func (p *NanoID) Provide() string {
	buf := make([]byte, p.length)
	if _, err := rand.Read(buf); err != nil {
		panic("shortid: crypto/rand unavailable: " + err.Error())
	}
	for i, b := range buf {
		buf[i] = alphabet[b&63]
	}
	return string(buf)
}
