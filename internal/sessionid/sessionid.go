// Package sessionid generates identifiers for game sessions.
//
// IDs are UUIDv7 values encoded as 26 lowercase Crockford base32 characters,
// so they sort by creation time in logs and simulation reports.
package sessionid

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"
)

// Crockford's base32
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length of an encoded ID
const Length = 26

// RandSource supplies the random bits of an ID. Tests pass a seeded
// *rand.Rand from math/rand/v2.
type RandSource interface {
	IntN(n int) int
}

// Generator creates session IDs
type Generator struct {
	rand RandSource
	now  func() time.Time
}

// NewGenerator creates a generator. A nil source uses crypto/rand.
func NewGenerator(src RandSource) *Generator {
	return &Generator{rand: src, now: time.Now}
}

// New returns a fresh session ID using crypto/rand
func New() string {
	return NewGenerator(nil).Generate()
}

// Generate returns a new ID
func (g *Generator) Generate() string {
	return encode(g.uuidv7())
}

func (g *Generator) uuidv7() [16]byte {
	var id [16]byte

	ms := g.now().UnixMilli()
	for i := range 6 {
		id[i] = byte(ms >> (40 - 8*i))
	}

	if g.rand != nil {
		for i := 6; i < 16; i++ {
			id[i] = byte(g.rand.IntN(256))
		}
	} else if _, err := rand.Read(id[6:]); err != nil {
		panic("failed to generate random bytes: " + err.Error())
	}

	id[6] = (id[6] & 0x0f) | 0x70 // version 7
	id[8] = (id[8] & 0x3f) | 0x80 // variant 10
	return id
}

// encode writes the 128 bits as 26 five-bit groups, most significant first,
// with two zero pad bits at the top.
func encode(data [16]byte) string {
	var hi, lo uint64
	for i := range 8 {
		hi = hi<<8 | uint64(data[i])
		lo = lo<<8 | uint64(data[i+8])
	}

	out := make([]byte, Length)
	for i := Length - 1; i >= 0; i-- {
		out[i] = alphabet[lo&0x1f]
		lo = lo>>5 | (hi&0x1f)<<59
		hi >>= 5
	}
	return string(out)
}

// Validate checks that id is a well-formed session ID
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("session ID must be exactly %d characters, got %d", Length, len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("session ID first character must be 0-7, got %c", id[0])
	}
	for i, r := range id {
		if !strings.ContainsRune(alphabet, r) {
			return fmt.Errorf("invalid character %c at position %d", r, i)
		}
	}
	return nil
}
