// Package matchid generates time-sortable match identifiers: a UUIDv7 encoded
// as 26 lowercase Crockford base32 characters.
package matchid

import (
	"crypto/rand"
	"fmt"
	"strings"

	"github.com/coder/quartz"
)

// Crockford's base32, lowercase
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length of an encoded match ID
const Length = 26

// RandSource supplies the random part of an ID
type RandSource interface {
	Intn(n int) int
}

// Generator produces match IDs from a clock and a source of randomness
type Generator struct {
	clock quartz.Clock
	rand  RandSource
}

// NewGenerator creates a generator. A nil clock uses the wall clock and a nil
// RandSource uses crypto/rand.
func NewGenerator(clock quartz.Clock, rand RandSource) *Generator {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Generator{clock: clock, rand: rand}
}

// Generate returns a fresh match ID
func (g *Generator) Generate() string {
	var id [16]byte

	// 48-bit millisecond timestamp, big-endian
	ms := g.clock.Now().UnixMilli()
	for i := 0; i < 6; i++ {
		id[i] = byte(ms >> (40 - 8*i))
	}

	if g.rand != nil {
		for i := 6; i < 16; i++ {
			id[i] = byte(g.rand.Intn(256))
		}
	} else if _, err := rand.Read(id[6:]); err != nil {
		panic("matchid: failed to read random bytes: " + err.Error())
	}

	id[6] = (id[6] & 0x0f) | 0x70 // version 7
	id[8] = (id[8] & 0x3f) | 0x80 // variant 10

	return encode(id)
}

// encode writes the 128 bits as 26 five-bit groups, the first group holding
// only the top three bits
func encode(id [16]byte) string {
	var sb strings.Builder
	sb.Grow(Length)

	// 130 bits with two leading zero bits
	bit := -2
	for i := 0; i < Length; i++ {
		var v byte
		for j := 0; j < 5; j++ {
			v <<= 1
			if pos := bit + j; pos >= 0 && id[pos/8]&(0x80>>(pos%8)) != 0 {
				v |= 1
			}
		}
		bit += 5
		sb.WriteByte(alphabet[v])
	}
	return sb.String()
}

// validate checks that id is a well-formed match ID
func validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("match ID must be %d characters, got %d", Length, len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("match ID first character must be 0-7, got %c", id[0])
	}
	for i, c := range id {
		if !strings.ContainsRune(alphabet, c) {
			return fmt.Errorf("invalid character %c at position %d", c, i)
		}
	}
	return nil
}
