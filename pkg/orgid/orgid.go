package orgid

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

const (
	version = 7

	// 10xx xxxx in byte 8
	variantBits = 0x80
	variantMask = 0x3f
)

// Generator mints version 7 identifiers.
type Generator struct {
	now     func() time.Time
	entropy io.Reader
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock replaces the wall clock. Nil is ignored.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// WithEntropy replaces crypto/rand as the random source. Nil is ignored.
func WithEntropy(r io.Reader) Option {
	return func(g *Generator) {
		if r != nil {
			g.entropy = r
		}
	}
}

// NewGenerator returns a generator using the wall clock and crypto/rand
// unless overridden by options.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		now:     time.Now,
		entropy: rand.Reader,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var defaultGenerator = NewGenerator()

// Generate mints an identifier with the default generator.
func Generate() (uuid.UUID, error) {
	return defaultGenerator.New()
}

// New mints a fresh identifier.
func (g *Generator) New() (uuid.UUID, error) {
	var id uuid.UUID

	// Fill bytes 6..15 with randomness first; the timestamp, version and
	// variant are stamped over it afterwards.
	if _, err := io.ReadFull(g.entropy, id[6:]); err != nil {
		return uuid.Nil, errors.Join(ErrEntropy, err)
	}

	ms := g.now().UnixMilli()
	if ms < 0 {
		ms = 0
	}

	var ts [8]byte
	binary.BigEndian.PutUint64(ts[:], uint64(ms))
	copy(id[0:6], ts[2:8])

	id[6] = (id[6] & 0x0f) | (version << 4)
	id[8] = (id[8] & variantMask) | variantBits

	return id, nil
}

// MustNew is like New but panics if the entropy source fails.
func (g *Generator) MustNew() uuid.UUID {
	id, err := g.New()
	if err != nil {
		panic(err)
	}
	return id
}

// Timestamp returns the creation time embedded in id, truncated to the millisecond.
func Timestamp(id uuid.UUID) time.Time {
	var ts [8]byte
	copy(ts[2:8], id[0:6])
	return time.UnixMilli(int64(binary.BigEndian.Uint64(ts[:])))
}

// Validate reports whether id carries the version 7 marker and the RFC 4122 variant.
func Validate(id uuid.UUID) error {
	if id.Version() != version {
		return fmt.Errorf("%w: version %d", ErrInvalidID, id.Version())
	}
	if id.Variant() != uuid.RFC4122 {
		return fmt.Errorf("%w: variant %s", ErrInvalidID, id.Variant())
	}
	return nil
}

// Parse decodes the canonical string form and validates the layout.
func Parse(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, errors.Join(ErrInvalidID, err)
	}
	if err := Validate(id); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}
