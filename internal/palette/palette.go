// Package palette persists named color palettes in a durable
// key-value store, keyed by palette name.
package palette

import (
	"errors"
	"time"

	"inkwheel/internal/colormath"
	"inkwheel/internal/harmony"
)

// ErrNotFound is returned when no palette exists under the given name.
var ErrNotFound = errors.New("palette not found")

// ErrEmptyName is returned when a palette is saved without a name.
var ErrEmptyName = errors.New("palette name is required")

// Palette is a saved harmony result. Colors always holds the base
// color first, followed by the derived colors in generation order.
// Channel values are integers 0-100 on the wire. Timestamp is the
// creation time in epoch milliseconds.
type Palette struct {
	Name      string           `json:"name"`
	Colors    []colormath.CMYK `json:"colors"`
	Method    harmony.Kind     `json:"method"`
	Timestamp int64            `json:"timestamp"`
}

// New builds a palette stamped with the current time.
func New(name string, colors []colormath.CMYK, method harmony.Kind) *Palette {
	return &Palette{
		Name:      name,
		Colors:    colors,
		Method:    method,
		Timestamp: time.Now().UnixMilli(),
	}
}

// CreatedAt converts the epoch-millisecond timestamp back to a time.
func (p *Palette) CreatedAt() time.Time {
	return time.UnixMilli(p.Timestamp)
}

// Store is the persistence contract. Put with an existing name
// overwrites the prior palette. Any durable key-value medium
// satisfies it.
type Store interface {
	Put(p *Palette) error
	Get(name string) (*Palette, error)
	List() ([]Palette, error)
	Delete(name string) error
	Close() error
}
