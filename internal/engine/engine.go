// Package engine implements the suitability and power estimation core.
// Every operation is a pure function over the injected catalog and a weather
// observation: no I/O, no shared mutable state, safe for concurrent callers.
package engine

import (
	"errors"
	"math"

	"github.com/fruitvolt/fruitvolt/internal/catalog"
)

var (
	// ErrNotFound reports an unknown fruit identifier. The engine never
	// substitutes a default fruit; that policy belongs to callers.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput reports a malformed request, such as a missing
	// temperature reading or a non-positive panel size.
	ErrInvalidInput = errors.New("invalid input")
)

type Engine struct {
	catalog *catalog.Catalog
}

func New(c *catalog.Catalog) *Engine {
	return &Engine{catalog: c}
}

// Catalog exposes the knowledge base for handlers that list fruits or
// device categories directly.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
