// services/rand.go
package services

import mathrand "math/rand"

// Rand is the randomness source for the stochastic event engine. Tests
// inject scripted sequences; production uses the shared math/rand source.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

type systemRand struct{}

func (systemRand) Float64() float64 { return mathrand.Float64() }
func (systemRand) Intn(n int) int   { return mathrand.Intn(n) }

// NewRand returns the default production randomness source.
func NewRand() Rand { return systemRand{} }
