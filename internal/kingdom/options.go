package kingdom

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/appengine-ltd/kingdom/internal/logging"
)

const (
	// SupplySize is the number of supply cards in a finished kingdom.
	SupplySize = 10

	// DefaultMaxOther caps how many non-supply cards a report lists.
	DefaultMaxOther = 3
	// DefaultMaxIterations bounds the number of picks in one build.
	DefaultMaxIterations = 10000
)

// Options controls a single kingdom build.
type Options struct {
	// Seed reseeds the generator at the start of the build. Ignored when
	// Rand is set.
	Seed *int64
	// Rand is the generator used for both selection and the "other" shuffle.
	Rand *rand.Rand

	MaxOther      int
	MaxIterations int
	Logger        *slog.Logger
}

// DefaultOptions returns options with the default caps and no seed.
func DefaultOptions() Options {
	return Options{
		MaxOther:      DefaultMaxOther,
		MaxIterations: DefaultMaxIterations,
	}
}

// WithSeed returns a copy of o seeded with seed.
func (o Options) WithSeed(seed int64) Options {
	o.Seed = &seed
	return o
}

// Validate rejects negative caps.
func (o Options) Validate() error {
	if o.MaxOther < 0 {
		return fmt.Errorf("max other must be non-negative, got %d", o.MaxOther)
	}
	if o.MaxIterations < 0 {
		return fmt.Errorf("max iterations must be non-negative, got %d", o.MaxIterations)
	}
	return nil
}

func (o Options) rng() *rand.Rand {
	switch {
	case o.Rand != nil:
		return o.Rand
	case o.Seed != nil:
		return seededRNG(*o.Seed)
	default:
		return processRNG()
	}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return logging.New("kingdom")
}

func (o Options) maxIterations() int {
	if o.MaxIterations == 0 {
		return DefaultMaxIterations
	}
	return o.MaxIterations
}
