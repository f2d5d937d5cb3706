package kingdom

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sort"

	"github.com/appengine-ltd/kingdom/internal/catalog"
)

// State is the builder lifecycle.
type State int

const (
	StateNew State = iota
	StateGrowing
	StateDone
)

func (s State) String() string {
	switch s {
	case StateNew:
		return "new"
	case StateGrowing:
		return "growing"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// Builder grows a kingdom one weighted pick at a time until the supply is
// full. It is not safe for concurrent use.
type Builder struct {
	cat  *catalog.Catalog
	opts Options
	rng  *rand.Rand
	log  *slog.Logger

	state      State
	kingdom    []string
	iterations int
}

// NewBuilder returns a builder over cat; call Start before stepping.
func NewBuilder(cat *catalog.Catalog, opts Options) (*Builder, error) {
	if cat == nil {
		return nil, fmt.Errorf("nil catalog")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Builder{
		cat:  cat,
		opts: opts,
		rng:  opts.rng(),
		log:  opts.logger(),
	}, nil
}

// Start validates the seed cards and checks that the catalog can fill a
// supply. Seeds that already fill it leave the builder done.
func (b *Builder) Start(seeds []string) error {
	kingdom := make([]string, 0, len(seeds)+SupplySize)
	for _, name := range seeds {
		if _, ok := b.cat.Index(name); !ok {
			return &UnknownCardError{Name: name, Suggestions: b.cat.Suggest(name, 3)}
		}
		kingdom = append(kingdom, catalog.Fold(name))
	}
	kingdom = dedupFolded(kingdom)

	if have := b.cat.SupplyCount(); have < SupplySize {
		return &InsufficientCatalogError{Have: have, Need: SupplySize}
	}

	b.kingdom = kingdom
	b.iterations = 0
	b.state = StateGrowing
	if !NeedsSupply(b.cat, b.kingdom) {
		b.state = StateDone
	}
	b.log.Debug("kingdom started",
		slog.Int("seeds", len(b.kingdom)),
		slog.Int("supply", SupplyCount(b.cat, b.kingdom)),
		slog.String("state", b.state.String()),
	)
	return nil
}

// Step adds one card to the kingdom and returns the proposed name.
func (b *Builder) Step() (string, error) {
	switch b.state {
	case StateNew:
		return "", ErrNotStarted
	case StateDone:
		return "", ErrDone
	}

	name := selectNext(b.cat, b.kingdom, b.rng, b.log)
	b.kingdom = sortedFolded(append(b.kingdom, catalog.Fold(name)))
	b.iterations++
	if !NeedsSupply(b.cat, b.kingdom) {
		b.state = StateDone
	}
	b.log.Debug("picked card",
		slog.String("card", name),
		slog.Int("size", len(b.kingdom)),
		slog.Int("iteration", b.iterations),
	)
	return name, nil
}

// Run steps until the supply is full or the iteration cap is hit.
func (b *Builder) Run() error {
	if b.state == StateNew {
		return ErrNotStarted
	}
	limit := b.opts.maxIterations()
	for b.state == StateGrowing {
		if b.iterations >= limit {
			return fmt.Errorf("%w: %d picks, %d/%d supply cards",
				ErrIterationLimit, b.iterations, SupplyCount(b.cat, b.kingdom), SupplySize)
		}
		if _, err := b.Step(); err != nil {
			return err
		}
	}
	return nil
}

// State returns the current lifecycle state.
func (b *Builder) State() State {
	return b.state
}

// Kingdom returns a copy of the current folded card names.
func (b *Builder) Kingdom() []string {
	return append([]string(nil), b.kingdom...)
}

// Iterations returns how many picks have been made since Start.
func (b *Builder) Iterations() int {
	return b.iterations
}

// Format renders the current kingdom with the builder's generator.
func (b *Builder) Format() string {
	return Format(b.cat, b.kingdom, b.opts.MaxOther, b.rng)
}

// Result is a finished kingdom.
type Result struct {
	Kingdom    []string
	Cards      []catalog.Card
	Report     string
	Iterations int
}

// Build grows a kingdom from seeds and formats it.
func Build(cat *catalog.Catalog, seeds []string, opts Options) (*Result, error) {
	b, err := NewBuilder(cat, opts)
	if err != nil {
		return nil, err
	}
	if err := b.Start(seeds); err != nil {
		return nil, err
	}
	if err := b.Run(); err != nil {
		return nil, err
	}

	res := &Result{
		Kingdom:    b.Kingdom(),
		Iterations: b.iterations,
		Report:     b.Format(),
	}
	for _, name := range res.Kingdom {
		if i, ok := cat.Index(name); ok {
			res.Cards = append(res.Cards, cat.Card(i))
		}
	}
	return res, nil
}

// dedupFolded drops repeated names, keeping the first occurrence.
func dedupFolded(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

func sortedFolded(names []string) []string {
	out := dedupFolded(names)
	sort.Strings(out)
	return out
}
