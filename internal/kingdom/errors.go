package kingdom

import (
	"errors"
	"fmt"
	"strings"

	"github.com/appengine-ltd/kingdom/internal/catalog"
)

var (
	// ErrIterationLimit is returned when the walk keeps proposing cards that
	// are already in the kingdom and never fills the supply.
	ErrIterationLimit = errors.New("iteration limit reached before the supply was filled")

	ErrNotStarted = errors.New("builder not started")
	ErrDone       = errors.New("kingdom already complete")
)

// UnknownCardError reports a seed card that is not in the catalog.
type UnknownCardError struct {
	Name        string
	Suggestions []string
}

func (e *UnknownCardError) Error() string {
	msg := fmt.Sprintf("unrecognized card '%s'", e.Name)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

func (e *UnknownCardError) Unwrap() error {
	return catalog.ErrNotFound
}

// InsufficientCatalogError reports a catalog too small to fill the supply.
type InsufficientCatalogError struct {
	Have int
	Need int
}

func (e *InsufficientCatalogError) Error() string {
	return fmt.Sprintf("catalog has %d supply cards, a kingdom needs %d", e.Have, e.Need)
}
