package usermap

import (
	"fmt"

	"github.com/dmitrijs2005/usermap/internal/common"
	"github.com/dmitrijs2005/usermap/internal/logging"
)

const (
	// DefaultInitialCapacity is the slot count of a new Table.
	DefaultInitialCapacity = 8

	// DefaultMaxLoadFactor is the occupancy ratio at which a Table grows.
	DefaultMaxLoadFactor = 0.75
)

// Option configures a Table in New.
type Option func(*Table) error

// WithInitialCapacity sets the starting slot count. n must be a power of two.
func WithInitialCapacity(n int) Option {
	return func(t *Table) error {
		if n < 1 || n&(n-1) != 0 {
			return fmt.Errorf("%w: initial capacity %d is not a positive power of two", common.ErrorInvalidOption, n)
		}
		t.slots = make([]*Record, n)
		return nil
	}
}

// WithMaxLoadFactor sets the growth threshold, in (0, 1].
func WithMaxLoadFactor(f float64) Option {
	return func(t *Table) error {
		if !(f > 0 && f <= 1) {
			return fmt.Errorf("%w: max load factor %v outside (0, 1]", common.ErrorInvalidOption, f)
		}
		t.maxLoadFactor = f
		return nil
	}
}

// WithKeyHasher replaces the username hash used for slot placement.
func WithKeyHasher(h KeyHasher) Option {
	return func(t *Table) error {
		if h == nil {
			return fmt.Errorf("%w: nil key hasher", common.ErrorInvalidOption)
		}
		t.hasher = h
		return nil
	}
}

// WithSaltGenerator sets the salt source for new and updated records.
func WithSaltGenerator(g *SaltGenerator) Option {
	return func(t *Table) error {
		if g == nil {
			return fmt.Errorf("%w: nil salt generator", common.ErrorInvalidOption)
		}
		t.salts = g
		return nil
	}
}

// WithLogger sets the logger used for growth diagnostics.
func WithLogger(l logging.Logger) Option {
	return func(t *Table) error {
		if l == nil {
			return fmt.Errorf("%w: nil logger", common.ErrorInvalidOption)
		}
		t.logger = l
		return nil
	}
}
