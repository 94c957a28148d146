package usermap

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/usermap/internal/common"
	"github.com/dmitrijs2005/usermap/internal/logging"
	"github.com/samber/lo"
)

// Table stores user records keyed by username in an open-addressed slot
// array. It is not safe for concurrent use.
type Table struct {
	slots         []*Record
	count         int
	maxLoadFactor float64
	hasher        KeyHasher
	salts         *SaltGenerator
	logger        logging.Logger
}

// New returns an empty Table. Without options it has 8 slots, grows at a
// 0.75 load factor, places records by FNV-1a and draws 5-character salts
// from the process-wide generator.
func New(opts ...Option) (*Table, error) {
	t := &Table{
		slots:         make([]*Record, DefaultInitialCapacity),
		maxLoadFactor: DefaultMaxLoadFactor,
		hasher:        FNV1a,
		salts:         DefaultSaltGenerator(),
		logger:        logging.NewDiscardLogger(),
	}
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Size returns the number of stored records.
func (t *Table) Size() int {
	return t.count
}

// Capacity returns the current number of slots.
func (t *Table) Capacity() int {
	return len(t.slots)
}

// Contains reports whether Lookup would find userName.
func (t *Table) Contains(userName string) bool {
	_, err := t.Lookup(userName)
	return err == nil
}

// Lookup returns the record stored at the home slot of userName.
//
// Only the home slot is examined. A record that Insert placed further along
// the probe sequence is reported as ErrorNotFound.
func (t *Table) Lookup(userName string) (*Record, error) {
	rec := t.slots[t.home(userName)]
	if rec == nil || rec.userName != userName {
		return nil, fmt.Errorf("%w: no user record for username %s", common.ErrorNotFound, userName)
	}
	return rec, nil
}

// Insert creates a record for userName with a fresh salt. The table grows
// first when its load factor has reached the threshold.
func (t *Table) Insert(userName, secret string) error {
	if t.Contains(userName) {
		return fmt.Errorf("%w: username %s", common.ErrorAlreadyExists, userName)
	}

	for t.load() >= t.maxLoadFactor {
		t.grow()
	}

	idx := t.home(userName)
	for t.slots[idx] != nil {
		idx = (idx + 1) % len(t.slots)
	}
	t.slots[idx] = newRecord(userName, secret, t.salts)
	t.count++

	return nil
}

// UpdatePassword replaces the secret of userName once currentSecret has been
// verified. The record keeps its slot.
func (t *Table) UpdatePassword(userName, currentSecret, newSecret string) error {
	rec, err := t.Lookup(userName)
	if err != nil {
		return err
	}

	if !rec.Verify(currentSecret) {
		return fmt.Errorf("%w: username %s", common.ErrorAuthentication, userName)
	}

	rec.changeSecret(newSecret, t.salts)
	return nil
}

// Usernames lists stored usernames in slot order.
func (t *Table) Usernames() []string {
	return lo.FilterMap(t.slots, func(rec *Record, _ int) (string, bool) {
		if rec == nil {
			return "", false
		}
		return rec.userName, true
	})
}

// String renders every slot, one per line.
func (t *Table) String() string {
	lines := lo.Map(t.slots, func(rec *Record, i int) string {
		if rec == nil {
			return fmt.Sprintf("bucket%d: empty", i)
		}
		return fmt.Sprintf("bucket%d: %s", i, rec)
	})
	return strings.Join(lines, "\n")
}

func (t *Table) home(userName string) int {
	return int(t.hasher(userName) % uint64(len(t.slots)))
}

func (t *Table) load() float64 {
	return float64(t.count) / float64(len(t.slots))
}

// grow doubles the slot array and re-places every record at its new home
// slot without probing. A record whose home slot is already taken replaces
// the occupant, and count still advances once per placement.
func (t *Table) grow() {
	ctx := context.Background()

	old := t.slots
	before := t.count

	t.slots = make([]*Record, len(old)*2)
	t.count = 0

	for _, rec := range old {
		if rec == nil {
			continue
		}
		idx := t.home(rec.userName)
		if prev := t.slots[idx]; prev != nil {
			t.logger.Warn(ctx, "rehash overwrote slot",
				"slot", idx, "dropped", prev.userName, "kept", rec.userName)
		}
		t.slots[idx] = rec
		t.count++
	}

	t.logger.Debug(ctx, "table grown",
		"old_capacity", len(old), "new_capacity", len(t.slots),
		"count_before", before, "count_after", t.count)
}
