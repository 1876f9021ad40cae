package slug

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// maxNumericSuffixes bounds the collision loop. Past this, the resolver
// stops probing and falls through to a timestamp suffix.
const maxNumericSuffixes = 8

// Checker reports whether a slug is already taken. excludeID is the record
// being updated, so its own slug does not count as a collision; pass
// uuid.Nil on create.
type Checker interface {
	Exists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
}

// Clock supplies the timestamp for the degraded fallback suffix.
// Injected so tests can pin it.
type Clock func() int64

// Resolver produces a slug that is unique at the moment of check. The check
// is advisory: concurrent creations with the same base can both pass it, so
// the storage layer's unique index remains the real guarantee and callers
// must treat a unique-violation on insert as "slug taken".
type Resolver struct {
	checker Checker
	now     Clock
}

// NewResolver creates a resolver over the given checker.
func NewResolver(checker Checker, now Clock) *Resolver {
	return &Resolver{checker: checker, now: now}
}

// Resolve returns base unchanged if it is free, otherwise base-2, base-3, …
// in order. If the existence check fails, or the numeric suffixes are
// exhausted, it returns base-<unix timestamp> immediately: forward progress
// is preferred over strict sequential numbering when the database is
// misbehaving.
func (r *Resolver) Resolve(ctx context.Context, base string, excludeID uuid.UUID) string {
	candidate := base
	for counter := 2; counter <= maxNumericSuffixes+1; counter++ {
		taken, err := r.checker.Exists(ctx, candidate, excludeID)
		if err != nil {
			return r.timestamped(base)
		}
		if !taken {
			return candidate
		}
		candidate = fmt.Sprintf("%s-%d", base, counter)
	}
	return r.timestamped(base)
}

func (r *Resolver) timestamped(base string) string {
	return fmt.Sprintf("%s-%d", base, r.now())
}
