package slug

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
)

// fakeChecker simulates a slug table backed by a map.
type fakeChecker struct {
	taken    map[string]uuid.UUID
	failOn   int // fail the Nth call (1-based), 0 = never
	calls    int
	failWith error
}

func newFakeChecker() *fakeChecker {
	return &fakeChecker{taken: make(map[string]uuid.UUID)}
}

func (f *fakeChecker) Exists(_ context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	f.calls++
	if f.failOn > 0 && f.calls >= f.failOn {
		return false, f.failWith
	}
	owner, ok := f.taken[slug]
	if !ok {
		return false, nil
	}
	if excludeID != uuid.Nil && owner == excludeID {
		return false, nil
	}
	return true, nil
}

func fixedClock(ts int64) Clock {
	return func() int64 { return ts }
}

func TestResolve_FreeBaseIsUnchanged(t *testing.T) {
	checker := newFakeChecker()
	r := NewResolver(checker, fixedClock(1700000000))

	got := r.Resolve(context.Background(), "hydraulic-press-x-200", uuid.Nil)
	if got != "hydraulic-press-x-200" {
		t.Errorf("expected bare base, got %q", got)
	}
}

func TestResolve_NumbersFromTwoUpward(t *testing.T) {
	checker := newFakeChecker()
	r := NewResolver(checker, fixedClock(1700000000))
	ctx := context.Background()

	// Simulate N sequential creations with the same base.
	want := []string{
		"hydraulic-press-x-200",
		"hydraulic-press-x-200-2",
		"hydraulic-press-x-200-3",
		"hydraulic-press-x-200-4",
	}

	seen := make(map[string]bool)
	for i, expected := range want {
		got := r.Resolve(ctx, "hydraulic-press-x-200", uuid.Nil)
		if got != expected {
			t.Fatalf("creation %d: got %q, want %q", i+1, got, expected)
		}
		if seen[got] {
			t.Fatalf("creation %d: slug %q assigned twice", i+1, got)
		}
		seen[got] = true
		checker.taken[got] = uuid.New()
	}
}

func TestResolve_UpdateExcludesOwnRecord(t *testing.T) {
	checker := newFakeChecker()
	recordID := uuid.New()
	checker.taken["ball-valve"] = recordID

	r := NewResolver(checker, fixedClock(1700000000))

	// The record keeps its own slug on update without a suffix.
	got := r.Resolve(context.Background(), "ball-valve", recordID)
	if got != "ball-valve" {
		t.Errorf("expected own slug to be reusable on update, got %q", got)
	}
}

func TestResolve_CheckFailureFallsBackToTimestamp(t *testing.T) {
	checker := newFakeChecker()
	checker.failOn = 1
	checker.failWith = errors.New("connection reset")

	r := NewResolver(checker, fixedClock(1700000000))

	got := r.Resolve(context.Background(), "gasket", uuid.Nil)
	if got == "gasket" {
		t.Error("fallback slug must differ from base")
	}
	if got != "gasket-1700000000" {
		t.Errorf("expected timestamp suffix, got %q", got)
	}
	if checker.calls != 1 {
		t.Errorf("expected no retries after a check failure, got %d calls", checker.calls)
	}
}

func TestResolve_BoundedLoopFallsThroughToTimestamp(t *testing.T) {
	checker := newFakeChecker()
	// Every candidate the loop can produce is taken.
	checker.taken["pump"] = uuid.New()
	for i := 2; i <= maxNumericSuffixes+1; i++ {
		checker.taken[fmt.Sprintf("pump-%d", i)] = uuid.New()
	}

	r := NewResolver(checker, fixedClock(1699999999))

	got := r.Resolve(context.Background(), "pump", uuid.Nil)
	if !strings.HasPrefix(got, "pump-") {
		t.Fatalf("expected suffixed slug, got %q", got)
	}
	if got != "pump-1699999999" {
		t.Errorf("expected timestamp fallback after suffix exhaustion, got %q", got)
	}
}

func TestResolve_Terminates(t *testing.T) {
	// A checker that always reports a collision must not loop forever.
	checker := &alwaysTaken{}
	r := NewResolver(checker, fixedClock(42))

	got := r.Resolve(context.Background(), "flange", uuid.Nil)
	if got == "flange" {
		t.Error("expected a suffixed slug")
	}
	if checker.calls > maxNumericSuffixes+1 {
		t.Errorf("expected at most %d checks, got %d", maxNumericSuffixes+1, checker.calls)
	}
}

type alwaysTaken struct {
	calls int
}

func (a *alwaysTaken) Exists(context.Context, string, uuid.UUID) (bool, error) {
	a.calls++
	return true, nil
}
