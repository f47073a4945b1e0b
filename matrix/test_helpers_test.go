// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernel tests.
//   • Keep generated data small-integer valued so float64 arithmetic is exact
//     and properties can be asserted with Equal instead of tolerances.

package matrix_test

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/densemat/matrix"
)

// Fixture matrices of the 2×2 scenario.
var (
	rowsA = [][]float64{{1, 2}, {3, 4}}
	rowsB = [][]float64{{5, 6}, {7, 8}}
)

// randRange bounds the generated values to [-randRange, randRange].
const randRange = 9

// RandFilled ALLOCATES an r×c Dense filled with small integers from a seeded RNG.
// Implementation:
//   - Stage 1: rand.New(rand.NewSource(seed)).
//   - Stage 2: fill row-major with values in [-randRange, randRange].
//
// Determinism:
//   - Identical seed ⇒ identical matrix.
func RandFilled(t testing.TB, r, c int, seed int64) *matrix.Dense[float64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, r*c)
	for i := range vals {
		vals[i] = float64(rng.Intn(2*randRange+1) - randRange)
	}

	return matrix.New(r, c, vals)
}

// MustPanicIs ASSERTS that fn panics with an error matching target via errors.Is.
// Fails the test when fn returns normally or panics with a non-error value.
func MustPanicIs(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic wrapping %v, got none", target)
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("expected error panic wrapping %v, got %T: %v", target, r, r)
		}
		if !errors.Is(err, target) {
			t.Fatalf("panic %q does not wrap %v", err, target)
		}
	}()
	fn()
}

// ExpectPanic ASSERTS that fn() panics (any value).
// Used for option constructors, which panic with plain strings.
func ExpectPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic, got nil")
		}
	}()
	fn()
}

// CompareExact ASSERTS m has the shape of want and identical elements.
// On mismatch the failure message carries a cmp.Diff of the rows.
func CompareExact(t *testing.T, want [][]float64, m *matrix.Dense[float64]) {
	t.Helper()
	got := make([][]float64, m.Rows())
	for i := range got {
		got[i] = m.Row(i)
	}
	if len(want) == 0 && len(got) == 0 {
		return
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("matrix mismatch (-want +got):\n%s", diff)
	}
}

// MustDims ASSERTS the shape of m.
func MustDims(t *testing.T, m interface{ Shape() (int, int) }, r, c int) {
	t.Helper()
	gr, gc := m.Shape()
	if gr != r || gc != c {
		t.Fatalf("shape = %dx%d; want %dx%d", gr, gc, r, c)
	}
}

// shapes enumerates small rectangular shapes (including degenerate ones)
// used by the property tests.
var shapes = [][2]int{{0, 0}, {0, 3}, {3, 0}, {1, 1}, {1, 4}, {4, 1}, {2, 3}, {3, 3}, {5, 2}}

// shapeName labels a subtest for shape s.
func shapeName(s [2]int) string { return fmt.Sprintf("%dx%d", s[0], s[1]) }
