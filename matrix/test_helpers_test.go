// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernel tests.
//   • Fail fast (t.Fatalf) so subsequent steps may assume non-nil values.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the facades onto their At-based fallback path.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c, opts...)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustFromRows builds a *Dense from row literals or fails the test.
func MustFromRows(t *testing.T, rows [][]float64, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows, opts...)
	if err != nil {
		t.Fatalf("NewFromRows(%v): %v", rows, err)
	}

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustSet writes (i,j) or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// Fill sets every element to v.
func Fill(t *testing.T, m *matrix.Dense, v float64) {
	t.Helper()
	if err := m.Apply(func(_, _ int, _ float64) float64 { return v }); err != nil {
		t.Fatalf("Apply(fill %v): %v", v, err)
	}
}

// RandomFill fills m with deterministic pseudo-random values in [-5, 5).
func RandomFill(t *testing.T, m *matrix.Dense, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	if err := m.Apply(func(_, _ int, _ float64) float64 { return rng.Float64()*10 - 5 }); err != nil {
		t.Fatalf("Apply(random): %v", err)
	}
}

// RandomIntFill fills m with deterministic pseudo-random integers in [-4, 4].
// Integer inputs keep cofactor arithmetic exact.
func RandomIntFill(t *testing.T, m *matrix.Dense, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	if err := m.Apply(func(_, _ int, _ float64) float64 { return float64(rng.Intn(9) - 4) }); err != nil {
		t.Fatalf("Apply(random int): %v", err)
	}
}

// CompareExact asserts shape and bit-for-bit equality (IEEE ==) against want.
func CompareExact(t *testing.T, want [][]float64, got matrix.Matrix) {
	t.Helper()
	if got.Rows() != len(want) {
		t.Fatalf("rows: want %d, got %d", len(want), got.Rows())
	}
	for i := range want {
		if got.Cols() != len(want[i]) {
			t.Fatalf("cols: want %d, got %d", len(want[i]), got.Cols())
		}
		for j := range want[i] {
			if g := MustAt(t, got, i, j); g != want[i][j] {
				t.Fatalf("[%d,%d]: want %v, got %v", i, j, want[i][j], g)
			}
		}
	}
}
