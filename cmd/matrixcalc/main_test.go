package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvmatrix/internal/matrixio"
	"github.com/katalvlaran/lvmatrix/matrix"
)

const operands = `
a: [[1, 2], [3, 4]]
b: [[5, 6], [7, 8]]
u: [[2, 5, 7], [6, 3, 4], [5, -2, -3]]
s: [[1, 2], [2, 4]]
r: [[1, 2, 3], [4, 5, 6]]
n: [[1, .nan]]
`

// run executes matrixcalc with a temp operand file and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ops.yaml")
	require.NoError(t, os.WriteFile(path, []byte(operands), 0o600))

	var out bytes.Buffer
	root := newRootCmd(&out, zaptest.NewLogger(t))
	root.SetArgs(append([]string{"-f", path, "--verbose"}, args...))
	root.SetOut(&out)
	root.SetErr(&out)
	err := execute(root)

	return out.String(), err
}

// result decodes a printed matrix result.
func result(t *testing.T, out string) *matrix.Dense {
	t.Helper()
	doc, err := matrixio.Decode(strings.NewReader(out))
	require.NoError(t, err)
	m, err := doc.Get("result")
	require.NoError(t, err)

	return m
}

func rows(t *testing.T, r [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(r)
	require.NoError(t, err)

	return m
}

func TestDet(t *testing.T) {
	out, err := run(t, "det", "a")
	require.NoError(t, err)
	require.Equal(t, "-2\n", out)

	out, err = run(t, "det", "u")
	require.NoError(t, err)
	require.Equal(t, "-1\n", out)
}

func TestInverse(t *testing.T) {
	out, err := run(t, "inverse", "u")
	require.NoError(t, err)
	want := rows(t, [][]float64{{1, -1, 1}, {-38, 41, -34}, {27, -29, 24}})
	require.True(t, want.EqMatrix(result(t, out)), out)

	_, err = run(t, "inverse", "s")
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestComplementsAndTranspose(t *testing.T) {
	out, err := run(t, "complements", "a")
	require.NoError(t, err)
	require.True(t, rows(t, [][]float64{{4, -3}, {-2, 1}}).EqMatrix(result(t, out)), out)

	out, err = run(t, "transpose", "r")
	require.NoError(t, err)
	require.True(t, rows(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}).EqMatrix(result(t, out)), out)
}

func TestBinaryOps(t *testing.T) {
	cases := []struct {
		op   string
		want [][]float64
	}{
		{"add", [][]float64{{6, 8}, {10, 12}}},
		{"sub", [][]float64{{-4, -4}, {-4, -4}}},
		{"mul", [][]float64{{19, 22}, {43, 50}}},
	}
	for _, tc := range cases {
		t.Run(tc.op, func(t *testing.T) {
			out, err := run(t, tc.op, "a", "b")
			require.NoError(t, err)
			require.True(t, rows(t, tc.want).EqMatrix(result(t, out)), out)
		})
	}

	_, err := run(t, "add", "a", "r")
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestEqScaleMinorResize(t *testing.T) {
	out, err := run(t, "eq", "a", "a")
	require.NoError(t, err)
	require.Equal(t, "true\n", out)

	out, err = run(t, "eq", "a", "b")
	require.NoError(t, err)
	require.Equal(t, "false\n", out)

	out, err = run(t, "scale", "a", "0.5")
	require.NoError(t, err)
	require.True(t, rows(t, [][]float64{{0.5, 1}, {1.5, 2}}).EqMatrix(result(t, out)), out)

	out, err = run(t, "minor", "u", "1", "2")
	require.NoError(t, err)
	require.True(t, rows(t, [][]float64{{2, 5}, {5, -2}}).EqMatrix(result(t, out)), out)

	out, err = run(t, "resize", "r", "3", "2")
	require.NoError(t, err)
	require.True(t, rows(t, [][]float64{{1, 2}, {4, 5}, {0, 0}}).EqMatrix(result(t, out)), out)

	_, err = run(t, "resize", "r", "0", "2")
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = run(t, "scale", "a", "two")
	require.Error(t, err)
}

func TestInfo(t *testing.T) {
	out, err := run(t, "info", "a")
	require.NoError(t, err)
	require.Contains(t, out, "rows: 2")
	require.Contains(t, out, "trace: 5")

	out, err = run(t, "info", "r")
	require.NoError(t, err)
	require.Contains(t, out, "cols: 3")
	require.NotContains(t, out, "trace")
}

func TestMaxOrder(t *testing.T) {
	_, err := run(t, "--max-order", "2", "det", "u")
	require.ErrorIs(t, err, ErrOrderTooLarge)

	t.Setenv("MATRIXCALC_MAX_ORDER", "2")
	_, err = run(t, "inverse", "u")
	require.ErrorIs(t, err, ErrOrderTooLarge)

	// transpose has no factorial cost and is not limited.
	_, err = run(t, "transpose", "u")
	require.NoError(t, err)
}

func TestStrict(t *testing.T) {
	_, err := run(t, "transpose", "a")
	require.NoError(t, err)

	_, err = run(t, "--strict", "transpose", "a")
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	t.Setenv("MATRIXCALC_STRICT", "true")
	_, err = run(t, "det", "a")
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestSetupErrors(t *testing.T) {
	_, err := run(t, "det", "missing")
	require.ErrorIs(t, err, matrixio.ErrUnknownOperand)

	var out bytes.Buffer
	root := newRootCmd(&out, zaptest.NewLogger(t))
	root.SetArgs([]string{"det", "a"})
	root.SetErr(&out)
	require.ErrorContains(t, execute(root), "pass -f FILE")
}

func TestHelpNeedsNoDocument(t *testing.T) {
	var out bytes.Buffer
	root := newRootCmd(&out, zaptest.NewLogger(t))
	root.SetArgs([]string{"help", "det"})
	root.SetOut(&out)
	root.SetErr(&out)

	require.NoError(t, execute(root))
	require.Contains(t, out.String(), "Determinant by Laplace expansion")
}

// runObserved is run with an in-memory logger so log entries can be counted.
func runObserved(t *testing.T, args ...string) (string, *observer.ObservedLogs, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ops.yaml")
	require.NoError(t, os.WriteFile(path, []byte(operands), 0o600))

	core, logs := observer.New(zapcore.DebugLevel)
	var out bytes.Buffer
	root := newRootCmd(&out, zap.New(core))
	root.SetArgs(append([]string{"-f", path}, args...))
	root.SetOut(&out)
	root.SetErr(&out)
	err := execute(root)

	return out.String(), logs, err
}

func TestFailureReportedOnce(t *testing.T) {
	out, logs, err := runObserved(t, "inverse", "s")
	require.ErrorIs(t, err, matrix.ErrSingular)
	require.Empty(t, out)
	failed := logs.FilterMessage("command failed").All()
	require.Len(t, failed, 1)
	require.Equal(t, "inverse", failed[0].ContextMap()["op"])

	// Argument-count errors come from cobra before any hook: printed once, not logged.
	out, logs, err = runObserved(t, "det")
	require.Error(t, err)
	require.Equal(t, 1, strings.Count(out, "Error:"), out)
	require.Zero(t, logs.FilterMessage("command failed").Len())
}

func TestConfigErrorWithoutLogger(t *testing.T) {
	t.Setenv("MATRIXCALC_MAX_ORDER", "many")

	var out bytes.Buffer
	root := newRootCmd(&out, nil)
	root.SetArgs([]string{"det", "a"})
	root.SetOut(&out)
	root.SetErr(&out)

	require.ErrorContains(t, execute(root), "parse env:")
	require.Equal(t, 1, strings.Count(out.String(), "Error:"), out.String())
}
