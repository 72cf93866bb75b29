package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// unaryCmd builds a command taking one operand name.
func (a *app) unaryCmd(use, short string, run func(*matrix.Dense) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			m, err := a.operand(args[0])
			if err != nil {
				return err
			}

			return run(m)
		},
	}
}

// binaryCmd builds a command for one of the operator facades.
func (a *app) binaryCmd(use, short string, op func(x, y matrix.Matrix) (*matrix.Dense, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			x, y, err := a.pair(args)
			if err != nil {
				return err
			}
			res, err := op(x, y)
			if err != nil {
				return err
			}

			return a.printMatrix(res)
		},
	}
}

func (a *app) pair(args []string) (*matrix.Dense, *matrix.Dense, error) {
	x, err := a.operand(args[0])
	if err != nil {
		return nil, nil, err
	}
	y, err := a.operand(args[1])
	if err != nil {
		return nil, nil, err
	}

	return x, y, nil
}

func (a *app) det(m *matrix.Dense) error {
	if err := a.checkOrder(m); err != nil {
		return err
	}
	d, err := m.Determinant()
	if err != nil {
		return err
	}

	return a.printScalar(d)
}

func (a *app) inverse(m *matrix.Dense) error {
	if err := a.checkOrder(m); err != nil {
		return err
	}
	inv, err := m.InverseMatrix()
	if err != nil {
		return err
	}

	return a.printMatrix(inv)
}

func (a *app) complements(m *matrix.Dense) error {
	if err := a.checkOrder(m); err != nil {
		return err
	}
	c, err := m.CalcComplements()
	if err != nil {
		return err
	}

	return a.printMatrix(c)
}

func (a *app) transpose(m *matrix.Dense) error {
	return a.printMatrix(m.Transpose())
}

// shapeInfo is the info command's output. Trace is omitted for non-square input.
type shapeInfo struct {
	Rows  int      `yaml:"rows"`
	Cols  int      `yaml:"cols"`
	Empty bool     `yaml:"empty"`
	Trace *float64 `yaml:"trace,omitempty"`
}

func (a *app) info(m *matrix.Dense) error {
	si := shapeInfo{Rows: m.Rows(), Cols: m.Cols(), Empty: m.IsEmpty()}
	if tr, err := m.Trace(); err == nil {
		si.Trace = &tr
	}
	enc := yaml.NewEncoder(a.out)
	if err := enc.Encode(si); err != nil {
		return err
	}

	return enc.Close()
}

func (a *app) eqCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eq A B",
		Short: "Exact equality A == B",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			x, y, err := a.pair(args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.out, matrix.Equal(x, y))

			return err
		},
	}
}

func (a *app) scaleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scale A K",
		Short: "Multiply every element by K",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			m, err := a.operand(args[0])
			if err != nil {
				return err
			}
			k, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("scale factor %q: %w", args[1], err)
			}
			res, err := matrix.Scale(m, k)
			if err != nil {
				return err
			}

			return a.printMatrix(res)
		},
	}
}

func (a *app) minorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "minor A ROW COL",
		Short: "Delete row ROW and column COL (0-based)",
		Args:  cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			m, err := a.operand(args[0])
			if err != nil {
				return err
			}
			idx, err := parseInts(args[1:])
			if err != nil {
				return err
			}
			res, err := m.Minor(idx[0], idx[1])
			if err != nil {
				return err
			}

			return a.printMatrix(res)
		},
	}
}

func (a *app) resizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resize A ROWS COLS",
		Short: "Resize a copy of A, zero-filling new cells",
		Args:  cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			m, err := a.operand(args[0])
			if err != nil {
				return err
			}
			dims, err := parseInts(args[1:])
			if err != nil {
				return err
			}
			res := m.Clone()
			if err = res.SetRows(dims[0]); err != nil {
				return err
			}
			if err = res.SetCols(dims[1]); err != nil {
				return err
			}

			return a.printMatrix(res)
		},
	}
}

func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, s := range args {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return nil, fmt.Errorf("integer argument %q: %w", s, err)
		}
		out[i] = n
	}

	return out, nil
}
