package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvmatrix/internal/config"
	"github.com/katalvlaran/lvmatrix/internal/matrixio"
	"github.com/katalvlaran/lvmatrix/matrix"
)

// ErrOrderTooLarge reports a factorial-cost operation on a matrix above --max-order.
var ErrOrderTooLarge = errors.New("matrix order exceeds max-order")

// app carries per-invocation state shared by all subcommands.
type app struct {
	out io.Writer
	log *zap.Logger
	// ownLog is set when the logger was built here and must be synced.
	ownLog bool

	file     string
	verbose  bool
	maxOrder int
	strict   bool

	cfg config.Config
	doc matrixio.Document
}

// newRootCmd wires the command tree. A nil logger is built from configuration.
func newRootCmd(out io.Writer, logger *zap.Logger) *cobra.Command {
	a := &app{out: out, log: logger}

	root := &cobra.Command{
		Use:   "matrixcalc",
		Short: "Dense matrix calculator",
		Long: `matrixcalc reads named matrices from a YAML (or JSON) document and
applies one operation to them. Matrix results are printed as YAML under the
key "result"; scalar results are printed as plain numbers.

Environment:
  MATRIXCALC_LOG_LEVEL   zap level (default info)
  MATRIXCALC_LOG_FORMAT  console or json (default console)
  MATRIXCALC_MAX_ORDER   largest order for det/complements/inverse (default 10)
  MATRIXCALC_STRICT      reject NaN and Inf on load (default false)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.setup(cmd); err != nil {
				return a.report(cmd, err)
			}
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.ownLog && a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.file, "file", "f", "", "operand document (YAML or JSON)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.IntVar(&a.maxOrder, "max-order", 0, "override MATRIXCALC_MAX_ORDER")
	pf.BoolVar(&a.strict, "strict", false, "reject NaN and Inf values")

	root.AddCommand(
		a.unaryCmd("det A", "Determinant by Laplace expansion", a.det),
		a.unaryCmd("inverse A", "Inverse via the adjugate", a.inverse),
		a.unaryCmd("complements A", "Matrix of cofactors", a.complements),
		a.unaryCmd("transpose A", "Transpose", a.transpose),
		a.unaryCmd("info A", "Shape, emptiness and trace", a.info),
		a.binaryCmd("add A B", "Sum A + B", matrix.Add),
		a.binaryCmd("sub A B", "Difference A - B", matrix.Sub),
		a.binaryCmd("mul A B", "Product A * B", matrix.Mul),
		a.eqCmd(),
		a.scaleCmd(),
		a.minorCmd(),
		a.resizeCmd(),
	)
	for _, c := range root.Commands() {
		a.instrument(c)
	}

	return root
}

// setup resolves configuration and the logger. The operand document is
// loaded on first use, so help and completion need no -f.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("max-order") {
		cfg.MaxOrder = a.maxOrder
	}
	if flags.Changed("strict") {
		cfg.Strict = a.strict
	}
	if a.verbose {
		cfg.LogLevel = zapcore.DebugLevel
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	if a.log == nil {
		if a.log, err = buildLogger(cfg); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		a.ownLog = true
	}

	return nil
}

// document loads the -f file once per invocation.
func (a *app) document() (matrixio.Document, error) {
	if a.doc != nil {
		return a.doc, nil
	}
	if a.file == "" {
		return nil, errors.New("no operand document: pass -f FILE")
	}
	var opts []matrix.Option
	if a.cfg.Strict {
		opts = append(opts, matrix.WithValidateNaNInf())
	}
	doc, err := matrixio.Load(a.file, opts...)
	if err != nil {
		return nil, err
	}
	a.log.Debug("loaded operands",
		zap.String("file", a.file),
		zap.Strings("names", doc.Names()),
		zap.Bool("strict", a.cfg.Strict),
	)
	a.doc = doc

	return doc, nil
}

func buildLogger(cfg config.Config) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if cfg.LogFormat == config.FormatConsole {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
	zc.OutputPaths = []string{"stderr"}

	return zc.Build()
}

// operand looks up a name and logs its shape.
func (a *app) operand(name string) (*matrix.Dense, error) {
	doc, err := a.document()
	if err != nil {
		return nil, err
	}
	m, err := doc.Get(name)
	if err != nil {
		return nil, err
	}
	a.log.Debug("operand", zap.String("name", name), zap.Int("rows", m.Rows()), zap.Int("cols", m.Cols()))

	return m, nil
}

// checkOrder guards the O(n!) operations.
func (a *app) checkOrder(m *matrix.Dense) error {
	if m.Rows() > a.cfg.MaxOrder {
		return fmt.Errorf("%w: order %d > %d", ErrOrderTooLarge, m.Rows(), a.cfg.MaxOrder)
	}

	return nil
}

func (a *app) printMatrix(m *matrix.Dense) error {
	return matrixio.Encode(a.out, "result", m)
}

func (a *app) printScalar(v float64) error {
	_, err := fmt.Fprintln(a.out, matrixio.FormatFloat(v))
	return err
}

// instrument logs each evaluation at debug level and reports each failure.
func (a *app) instrument(c *cobra.Command) {
	run := c.RunE
	c.RunE = func(cmd *cobra.Command, args []string) error {
		start := time.Now()
		err := run(cmd, args)
		fields := []zap.Field{
			zap.String("op", cmd.Name()),
			zap.Strings("args", args),
			zap.Duration("took", time.Since(start)),
		}
		if err != nil {
			return a.report(cmd, err, fields...)
		}
		a.log.Debug("evaluated", fields...)

		return nil
	}
}

// reportedError marks an error that already reached the log or stderr.
type reportedError struct{ err error }

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// report writes err once: through the logger when one exists, otherwise to
// the command's stderr.
func (a *app) report(cmd *cobra.Command, err error, fields ...zap.Field) error {
	if a.log != nil {
		a.log.Error("command failed", append(fields, zap.Error(err))...)
	} else {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
	}

	return &reportedError{err: err}
}

// execute runs root and prints the errors cobra raises before any hook
// runs (unknown command, bad flags, wrong arg count).
func execute(root *cobra.Command) error {
	err := root.Execute()
	var done *reportedError
	if err != nil && !errors.As(err, &done) {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
	}

	return err
}
