// SPDX-License-Identifier: MIT
// Package matrixio reads and writes named matrices as YAML documents.
//
// A document is a mapping from operand name to a list of rows:
//
//	a: [[1, 2], [3, 4]]
//	b:
//	  - [5, 6]
//	  - [7, 8]
//
// JSON input parses as well. Written documents put each row on one line.
package matrixio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmatrix/matrix"
)

var (
	// ErrMalformed reports input that is not a mapping of names to numeric rows.
	ErrMalformed = errors.New("matrixio: malformed document")
	// ErrUnknownOperand reports a name that the document does not define.
	ErrUnknownOperand = errors.New("matrixio: unknown operand")
)

// Document holds decoded matrices by name.
type Document map[string]*matrix.Dense

// Decode reads one YAML document from r. opts are applied to every matrix.
// Empty input yields an empty Document.
func Decode(r io.Reader, opts ...matrix.Option) (Document, error) {
	var raw map[string][][]float64
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return Document{}, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	doc := make(Document, len(raw))
	for name, rows := range raw {
		m, err := matrix.NewFromRows(rows, opts...)
		if err != nil {
			return nil, fmt.Errorf("operand %q: %w", name, err)
		}
		doc[name] = m
	}

	return doc, nil
}

// Load decodes the file at path.
func Load(path string, opts ...matrix.Option) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("matrixio: open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := Decode(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Get returns the matrix stored under name.
func (d Document) Get(name string) (*matrix.Dense, error) {
	m, ok := d[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperand, name)
	}

	return m, nil
}

// Names returns the operand names in sorted order.
func (d Document) Names() []string {
	names := make([]string, 0, len(d))
	for name := range d {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Encode writes every entry of d, sorted by name.
func (d Document) Encode(w io.Writer) error {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range d.Names() {
		root.Content = append(root.Content, keyNode(name), rowsNode(d[name]))
	}

	return encodeNode(w, root)
}

// Encode writes m as a single-entry document under name.
func Encode(w io.Writer, name string, m *matrix.Dense) error {
	return Document{name: m}.Encode(w)
}

func encodeNode(w io.Writer, n *yaml.Node) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(n); err != nil {
		return fmt.Errorf("matrixio: encode: %w", err)
	}

	return enc.Close()
}

// rowsNode renders m as a block sequence of flow-style rows.
func rowsNode(m *matrix.Dense) *yaml.Node {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	if m == nil {
		seq.Style = yaml.FlowStyle
		return seq
	}
	rows := m.RawRows()
	if len(rows) == 0 {
		seq.Style = yaml.FlowStyle
	}
	for _, row := range rows {
		rn := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, v := range row {
			rn.Content = append(rn.Content, scalarNode(FormatFloat(v)))
		}
		seq.Content = append(seq.Content, rn)
	}

	return seq
}

// keyNode tags operand names as strings so yaml.v3 quotes names such as
// null, ~ or 1 that would otherwise resolve to another type.
func keyNode(name string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name}
}

func scalarNode(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: v}
}

// FormatFloat renders v in the shortest form that round-trips, using the
// YAML spellings for NaN and the infinities.
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return ".nan"
	case math.IsInf(v, 1):
		return ".inf"
	case math.IsInf(v, -1):
		return "-.inf"
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}
