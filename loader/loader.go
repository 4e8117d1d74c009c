package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/wgraph/core"
)

// Parse reads every record of r. It stops at the first bad record and returns
// a *ParseError for it; no partial result is returned.
func Parse(r io.Reader, opts ...Option) ([]Record, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	cr := csv.NewReader(r)
	cr.Comma = o.Comma
	cr.Comment = o.Comment
	cr.FieldsPerRecord = -1 // counted per record below
	cr.TrimLeadingSpace = o.TrimSpace

	var (
		out   []Record
		first = true
	)
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, wrapCSV(err)
		}
		line, _ := cr.FieldPos(0)

		if first && o.Header {
			first = false
			continue
		}
		first = false

		rec, err := parseRecord(fields, line, o)
		if err != nil {
			return nil, &ParseError{Line: line, Record: fields, Err: err}
		}
		out = append(out, rec)
	}

	return out, nil
}

// Load parses r and builds a graph, applying records in input order.
func Load(r io.Reader, opts ...Option) (*core.Graph, error) {
	recs, err := Parse(r, opts...)
	if err != nil {
		return nil, err
	}

	return Build(recs)
}

// LoadFile opens path and calls Load on it.
func LoadFile(path string, opts ...Option) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Load(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("loader: %s: %w", path, err)
	}

	return g, nil
}

// Build inserts recs into a new graph: isolated records via AddNode, the rest
// via InsertEdge.
func Build(recs []Record) (*core.Graph, error) {
	g := core.NewGraph()
	var err error
	for _, rec := range recs {
		if rec.Isolated() {
			err = g.AddNode(rec.From)
		} else {
			err = g.InsertEdge(rec.From, rec.To, rec.Weight)
		}
		if err != nil {
			return nil, &ParseError{Line: rec.Line, Err: fmt.Errorf("%w: %w", ErrMalformedRecord, err)}
		}
	}

	return g, nil
}

// parseRecord validates one split record.
func parseRecord(fields []string, line int, o Options) (Record, error) {
	if o.TrimSpace {
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
	}

	switch {
	case len(fields) == 1 && o.Isolated:
		if fields[0] == "" {
			return Record{}, fmt.Errorf("%w: empty node label", ErrMalformedRecord)
		}

		return Record{From: fields[0], Line: line}, nil
	case len(fields) != 3:
		return Record{}, fmt.Errorf("%w: want 3 fields, got %d", ErrMalformedRecord, len(fields))
	case fields[0] == "" || fields[1] == "":
		return Record{}, fmt.Errorf("%w: empty node label", ErrMalformedRecord)
	}

	w, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return Record{}, fmt.Errorf("%w: %q", ErrBadWeight, fields[2])
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return Record{}, fmt.Errorf("%w: %q is not finite", ErrBadWeight, fields[2])
	}

	return Record{From: fields[0], To: fields[1], Weight: w, Line: line}, nil
}

// wrapCSV turns encoding/csv errors into *ParseError.
func wrapCSV(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &ParseError{Line: pe.StartLine, Err: fmt.Errorf("%w: %v", ErrMalformedRecord, pe.Err)}
	}

	return fmt.Errorf("loader: read: %w", err)
}

// Write emits g as an edge list in the delimiter of opts: one record per
// distinct edge, in Edges() order, with the current weight. With WithHeader a
// "from,to,weight" header comes first. Nodes without edges are written as
// single-field records when WithIsolated is set; otherwise they make Write fail
// with ErrOptionViolation, since dropping them would lose data.
//
// Loading the output gives the same nodes, edges and weights. Creation order
// can differ when isolated nodes were registered between edges.
func Write(w io.Writer, g *core.Graph, opts ...Option) error {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return err
	}
	if g == nil {
		return fmt.Errorf("%w: nil graph", ErrOptionViolation)
	}

	var isolated []string
	for _, label := range g.Nodes() {
		if g.NeighborCount(label) == 0 {
			isolated = append(isolated, label)
		}
	}
	if len(isolated) > 0 && !o.Isolated {
		return fmt.Errorf("%w: node %q has no edges, enable isolated records", ErrOptionViolation, isolated[0])
	}

	cw := csv.NewWriter(w)
	cw.Comma = o.Comma
	if o.Header {
		if err := cw.Write([]string{"from", "to", "weight"}); err != nil {
			return fmt.Errorf("loader: write: %w", err)
		}
	}
	for _, e := range g.Edges() {
		rec := []string{e.From, e.To, strconv.FormatFloat(e.Weight, 'g', -1, 64)}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("loader: write: %w", err)
		}
	}
	for _, label := range isolated {
		if err := cw.Write([]string{label}); err != nil {
			return fmt.Errorf("loader: write: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("loader: write: %w", err)
	}

	return nil
}
