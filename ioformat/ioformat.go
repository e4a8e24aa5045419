// Package ioformat reads and writes the line-oriented batch format of the
// stationtime command:
//
//	N                 station count
//	a b t             N−1 direct edges
//	M                 query count
//	a b               M queries
//
// The header may also read "N E" to announce E edge lines instead of N−1;
// Write uses that form only when the edge count is not N−1.
//
// Tokens on a line are separated by any run of whitespace. The package only
// parses; range checks on station numbers belong to traveltime.Build.
package ioformat

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/stationtime/traveltime"
)

// Sentinel errors for the batch format.
var (
	// ErrInvalidStationCount is returned for a negative station count.
	ErrInvalidStationCount = traveltime.ErrInvalidStationCount

	// ErrInvalidEdgeCount is returned for a negative edge count in an "N E" header.
	ErrInvalidEdgeCount = errors.New("ioformat: edge count must be >= 0")

	// ErrInvalidQueryCount is returned for a negative query count.
	ErrInvalidQueryCount = errors.New("ioformat: query count must be >= 0")

	// ErrMalformedLine is returned for a missing line, a wrong token count or a
	// token that is not an integer.
	ErrMalformedLine = errors.New("ioformat: malformed line")
)

// maxPrealloc bounds slice preallocation driven by header counts.
const maxPrealloc = 1 << 16

// Input is one parsed batch.
type Input struct {
	Request traveltime.BuildRequest
	Queries []traveltime.Query
}

// lineReader tracks line numbers for error messages.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

// ints reads the next line and parses exactly want integers from it.
func (lr *lineReader) ints(what string, want int) ([]int, error) {
	return lr.intsBetween(what, want, want)
}

// intsBetween reads the next line and parses min..max integers from it.
func (lr *lineReader) intsBetween(what string, min, max int) ([]int, error) {
	if !lr.sc.Scan() {
		if err := lr.sc.Err(); err != nil {
			return nil, fmt.Errorf("ioformat: reading %s: %w", what, err)
		}
		return nil, fmt.Errorf("%w: line %d: missing %s", ErrMalformedLine, lr.line+1, what)
	}
	lr.line++
	fields := strings.Fields(lr.sc.Text())
	if len(fields) < min || len(fields) > max {
		want := strconv.Itoa(min)
		if max != min {
			want += " or " + strconv.Itoa(max)
		}
		return nil, fmt.Errorf("%w: line %d: %s needs %s integers, got %d",
			ErrMalformedLine, lr.line, what, want, len(fields))
	}
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %s: %q is not an integer", ErrMalformedLine, lr.line, what, f)
		}
		out[i] = v
	}

	return out, nil
}

// Read parses a whole batch from r.
func Read(r io.Reader) (*Input, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lr := &lineReader{sc: sc}

	head, err := lr.intsBetween("station count", 1, 2)
	if err != nil {
		return nil, err
	}
	n := head[0]
	if n < 0 {
		return nil, fmt.Errorf("ioformat: line %d: station count %d: %w", lr.line, n, ErrInvalidStationCount)
	}
	edges := n - 1
	if len(head) == 2 {
		edges = head[1]
		if edges < 0 {
			return nil, fmt.Errorf("ioformat: line %d: edge count %d: %w", lr.line, edges, ErrInvalidEdgeCount)
		}
	}

	in := &Input{Request: traveltime.BuildRequest{StationCount: n}}
	if edges > 0 {
		in.Request.Edges = make([]traveltime.Edge, 0, min(edges, maxPrealloc))
	}
	for i := 0; i < edges; i++ {
		v, err := lr.ints("edge", 3)
		if err != nil {
			return nil, err
		}
		in.Request.Edges = append(in.Request.Edges, traveltime.Edge{A: v[0], B: v[1], Time: v[2]})
	}

	head, err = lr.ints("query count", 1)
	if err != nil {
		return nil, err
	}
	m := head[0]
	if m < 0 {
		return nil, fmt.Errorf("ioformat: line %d: query count %d: %w", lr.line, m, ErrInvalidQueryCount)
	}
	in.Queries = make([]traveltime.Query, 0, min(m, maxPrealloc))
	for i := 0; i < m; i++ {
		v, err := lr.ints("query", 2)
		if err != nil {
			return nil, err
		}
		in.Queries = append(in.Queries, traveltime.Query{A: v[0], B: v[1]})
	}

	return in, nil
}

// Write renders in back into the batch format.
func Write(w io.Writer, in *Input) error {
	bw := bufio.NewWriter(w)
	n, e := in.Request.StationCount, len(in.Request.Edges)
	if e == n-1 || (n == 0 && e == 0) {
		fmt.Fprintln(bw, n)
	} else {
		fmt.Fprintln(bw, n, e)
	}
	for _, e := range in.Request.Edges {
		fmt.Fprintf(bw, "%d %d %d\n", e.A, e.B, e.Time)
	}
	fmt.Fprintln(bw, len(in.Queries))
	for _, q := range in.Queries {
		fmt.Fprintf(bw, "%d %d\n", q.A, q.B)
	}

	return bw.Flush()
}

// WriteAnswers writes one integer per line, in order.
func WriteAnswers(w io.Writer, answers []int) error {
	bw := bufio.NewWriter(w)
	for _, a := range answers {
		bw.WriteString(strconv.Itoa(a))
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
