package result

import (
	"bufio"
	"fmt"
	"io"
)

// Unit is appended to every distance in the text report.
const Unit = "meters"

// WriteTo renders the report as text:
//
//	Found N unique solutions:
//	Best path was <path> with distance <d> meters.   (only when N > 0)
//	Equivalent solution is <path>.                    (one per equivalent)
//	Path: <path> distance: <d> meters.                (every walk, ascending)
//
// It implements io.WriterTo.
func (r Report) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)

	fmt.Fprintf(bw, "Found %d unique solutions:\n", r.Count)
	if r.Best != nil {
		fmt.Fprintf(bw, "Best path was %s with distance %d %s.\n", r.Best, r.Best.Distance, Unit)
	}
	for _, e := range r.Equivalents {
		fmt.Fprintf(bw, "Equivalent solution is %s.\n", e)
	}
	for _, e := range r.All {
		fmt.Fprintf(bw, "Path: %s distance: %d %s.\n", e, e.Distance, Unit)
	}

	err := bw.Flush()
	return cw.n, err
}

// countingWriter counts bytes handed to w.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
