// Package csvfile holds the CSV plumbing shared by the Toggl and Clockify
// adapters: an always-quoting writer matching the quoting of real tracker
// exports, and a BOM-tolerant reader.
package csvfile

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"io"
	"strings"
)

// Writer emits CSV rows with every field quoted and CRLF row terminators,
// which is what Toggl and Clockify produce and what their importers are fed
// in practice. encoding/csv only quotes on demand, so the quoting happens
// here instead.
type Writer struct {
	w *bufio.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Write emits one record. Write errors stick inside the buffer and surface
// from Flush.
func (w *Writer) Write(record []string) {
	for i, field := range record {
		if i > 0 {
			w.w.WriteByte(',')
		}
		w.w.WriteByte('"')
		w.w.WriteString(strings.ReplaceAll(field, `"`, `""`))
		w.w.WriteByte('"')
	}
	w.w.WriteString("\r\n")
}

// Flush drains the buffer and reports the first write error, if any.
func (w *Writer) Flush() error { return w.w.Flush() }

// NewReader wraps r in a csv.Reader that tolerates a UTF-8 BOM and ragged
// rows; the optional trailing columns vary between export versions.
func NewReader(r io.Reader) *csv.Reader {
	br := bufio.NewReader(r)
	if b, err := br.Peek(3); err == nil && bytes.Equal(b, []byte{0xEF, 0xBB, 0xBF}) {
		br.Discard(3)
	}
	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	return cr
}

// HeaderIndex maps column names to their positions. Hand-edited exports
// sometimes carry stray quotes around header names; those are stripped. The
// first occurrence of a name wins.
func HeaderIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.Trim(strings.TrimSpace(name), `"`))
		if _, ok := idx[name]; !ok {
			idx[name] = i
		}
	}
	return idx
}
