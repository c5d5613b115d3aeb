// Package history keeps the append-only record of completed calculations
// and conversions.
package history

import (
	"fmt"
	"io"
)

// Entry is one recorded line. Seq starts at 1 and increases by one with each
// append, so it is also the entry's position in the log.
type Entry struct {
	Seq  int
	Text string
}

// Log is an unbounded append-only list of entries. The zero value is an empty
// log ready to use. A Log is not safe for concurrent use.
type Log struct {
	entries []Entry
}

// Append records text and returns the new entry.
func (l *Log) Append(text string) Entry {
	e := Entry{Seq: len(l.entries) + 1, Text: text}
	l.entries = append(l.entries, e)
	return e
}

// Entries returns a copy of the log, oldest first.
func (l *Log) Entries() []Entry {
	return append([]Entry(nil), l.entries...)
}

// Len returns the number of entries.
func (l *Log) Len() int {
	return len(l.entries)
}

// Last returns the newest entry, or false if the log is empty.
func (l *Log) Last() (Entry, bool) {
	if len(l.entries) == 0 {
		return Entry{}, false
	}
	return l.entries[len(l.entries)-1], true
}

// WriteTo writes one entry per line, oldest first.
func (l *Log) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for _, e := range l.entries {
		k, err := fmt.Fprintln(w, e.Text)
		n += int64(k)
		if err != nil {
			return n, fmt.Errorf("writing history entry %d: %w", e.Seq, err)
		}
	}
	return n, nil
}
