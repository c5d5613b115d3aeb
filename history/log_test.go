package history_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deskutils/scicalc/history"
)

func TestAppendOrder(t *testing.T) {
	var l history.Log
	assert.Equal(t, 0, l.Len())
	_, ok := l.Last()
	assert.False(t, ok)

	a := l.Append("2+2 = 4")
	b := l.Append("100.00 INR → 1.20 USD")
	assert.Equal(t, history.Entry{Seq: 1, Text: "2+2 = 4"}, a)
	assert.Equal(t, history.Entry{Seq: 2, Text: "100.00 INR → 1.20 USD"}, b)
	assert.Equal(t, 2, l.Len())

	last, ok := l.Last()
	require.True(t, ok)
	assert.Equal(t, b, last)
	assert.Equal(t, []history.Entry{a, b}, l.Entries())
}

func TestEntriesIsACopy(t *testing.T) {
	var l history.Log
	l.Append("1+1 = 2")
	got := l.Entries()
	got[0].Text = "changed"
	assert.Equal(t, "1+1 = 2", l.Entries()[0].Text)
}

func TestWriteTo(t *testing.T) {
	var l history.Log
	l.Append("2+2 = 4")
	l.Append("2^10 = 1024")
	var b bytes.Buffer
	n, err := l.WriteTo(&b)
	require.NoError(t, err)
	assert.Equal(t, "2+2 = 4\n2^10 = 1024\n", b.String())
	assert.Equal(t, int64(b.Len()), n)
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteToError(t *testing.T) {
	var l history.Log
	l.Append("x")
	_, err := l.WriteTo(failWriter{})
	assert.ErrorContains(t, err, "entry 1")
}
