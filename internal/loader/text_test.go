package loader

import (
	"bufio"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/relcheck/internal/ir"
)

func TestParse_Basic(t *testing.T) {
	rel, err := Parse(strings.NewReader("{a, b, c}\n{(a, a), (a, b), (b, c)}\n"))
	require.NoError(t, err)

	assert.Equal(t, []ir.Element{"a", "b", "c"}, rel.Elements)
	assert.Equal(t, 3, rel.Matrix.Size())
	assert.Equal(t, []ir.Pair{
		{From: "a", To: "a"},
		{From: "a", To: "b"},
		{From: "b", To: "c"},
	}, rel.Pairs())
}

func TestParse_CRLFAndBlankLines(t *testing.T) {
	rel, err := Parse(strings.NewReader("\r\n{x, y}\r\n\r\n{(y, x)}\r\ntrailing junk\r\n"))
	require.NoError(t, err)

	assert.Equal(t, []ir.Element{"x", "y"}, rel.Elements)
	assert.True(t, rel.Contains("y", "x"))
	assert.Equal(t, 1, rel.Matrix.Count())
}

func TestParse_EmptySetAndRelation(t *testing.T) {
	rel, err := Parse(strings.NewReader("{}\n{}\n"))
	require.NoError(t, err)

	assert.Equal(t, 0, rel.Size())
	assert.Equal(t, 0, rel.Matrix.Size())
	assert.Empty(t, rel.Pairs())
}

func TestParse_EmptyRelation(t *testing.T) {
	rel, err := Parse(strings.NewReader("{a, b}\n{}"))
	require.NoError(t, err)

	assert.Equal(t, 2, rel.Size())
	assert.Equal(t, 0, rel.Matrix.Count())
}

func TestParse_DuplicatePairIsIdempotent(t *testing.T) {
	rel, err := ParseLines("{a}", "{(a, a), (a, a)}")
	require.NoError(t, err)
	assert.Equal(t, 1, rel.Matrix.Count())
}

func TestParse_ElementOrderIsFirstAppearance(t *testing.T) {
	rel, err := ParseLines("{c, a, b}", "{(a, c)}")
	require.NoError(t, err)

	i, _ := rel.Index("a")
	j, _ := rel.Index("c")
	assert.Equal(t, 1, i)
	assert.Equal(t, 0, j)
	assert.True(t, rel.Matrix.Get(1, 0))
}

func TestParse_MultiCharacterLabels(t *testing.T) {
	rel, err := ParseLines("{alice, bob, 42}", "{(alice, bob), (bob, 42)}")
	require.NoError(t, err)

	assert.True(t, rel.Contains("alice", "bob"))
	assert.True(t, rel.Contains("bob", "42"))
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
		line    int
	}{
		{"empty source", "", "missing set line", 0},
		{"only blank lines", "\n  \n", "missing set line", 0},
		{"missing relation line", "{a, b}\n", "missing relation line", 2},
		{"set without braces", "a, b\n{}\n", "set must be enclosed in braces", 1},
		{"relation without braces", "{a, b}\n(a, b)\n", "relation must be enclosed in braces", 2},
		{"unknown label", "{a, b}\n{(a, z)}\n", `unknown element "z" in pair 1`, 2},
		{"unknown first label", "{a, b}\n{(a, b), (q, a)}\n", `unknown element "q" in pair 2`, 2},
		{"odd token count", "{a, b}\n{(a, b), (a)}\n", "odd number of labels (3)", 2},
		{"duplicate element", "{a, b, a}\n{}\n", `duplicate element "a"`, 1},
		{"empty label", "{a, , b}\n{}\n", "empty element label", 1},
		{"pair over empty set", "{}\n{(a, a)}\n", `unknown element "a"`, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.True(t, IsMalformedInput(err), "want MALFORMED_INPUT, got %v", err)
			assert.False(t, IsSourceNotFound(err))
			assert.Contains(t, err.Error(), tt.wantMsg)

			var le *LoadError
			require.ErrorAs(t, err, &le)
			assert.Equal(t, tt.line, le.Line)
		})
	}
}

func TestParse_UnknownLabelNeverDefaultsToFirstElement(t *testing.T) {
	rel, err := ParseLines("{a, b}", "{(z, b)}")
	require.Error(t, err)
	assert.True(t, IsMalformedInput(err))
	assert.Equal(t, 0, rel.Size(), "no partial relation is returned")
}

// failingReader returns its data, then err instead of io.EOF.
type failingReader struct {
	data []byte
	err  error
}

func (r *failingReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, r.err
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}

func TestParse_ReaderErrorIsSourceNotFound(t *testing.T) {
	diskGone := errors.New("disk gone")
	r := &failingReader{data: []byte("{a, b}\n"), err: diskGone}

	_, err := Parse(r)
	require.Error(t, err)
	assert.True(t, IsSourceNotFound(err), "want SOURCE_NOT_FOUND, got %v", err)
	assert.False(t, IsMalformedInput(err))
	assert.ErrorIs(t, err, diskGone)
}

func TestParse_LineTooLongIsMalformed(t *testing.T) {
	long := "{" + strings.Repeat("a", maxLineSize+1) + "}\n{}\n"

	_, err := Parse(strings.NewReader(long))
	require.Error(t, err)
	assert.True(t, IsMalformedInput(err), "want MALFORMED_INPUT, got %v", err)
	assert.False(t, IsSourceNotFound(err))
	assert.ErrorIs(t, err, bufio.ErrTooLong)
}

func TestParse_LeadingByteOrderMark(t *testing.T) {
	rel, err := Parse(strings.NewReader("\ufeff{a, b}\n{(a, b)}\n"))
	require.NoError(t, err)

	assert.Equal(t, []ir.Element{"a", "b"}, rel.Elements)
	assert.Equal(t, []ir.Pair{{From: "a", To: "b"}}, rel.Pairs())
}

func TestQuote_TruncatesOnRuneBoundary(t *testing.T) {
	label := strings.Repeat("é", 50)

	got := quote(label)
	assert.Equal(t, `"`+strings.Repeat("é", 40)+`..."`, got)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, `"short"`, quote("short"))
}
