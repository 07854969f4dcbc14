package writers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kmereval/internal/result"
	"kmereval/pkg/api"
)

func sampleEvals() []result.Evaluation {
	return []result.Evaluation{
		{
			Path: "query_kmer.res", Label: "0", Theta: 0, Total: 10, Entries: 2,
			Matches: []result.Entry{{Name: "a", Count: 5, Line: 2}},
		},
		{
			Path: "query.res", Label: "0", Theta: 0, Total: 4, Entries: 3,
			Matches: []result.Entry{},
		},
	}
}

func render(t *testing.T, format string, opt Options, evs []result.Evaluation) string {
	t.Helper()
	var buf bytes.Buffer
	w, err := New(format, &buf, opt)
	require.NoError(t, err)
	for _, ev := range evs {
		require.NoError(t, w.Write(ev))
	}
	require.NoError(t, w.Close())
	return buf.String()
}

func TestUnknownFormatError(t *testing.T) {
	var b bytes.Buffer
	_, err := New("nope-format", &b, Options{})
	if err == nil || !strings.Contains(err.Error(), "unknown output format") {
		t.Fatalf("want 'unknown output format' error, got: %v", err)
	}
}

func TestFormatsRegistered(t *testing.T) {
	assert.Equal(t, []string{"json", "jsonl", "list", "text", "tsv"}, Formats())
}

func TestListWriter(t *testing.T) {
	got := render(t, "list", Options{}, sampleEvals())
	assert.Equal(t, "['a']\n[]\n", got)
}

func TestFormatListQuoting(t *testing.T) {
	cases := map[string][]string{
		`[]`:                      nil,
		`['x', 'y/z.fa']`:         {"x", "y/z.fa"},
		`["it's"]`:                {"it's"},
		`['say "hi"']`:            {`say "hi"`},
		`['both \' and "']`:       {`both ' and "`},
		`['back\\slash', 'a\tb']`: {`back\slash`, "a\tb"},
		`['bell\x07']`:            {"bell\a"},
	}
	for want, in := range cases {
		if got := FormatList(in); got != want {
			t.Errorf("FormatList(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestTextWriter(t *testing.T) {
	evs := sampleEvals()
	evs[1].Matches = []result.Entry{{Name: "b", Count: 1}, {Name: "c", Count: 3}}
	assert.Equal(t, "a\nb\nc\n", render(t, "text", Options{}, evs))
}

func TestTSVWriterHeaderOnce(t *testing.T) {
	evs := sampleEvals()
	evs[1].Matches = []result.Entry{{Name: "c", Count: 3}}
	out := render(t, "tsv", Options{Header: true}, evs)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, TSVHeader, lines[0])
	assert.Equal(t, "query_kmer.res\ta\t5\t10\t0.5", lines[1])
	assert.Equal(t, "query.res\tc\t3\t4\t0.75", lines[2])
}

func TestTSVWriterNoHeader(t *testing.T) {
	out := render(t, "tsv", Options{Header: false}, sampleEvals())
	assert.Equal(t, "query_kmer.res\ta\t5\t10\t0.5\n", out)
}

func TestTSVWriterEmptyStillHasHeader(t *testing.T) {
	assert.Equal(t, TSVHeader+"\n", render(t, "tsv", Options{Header: true}, nil))
}

func TestJSONWriter(t *testing.T) {
	out := render(t, "json", Options{}, sampleEvals())

	var got []api.EvaluationV1
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "query_kmer.res", got[0].Path)
	assert.Equal(t, []api.MatchV1{{Name: "a", Count: 5, Ratio: 0.5}}, got[0].Matches)
	assert.NotNil(t, got[1].Matches)
	assert.Empty(t, got[1].Matches)
	assert.Contains(t, out, `"matches": []`)
}

func TestJSONWriterNoInput(t *testing.T) {
	assert.Equal(t, "[]\n", render(t, "json", Options{}, nil))
}

func TestJSONLWriterOneObjectPerLine(t *testing.T) {
	out := render(t, "jsonl", Options{}, sampleEvals())
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	for i, ln := range lines {
		var v api.EvaluationV1
		require.NoError(t, json.Unmarshal([]byte(ln), &v), "line %d", i)
		assert.Equal(t, sampleEvals()[i].Path, v.Path)
		assert.Equal(t, sampleEvals()[i].Total, v.Total)
	}
}

type failWriter struct{ err error }

func (f failWriter) Write([]byte) (int, error) { return 0, f.err }

func TestWriteErrorsPropagate(t *testing.T) {
	boom := errors.New("boom")
	for _, format := range []string{"list", "text", "tsv", "jsonl"} {
		t.Run(format, func(t *testing.T) {
			w, err := New(format, failWriter{boom}, Options{Header: true})
			require.NoError(t, err)
			assert.ErrorIs(t, w.Write(sampleEvals()[0]), boom)
		})
	}
}

func TestIsBrokenPipe(t *testing.T) {
	assert.True(t, IsBrokenPipe(syscall.EPIPE))
	assert.True(t, IsBrokenPipe(fmt.Errorf("write stdout: %w", io.ErrClosedPipe)))
	assert.False(t, IsBrokenPipe(nil))
	assert.False(t, IsBrokenPipe(errors.New("disk full")))
}
