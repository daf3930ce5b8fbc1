package report

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/will-rowe/quill/src/classifier"
)

func init() {
	color.NoColor = true
}

func TestWriteIdentification(t *testing.T) {
	id := &Identification{
		Name: "unknown.txt",
		Path: "identify/unknown.txt",
		Ranking: []classifier.Result{
			{Author: "austen", Score: -2.1, Elapsed: 1500 * time.Millisecond},
			{Author: "melville", Score: -5.0},
			{Author: "nobody", Score: math.Inf(-1)},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteIdentification(&buf, id, true))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "time: 1.50 for austen", lines[0])
	assert.Equal(t, "time: 0.00 for nobody", lines[2])
	assert.Equal(t, "*** -2.10\tausten for unknown.txt", lines[3])
	assert.Equal(t, "-2.10\tausten", lines[4])
	assert.Equal(t, "-5.00\tmelville", lines[5])
	assert.Equal(t, "-Inf\tnobody", lines[6])

	buf.Reset()
	require.NoError(t, WriteIdentification(&buf, id, false))
	assert.True(t, strings.HasPrefix(buf.String(), "***"))
}

func TestWriteIdentificationEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteIdentification(&buf, &Identification{Name: "x"}, true))
	assert.Equal(t, "*** no authors ranked for x\n", buf.String())
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	summaries := []AuthorSummary{{Author: "austen", Order: 3, VocabularySize: 10, TokenCount: 42}}
	require.NoError(t, WriteSummary(&buf, summaries))
	assert.Equal(t, "training "+strings.Repeat(" ", 8)+"austen\torder 3 with 10 unique tokens, 42 tokens\n", buf.String())
}

func TestSortIdentifications(t *testing.T) {
	ids := []*Identification{{Path: "b"}, {Path: "a"}, {Path: "c"}}
	SortIdentifications(ids)
	assert.Equal(t, "a", ids[0].Path)
	assert.Equal(t, "c", ids[2].Path)
}
