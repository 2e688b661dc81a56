package adms

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pstankie/adms-gen/internal/model"
)

func TestWriteCSVHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil, false))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "Channel No,Priority CH,Receive Frequency,Transmit Frequency,"))
	assert.True(t, strings.HasSuffix(lines[0], "Comment,Extra Column"))
}

func TestWriteCSVRows(t *testing.T) {
	rows, _, err := Encode([]model.Repeater{testRepeater("SR9A")}, 1, OverflowTruncate)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rows, false))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], "1,OFF,438.12500,430.52500,7.600,-RPT,ON,FM,FM,OFF,SR9A,TONE,88.5 Hz,023,"))
}

func TestWriteCSVFill(t *testing.T) {
	rows, _, err := Encode([]model.Repeater{testRepeater("SR9A"), testRepeater("SR9B")}, 1, OverflowTruncate)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rows, true))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 1+MaxChannels)

	// First fill row continues the channel numbering and is otherwise empty.
	fields := strings.Split(lines[3], ",")
	require.Len(t, fields, len(Headers))
	assert.Equal(t, "3", fields[0])
	assert.Equal(t, "0", fields[len(fields)-1])
	for _, f := range fields[1 : len(fields)-1] {
		assert.Empty(t, f)
	}

	last := strings.Split(lines[MaxChannels], ",")
	assert.Equal(t, "900", last[0])
}

func TestWriteCSVFillEmptySelection(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil, true))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 1+MaxChannels)
	assert.Equal(t, "1", strings.Split(lines[1], ",")[0])
}

func TestWriteCSVDeterministic(t *testing.T) {
	rows, _, err := Encode([]model.Repeater{testRepeater("SR9A"), testRepeater("SR9B")}, 1, OverflowTruncate)
	require.NoError(t, err)

	var a, b bytes.Buffer
	require.NoError(t, WriteCSV(&a, rows, false))
	require.NoError(t, WriteCSV(&b, rows, false))
	assert.Equal(t, a.Bytes(), b.Bytes())
}
