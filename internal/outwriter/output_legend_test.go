package outwriter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteLegendPlain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeLegend(&buf, false))
	assert.Equal(t, "[1-4] Champions League  [5-6] Europa League  [7-8] Conference League  [18-20] Relegation\n", buf.String())
}

func TestWriteLegendColored(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeLegend(&buf, true))
	out := buf.String()
	assert.Contains(t, out, " 1-4 ")
	assert.Contains(t, out, "Relegation")
	assert.NotContains(t, out, "[1-4]")
}
