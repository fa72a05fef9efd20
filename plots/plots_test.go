package plots

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantara/salesdash/regression"
	"github.com/quantara/salesdash/stats"
)

func TestHistogramBar(t *testing.T) {
	h, err := stats.NewHistogram("ad_spend", []float64{1, 2, 3, 4, 5, 6}, 3)
	require.Nil(t, err)

	bar := HistogramBar(h)
	var buf bytes.Buffer
	require.Nil(t, bar.Render(&buf))
	assert.Contains(t, buf.String(), "ad_spend")
}

func TestPairwise(t *testing.T) {
	scatters := Pairwise()

	// 6 columns, one chart per unordered pair
	require.Len(t, scatters, 15)

	var buf bytes.Buffer
	for _, sc := range scatters {
		buf.Reset()
		require.Nil(t, sc.Render(&buf))
		assert.NotZero(t, buf.Len())
	}
}

func TestFittedLine(t *testing.T) {
	fm, err := regression.FitDataset()
	require.Nil(t, err)

	line := FittedLine(fm)
	var buf bytes.Buffer
	require.Nil(t, line.Render(&buf))

	body := buf.String()
	assert.Contains(t, body, "Actual")
	assert.Contains(t, body, "Fitted")
}

func TestPredictionOverlay(t *testing.T) {
	line := PredictionOverlay(543678.97)
	var buf bytes.Buffer
	require.Nil(t, line.Render(&buf))

	body := buf.String()
	assert.Contains(t, body, "hypothetical")
	assert.Contains(t, body, "Prediction")
}
