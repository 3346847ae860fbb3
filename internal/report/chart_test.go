package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"newswatch/internal/crawler"
)

func TestRenderChartWritesPNG(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "top_words.png")
	top := []crawler.WordCount{
		{Word: "HABER", Count: 42},
		{Word: "GÜNDEM", Count: 17},
		{Word: "SON", Count: 9},
	}

	require.NoError(t, RenderChart(top, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}

func TestRenderChartOverwrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "top_words.png")
	require.NoError(t, RenderChart([]crawler.WordCount{{Word: "BİR", Count: 1}}, path))
	first, err := os.Stat(path)
	require.NoError(t, err)

	require.NoError(t, RenderChart([]crawler.WordCount{
		{Word: "BİR", Count: 1},
		{Word: "İKİ", Count: 2},
	}, path))
	second, err := os.Stat(path)
	require.NoError(t, err)
	require.NotEqual(t, first.Size(), second.Size())
}

func TestRenderChartEmptyRanking(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "top_words.png")
	require.NoError(t, RenderChart(nil, path))

	_, err := os.Stat(path)
	require.NoError(t, err)
}
