package feed

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rustyeddy/meanrev/market"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ticks.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadTicks(t *testing.T) {
	t.Run("header and extra columns", func(t *testing.T) {
		path := writeFile(t, "time,price,bid,ask\n"+
			"2024-01-01T00:00:00Z,100.5,100.4,100.6\n"+
			"2024-01-01T00:01:00Z,101.25,101.2,101.3\n")

		ticks, err := LoadTicks(path)
		require.NoError(t, err)
		require.Len(t, ticks, 2)
		assert.Equal(t, 100.5, ticks[0].Price)
		assert.Equal(t, 101.25, ticks[1].Price)
		assert.True(t, ticks[0].Time.Before(ticks[1].Time))
	})

	t.Run("no header", func(t *testing.T) {
		path := writeFile(t, "2024-01-01T00:00:00Z,100\n2024-01-01T00:01:00Z,101\n")

		ticks, err := LoadTicks(path)
		require.NoError(t, err)
		assert.Len(t, ticks, 2)
	})

	t.Run("space separated timestamps", func(t *testing.T) {
		path := writeFile(t, "time,price\n"+
			"2024-01-01 00:00:00,100\n"+
			"2024-01-01 00:01:00,101\n")

		ticks, err := LoadTicks(path)
		require.NoError(t, err)
		require.Len(t, ticks, 2)
		assert.Equal(t, time.Date(2024, 1, 1, 0, 1, 0, 0, time.UTC), ticks[1].Time)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadTicks(filepath.Join(t.TempDir(), "nope.csv"))
		var dse *DataSourceError
		assert.True(t, errors.As(err, &dse))
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeFile(t, "time,price\n")
		_, err := LoadTicks(path)
		var dse *DataSourceError
		assert.True(t, errors.As(err, &dse))
	})

	t.Run("bad price", func(t *testing.T) {
		path := writeFile(t, "2024-01-01T00:00:00Z,abc\n")
		_, err := LoadTicks(path)
		var dse *DataSourceError
		require.True(t, errors.As(err, &dse))
		assert.Contains(t, dse.Error(), "bad price")
	})

	t.Run("bad time", func(t *testing.T) {
		path := writeFile(t, "time,price\nnot-a-time,100\n")
		_, err := LoadTicks(path)
		var dse *DataSourceError
		assert.True(t, errors.As(err, &dse))
	})

	t.Run("non-monotonic timestamps", func(t *testing.T) {
		path := writeFile(t, "2024-01-01T00:01:00Z,100\n2024-01-01T00:00:00Z,101\n")
		_, err := LoadTicks(path)
		var dfe *market.DataFormatError
		assert.True(t, errors.As(err, &dfe))
	})

	t.Run("non-positive price", func(t *testing.T) {
		path := writeFile(t, "2024-01-01T00:00:00Z,-5\n")
		_, err := LoadTicks(path)
		var dfe *market.DataFormatError
		assert.True(t, errors.As(err, &dfe))
	})
}

func TestWriteTicksRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	want := Synthetic(10, start, time.Minute)

	require.NoError(t, WriteTicks(path, want))

	got, err := LoadTicks(path)
	require.NoError(t, err)
	require.Len(t, got, len(want))
	for i := range want {
		assert.True(t, want[i].Time.Equal(got[i].Time), "tick %d time", i)
		assert.Equal(t, want[i].Price, got[i].Price, "tick %d price", i)
	}
}

func TestSynthetic(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ticks := Synthetic(25, start, time.Minute)

	require.Len(t, ticks, 25)
	assert.NoError(t, market.ValidateSeries(ticks))

	assert.Equal(t, 100.0, ticks[0].Price)
	assert.Equal(t, 109.0, ticks[9].Price)
	assert.Equal(t, 100.0, ticks[10].Price)
	assert.Equal(t, start.Add(24*time.Minute), ticks[24].Time)
}
