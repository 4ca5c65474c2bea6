package journal

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rustyeddy/meanrev/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T) (*SQLite, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "journal.db")
	j, err := NewSQLite(path, "test.csv")
	require.NoError(t, err)

	return j, path
}

func TestSQLiteSchemaAndRunRow(t *testing.T) {
	t.Parallel()

	j, path := newTestSQLite(t)
	runID := j.RunID()
	assert.NotEmpty(t, runID)
	require.NoError(t, j.Close())

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var dataset string
	err = db.QueryRow(`SELECT dataset FROM runs WHERE run_id = ?`, runID).Scan(&dataset)
	require.NoError(t, err)
	assert.Equal(t, "test.csv", dataset)
}

func TestSQLiteEventRoundTrip(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	buy := sim.TradeEvent{Kind: sim.Buy, Price: 99.5, Time: at}
	sell := sim.TradeEvent{
		Kind:         sim.Sell,
		Price:        110.25,
		Time:         at.Add(time.Hour),
		PnL:          fp(107.5),
		BalanceAfter: fp(10_107.5),
	}

	require.NoError(t, j.RecordEvent(buy))
	require.NoError(t, j.RecordEvent(sell))

	events, err := j.ListEvents(j.RunID())
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, sim.Buy, events[0].Kind)
	assert.Equal(t, 99.5, events[0].Price)
	assert.Nil(t, events[0].PnL)
	assert.Nil(t, events[0].BalanceAfter)

	assert.Equal(t, sim.Sell, events[1].Kind)
	require.NotNil(t, events[1].PnL)
	assert.Equal(t, 107.5, *events[1].PnL)
	require.NotNil(t, events[1].BalanceAfter)
	assert.Equal(t, 10_107.5, *events[1].BalanceAfter)
}

func TestSQLiteSeparatesRuns(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "journal.db")

	first, err := NewSQLite(path, "a.csv")
	require.NoError(t, err)
	require.NoError(t, first.RecordEvent(sim.TradeEvent{Kind: sim.Buy, Price: 1, Time: time.Now().UTC()}))
	require.NoError(t, first.Close())

	second, err := NewSQLite(path, "b.csv")
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })

	assert.NotEqual(t, first.RunID(), second.RunID())

	events, err := second.ListEvents(second.RunID())
	require.NoError(t, err)
	assert.Empty(t, events)

	events, err = second.ListEvents(first.RunID())
	require.NoError(t, err)
	assert.Len(t, events, 1)
}
