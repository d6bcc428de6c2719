package report

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveSyncRun(t *testing.T) {
	store, err := New("sqlite://" + filepath.Join(t.TempDir(), "report.db"))
	require.NoError(t, err)
	defer store.Close()

	run := &SyncRun{
		Target:       "direct",
		TotalOffers:  1200,
		InStock:      340,
		StockBatches: 1,
		PriceBatches: 1,
		StartedAt:    time.Now().UTC().Add(-time.Minute),
		FinishedAt:   time.Now().UTC(),
	}
	require.NoError(t, store.Save(run))
	assert.NotEmpty(t, run.ID)

	var saved []SyncRun
	require.NoError(t, store.db.Find(&saved).Error)
	require.Len(t, saved, 1)
	assert.Equal(t, "direct", saved[0].Target)
	assert.Equal(t, 1200, saved[0].TotalOffers)
	assert.Equal(t, 340, saved[0].InStock)
}
