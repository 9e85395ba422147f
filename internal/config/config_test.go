package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("POSTAL_CODE", "")
	t.Setenv("HISTORY_FILE", "")
	t.Setenv("CLASSIFY_BATCH", "")
	t.Setenv("CLASSIFY_DELAY_MS", "")

	cfg := Load()

	assert.Equal(t, "T3M1M9", cfg.PostalCode)
	assert.Equal(t, "seton_grocery_history.csv", cfg.HistoryFile)
	assert.Equal(t, 100, cfg.ClassifyBatch)
	assert.Equal(t, 1500*time.Millisecond, cfg.ClassifyDelay)
	assert.Equal(t, "9090", cfg.MetricsPort)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("POSTAL_CODE", "T2P0A1")
	t.Setenv("CLASSIFY_BATCH", "50")
	t.Setenv("CLASSIFY_DELAY_MS", "bogus")

	cfg := Load()

	assert.Equal(t, "T2P0A1", cfg.PostalCode)
	assert.Equal(t, 50, cfg.ClassifyBatch)
	// unparseable numbers fall back to the default
	assert.Equal(t, 1500*time.Millisecond, cfg.ClassifyDelay)
}
