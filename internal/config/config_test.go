package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamehub/internal/games"
)

func TestLoad_Defaults(t *testing.T) {
	os.Setenv("GAMEHUB_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	defer os.Unsetenv("GAMEHUB_CONFIG")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, c.ToastDuration())
	assert.Equal(t, "default", c.UI.Theme)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[ui]
toast_duration_ms = 1500
card_stagger_ms = 50

[[games]]
id = "snake"
title = "Snake"
status = "playable"
gradient = "emerald"

[[games]]
id = "tetris"
status = "soon"
gradient = "nope-gradient"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	os.Setenv("GAMEHUB_CONFIG", path)
	defer os.Unsetenv("GAMEHUB_CONFIG")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, c.ToastDuration())

	cat := c.Catalog()
	require.Len(t, cat.Games, 2)
	assert.Equal(t, games.StatusPlayable, cat.Games[0].Status)
	assert.Equal(t, games.StatusSoon, cat.Games[1].Status)
	// Title falls back to ID when omitted.
	assert.Equal(t, "tetris", cat.Games[1].Title)
	// Stagger assigned in catalog order.
	assert.Equal(t, time.Duration(0), cat.Games[0].AnimationDelay)
	assert.Equal(t, 50*time.Millisecond, cat.Games[1].AnimationDelay)
}

func TestCatalog_EmptyFallsBackToBuiltin(t *testing.T) {
	var c Config
	cat := c.Catalog()
	assert.Equal(t, games.Default(), cat)
}

func TestCatalog_SkipsEntriesWithoutID(t *testing.T) {
	c := Config{Games: []GameEntry{{Title: "no id"}, {ID: "ok"}}}
	cat := c.Catalog()
	require.Len(t, cat.Games, 1)
	assert.Equal(t, "ok", cat.Games[0].ID)
}

func TestToastDuration_NonPositiveUsesDefault(t *testing.T) {
	c := Config{UI: UIConfig{ToastDurationMS: -5}}
	assert.Equal(t, 3*time.Second, c.ToastDuration())
}
