package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menger.toml")
	body := `
[window]
title = "Carpet Dev"
width = 1920
height = 1080

[carpet]
iterations = 4
spin_speed_y = 120.5

[input]
drag_sensitivity = 0.005
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Carpet Dev", s.Window.Title)
	assert.Equal(t, 1920, s.Window.Width)
	assert.Equal(t, 1080, s.Window.Height)
	assert.Equal(t, 4, s.Carpet.Iterations)
	assert.Equal(t, float32(120.5), s.Carpet.SpinSpeedY)
	assert.Equal(t, float32(0.005), s.Input.DragSensitivity)

	// Unspecified fields keep their defaults.
	assert.Equal(t, 60, s.Render.TickRate)
	assert.Equal(t, float32(0), s.Carpet.SpinSpeedX)
}

func TestLoadMalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menger.toml")
	require.NoError(t, os.WriteFile(path, []byte("[window\ntitle = "), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadClampsOutOfRangeValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menger.toml")
	body := `
[window]
width = 10
height = -50

[render]
tick_rate = 10000
msaa = 3
workers = -2

[carpet]
iterations = 99
max_iterations = 4
spin_speed_x = 99999
spin_speed_z = -99999

[input]
drag_sensitivity = -1.0
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 160, s.Window.Width)
	assert.Equal(t, 120, s.Window.Height)
	assert.Equal(t, 60, s.Render.TickRate)
	assert.Equal(t, 4, s.Render.MSAA)
	assert.Equal(t, 0, s.Render.Workers, "negative workers falls back to automatic")
	assert.Equal(t, 4, s.Carpet.Iterations, "iterations clamps to max_iterations")
	assert.Equal(t, float32(spinSpeedLimit), s.Carpet.SpinSpeedX)
	assert.Equal(t, float32(-spinSpeedLimit), s.Carpet.SpinSpeedZ)
	assert.Equal(t, float32(0.01), s.Input.DragSensitivity)
}

func TestWatchDeliversEdits(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "menger.toml")
	require.NoError(t, os.WriteFile(path, []byte("[carpet]\niterations = 2\n"), 0o644))

	w, err := Watch(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("[carpet]\niterations = 4\n"), 0o644))

	var got Settings
	require.Eventually(t, func() bool {
		select {
		case s := <-w.Changes():
			got = s
		default:
		}
		return got.Carpet.Iterations == 4
	}, 5*time.Second, 20*time.Millisecond, "edited settings never arrived")
}

func TestWatchSkipsMalformedEdit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "menger.toml")
	require.NoError(t, os.WriteFile(path, []byte("[carpet]\niterations = 2\n"), 0o644))

	w, err := Watch(path)
	require.NoError(t, err)
	defer w.Close()

	// A broken edit is logged and skipped, then a good edit still lands.
	require.NoError(t, os.WriteFile(path, []byte("[carpet\n"), 0o644))
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("[carpet]\niterations = 5\n"), 0o644))

	var got Settings
	require.Eventually(t, func() bool {
		select {
		case s := <-w.Changes():
			got = s
		default:
		}
		return got.Carpet.Iterations == 5
	}, 5*time.Second, 20*time.Millisecond)
}

func TestWatchIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "menger.toml")
	require.NoError(t, os.WriteFile(path, []byte("[carpet]\niterations = 2\n"), 0o644))

	w, err := Watch(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.toml"), []byte("[carpet]\niterations = 5\n"), 0o644))

	select {
	case s := <-w.Changes():
		t.Fatalf("unexpected delivery for sibling file edit: %+v", s)
	case <-time.After(300 * time.Millisecond):
	}
}
