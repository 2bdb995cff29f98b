package pathfinding_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridroute/pathfinding"
)

const sampleConfig = `
grid:
  width: 12
  height: 8
  allow_diagonal: false
obstacles:
  - {x: 3, y: 4}
  - {x: 11, y: 7}
log_level: debug
`

func TestParseConfig(t *testing.T) {
	cfg, err := pathfinding.ParseConfig([]byte(sampleConfig))
	require.NoError(t, err)
	require.Equal(t, 12, cfg.Grid.Width)
	require.Equal(t, 8, cfg.Grid.Height)
	require.False(t, cfg.Grid.DiagonalAllowed())
	require.Equal(t, []pathfinding.Point{pt(3, 4), pt(11, 7)}, cfg.Obstacles)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	require.Equal(t, slog.LevelDebug, lvl)
}

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := pathfinding.ParseConfig([]byte("grid: {width: 3, height: 2}\n"))
	require.NoError(t, err)
	require.True(t, cfg.Grid.DiagonalAllowed())
	require.Empty(t, cfg.Obstacles)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	require.Equal(t, slog.LevelInfo, lvl)
}

func TestParseConfig_Invalid(t *testing.T) {
	cases := map[string]string{
		"malformed":        "grid: [1, 2",
		"zero width":       "grid: {width: 0, height: 4}",
		"missing grid":     "log_level: info",
		"obstacle outside": "grid: {width: 4, height: 4}\nobstacles: [{x: 4, y: 0}]",
		"negative":         "grid: {width: 4, height: 4}\nobstacles: [{x: 1, y: -1}]",
		"bad level":        "grid: {width: 4, height: 4}\nlog_level: loud",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := pathfinding.ParseConfig([]byte(raw))
			require.ErrorIs(t, err, pathfinding.ErrInvalidConfig)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridroute.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o600))

	cfg, err := pathfinding.LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 12, cfg.Grid.Width)

	_, err = pathfinding.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("grid: {width: -1, height: 1}"), 0o600))
	_, err = pathfinding.LoadConfig(bad)
	require.ErrorIs(t, err, pathfinding.ErrInvalidConfig)
	require.Contains(t, err.Error(), bad)
}

func TestNewServiceFromConfig(t *testing.T) {
	cfg, err := pathfinding.ParseConfig([]byte(sampleConfig))
	require.NoError(t, err)

	s, err := pathfinding.NewServiceFromConfig(cfg, pathfinding.WithLogger(quietLogger()))
	require.NoError(t, err)
	require.Equal(t, 12, s.GridWidth())
	require.Equal(t, 8, s.GridHeight())
	require.False(t, s.AllowDiagonal())
	require.Equal(t, []pathfinding.Point{pt(3, 4), pt(11, 7)}, s.Obstacles())

	_, err = pathfinding.NewServiceFromConfig(pathfinding.Config{})
	require.ErrorIs(t, err, pathfinding.ErrInvalidConfig)
}
