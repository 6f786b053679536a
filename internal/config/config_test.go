package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/siteswap/internal/config"
	"github.com/calvinalkan/siteswap/pkg/siteswap"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func Test_Load_Returns_Defaults_When_No_Files(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	cfg, warnings, err := config.Load(config.LoadInput{WorkDir: dir, Env: map[string]string{}})
	require.NoError(t, err)
	assert.Empty(t, warnings)

	want := config.Default()
	want.EffectiveCwd = dir

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func Test_Load_Applies_Precedence_When_Files_Layered(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	xdg := filepath.Join(dir, "xdg")

	writeFile(t, filepath.Join(xdg, "siteswap", "config.json"), `{"balls": 4, "max_height": 7, "order": "breadth"}`)
	writeFile(t, filepath.Join(dir, config.FileName), `{
		// project overrides
		"max_height": 8,
		"max_results": 20,
	}`)

	cfg, warnings, err := config.Load(config.LoadInput{
		WorkDir: dir,
		Env:     map[string]string{"XDG_CONFIG_HOME": xdg},
	})
	require.NoError(t, err)
	assert.Empty(t, warnings)

	assert.Equal(t, 4, cfg.Balls)
	assert.Equal(t, 8, cfg.MaxHeight)
	assert.Equal(t, 20, cfg.MaxResults)
	assert.Equal(t, "breadth", cfg.Order)
	assert.Equal(t, filepath.Join(xdg, "siteswap", "config.json"), cfg.Sources.Global)
	assert.Equal(t, filepath.Join(dir, config.FileName), cfg.Sources.Project)

	writeFile(t, filepath.Join(dir, "custom.json"), `{"max_height": 6}`)

	cfg, _, err = config.Load(config.LoadInput{
		WorkDir:    dir,
		ConfigPath: "custom.json",
		Env:        map[string]string{"XDG_CONFIG_HOME": xdg},
	})
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.MaxHeight)
	assert.Equal(t, 10, cfg.MaxResults, "explicit config replaces project config")
	assert.Equal(t, filepath.Join(dir, "custom.json"), cfg.Sources.Project)
}

func Test_Load_Uses_Home_When_XDG_Unset(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	home := filepath.Join(dir, "home")
	writeFile(t, filepath.Join(home, ".config", "siteswap", "config.json"), `{"max_length": 4}`)

	cfg, _, err := config.Load(config.LoadInput{WorkDir: dir, Env: map[string]string{"HOME": home}})
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.MaxLength)
}

func Test_Load_Returns_Error_When_Config_Bad(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "Malformed", content: `{"balls": }`, wantErr: config.ErrConfigInvalid},
		{name: "UnknownField", content: `{"ball": 3}`, wantErr: config.ErrConfigInvalid},
		{name: "WrongType", content: `{"balls": "three"}`, wantErr: config.ErrConfigInvalid},
		{name: "UnknownOrder", content: `{"order": "random"}`, wantErr: siteswap.ErrUnknownOrder},
		{name: "BadTimeout", content: `{"timeout": "soon"}`, wantErr: config.ErrInvalidTimeout},
		{name: "NegativeTimeout", content: `{"timeout": "-1s"}`, wantErr: config.ErrInvalidTimeout},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			writeFile(t, filepath.Join(dir, config.FileName), tc.content)

			_, _, err := config.Load(config.LoadInput{WorkDir: dir, Env: map[string]string{}})
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func Test_Load_Returns_Error_When_Explicit_Config_Missing(t *testing.T) {
	t.Parallel()

	_, _, err := config.Load(config.LoadInput{
		WorkDir:    t.TempDir(),
		ConfigPath: "nope.json",
		Env:        map[string]string{},
	})
	require.ErrorIs(t, err, config.ErrConfigFileNotFound)
}

func Test_Load_Resolves_History_File(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, config.FileName), `{"history_file": "~/hist"}`)

	cfg, _, err := config.Load(config.LoadInput{WorkDir: dir, Env: map[string]string{"HOME": "/home/juggler"}})
	require.NoError(t, err)
	assert.Equal(t, "/home/juggler/hist", cfg.HistoryFile)

	writeFile(t, filepath.Join(dir, config.FileName), `{"history_file": "state/hist"}`)

	cfg, _, err = config.Load(config.LoadInput{WorkDir: dir, Env: map[string]string{}})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "state", "hist"), cfg.HistoryFile)
}

func Test_Clamp_Reports_Each_Out_Of_Range_Value(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Balls = 40
	cfg.MaxHeight = 2
	cfg.MaxResults = 1000
	cfg.MaxLength = 0
	cfg.MaxSteps = 0

	got, warnings := config.Clamp(cfg)

	assert.Equal(t, 35, got.Balls)
	assert.Equal(t, 35, got.MaxHeight, "height is at least the ball count")
	assert.Equal(t, 100, got.MaxResults)
	assert.Equal(t, 1, got.MaxLength)
	assert.Equal(t, 1, got.MaxSteps)

	want := []config.Warning{
		{Key: "balls", Given: 40, Used: 35},
		{Key: "max_height", Given: 2, Used: 35},
		{Key: "max_results", Given: 1000, Used: 100},
		{Key: "max_length", Given: 0, Used: 1},
		{Key: "max_steps", Given: 0, Used: 1},
	}
	if diff := cmp.Diff(want, warnings); diff != "" {
		t.Errorf("warnings mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, "balls=40 out of range, using 35", warnings[0].String())

	_, warnings = config.Clamp(config.Default())
	assert.Empty(t, warnings)
}

func Test_Load_Clamps_File_Values(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, config.FileName), `{"balls": 5, "max_height": 3}`)

	cfg, warnings, err := config.Load(config.LoadInput{WorkDir: dir, Env: map[string]string{}})
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.MaxHeight)
	assert.Equal(t, []config.Warning{{Key: "max_height", Given: 3, Used: 5}}, warnings)
}

func Test_SearchParams_Maps_Config_Fields(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Order = "bfs"

	params, err := cfg.SearchParams()
	require.NoError(t, err)

	assert.Equal(t, siteswap.SearchParams{
		ObjectCount:    3,
		MaxHeight:      9,
		MaxExtraLength: 3,
		MaxResults:     10,
		Order:          siteswap.BreadthFirst,
		MaxSteps:       siteswap.DefaultMaxSteps,
	}, params)
	require.NoError(t, params.Validate())
}

func Test_Context_Applies_Timeout_When_Set(t *testing.T) {
	t.Parallel()

	cfg := config.Default()

	ctx, cancel, err := cfg.Context(context.Background())
	require.NoError(t, err)
	defer cancel()

	_, hasDeadline := ctx.Deadline()
	assert.False(t, hasDeadline)

	cfg.Timeout = "1h"

	ctx, cancel2, err := cfg.Context(context.Background())
	require.NoError(t, err)
	defer cancel2()

	deadline, hasDeadline := ctx.Deadline()
	require.True(t, hasDeadline)
	assert.WithinDuration(t, time.Now().Add(time.Hour), deadline, time.Minute)
}
