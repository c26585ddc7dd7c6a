package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsValidate(t *testing.T) {
	SetDefaults()
	require.NoError(t, Validate())
}

func TestValidateRejectsMissingSensorLayers(t *testing.T) {
	t.Cleanup(SetDefaults)
	Player.GroundLayers = nil
	Player.WallLayers = []string{}

	err := Validate()
	require.Error(t, err)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Contains(t, err.Error(), "Player.GroundLayers")
	assert.Contains(t, err.Error(), "Player.WallLayers")
}

func TestValidateRejectsZeroJumpBudget(t *testing.T) {
	t.Cleanup(SetDefaults)
	Player.MaxJumpCount = 0
	assert.ErrorContains(t, Validate(), "Player.MaxJumpCount")
}

func TestValidateRequiresClipEvents(t *testing.T) {
	saved := Clips[ClipBurnerOn]
	t.Cleanup(func() { Clips[ClipBurnerOn] = saved })

	Clips[ClipBurnerOn] = ClipDef{Duration: 0.3}
	assert.ErrorContains(t, Validate(), "enable_hit")
}

func TestApplyOverridesMergesOverDefaults(t *testing.T) {
	t.Cleanup(SetDefaults)
	SetDefaults()

	err := ApplyOverrides([]byte(`
player:
  movespeed: 200
  maxjumpcount: 3
burner:
  ontime: 2.5
`))
	require.NoError(t, err)

	assert.Equal(t, 200.0, Player.MoveSpeed)
	assert.Equal(t, 3, Player.MaxJumpCount)
	assert.Equal(t, 2.5, Burner.OnTime)
	// Untouched keys keep their defaults.
	assert.Equal(t, 8*UnitPixels, Player.JumpPower)
	assert.Equal(t, 1.5, Burner.OffTime)
}

func TestApplyOverridesKeepsPreviousValuesWhenInvalid(t *testing.T) {
	t.Cleanup(SetDefaults)
	SetDefaults()

	err := ApplyOverrides([]byte("player:\n  jumppower: -1\n  movespeed: 999\n"))
	require.Error(t, err)
	assert.Equal(t, 8*UnitPixels, Player.JumpPower)
	assert.Equal(t, 5*UnitPixels, Player.MoveSpeed)
}

func TestApplyOverridesRejectsMalformedYAML(t *testing.T) {
	t.Cleanup(SetDefaults)
	assert.ErrorContains(t, ApplyOverrides([]byte("player: [")), "parse tuning file")
}

func TestParseAxis(t *testing.T) {
	for in, want := range map[string]Axis{"down": AxisDown, "": AxisDown, "Left": AxisLeft, "right": AxisRight, "up": AxisUp} {
		got, err := ParseAxis(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseAxis("sideways")
	assert.Error(t, err)
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("player: {}\n"), 0o644))

	w, err := Watch(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	// Unrelated files in the same directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("player:\n  movespeed: 10\n"), 0o644))

	assert.Eventually(t, func() bool {
		changed, err := w.Poll()
		return err == nil && changed
	}, 2*time.Second, 20*time.Millisecond)
}
