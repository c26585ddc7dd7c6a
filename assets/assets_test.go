package assets

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedLevelsLoad(t *testing.T) {
	loader := NewLevelLoader()
	names, err := loader.LevelNames()
	require.NoError(t, err)
	require.NotEmpty(t, names)

	for _, name := range names {
		level, err := loader.LoadLevel(name)
		require.NoError(t, err, name)
		assert.Positive(t, level.Width)
		assert.Positive(t, level.Height)
		assert.NotEmpty(t, level.Ground, name)
		assert.NotEmpty(t, level.FinishLines, name)
	}
}

func TestLevelOneObjects(t *testing.T) {
	level := NewLevelLoader().MustLoadLevel("levels/level1.tmx")

	assert.Equal(t, 1600, level.Width)
	assert.Equal(t, 368, level.Height)
	assert.Equal(t, PlayerSpawn{X: 48, Y: 320}, level.PlayerSpawn())

	require.Len(t, level.Thwomps, 1)
	assert.Equal(t, "down", level.Thwomps[0].Axis)

	require.Len(t, level.Burners, 1)
	assert.Equal(t, 0.5, level.Burners[0].StartDelay)
	assert.Zero(t, level.Burners[0].OnTime)

	require.Len(t, level.MovingPlatforms, 1)
	assert.Equal(t, 120.0, level.MovingPlatforms[0].DX)
	assert.Equal(t, 0.5, level.MovingPlatforms[0].Speed)

	assert.Len(t, level.Walls, 3)
	assert.Len(t, level.Items, 4)
}

func TestLevelWithoutSpawnFails(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/empty.tmx": {Data: []byte(`<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="10" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="Ground">
  <object id="1" x="0" y="144" width="160" height="16"/>
 </objectgroup>
</map>`)},
	}

	_, err := NewLevelLoaderFS(fsys).LoadLevel("levels/empty.tmx")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoPlayerSpawn))
}

func TestMissingLevelFails(t *testing.T) {
	_, err := NewLevelLoaderFS(fstest.MapFS{}).LoadLevel("levels/nope.tmx")
	assert.Error(t, err)
}
