package leveldata

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cfg "github.com/automoto/doomerang-rogue/config"
)

func TestLoadRoomLayout(t *testing.T) {
	layout, err := LoadRoomLayout(os.DirFS("testdata"), "crypt.tmx")
	require.NoError(t, err)

	assert.Equal(t, "crypt", layout.Name)
	assert.Equal(t, 1200.0, layout.Width)
	assert.Equal(t, 800.0, layout.Height)
	assert.Equal(t, Point{X: 0, Y: 0}, layout.PlayerSpawn)

	require.Len(t, layout.Enemies, 2)
	ranged := layout.Enemies[0]
	assert.Equal(t, cfg.EliteRanged, ranged.Type)
	assert.Equal(t, Point{X: -300, Y: 200}, ranged.Position)
	assert.Equal(t, 2, ranged.Level)
	assert.Equal(t, []cfg.EliteModifier{cfg.EliteArmored, cfg.EliteVampiric}, ranged.Modifiers)

	melee := layout.Enemies[1]
	assert.Equal(t, cfg.CommonMelee, melee.Type)
	assert.Equal(t, Point{X: 300, Y: 0}, melee.Position)
	assert.Empty(t, melee.Modifiers)

	require.Len(t, layout.Hazards, 1)
	assert.Equal(t, cfg.HazardPoison, layout.Hazards[0].Type)
	assert.Equal(t, Point{X: 0, Y: -300}, layout.Hazards[0].Position)
}

func TestLoadRoomLayout_UnknownEnemyType(t *testing.T) {
	_, err := LoadRoomLayout(os.DirFS("testdata"), "bad_enemy.tmx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dragon")
}

func TestLoadRoomLayout_MissingFile(t *testing.T) {
	_, err := LoadRoomLayout(os.DirFS("testdata"), "nope.tmx")
	assert.Error(t, err)
}

func TestDefaultRoom(t *testing.T) {
	layout := DefaultRoom()
	assert.NotEmpty(t, layout.Enemies)
	assert.Equal(t, 1200.0, layout.Width)
}
