package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"

	cfg "github.com/automoto/doomerang-rogue/config"
)

// Object group names read from the TMX file.
const (
	groupPlayerSpawn = "PlayerSpawn"
	groupEnemySpawn  = "EnemySpawn"
	groupHazard      = "Hazard"
)

// LoadRoomLayout parses a TMX file into a RoomLayout. It takes an fs.FS so
// callers can pass embed.FS or os.DirFS.
//
// EnemySpawn objects carry an "enemyType" property and optional "level"
// and "elite" (comma separated modifier names) properties. Hazard objects
// carry "hazardType".
func LoadRoomLayout(fsys fs.FS, tmxPath string) (*RoomLayout, error) {
	roomMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	layout := &RoomLayout{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  float64(roomMap.Width * roomMap.TileWidth),
		Height: float64(roomMap.Height * roomMap.TileHeight),
	}
	toArena := func(x, y float64) Point {
		return Point{X: x - layout.Width/2, Y: layout.Height/2 - y}
	}

	for _, og := range roomMap.ObjectGroups {
		switch og.Name {
		case groupPlayerSpawn:
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				layout.PlayerSpawn = toArena(o.X, o.Y)
			}
		case groupEnemySpawn:
			for _, o := range og.Objects {
				et, err := cfg.ParseEnemyType(o.Properties.GetString("enemyType"))
				if err != nil {
					return nil, fmt.Errorf("%s object %d: %w", tmxPath, o.ID, err)
				}
				mods, err := parseModifiers(o.Properties.GetString("elite"))
				if err != nil {
					return nil, fmt.Errorf("%s object %d: %w", tmxPath, o.ID, err)
				}
				layout.Enemies = append(layout.Enemies, EnemySpawn{
					Position:  toArena(o.X, o.Y),
					Type:      et,
					Level:     o.Properties.GetInt("level"),
					Modifiers: mods,
				})
			}
		case groupHazard:
			for _, o := range og.Objects {
				ht, err := cfg.ParseHazardType(o.Properties.GetString("hazardType"))
				if err != nil {
					return nil, fmt.Errorf("%s object %d: %w", tmxPath, o.ID, err)
				}
				layout.Hazards = append(layout.Hazards, HazardSpawn{Position: toArena(o.X, o.Y), Type: ht})
			}
		}
	}

	// Stable spawn order regardless of object ids
	sort.SliceStable(layout.Enemies, func(i, j int) bool {
		return layout.Enemies[i].Position.X < layout.Enemies[j].Position.X
	})

	return layout, nil
}

func parseModifiers(s string) ([]cfg.EliteModifier, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var mods []cfg.EliteModifier
	for _, name := range strings.Split(s, ",") {
		m, err := cfg.ParseEliteModifier(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		mods = append(mods, m)
	}
	return mods, nil
}
