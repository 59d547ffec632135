// Package assets embeds the scene files shipped with the binaries.
package assets

import (
	"embed"

	"github.com/automoto/puppethands/shared/scenedata"
)

//go:embed levels/*.tmx
var Levels embed.FS

// LoadScene parses an embedded TMX scene such as "levels/lab.tmx".
func LoadScene(path string) (*scenedata.Layout, error) {
	return scenedata.LoadLayout(Levels, path)
}

// MustLoadScene is LoadScene for scenes that are known to ship.
func MustLoadScene(path string) *scenedata.Layout {
	layout, err := LoadScene(path)
	if err != nil {
		panic(err)
	}
	return layout
}
