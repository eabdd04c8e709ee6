package assets

import (
	"bytes"
	"embed"
	"image"
	_ "image/png"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/pixelwander/spritewander/component"
)

//go:embed sprites/*.png
var assetsFS embed.FS

// Manifest maps each animation category to its ordered frame sources. The
// order here is the intended frame order, but the store receives frames in
// load-completion order since every frame decodes on its own goroutine.
var Manifest = map[component.Category][]string{
	component.CategoryFront: {"sprites/front_0.png", "sprites/front_1.png"},
	component.CategoryBack:  {"sprites/back_0.png", "sprites/back_1.png"},
	component.CategorySide:  {"sprites/side_0.png", "sprites/side_1.png"},
	component.CategoryJump:  {"sprites/jump_0.png"},
	component.CategoryThrow: {"sprites/throw_0.png"},
}

// LoadFrames starts loading every manifest frame concurrently, appending each
// to the store as its decode completes. It returns immediately; the game
// begins ticking with whatever frames have arrived and the store degrades
// gracefully while categories are still empty.
func LoadFrames(store *component.Store, threshold int) {
	for cat, paths := range Manifest {
		for _, path := range paths {
			go func(cat component.Category, path string) {
				img, err := loadKeyedImage(path, threshold)
				if err != nil {
					log.Printf("assets: load %s: %v", path, err)
					return
				}
				store.Append(cat, img)
			}(cat, path)
		}
	}
}

func loadKeyedImage(path string, threshold int) (*ebiten.Image, error) {
	b, err := assetsFS.ReadFile(path)
	if err != nil {
		return nil, err
	}
	src, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(Keyout(src, threshold)), nil
}
