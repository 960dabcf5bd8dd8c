package stage

import (
	"fmt"
	_ "image/png" // register the PNG decoder for LoadActorImage

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// LoadActorImage loads the sprite drawn for the actor. A missing or
// undecodable file is a hard error; callers should not start the window.
func LoadActorImage(path string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load actor image %s: %w", path, err)
	}
	return img, nil
}
