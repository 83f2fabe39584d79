package assets

import (
	"bytes"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	// FillSource is a white image used as the source for filled triangles
	FillSource *ebiten.Image
	HUDFont    *text.GoTextFace
)

func init() {
	// Sample the inside of a 3x3 image so texture filtering never reads the edges
	whiteImage := ebiten.NewImage(3, 3)
	whiteImage.Fill(color.White)
	FillSource = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	HUDFont = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
}
