package scenes

import (
	"bytes"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// The experience ships no font assets; every text face comes from the
// Go font embedded in golang.org/x/image. The source is parsed once
// and shared by all faces.
var (
	fontOnce   sync.Once
	fontSource *text.GoTextFaceSource
)

// fontFace returns a face of the given size backed by the shared
// source. Parsing the bundled font can only fail if the toolchain is
// broken, so failure is fatal.
func fontFace(size float64) *text.GoTextFace {
	fontOnce.Do(func() {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			log.Panicf("[Scenes] failed to parse bundled font: %v", err)
		}
		fontSource = source
	})
	return &text.GoTextFace{
		Source: fontSource,
		Size:   size,
	}
}
