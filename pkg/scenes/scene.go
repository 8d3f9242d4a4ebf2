package scenes

import (
	"github.com/decker502/keepsake/pkg/game"
)

// Scene is a type alias for game.Scene. All scene implementations in
// this package implement the game.Scene interface, and the timed ones
// also implement game.Disposable.
type Scene = game.Scene
