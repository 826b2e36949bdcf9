package main

import (
	"github.com/faiface/pixel/pixelgl"

	"github.com/chippy-core/chippy/cmd"
)

func main() {
	// pixelgl needs access to the main thread, so the whole cobra command
	// tree runs inside pixelgl.Run even for subcommands (like `version`)
	// that never touch a window.
	pixelgl.Run(cmd.Execute)
}
