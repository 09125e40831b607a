package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.design/x/clipboard"
)

func main() {
	boardFile := flag.String("board", "board.yaml", "board spec in prefabs/ (disk copy overrides the embedded one)")
	flag.Parse()

	clipboardOK := true
	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
		clipboardOK = false
	}

	game, err := NewGame(*boardFile, clipboardOK)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(game.width, game.height)
	ebiten.SetWindowTitle("tabletop")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
