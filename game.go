package main

import (
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.design/x/clipboard"

	"github.com/milk9111/tabletop/ecs"
	"github.com/milk9111/tabletop/ecs/entity"
	"github.com/milk9111/tabletop/ecs/system"
	"github.com/milk9111/tabletop/prefabs"
	"github.com/milk9111/tabletop/scene"
)

var backgroundColor = color.NRGBA{R: 0x1e, G: 0x24, B: 0x2b, A: 0xff}

type Game struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	render    *system.RenderSystem
	drag      *system.DragSystem

	table     *scene.Table
	selection *scene.Selection
	registry  *scene.Registry

	watcher *prefabs.Watcher
	ui      *ebitenui.UI

	boardFile   string
	width       int
	height      int
	clipboardOK bool
}

func NewGame(boardFile string, clipboardOK bool) (*Game, error) {
	spec, err := prefabs.LoadBoardSpec(boardFile)
	if err != nil {
		return nil, err
	}

	g := &Game{
		world:       ecs.NewWorld(),
		table:       scene.NewTable(),
		selection:   scene.NewSelection(),
		registry:    scene.NewRegistry(),
		boardFile:   boardFile,
		width:       spec.Width,
		height:      spec.Height,
		clipboardOK: clipboardOK,
	}
	if g.width <= 0 || g.height <= 0 {
		g.width, g.height = 1280, 720
	}

	if err := entity.BuildBoard(g.world, g.table, g.registry, spec); err != nil {
		return nil, err
	}

	g.render = system.NewRenderSystem()
	g.drag = system.NewDragSystem(g.table, g.selection, g.registry)
	g.scheduler = ecs.NewScheduler(
		system.NewInputSystem(),
		g.drag,
		system.NewGlideSystem(),
		g.render,
	)

	if watcher, err := prefabs.NewWatcher("prefabs"); err != nil {
		log.Printf("board watch disabled: %v", err)
	} else {
		g.watcher = watcher
	}

	g.ui = NewHUD(g)
	return g, nil
}

func (g *Game) Update() error {
	g.pollWatcher()
	g.ui.Update()
	g.scheduler.Update(g.world)

	if g.clipboardOK && ctrlPressed() && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copySelection()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.render.Draw(g.world, screen)
	g.ui.Draw(screen)
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("selected: %d    fps: %.1f", g.selection.Len(), ebiten.ActualFPS()),
		8, g.height-20)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	reload := false
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("board spec changed: %s", name)
			reload = true
		case err := <-g.watcher.Errors:
			log.Printf("board watch error: %v", err)
		default:
			if reload {
				g.reloadBoard()
			}
			return
		}
	}
}

func (g *Game) reloadBoard() {
	spec, err := prefabs.LoadBoardSpec(g.boardFile)
	if err != nil {
		log.Printf("board reload failed: %v", err)
		return
	}
	g.selection.Clear()
	entity.ClearBoard(g.world, g.table, g.registry)
	if err := entity.BuildBoard(g.world, g.table, g.registry, spec); err != nil {
		log.Printf("board rebuild failed: %v", err)
	}
}

func (g *Game) copySelection() {
	ids := make([]string, 0, g.selection.Len())
	for _, p := range g.selection.Pieces() {
		ids = append(ids, p.ID)
	}
	if len(ids) == 0 {
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(strings.Join(ids, "\n")))
}

func ctrlPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight)
}
