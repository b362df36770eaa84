package main

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"math"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"honnef.co/go/geom3/internal/scene"
)

var (
	backgroundColor = color.RGBA{0x33, 0x4c, 0x4c, 0xff}
	outlineColor    = color.White
	fillColor       = color.Black
	pointColor      = color.RGBA{0xff, 0x00, 0x00, 0xff}
)

const pointRadius = 5

type binding struct {
	key     ebiten.Key
	name    string
	actions []scene.Action
}

type game struct {
	scene    *scene.Scene
	bindings []binding

	width, height int
	frame         scene.Frame

	// whitePixel is the texture source for filled triangles.
	whitePixel *ebiten.Image
	vertices   []ebiten.Vertex
	indices    []uint16
}

func newGame(sc *scene.Scene, cfg scene.Config) (*game, error) {
	g := &game{
		scene:  sc,
		width:  cfg.Window.Width,
		height: cfg.Window.Height,
	}

	names := make([]string, 0, len(cfg.Bindings))
	for name := range cfg.Bindings {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		var k ebiten.Key
		if err := k.UnmarshalText([]byte(name)); err != nil {
			return nil, fmt.Errorf("binding %s: %w", name, err)
		}
		g.bindings = append(g.bindings, binding{key: k, name: name, actions: cfg.Bindings[name]})
	}

	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	g.whitePixel = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	return g, nil
}

func (g *game) Update() error {
	for _, b := range g.bindings {
		if !inpututil.IsKeyJustPressed(b.key) {
			continue
		}
		slog.Debug("key pressed", "key", b.name)
		if slices.Contains(b.actions, scene.Quit) {
			return ebiten.Termination
		}
		if err := g.scene.DoAll(b.actions); err != nil {
			return err
		}
	}

	f, err := g.scene.Frame(g.width, g.height)
	if err != nil {
		return err
	}
	g.frame = f
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	switch g.frame.Mode {
	case scene.Fill:
		g.drawFill(screen)
	case scene.Outline:
		g.drawOutline(screen)
	case scene.Points:
		g.drawOutline(screen)
		g.drawPoints(screen)
	}
}

func (g *game) drawFill(screen *ebiten.Image) {
	r, gg, b, a := fillColor.RGBA()
	g.vertices = g.vertices[:0]
	for _, v := range g.frame.Vertices {
		g.vertices = append(g.vertices, ebiten.Vertex{
			DstX:   v.X,
			DstY:   v.Y,
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(r) / 0xffff,
			ColorG: float32(gg) / 0xffff,
			ColorB: float32(b) / 0xffff,
			ColorA: float32(a) / 0xffff,
		})
	}
	g.indices = g.indices[:0]
	for _, idx := range g.frame.Indices {
		if idx > math.MaxUint16 {
			slog.Warn("index too large for a triangle batch, not drawing fill", "index", idx)
			return
		}
		g.indices = append(g.indices, uint16(idx))
	}
	screen.DrawTriangles(g.vertices, g.indices, g.whitePixel, nil)
}

func (g *game) drawOutline(screen *ebiten.Image) {
	idx := g.frame.Indices
	for i := range idx {
		a := g.frame.Vertices[idx[i]]
		b := g.frame.Vertices[idx[(i+1)%len(idx)]]
		vector.StrokeLine(screen, a.X, a.Y, b.X, b.Y, 1, outlineColor, true)
	}
}

func (g *game) drawPoints(screen *ebiten.Image) {
	for _, i := range g.frame.Indices {
		v := g.frame.Vertices[i]
		vector.DrawFilledCircle(screen, v.X, v.Y, pointRadius, pointColor, true)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	// A minimized window can report a zero size; keep the last usable one.
	if outsideWidth > 0 && outsideHeight > 0 {
		g.width, g.height = outsideWidth, outsideHeight
	}
	return outsideWidth, outsideHeight
}
