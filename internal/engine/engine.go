package engine

import (
	"fmt"
	"math"
	"slices"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Reporter receives engine errors and warnings. *log.Logger from
// charmbracelet/log satisfies it.
type Reporter interface {
	Error(msg interface{}, keyvals ...interface{})
	Warn(msg interface{}, keyvals ...interface{})
}

type nopReporter struct{}

func (nopReporter) Error(interface{}, ...interface{}) {}
func (nopReporter) Warn(interface{}, ...interface{})  {}

// Params configures a new Engine.
type Params struct {
	RequiredVersion [3]int
	Gravity         float64
	CameraPosition  core.Vec3
	CameraDirection core.Vec3
	Zoom            float64
	Seed            int64

	ParticleLifetime float64
	ParticleSpeed    float64

	// Materials are registered before meshes are checked.
	Materials []Material
	// Meshes maps mesh paths to material names. Every referenced
	// material must exist.
	Meshes map[string]string

	Reporter Reporter
	Sound    SoundPlayer
}

// TextParams places a line of HUD text in screen cells.
type TextParams struct {
	Text     string
	X, Y     int
	Color    core.Color
	Centered bool // Ignore X and center on the row
}

// Time is the engine clock in seconds.
type Time struct {
	App   float64
	Delta float64
}

// Engine ties the scene, physics, camera and drawing together and drives
// them one frame at a time.
type Engine struct {
	Scene     *Scene
	World     *World
	Physics   *PhysicsManager
	Camera    *Camera
	Particles *ParticleSystem
	Materials *MaterialCatalog
	Meshes    *MeshCatalog
	Floor     *Floor

	reporter Reporter
	sound    SoundPlayer

	preDraw         func()
	preRendererDraw func(dst *core.Screen)

	time    Time
	inFrame bool
	texts   []TextParams
}

// New checks the required interface version, loads the materials and
// creates the engine. Failures are sent to the reporter and returned.
func New(p Params) (*Engine, error) {
	reporter := p.Reporter
	if reporter == nil {
		reporter = nopReporter{}
	}
	sound := p.Sound
	if sound == nil {
		sound = NopPlayer{}
	}

	if err := CheckVersion(p.RequiredVersion); err != nil {
		reporter.Error("engine is not the required version", "err", err)
		return nil, fmt.Errorf("engine: init: %w", err)
	}

	materials := NewMaterialCatalog()
	for _, m := range p.Materials {
		materials.Register(m)
	}
	meshes := NewMeshCatalog(materials)
	paths := make([]string, 0, len(p.Meshes))
	for path := range p.Meshes {
		paths = append(paths, path)
	}
	slices.Sort(paths)
	for _, path := range paths {
		name := p.Meshes[path]
		if _, err := materials.Load(name); err != nil {
			reporter.Error("failed to load material", "mesh", path, "err", err)
			return nil, fmt.Errorf("engine: init: %w", err)
		}
		meshes.Define(path, name)
	}

	scene := NewScene()
	world := NewWorld(core.V3(0, p.Gravity, 0))
	camera := NewCamera(p.CameraPosition, p.CameraDirection)
	if p.Zoom > 0 {
		camera.Zoom = p.Zoom
	}

	return &Engine{
		Scene:     scene,
		World:     world,
		Physics:   NewPhysicsManager(scene, world),
		Camera:    camera,
		Particles: NewParticleSystem(p.Seed, p.ParticleLifetime, p.ParticleSpeed),
		Materials: materials,
		Meshes:    meshes,
		Floor:     NewFloor(),
		reporter:  reporter,
		sound:     sound,
	}, nil
}

// SetPreDraw registers a callback that runs after the physics step of each
// frame.
func (e *Engine) SetPreDraw(fn func()) {
	e.preDraw = fn
}

// SetPreRendererDraw registers a callback that draws after the scene and
// before HUD text.
func (e *Engine) SetPreRendererDraw(fn func(dst *core.Screen)) {
	e.preRendererDraw = fn
}

// BeginFrame advances the clock, steps physics and runs the pre-draw
// callback. It returns false if dt is not positive, in which case the frame
// should be skipped.
func (e *Engine) BeginFrame(dt float64) bool {
	if dt <= 0 || math.IsNaN(dt) {
		return false
	}
	e.time.App += dt
	e.time.Delta = dt
	e.texts = e.texts[:0]
	e.inFrame = true

	e.World.Step(dt)
	e.Physics.Update()
	e.Particles.Update(dt)

	if e.preDraw != nil {
		e.preDraw()
	}
	return true
}

// EndFrame closes the current frame.
func (e *Engine) EndFrame() {
	e.inFrame = false
}

// InFrame reports whether BeginFrame has been called without EndFrame.
func (e *Engine) InFrame() bool {
	return e.inFrame
}

// Time returns the engine clock.
func (e *Engine) Time() Time {
	return e.time
}

// DrawText queues HUD text for the next Render.
func (e *Engine) DrawText(t TextParams) {
	e.texts = append(e.texts, t)
}

// PlaySound dispatches a sound to the configured player.
func (e *Engine) PlaySound(path string, volume float64) {
	if path == "" {
		return
	}
	e.sound.Play(path, volume)
}

// Warn forwards a warning to the reporter.
func (e *Engine) Warn(msg string, keyvals ...interface{}) {
	e.reporter.Warn(msg, keyvals...)
}

// Render draws the floor, scene nodes, particles, the pre-renderer callback
// and queued HUD text into dst.
func (e *Engine) Render(dst *core.Screen) {
	dst.Clear()
	e.Floor.Render(dst, e.Camera)

	nodes := make([]*Node, 0, len(e.Scene.RootNodes()))
	for _, n := range e.Scene.RootNodes() {
		if n.Enabled() && n.Glyph != 0 {
			nodes = append(nodes, n)
		}
	}
	// Far to near so closer nodes overwrite
	slices.SortStableFunc(nodes, func(a, b *Node) int {
		da, db := e.Camera.Depth(a.Position()), e.Camera.Depth(b.Position())
		switch {
		case da > db:
			return -1
		case da < db:
			return 1
		}
		return 0
	})
	for _, n := range nodes {
		e.drawNode(dst, n, n.Glyph, n.Color)
	}

	w, h := dst.Width(), dst.Height()
	for _, p := range e.Particles.Particles() {
		if x, y, ok := e.Camera.Project(p.Position, w, h); ok {
			dst.SetColor(x, y, p.Glyph(), p.Color)
		}
	}

	if e.preRendererDraw != nil {
		e.preRendererDraw(dst)
	}

	for _, t := range e.texts {
		if t.Centered {
			x := (w - len([]rune(t.Text))) / 2
			dst.DrawTextColor(x, t.Y, t.Text, t.Color)
			continue
		}
		dst.DrawTextColor(t.X, t.Y, t.Text, t.Color)
	}
}

// DrawPhysicsNodes outlines every managed body, tagged with its kind.
func (e *Engine) DrawPhysicsNodes(dst *core.Screen) {
	for _, n := range e.Physics.Nodes() {
		b := e.Physics.Body(n)
		if b == nil || b.Shape.Kind != ShapeBox {
			continue
		}
		x0, y0, x1, y1, ok := e.screenBounds(dst, b.Position, b.Shape.HalfExtents)
		if !ok {
			continue
		}
		dst.SetColor(x0, y0, '┌', core.ColorBrightGreen)
		dst.SetColor(x1, y0, '┐', core.ColorBrightGreen)
		dst.SetColor(x0, y1, '└', core.ColorBrightGreen)
		dst.SetColor(x1, y1, '┘', core.ColorBrightGreen)
		dst.DrawTextColor(x1+1, y0, b.Kind.String()[:1], core.ColorBrightGreen)
	}
}

func (e *Engine) drawNode(dst *core.Screen, n *Node, glyph rune, color core.Color) {
	x0, y0, x1, y1, ok := e.screenBounds(dst, n.Position(), n.Size)
	if !ok {
		return
	}
	for y := max(y0, 0); y <= min(y1, dst.Height()-1); y++ {
		for x := max(x0, 0); x <= min(x1, dst.Width()-1); x++ {
			dst.SetColor(x, y, glyph, color)
		}
	}
}

// screenBounds returns the cell rectangle covered by a box, at least one
// cell in size.
func (e *Engine) screenBounds(dst *core.Screen, pos, half core.Vec3) (x0, y0, x1, y1 int, ok bool) {
	w, h := dst.Width(), dst.Height()
	sx, sy, depth, visible := e.Camera.project(pos, w, h)
	if !visible {
		return 0, 0, 0, 0, false
	}
	scale := e.Camera.CellsPerUnit(depth, w)
	cx, cy := int(math.Round(sx)), int(math.Round(sy))
	rx := int(math.Round(half.X * scale))
	ry := int(math.Round(half.Y * scale / 2))
	x0, x1 = cx-rx, cx+rx
	y0, y1 = cy-ry, cy+ry
	if x1 < 0 || y1 < 0 || x0 >= w || y0 >= h {
		return 0, 0, 0, 0, false
	}
	return x0, y0, x1, y1, true
}
