package engine

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

type recordingReporter struct {
	errors []string
	warns  []string
}

func (r *recordingReporter) Error(msg interface{}, _ ...interface{}) {
	r.errors = append(r.errors, msg.(string))
}

func (r *recordingReporter) Warn(msg interface{}, _ ...interface{}) {
	r.warns = append(r.warns, msg.(string))
}

func testParams() Params {
	return Params{
		RequiredVersion: Version,
		Gravity:         -9.8,
		CameraPosition:  core.V3(0, 5, -10),
		CameraDirection: core.V3(0, -0.2, 1),
		Seed:            1,
		Materials:       []Material{{Name: "box", Glyph: '#', Color: core.ColorYellow}},
		Meshes:          map[string]string{"models/cube.dae": "box"},
	}
}

func TestCheckVersion(t *testing.T) {
	tests := []struct {
		required [3]int
		ok       bool
	}{
		{[3]int{0, 2, 1}, true},
		{[3]int{0, 2, 0}, false},
		{[3]int{0, 3, 1}, false},
		{[3]int{1, 2, 1}, false},
	}
	for _, tc := range tests {
		err := CheckVersion(tc.required)
		if (err == nil) != tc.ok {
			t.Errorf("CheckVersion(%v) = %v, expected ok=%v", tc.required, err, tc.ok)
		}
		if err != nil && !errors.Is(err, ErrVersionMismatch) {
			t.Errorf("CheckVersion(%v) error should wrap ErrVersionMismatch", tc.required)
		}
	}
}

func TestNewReportsVersionMismatch(t *testing.T) {
	rep := &recordingReporter{}
	p := testParams()
	p.RequiredVersion = [3]int{9, 9, 9}
	p.Reporter = rep

	e, err := New(p)
	if !errors.Is(err, ErrVersionMismatch) {
		t.Fatalf("New() error = %v, expected ErrVersionMismatch", err)
	}
	if e != nil {
		t.Error("New() should not return an engine on failure")
	}
	if len(rep.errors) != 1 {
		t.Errorf("reported errors = %d, expected 1", len(rep.errors))
	}
}

func TestNewReportsMissingMaterial(t *testing.T) {
	rep := &recordingReporter{}
	p := testParams()
	p.Meshes["models/ship.dae"] = "chrome"
	p.Reporter = rep

	_, err := New(p)
	if !errors.Is(err, ErrMaterialNotFound) {
		t.Fatalf("New() error = %v, expected ErrMaterialNotFound", err)
	}
	if len(rep.errors) != 1 {
		t.Errorf("reported errors = %d, expected 1", len(rep.errors))
	}
}

func TestMeshLoad(t *testing.T) {
	e, err := New(testParams())
	if err != nil {
		t.Fatal(err)
	}

	mesh, err := e.Meshes.Load(MeshParams{Path: "models/cube.dae", Position: core.V3(0, 7, 0), Size: core.V3(1, 1, 1)})
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if mesh.Node.Glyph != '#' || mesh.Node.Position() != core.V3(0, 7, 0) {
		t.Errorf("mesh node = %+v, expected box glyph at {0 7 0}", mesh.Node)
	}

	if _, err := e.Meshes.Load(MeshParams{Path: "models/teapot.dae"}); !errors.Is(err, ErrMeshNotFound) {
		t.Errorf("Load(unknown) error = %v, expected ErrMeshNotFound", err)
	}
}

func TestFrameLifecycle(t *testing.T) {
	e, err := New(testParams())
	if err != nil {
		t.Fatal(err)
	}

	calls := 0
	e.SetPreDraw(func() { calls++ })

	if e.BeginFrame(0) {
		t.Error("BeginFrame(0) = true, expected false")
	}
	if !e.BeginFrame(0.5) {
		t.Fatal("BeginFrame(0.5) = false, expected true")
	}
	e.DrawText(TextParams{Text: "Hello World!", Centered: true, Y: 2})
	e.EndFrame()

	if calls != 1 {
		t.Errorf("preDraw calls = %d, expected 1", calls)
	}
	if got := e.Time(); got.App != 0.5 || got.Delta != 0.5 {
		t.Errorf("Time() = %+v, expected App=0.5 Delta=0.5", got)
	}

	screen := core.NewScreen(40, 10)
	e.Render(screen)
	if idx := strings.Index(screen.Row(2), "Hello World!"); idx != 14 {
		t.Errorf("Hello World! at column %d, expected 14", idx)
	}
}

func TestCameraProject(t *testing.T) {
	cam := NewCamera(core.V3(0, 0, 0), core.V3(0, 0, 1))

	x, y, ok := cam.Project(core.V3(0, 0, 10), 80, 24)
	if !ok || x != 40 || y != 12 {
		t.Errorf("Project(center) = (%d, %d, %v), expected (40, 12, true)", x, y, ok)
	}

	x, _, ok = cam.Project(core.V3(1, 0, 10), 80, 24)
	if !ok || x <= 40 {
		t.Errorf("Project(right) x = %d, expected right of center", x)
	}

	if _, _, ok := cam.Project(core.V3(0, 0, -5), 80, 24); ok {
		t.Error("point behind the camera should not be visible")
	}

	cam.MoveCamera(core.V3(2, 0, 0))
	if cam.Position != core.V3(2, 0, 0) {
		t.Errorf("Position = %v, expected {2 0 0}", cam.Position)
	}
}

func TestParticlesExpire(t *testing.T) {
	ps := NewParticleSystem(7, 1.0, 5.0)
	ps.Burst(core.V3(0, 1, 0), 10, core.ColorOrange)
	if len(ps.Particles()) != 10 {
		t.Fatalf("Particles() = %d, expected 10", len(ps.Particles()))
	}

	ps.Update(2.0)
	if len(ps.Particles()) != 0 {
		t.Errorf("Particles() after lifetime = %d, expected 0", len(ps.Particles()))
	}
}
