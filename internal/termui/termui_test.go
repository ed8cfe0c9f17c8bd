package termui

import (
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/AisuKyobu/christmas-particle-tree/internal/animation"
	"github.com/AisuKyobu/christmas-particle-tree/internal/config"
)

func newSimApp(t *testing.T, cols, rows int) (*App, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen.Init() error = %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(cols, rows)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	app, err := NewApp(screen, config.DefaultTerminal(), rand.New(rand.NewPCG(1, 2)), logger)
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}
	return app, screen
}

func TestNewAppPixelSize(t *testing.T) {
	app, _ := newSimApp(t, 80, 24)
	if w, h := app.Animator().Size(); w != 80 || h != 48 {
		t.Errorf("animator size = %dx%d, want 80x48", w, h)
	}
}

func TestClickToggles(t *testing.T) {
	cfg := config.DefaultTerminal()
	app, _ := newSimApp(t, 80, 24)
	scene := app.Animator().Scene()

	press := tcell.NewEventMouse(10, 10, tcell.Button1, tcell.ModNone)
	release := tcell.NewEventMouse(10, 10, tcell.ButtonNone, tcell.ModNone)

	steps := []struct {
		name      string
		ev        tcell.Event
		wantDense bool
	}{
		{"按下", press, false},
		{"拖动不重复切换", press, false},
		{"松开", release, false},
		{"再次按下", press, true},
	}
	for _, st := range steps {
		if _, err := app.HandleEvent(st.ev); err != nil {
			t.Fatalf("%s: HandleEvent() error = %v", st.name, err)
		}
		if scene.Dense != st.wantDense {
			t.Errorf("%s: dense = %v, want %v", st.name, scene.Dense, st.wantDense)
		}
	}
	if len(scene.Lights) != cfg.Tree.LightsDense {
		t.Errorf("lights = %d, want %d", len(scene.Lights), cfg.Tree.LightsDense)
	}
}

func TestQuitKeys(t *testing.T) {
	app, _ := newSimApp(t, 40, 20)
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want bool
	}{
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), true},
		{"Esc", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), true},
		{"Ctrl-C", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), true},
		{"其他键", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := app.HandleEvent(tt.ev)
			if err != nil {
				t.Fatalf("HandleEvent() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("quit = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResizeEvent(t *testing.T) {
	app, screen := newSimApp(t, 80, 24)

	screen.SetSize(120, 40)
	if _, err := app.HandleEvent(tcell.NewEventResize(120, 40)); err != nil {
		t.Fatalf("HandleEvent() error = %v", err)
	}
	if w, h := app.Animator().Size(); w != 120 || h != 80 {
		t.Errorf("animator size = %dx%d, want 120x80", w, h)
	}
	l := app.Animator().Scene().Layout()
	if l.CenterX != 60 {
		t.Errorf("center = %.1f, want 60", l.CenterX)
	}
}

func TestFrameRendersHalfBlocksAndGreeting(t *testing.T) {
	cfg := config.DefaultTerminal()
	app, screen := newSimApp(t, 80, 24)
	app.Frame(time.Second / 30)

	mainc, _, _, _ := screen.GetContent(0, 23)
	if mainc != halfBlock {
		t.Errorf("corner cell = %q, want %q", mainc, halfBlock)
	}

	// 祝福语居中：宽度 26，中心 x=40，起点 27；y = 48*0.18 = 8.64 → 第 4 行
	row := 4
	mainc, _, style, _ := screen.GetContent(27, row)
	if mainc != '老' {
		t.Errorf("greeting first cell = %q, want '老' (text %q)", mainc, cfg.Greeting.Text)
	}
	_, _, attrs := style.Decompose()
	if attrs&tcell.AttrBold == 0 {
		t.Error("greeting should be bold")
	}
	mainc, _, _, _ = screen.GetContent(29, row)
	if mainc != '登' {
		t.Errorf("second greeting cell = %q, want '登'", mainc)
	}
}

func TestSurfacePresentColors(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen.Init() error = %v", err)
	}
	defer screen.Fini()
	screen.SetSize(4, 2)

	s := NewSurface(4, 2)
	red := colorful.Color{R: 1}
	blue := colorful.Color{B: 1}
	s.Clear(blue)
	// 只画第 0 行像素（字符格 0 的上半）
	s.FillPolygon([]animation.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 1}, {X: 0, Y: 1}}, red, 1)
	s.Present(screen)

	_, _, style, _ := screen.GetContent(1, 0)
	fg, bg, _ := style.Decompose()
	if fg != tcell.NewRGBColor(255, 0, 0) || bg != tcell.NewRGBColor(0, 0, 255) {
		t.Errorf("cell colors fg=%v bg=%v, want red over blue", fg, bg)
	}
}

func TestRunStopsOnContext(t *testing.T) {
	app, _ := newSimApp(t, 40, 20)
	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()

	if err := app.Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if app.Animator().Frames() == 0 {
		t.Error("Run() should have rendered frames")
	}
}
