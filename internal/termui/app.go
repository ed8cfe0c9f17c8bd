package termui

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/AisuKyobu/christmas-particle-tree/internal/animation"
	"github.com/AisuKyobu/christmas-particle-tree/internal/config"
)

// App 终端宿主：事件、定时器和绘制都在 Run 所在的 goroutine 中串行执行
type App struct {
	screen  tcell.Screen
	anim    *animation.Animator
	surface *Surface
	logger  *slog.Logger
	fps     int

	mouseDown bool
	last      time.Time
}

// NewApp screen 必须已经 Init
func NewApp(screen tcell.Screen, cfg config.Config, rnd *rand.Rand, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}
	screen.EnableMouse()
	screen.HideCursor()

	cols, rows := screen.Size()
	surface := NewSurface(cols, rows)
	w, h := surface.PixelSize()

	anim, err := animation.New(cfg, w, h, rnd, logger)
	if err != nil {
		return nil, err
	}
	return &App{
		screen:  screen,
		anim:    anim,
		surface: surface,
		logger:  logger,
		fps:     cfg.FPS,
	}, nil
}

// Animator 动画状态
func (a *App) Animator() *animation.Animator {
	return a.anim
}

// Run 主循环，直到 ctx 结束或用户按下 q / Esc / Ctrl-C
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 32)
	done := make(chan struct{})
	defer close(done)

	// 事件监听
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(a.fps))
	defer ticker.Stop()

	a.last = time.Now()
	a.logger.Info("terminal loop started", "fps", a.fps)
	for {
		select {
		case <-ctx.Done():
			a.logger.Info("terminal loop stopped", "frames", a.anim.Frames())
			return nil
		case ev := <-events:
			quit, err := a.HandleEvent(ev)
			if err != nil {
				return err
			}
			if quit {
				a.logger.Info("quit requested", "frames", a.anim.Frames())
				return nil
			}
		case now := <-ticker.C:
			dt := now.Sub(a.last)
			a.last = now
			a.Frame(dt)
		}
	}
}

// HandleEvent 处理单个 tcell 事件，返回是否退出
func (a *App) HandleEvent(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
			return true, nil
		}
	case *tcell.EventMouse:
		// 只在按下的那一刻切换，拖动和松开不算
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !a.mouseDown {
			a.anim.Click()
		}
		a.mouseDown = down
	case *tcell.EventResize:
		a.screen.Sync()
		cols, rows := a.screen.Size()
		a.surface.Resize(cols, rows)
		w, h := a.surface.PixelSize()
		if err := a.anim.Resize(w, h); err != nil {
			return false, fmt.Errorf("terminal %dx%d: %w", cols, rows, err)
		}
	}
	return false, nil
}

// Frame 推进 dt 并绘制一帧
func (a *App) Frame(dt time.Duration) {
	a.anim.Tick(dt)
	a.anim.Draw(a.surface)
	a.surface.Present(a.screen)
	a.screen.Show()
}
