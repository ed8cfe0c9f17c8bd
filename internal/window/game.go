package window

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/AisuKyobu/christmas-particle-tree/internal/animation"
	"github.com/AisuKyobu/christmas-particle-tree/internal/config"
)

// Game 实现 ebiten.Game
// ebiten 在同一个 goroutine 里依次调用 Layout、Update、Draw
type Game struct {
	cfg      config.Config
	anim     *animation.Animator
	surface  *Surface
	logger   *slog.Logger
	maxWidth int
	err      error
}

// MaxLogicalWidth 保证树半径小于投影上限的最大逻辑宽度
func MaxLogicalWidth(cfg config.Config) int {
	limit := cfg.Px(cfg.Projection.CameraDistance) * cfg.Projection.MaxRadiusFraction
	return int(math.Ceil(limit/cfg.Tree.RadiusFraction)) - 1
}

// LogicalSize 窗口太宽时按比例缩小逻辑分辨率，由 ebiten 放大显示
func LogicalSize(outsideW, outsideH, maxWidth int) (int, int) {
	if outsideW <= maxWidth || outsideW <= 0 {
		return outsideW, outsideH
	}
	h := int(math.Round(float64(outsideH) * float64(maxWidth) / float64(outsideW)))
	return maxWidth, max(h, 1)
}

// NewGame 以窗口初始尺寸创建场景
func NewGame(cfg config.Config, width, height int, fonts *Fonts, rnd *rand.Rand, logger *slog.Logger) (*Game, error) {
	if logger == nil {
		logger = slog.Default()
	}
	maxWidth := MaxLogicalWidth(cfg)
	w, h := LogicalSize(width, height, maxWidth)
	anim, err := animation.New(cfg, w, h, rnd, logger)
	if err != nil {
		return nil, err
	}
	return &Game{
		cfg:      cfg,
		anim:     anim,
		surface:  NewSurface(fonts),
		logger:   logger,
		maxWidth: maxWidth,
	}, nil
}

// Update 处理点击并推进一帧
func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		g.anim.Click()
	}
	g.anim.Step(g.cfg.Projection.ReferenceFPS / float64(ebiten.TPS()))
	return nil
}

// Draw 绘制当前帧
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Target(screen)
	g.anim.Draw(g.surface)
}

// Layout 窗口尺寸变化时在下一帧之前重建布局
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := LogicalSize(outsideWidth, outsideHeight, g.maxWidth)
	if w <= 0 || h <= 0 {
		return g.anim.Size()
	}
	if err := g.anim.Resize(w, h); err != nil {
		g.err = fmt.Errorf("window layout: %w", err)
		return g.anim.Size()
	}
	return w, h
}

// Options 窗口参数
type Options struct {
	Title  string
	Width  int
	Height int
}

// Run 打开窗口并阻塞直到关闭
func Run(cfg config.Config, opts Options, fonts *Fonts, rnd *rand.Rand, logger *slog.Logger) error {
	game, err := NewGame(cfg, opts.Width, opts.Height, fonts, rnd, logger)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.FPS)

	game.logger.Info("window loop started", "width", opts.Width, "height", opts.Height, "tps", cfg.FPS)
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	game.logger.Info("window closed", "frames", game.anim.Frames())
	return nil
}
