// Package animation 每帧推进场景与特效，并把结果画到 Surface 上
//
// 所有状态只由宿主循环所在的一个 goroutine 访问：
// Step/Tick 推进状态，Draw 只读状态，Click 和 Resize 是仅有的另外两个修改点。
package animation

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/AisuKyobu/christmas-particle-tree/internal/config"
	"github.com/AisuKyobu/christmas-particle-tree/internal/effects"
	"github.com/AisuKyobu/christmas-particle-tree/internal/tree"
)

type palette struct {
	background colorful.Color
	star       colorful.Color
	greeting   colorful.Color
	glow       colorful.Color
	barrage    colorful.Color
	snow       colorful.Color
}

// Animator 场景、弹幕、雪花和祝福语脉冲
type Animator struct {
	cfg    config.Config
	logger *slog.Logger

	scene    *tree.Scene
	barrages *effects.Barrages
	snow     *effects.Snow
	pulse    *Pulse

	width, height int
	frames        uint64
	colors        palette
	drawables     []tree.Drawable
}

// New 按画布尺寸生成初始场景（密集模式）
func New(cfg config.Config, width, height int, rnd *rand.Rand, logger *slog.Logger) (*Animator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	scene, err := tree.NewScene(cfg, tree.NewLayout(width, height, cfg.Tree), rnd)
	if err != nil {
		return nil, fmt.Errorf("create scene %dx%d: %w", width, height, err)
	}

	a := &Animator{
		cfg:      cfg,
		logger:   logger,
		scene:    scene,
		barrages: effects.NewBarrages(cfg.Barrage, cfg.Scale, rnd),
		snow:     effects.NewSnow(cfg.Snow, cfg.Scale, rnd),
		pulse:    NewPulse(cfg.Greeting.GlowBase, cfg.Greeting.GlowSwing, cfg.Greeting.PulseRate),
		width:    width,
		height:   height,
		colors: palette{
			background: config.MustColor(cfg.Background),
			star:       config.MustColor(cfg.Star.Color),
			greeting:   config.MustColor(cfg.Greeting.Color),
			glow:       config.MustColor(cfg.Greeting.GlowColor),
			barrage:    config.MustColor(cfg.Barrage.Color),
			snow:       config.MustColor(cfg.Snow.Color),
		},
	}
	logger.Info("scene created",
		"width", width,
		"height", height,
		"leaves", len(scene.Leaves),
		"lights", len(scene.Lights),
		"trunk", len(scene.Trunk),
	)
	return a, nil
}

// Scene 当前场景
func (a *Animator) Scene() *tree.Scene { return a.scene }

// Barrages 当前弹幕
func (a *Animator) Barrages() *effects.Barrages { return a.barrages }

// Snow 当前雪花
func (a *Animator) Snow() *effects.Snow { return a.snow }

// Frames 已推进的帧数
func (a *Animator) Frames() uint64 { return a.frames }

// Size 画布尺寸
func (a *Animator) Size() (int, int) { return a.width, a.height }

// Tick 按真实时间推进
func (a *Animator) Tick(dt time.Duration) {
	a.Step(dt.Seconds() * a.cfg.Projection.ReferenceFPS)
}

// Step 推进 steps 个参考帧（60 FPS 下的一帧为 1）
func (a *Animator) Step(steps float64) {
	if steps <= 0 {
		return
	}
	a.frames++

	a.scene.Advance(steps)
	a.pulse.Update(steps / a.cfg.Projection.ReferenceFPS)

	// 上一帧画过的弹幕先移动，新弹幕在出生位置先画一帧
	a.barrages.Update(steps)
	a.barrages.MaybeSpawn(a.width, a.height, steps)

	a.snow.Update(steps, a.height)
	a.snow.MaybeSpawn(a.width, steps)
}

// Click 切换彩灯密度并重建整棵树
func (a *Animator) Click() {
	a.scene.Toggle()
	a.logger.Info("density toggled", "dense", a.scene.Dense, "lights", len(a.scene.Lights))
}

// Resize 重新计算布局；新尺寸无法安全投影时保留旧布局并返回错误
func (a *Animator) Resize(width, height int) error {
	if width == a.width && height == a.height {
		return nil
	}
	if err := a.scene.Relayout(tree.NewLayout(width, height, a.cfg.Tree)); err != nil {
		return fmt.Errorf("resize %dx%d: %w", width, height, err)
	}
	a.width, a.height = width, height
	a.logger.Debug("canvas resized", "width", width, "height", height)
	return nil
}
