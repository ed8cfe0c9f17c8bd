package tree

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/AisuKyobu/christmas-particle-tree/internal/config"
)

// Scene 全局动画状态：旋转角、密度开关和三组粒子
// 只有 Advance、Toggle、Relayout 会修改它
type Scene struct {
	Rotation float64 // [0, 2π)
	Dense    bool
	Collections

	layout    Layout
	projector Projector
	proj      config.ProjectionConfig
	distance  float64
	gen       *Generator
}

// NewScene 以密集模式生成初始场景
func NewScene(cfg config.Config, l Layout, rnd *rand.Rand) (*Scene, error) {
	gen, err := NewGenerator(cfg.Tree, cfg.Scale, rnd)
	if err != nil {
		return nil, err
	}
	s := &Scene{
		Dense:    true,
		proj:     cfg.Projection,
		distance: cfg.Px(cfg.Projection.CameraDistance),
		gen:      gen,
	}
	if err := s.Relayout(l); err != nil {
		return nil, err
	}
	return s, nil
}

// Layout 当前布局
func (s *Scene) Layout() Layout {
	return s.layout
}

// Projector 当前布局下的投影器
func (s *Scene) Projector() Projector {
	return s.projector
}

// Advance 旋转 steps 个参考帧
func (s *Scene) Advance(steps float64) {
	s.Rotation = math.Mod(s.Rotation+s.proj.RotationStep*steps, 2*math.Pi)
	if s.Rotation < 0 {
		s.Rotation += 2 * math.Pi
	}
}

// Toggle 切换彩灯密度并重建整棵树
func (s *Scene) Toggle() {
	s.Dense = !s.Dense
	s.regenerate()
}

// Relayout 画布尺寸变化后重新计算布局并重建
// 布局不合法时保留原场景并返回错误
func (s *Scene) Relayout(l Layout) error {
	if err := l.Validate(s.distance, s.proj.MaxRadiusFraction); err != nil {
		return err
	}
	s.layout = l
	s.projector = NewProjector(l, s.distance)
	s.regenerate()
	return nil
}

func (s *Scene) regenerate() {
	s.Collections = s.gen.Generate(s.layout, s.Dense)
	if r := s.MaxRadius(); r >= s.distance*s.proj.MaxRadiusFraction {
		panic(fmt.Sprintf("tree: generated radius %.1f exceeds projection bound", r))
	}
}
