package tree

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/AisuKyobu/christmas-particle-tree/internal/config"
)

// Generator 随机生成三组粒子
// 每个粒子独立采样，没有聚类逻辑
type Generator struct {
	cfg   config.TreeConfig
	scale float64
	rnd   *rand.Rand

	leafColor   colorful.Color
	palette     []colorful.Color
	trunkColors []colorful.Color
}

// NewGenerator 解析配置中的颜色
func NewGenerator(cfg config.TreeConfig, scale float64, rnd *rand.Rand) (*Generator, error) {
	leaf, err := colorful.Hex(cfg.LeafColor)
	if err != nil {
		return nil, fmt.Errorf("leaf color: %w", err)
	}
	palette, err := parseColors(cfg.LightPalette)
	if err != nil {
		return nil, fmt.Errorf("light palette: %w", err)
	}
	trunk, err := parseColors(cfg.TrunkColors)
	if err != nil {
		return nil, fmt.Errorf("trunk colors: %w", err)
	}
	return &Generator{
		cfg:         cfg,
		scale:       scale,
		rnd:         rnd,
		leafColor:   leaf,
		palette:     palette,
		trunkColors: trunk,
	}, nil
}

func parseColors(hexes []string) ([]colorful.Color, error) {
	if len(hexes) == 0 {
		return nil, fmt.Errorf("no colors")
	}
	out := make([]colorful.Color, 0, len(hexes))
	for _, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// LightCount 按密度返回彩灯数量
func (g *Generator) LightCount(dense bool) int {
	if dense {
		return g.cfg.LightsDense
	}
	return g.cfg.LightsSparse
}

// Generate 从零生成整棵树
func (g *Generator) Generate(l Layout, dense bool) Collections {
	return Collections{
		Leaves: g.leaves(l),
		Lights: g.lights(l, dense),
		Trunk:  g.trunk(l),
	}
}

func (g *Generator) angle() float64 {
	return g.rnd.Float64() * 2 * math.Pi
}

// 树冠：t 从 0（顶）到 1（底），半径随 t 线性变大
func (g *Generator) leaves(l Layout) []Particle {
	out := make([]Particle, g.cfg.LeafCount)
	for i := range out {
		t := g.rnd.Float64()
		out[i] = Particle{
			Radius: (1 - t) * l.TreeRadius,
			Height: t * l.TreeHeight,
			Angle:  g.angle(),
			Size:   g.cfg.LeafSize.Lerp(g.rnd.Float64()) * g.scale,
			Color:  g.leafColor,
			Kind:   KindLeaf,
		}
	}
	return out
}

func (g *Generator) lights(l Layout, dense bool) []Particle {
	out := make([]Particle, g.LightCount(dense))
	for i := range out {
		t := g.rnd.Float64()
		out[i] = Particle{
			Radius: (1 - t) * l.TreeRadius,
			Height: t * l.TreeHeight,
			Angle:  g.angle(),
			Size:   g.cfg.LightSize * g.scale,
			Color:  g.palette[g.rnd.IntN(len(g.palette))],
			Kind:   KindLight,
		}
	}
	return out
}

// 树干：t 从 0（底）到 1（顶），延伸到树冠中上部，越往上越细
func (g *Generator) trunk(l Layout) []Particle {
	trunkHeight := l.TreeHeight * g.cfg.TrunkHeightFraction
	baseRadius := l.TreeRadius * g.cfg.TrunkBaseFraction

	out := make([]Particle, g.cfg.TrunkCount)
	for i := range out {
		t := g.rnd.Float64()
		out[i] = Particle{
			Radius: (1 - t) * baseRadius * g.cfg.TrunkTaper,
			Height: t * trunkHeight,
			Angle:  g.angle(),
			Size:   g.cfg.TrunkSize.Lerp(g.rnd.Float64()) * g.scale,
			Color:  g.trunkColors[g.rnd.IntN(len(g.trunkColors))],
			Kind:   KindTrunk,
		}
	}
	return out
}
