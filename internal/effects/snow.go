package effects

import (
	"math"
	"math/rand/v2"

	"github.com/AisuKyobu/christmas-particle-tree/internal/config"
)

// Snowflake 一片雪花
type Snowflake struct {
	X, Y   float64
	R      float64
	VX, VY float64
	Sway   float64 // 摆动相位
}

// Snow 有上限的雪花集合
type Snow struct {
	Flakes []Snowflake

	cfg   config.SnowConfig
	scale float64
	rnd   *rand.Rand
}

// NewSnow 创建空的雪花集合
func NewSnow(cfg config.SnowConfig, scale float64, rnd *rand.Rand) *Snow {
	return &Snow{
		Flakes: make([]Snowflake, 0, cfg.Cap),
		cfg:    cfg,
		scale:  scale,
		rnd:    rnd,
	}
}

// Cap 雪花数量上限
func (s *Snow) Cap() int {
	return s.cfg.Cap
}

// MaybeSpawn 数量未达上限且概率命中时，在顶部随机位置生成一片
func (s *Snow) MaybeSpawn(width int, steps float64) bool {
	if len(s.Flakes) >= s.cfg.Cap || !roll(s.rnd, s.cfg.SpawnChance, steps) {
		return false
	}
	s.Flakes = append(s.Flakes, Snowflake{
		X:    s.rnd.Float64() * float64(width),
		Y:    s.cfg.StartY * s.scale,
		R:    s.cfg.Radius.Lerp(s.rnd.Float64()) * s.scale,
		VY:   s.cfg.Fall.Lerp(s.rnd.Float64()) * s.scale,
		VX:   s.cfg.Drift.Lerp(s.rnd.Float64()) * s.scale,
		Sway: s.rnd.Float64() * 2 * math.Pi,
	})
	return true
}

// Add 直接放入一片雪花，超过上限时丢弃
func (s *Snow) Add(f Snowflake) bool {
	if len(s.Flakes) >= s.cfg.Cap {
		return false
	}
	s.Flakes = append(s.Flakes, f)
	return true
}

// Update 摆动、漂移、下落，然后移除落出底边的雪花
func (s *Snow) Update(steps float64, height int) {
	amp := s.cfg.SwayAmplitude * s.scale
	for i := range s.Flakes {
		f := &s.Flakes[i]
		f.Sway += s.cfg.SwayStep * steps
		f.X += (math.Sin(f.Sway)*amp + f.VX) * steps
		f.Y += f.VY * steps
	}
	s.Flakes = PruneSnow(s.Flakes, float64(height))
}

// PruneSnow 移除中心已经低于 bottom 的雪花，原地过滤
func PruneSnow(flakes []Snowflake, bottom float64) []Snowflake {
	kept := flakes[:0]
	for _, f := range flakes {
		if f.Y <= bottom {
			kept = append(kept, f)
		}
	}
	clear(flakes[len(kept):])
	return kept
}
