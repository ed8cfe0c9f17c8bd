package effects

import (
	"math/rand/v2"

	"github.com/AisuKyobu/christmas-particle-tree/internal/config"
)

// Barrage 从右向左滚动的一条消息
type Barrage struct {
	Text  string
	X, Y  float64
	Speed float64
	Alpha float64
}

// Barrages 弹幕集合
type Barrages struct {
	Items []Barrage

	cfg   config.BarrageConfig
	scale float64
	rnd   *rand.Rand
}

// NewBarrages 创建空的弹幕集合
func NewBarrages(cfg config.BarrageConfig, scale float64, rnd *rand.Rand) *Barrages {
	return &Barrages{cfg: cfg, scale: scale, rnd: rnd}
}

// ExitX 弹幕被移除的横坐标
func (b *Barrages) ExitX() float64 {
	return b.cfg.ExitX * b.scale
}

// MaybeSpawn 以小概率在右边缘外生成一条弹幕
func (b *Barrages) MaybeSpawn(width, height int, steps float64) bool {
	if !roll(b.rnd, b.cfg.SpawnChance, steps) {
		return false
	}
	b.Spawn(width, height)
	return true
}

// Spawn 立即生成一条弹幕
func (b *Barrages) Spawn(width, height int) {
	msgs := b.cfg.Messages
	b.Items = append(b.Items, Barrage{
		Text:  msgs[b.rnd.IntN(len(msgs))],
		X:     float64(width) + b.cfg.StartOffset*b.scale,
		Y:     float64(height) * b.cfg.Band.Lerp(b.rnd.Float64()),
		Speed: b.cfg.Speed.Lerp(b.rnd.Float64()) * b.scale,
		Alpha: b.cfg.Alpha.Lerp(b.rnd.Float64()),
	})
}

// Update 向左移动并移除已离开画面的弹幕
func (b *Barrages) Update(steps float64) {
	for i := range b.Items {
		b.Items[i].X -= b.Items[i].Speed * steps
	}
	b.Items = PruneBarrages(b.Items, b.ExitX())
}

// PruneBarrages 保留 X 仍大于 exitX 的弹幕，原地过滤
func PruneBarrages(items []Barrage, exitX float64) []Barrage {
	kept := items[:0]
	for _, it := range items {
		if it.X > exitX {
			kept = append(kept, it)
		}
	}
	clear(items[len(kept):])
	return kept
}
