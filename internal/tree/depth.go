package tree

import (
	"cmp"
	"slices"

	"github.com/lucasb-eyer/go-colorful"
)

// Drawable 投影后的粒子，携带绘制所需的类别和颜色
type Drawable struct {
	Projected
	Kind  Kind
	Color colorful.Color
}

// Project 投影所有粒子并按深度排序，远的在前（画家算法）
// buf 会被复用以避免每帧分配
func (s *Scene) Project(buf []Drawable) []Drawable {
	buf = buf[:0]
	for _, group := range [][]Particle{s.Trunk, s.Leaves, s.Lights} {
		for i := range group {
			p := &group[i]
			buf = append(buf, Drawable{
				Projected: s.projector.Project(p, s.Rotation),
				Kind:      p.Kind,
				Color:     p.Color,
			})
		}
	}
	SortByDepth(buf)
	return buf
}

// SortByDepth 按 Depth 升序稳定排序
func SortByDepth(ds []Drawable) {
	slices.SortStableFunc(ds, func(a, b Drawable) int {
		return cmp.Compare(a.Depth, b.Depth)
	})
}
