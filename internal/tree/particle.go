// Package tree 圣诞树的粒子模型、透视投影与场景生成
//
// 粒子坐标是一个绕树干竖轴的圆柱坐标系：
// Radius 到竖轴的距离，Height 离地高度，Angle 绕轴角度。
package tree

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Kind 粒子类别，决定绘制时的透明度规则
type Kind uint8

const (
	KindLeaf Kind = iota
	KindLight
	KindTrunk
)

func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindLight:
		return "light"
	case KindTrunk:
		return "trunk"
	}
	return "unknown"
}

// Particle 圆柱坐标中的一个点，创建后不再修改
type Particle struct {
	Radius float64
	Height float64
	Angle  float64 // 弧度
	Size   float64
	Color  colorful.Color
	Kind   Kind
}

// Collections 三组粒子，只会整体重建
type Collections struct {
	Leaves []Particle
	Lights []Particle
	Trunk  []Particle
}

// Len 粒子总数
func (c *Collections) Len() int {
	return len(c.Leaves) + len(c.Lights) + len(c.Trunk)
}

// MaxRadius 所有粒子中最大的 Radius
func (c *Collections) MaxRadius() float64 {
	maxR := 0.0
	for _, group := range [][]Particle{c.Trunk, c.Leaves, c.Lights} {
		for i := range group {
			if group[i].Radius > maxR {
				maxR = group[i].Radius
			}
		}
	}
	return maxR
}
