package tree

import (
	"fmt"
	"math"
)

// Projected 一帧内的屏幕坐标，不保存
type Projected struct {
	X, Y  float64
	R     float64
	Depth float64 // z3，越大越靠近观察者
}

// Projector 固定距离的透视投影
type Projector struct {
	CenterX  float64
	GroundY  float64
	Distance float64
}

// NewProjector 从布局构造投影器
func NewProjector(l Layout, distance float64) Projector {
	return Projector{CenterX: l.CenterX, GroundY: l.GroundY, Distance: distance}
}

// Project 把粒子按当前旋转角投影到屏幕
func (pr Projector) Project(p *Particle, rotation float64) Projected {
	a := p.Angle + rotation
	x3 := math.Cos(a) * p.Radius
	z3 := math.Sin(a) * p.Radius

	denom := pr.Distance + z3
	if !(denom > 0) || math.IsInf(denom, 0) {
		panic(fmt.Sprintf("tree: degenerate projection (distance %.2f, z %.2f)", pr.Distance, z3))
	}
	scale := pr.Distance / denom

	return Projected{
		X:     pr.CenterX + x3*scale,
		Y:     pr.GroundY - p.Height*scale,
		R:     p.Size * scale,
		Depth: z3,
	}
}
