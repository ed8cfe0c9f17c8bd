package animation

import (
	"math"

	"github.com/AisuKyobu/christmas-particle-tree/internal/tree"
)

// 星星光晕相对 shadowBlur 的强度
const starGlowStrength = 0.55

// LightAlpha 彩灯透明度，随旋转角闪烁
func (a *Animator) LightAlpha() float64 {
	t := a.cfg.Tree
	v := t.LightAlphaBase + math.Sin(a.scene.Rotation*t.LightTwinkleRate)*t.LightAlphaSwing
	return math.Max(0, math.Min(1, v))
}

// AlphaFor 按粒子类别返回透明度
func (a *Animator) AlphaFor(k tree.Kind) float64 {
	switch k {
	case tree.KindTrunk:
		return a.cfg.Tree.TrunkAlpha
	case tree.KindLight:
		return a.LightAlpha()
	default:
		return a.cfg.Tree.LeafAlpha
	}
}

// Draw 画一帧：粒子按深度从远到近，然后是星星、祝福、弹幕、雪花
func (a *Animator) Draw(s Surface) {
	s.Clear(a.colors.background)

	a.drawables = a.scene.Project(a.drawables)
	lightAlpha := a.LightAlpha()
	for i := range a.drawables {
		d := &a.drawables[i]
		alpha := lightAlpha
		if d.Kind != tree.KindLight {
			alpha = a.AlphaFor(d.Kind)
		}
		s.FillCircle(d.X, d.Y, d.R, d.Color, alpha)
	}

	a.drawStar(s)
	a.drawGreeting(s)
	a.drawBarrages(s)
	a.drawSnow(s)
}

// StarCenter 星星中心，在树顶上方
func (a *Animator) StarCenter() Point {
	l := a.scene.Layout()
	return Point{X: l.CenterX, Y: l.ApexY() - a.cfg.Px(a.cfg.Star.Offset)}
}

func (a *Animator) drawStar(s Surface) {
	st := a.cfg.Star
	c := a.StarCenter()
	s.Glow(c.X, c.Y, a.cfg.Px(st.Outer+st.Glow), a.colors.star, starGlowStrength)
	s.FillPolygon(StarPoints(c.X, c.Y, a.cfg.Px(st.Outer), a.cfg.Px(st.Inner), st.Points), a.colors.star, 1)
}

func (a *Animator) drawGreeting(s Surface) {
	g := a.cfg.Greeting
	l := a.scene.Layout()
	s.DrawText(g.Text, l.CenterX, float64(a.height)*g.YFraction, TextStyle{
		Color:      a.colors.greeting,
		Alpha:      1,
		Size:       a.cfg.Px(g.FontSize),
		Align:      AlignCenter,
		Bold:       true,
		Glow:       a.colors.glow,
		GlowRadius: a.cfg.Px(a.pulse.Value()),
	})
}

func (a *Animator) drawBarrages(s Surface) {
	size := a.cfg.Px(a.cfg.Barrage.FontSize)
	for _, b := range a.barrages.Items {
		s.DrawText(b.Text, b.X, b.Y, TextStyle{
			Color: a.colors.barrage,
			Alpha: b.Alpha,
			Size:  size,
			Align: AlignLeft,
		})
	}
}

func (a *Animator) drawSnow(s Surface) {
	for _, f := range a.snow.Flakes {
		s.FillCircle(f.X, f.Y, f.R, a.colors.snow, a.cfg.Snow.Alpha)
	}
}
