package animation

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Pulse 在 base±swing 之间往返的正弦脉冲
// 半个周期用一段 InOutSine 补间，结束后反向重建
type Pulse struct {
	lo, hi float32
	half   float32
	rising bool
	tween  *gween.Tween
	value  float64
}

// NewPulse rate 为每秒弧度，与 base+swing*sin(rate*t) 的周期一致
func NewPulse(base, swing, rate float64) *Pulse {
	p := &Pulse{
		lo:    float32(base - swing),
		hi:    float32(base + swing),
		value: base,
	}
	if swing == 0 || rate <= 0 {
		return p
	}
	p.half = float32(math.Pi / rate)
	p.rising = true
	p.value = float64(p.lo)
	p.tween = gween.New(p.lo, p.hi, p.half, ease.InOutSine)
	return p
}

// Value 当前值
func (p *Pulse) Value() float64 {
	return p.value
}

// Update 推进 dt 秒
func (p *Pulse) Update(dt float64) float64 {
	if p.tween == nil {
		return p.value
	}
	v, done := p.tween.Update(float32(dt))
	// 超出半周期的时间计入下一段，周期不漂移
	for done {
		over := p.tween.Overflow
		p.rising = !p.rising
		if p.rising {
			p.tween = gween.New(p.lo, p.hi, p.half, ease.InOutSine)
		} else {
			p.tween = gween.New(p.hi, p.lo, p.half, ease.InOutSine)
		}
		v, done = p.tween.Update(over)
	}
	p.value = float64(v)
	return p.value
}
