// Package effects 弹幕与雪花两种环境特效
//
// 每种特效自己维护一个会自动清理的集合；
// 移动和清理与绘制分开，便于单独测试。
package effects

import (
	"math"
	"math/rand/v2"
)

// Chance 把每个参考帧的概率换算成 steps 个参考帧的概率
func Chance(p, steps float64) float64 {
	if p <= 0 || steps <= 0 {
		return 0
	}
	if p >= 1 {
		return 1
	}
	return 1 - math.Pow(1-p, steps)
}

func roll(rnd *rand.Rand, p, steps float64) bool {
	return rnd.Float64() < Chance(p, steps)
}
