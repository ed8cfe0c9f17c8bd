package tree

import (
	"errors"
	"fmt"

	"github.com/AisuKyobu/christmas-particle-tree/internal/config"
)

// ErrDegenerateProjection 树半径接近相机距离时透视除法会发散
var ErrDegenerateProjection = errors.New("tree radius too close to camera distance")

// Layout 由画布尺寸推导出的树参数
type Layout struct {
	Width, Height int

	TreeHeight float64
	TreeRadius float64
	CenterX    float64
	GroundY    float64
}

// NewLayout 按比例计算树的位置与大小
func NewLayout(width, height int, cfg config.TreeConfig) Layout {
	w := float64(width)
	h := float64(height)
	return Layout{
		Width:      width,
		Height:     height,
		TreeHeight: h * cfg.HeightFraction,
		TreeRadius: w * cfg.RadiusFraction,
		CenterX:    w * cfg.CenterFraction,
		GroundY:    h * cfg.GroundFraction,
	}
}

// ApexY 树顶的屏幕 Y
func (l Layout) ApexY() float64 {
	return l.GroundY - l.TreeHeight
}

// Validate 保证最大半径远小于相机距离，否则透视缩放会发散
func (l Layout) Validate(cameraDistance, maxFraction float64) error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("layout %dx%d: empty canvas", l.Width, l.Height)
	}
	limit := cameraDistance * maxFraction
	if l.TreeRadius >= limit {
		return fmt.Errorf("layout %dx%d: radius %.1f >= %.1f: %w",
			l.Width, l.Height, l.TreeRadius, limit, ErrDegenerateProjection)
	}
	return nil
}
