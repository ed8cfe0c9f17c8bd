package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// 配置默认值取自网页版圣诞树的常量
// 所有"像素"量（粒子尺寸、速度、偏移）都会乘以 Scale，
// 终端里一个像素是半个字符格，所以终端默认用更小的 Scale

// Range 闭开区间 [Min, Max)
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Lerp 把 [0,1) 的随机数映射到区间内
func (r Range) Lerp(u float64) float64 {
	return r.Min + u*(r.Max-r.Min)
}

func (r Range) validate(name string) error {
	if r.Max < r.Min {
		return fmt.Errorf("%s: max %.3f < min %.3f", name, r.Max, r.Min)
	}
	return nil
}

// Config 整体配置
type Config struct {
	Scale      float64          `yaml:"scale"`
	FPS        int              `yaml:"fps"`
	Background string           `yaml:"background"`
	Projection ProjectionConfig `yaml:"projection"`
	Tree       TreeConfig       `yaml:"tree"`
	Star       StarConfig       `yaml:"star"`
	Greeting   GreetingConfig   `yaml:"greeting"`
	Barrage    BarrageConfig    `yaml:"barrage"`
	Snow       SnowConfig       `yaml:"snow"`
}

// ProjectionConfig 透视与旋转
type ProjectionConfig struct {
	CameraDistance    float64 `yaml:"cameraDistance"`
	MaxRadiusFraction float64 `yaml:"maxRadiusFraction"` // 树半径必须小于 CameraDistance*该值
	RotationStep      float64 `yaml:"rotationStep"`      // 每个参考帧的旋转量（弧度）
	ReferenceFPS      float64 `yaml:"referenceFPS"`      // 每帧常量对应的帧率
}

// TreeConfig 树的布局比例、粒子数量与颜色
type TreeConfig struct {
	HeightFraction float64 `yaml:"heightFraction"`
	RadiusFraction float64 `yaml:"radiusFraction"`
	CenterFraction float64 `yaml:"centerFraction"`
	GroundFraction float64 `yaml:"groundFraction"`

	LeafCount int     `yaml:"leafCount"`
	LeafColor string  `yaml:"leafColor"`
	LeafSize  Range   `yaml:"leafSize"`
	LeafAlpha float64 `yaml:"leafAlpha"`

	LightsDense      int      `yaml:"lightsDense"`
	LightsSparse     int      `yaml:"lightsSparse"`
	LightPalette     []string `yaml:"lightPalette"`
	LightSize        float64  `yaml:"lightSize"`
	LightAlphaBase   float64  `yaml:"lightAlphaBase"`
	LightAlphaSwing  float64  `yaml:"lightAlphaSwing"`
	LightTwinkleRate float64  `yaml:"lightTwinkleRate"` // 闪烁相位 = 旋转角 * 该值

	TrunkCount          int      `yaml:"trunkCount"`
	TrunkHeightFraction float64  `yaml:"trunkHeightFraction"` // 相对树高
	TrunkBaseFraction   float64  `yaml:"trunkBaseFraction"`   // 相对树半径
	TrunkTaper          float64  `yaml:"trunkTaper"`
	TrunkColors         []string `yaml:"trunkColors"`
	TrunkSize           Range    `yaml:"trunkSize"`
	TrunkAlpha          float64  `yaml:"trunkAlpha"`
}

// StarConfig 树顶星星
type StarConfig struct {
	Color  string  `yaml:"color"`
	Points int     `yaml:"points"`
	Outer  float64 `yaml:"outer"`
	Inner  float64 `yaml:"inner"`
	Offset float64 `yaml:"offset"` // 星星中心距树顶的高度
	Glow   float64 `yaml:"glow"`
}

// GreetingConfig 中央祝福语
type GreetingConfig struct {
	Text      string  `yaml:"text"`
	Color     string  `yaml:"color"`
	GlowColor string  `yaml:"glowColor"`
	GlowBase  float64 `yaml:"glowBase"`
	GlowSwing float64 `yaml:"glowSwing"`
	PulseRate float64 `yaml:"pulseRate"` // 每秒弧度，网页版为 performance.now()*0.002
	YFraction float64 `yaml:"yFraction"`
	FontSize  float64 `yaml:"fontSize"`
}

// BarrageConfig 弹幕
type BarrageConfig struct {
	Messages    []string `yaml:"messages"`
	SpawnChance float64  `yaml:"spawnChance"` // 每个参考帧
	StartOffset float64  `yaml:"startOffset"` // 出生点在右边缘外的距离
	Band        Range    `yaml:"band"`        // 纵向位置，相对屏幕高
	Speed       Range    `yaml:"speed"`
	Alpha       Range    `yaml:"alpha"`
	ExitX       float64  `yaml:"exitX"` // x 小于等于该值时移除
	Color       string   `yaml:"color"`
	FontSize    float64  `yaml:"fontSize"`
}

// SnowConfig 雪花
type SnowConfig struct {
	Cap           int     `yaml:"cap"`
	SpawnChance   float64 `yaml:"spawnChance"`
	StartY        float64 `yaml:"startY"`
	Radius        Range   `yaml:"radius"`
	Fall          Range   `yaml:"fall"`
	Drift         Range   `yaml:"drift"`
	SwayStep      float64 `yaml:"swayStep"`
	SwayAmplitude float64 `yaml:"swayAmplitude"`
	Alpha         float64 `yaml:"alpha"`
	Color         string  `yaml:"color"`
}

// Default 返回与网页版一致的默认配置（窗口模式，Scale=1）
func Default() Config {
	return Config{
		Scale:      1,
		FPS:        60,
		Background: "#060a28",
		Projection: ProjectionConfig{
			CameraDistance:    700,
			MaxRadiusFraction: 0.9,
			RotationStep:      0.003,
			ReferenceFPS:      60,
		},
		Tree: TreeConfig{
			HeightFraction: 0.6,
			RadiusFraction: 0.22,
			CenterFraction: 0.5,
			GroundFraction: 0.82,

			LeafCount: 2400,
			LeafColor: "#2ecc71",
			LeafSize:  Range{Min: 0.6, Max: 2.0},
			LeafAlpha: 0.6,

			LightsDense:      120,
			LightsSparse:     60,
			LightPalette:     []string{"#ff4d4d", "#ffd93d", "#4dd2ff"},
			LightSize:        2.8,
			LightAlphaBase:   0.85,
			LightAlphaSwing:  0.15,
			LightTwinkleRate: 6,

			TrunkCount:          520,
			TrunkHeightFraction: 0.78,
			TrunkBaseFraction:   0.20,
			TrunkTaper:          0.6,
			TrunkColors:         []string{"#8b5a2b", "#7a4a24"},
			TrunkSize:           Range{Min: 0.8, Max: 2.4},
			TrunkAlpha:          0.95,
		},
		Star: StarConfig{
			Color:  "#ffe066",
			Points: 5,
			Outer:  14,
			Inner:  6,
			Offset: 30,
			Glow:   25,
		},
		Greeting: GreetingConfig{
			Text:      "老登们，Merry Christmas!🎄",
			Color:     "#ffffff",
			GlowColor: "#ffcc66",
			GlowBase:  20,
			GlowSwing: 6,
			PulseRate: 2,
			YFraction: 0.18,
			FontSize:  36,
		},
		Barrage: BarrageConfig{
			Messages: []string{
				"不管博几也要记得好好睡觉 ☕",
				"实验会出结果的，别急",
				"数据终会收敛，心也会",
				"论文慢慢写，也是在前进",
				"今晚不写代码也没关系",
				"你已经很努力了",
				"祝你顺利毕业 🎓",
				"圣诞夜，允许自己放松一下",
			},
			SpawnChance: 0.015,
			StartOffset: 50,
			Band:        Range{Min: 0.25, Max: 0.70},
			Speed:       Range{Min: 0.6, Max: 1.2},
			Alpha:       Range{Min: 0.6, Max: 1.0},
			ExitX:       -300,
			Color:       "#ffffff",
			FontSize:    16,
		},
		Snow: SnowConfig{
			Cap:           160,
			SpawnChance:   0.7,
			StartY:        -10,
			Radius:        Range{Min: 0.6, Max: 2.6},
			Fall:          Range{Min: 0.4, Max: 1.0},
			Drift:         Range{Min: -0.2, Max: 0.2},
			SwayStep:      0.01,
			SwayAmplitude: 0.2,
			Alpha:         0.5,
			Color:         "#ffffff",
		},
	}
}

// DefaultTerminal 终端模式的默认配置
// 终端像素（半个字符格）比浏览器像素大得多，统一缩小像素量
func DefaultTerminal() Config {
	cfg := Default()
	cfg.Scale = 0.35
	cfg.FPS = 30
	return cfg
}

// Load 在 base 之上叠加 YAML 文件中的字段
func Load(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return base, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Px 把参考像素量换算成当前画布像素
func (c Config) Px(v float64) float64 {
	return v * c.Scale
}

// Validate 检查配置的有效性
func (c Config) Validate() error {
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be > 0, got %.3f", c.Scale)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be > 0, got %d", c.FPS)
	}

	p := c.Projection
	if p.CameraDistance <= 0 {
		return fmt.Errorf("projection.cameraDistance must be > 0, got %.3f", p.CameraDistance)
	}
	if p.MaxRadiusFraction <= 0 || p.MaxRadiusFraction >= 1 {
		return fmt.Errorf("projection.maxRadiusFraction must be in (0,1), got %.3f", p.MaxRadiusFraction)
	}
	if p.ReferenceFPS <= 0 {
		return fmt.Errorf("projection.referenceFPS must be > 0, got %.3f", p.ReferenceFPS)
	}

	t := c.Tree
	if t.LeafCount < 0 || t.TrunkCount < 0 || t.LightsDense < 0 || t.LightsSparse < 0 {
		return errors.New("tree particle counts cannot be negative")
	}
	if len(t.LightPalette) == 0 {
		return errors.New("tree.lightPalette cannot be empty")
	}
	if len(t.TrunkColors) == 0 {
		return errors.New("tree.trunkColors cannot be empty")
	}
	if t.LightSize <= 0 {
		return fmt.Errorf("tree.lightSize must be > 0, got %.3f", t.LightSize)
	}
	if t.LeafSize.Min <= 0 || t.TrunkSize.Min <= 0 {
		return errors.New("particle sizes must be > 0")
	}
	for name, r := range map[string]Range{
		"tree.leafSize":  t.LeafSize,
		"tree.trunkSize": t.TrunkSize,
		"barrage.band":   c.Barrage.Band,
		"barrage.speed":  c.Barrage.Speed,
		"barrage.alpha":  c.Barrage.Alpha,
		"snow.radius":    c.Snow.Radius,
		"snow.fall":      c.Snow.Fall,
		"snow.drift":     c.Snow.Drift,
	} {
		if err := r.validate(name); err != nil {
			return err
		}
	}

	if c.Star.Points < 2 {
		return fmt.Errorf("star.points must be >= 2, got %d", c.Star.Points)
	}
	if len(c.Barrage.Messages) == 0 {
		return errors.New("barrage.messages cannot be empty")
	}
	for name, v := range map[string]float64{
		"barrage.spawnChance": c.Barrage.SpawnChance,
		"snow.spawnChance":    c.Snow.SpawnChance,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s must be in [0,1], got %.3f", name, v)
		}
	}
	if c.Snow.Cap < 0 {
		return fmt.Errorf("snow.cap must be >= 0, got %d", c.Snow.Cap)
	}

	colors := []string{
		c.Background, t.LeafColor, c.Star.Color, c.Greeting.Color,
		c.Greeting.GlowColor, c.Barrage.Color, c.Snow.Color,
	}
	colors = append(colors, t.LightPalette...)
	colors = append(colors, t.TrunkColors...)
	for _, hex := range colors {
		if _, err := colorful.Hex(hex); err != nil {
			return fmt.Errorf("bad color %q: %w", hex, err)
		}
	}

	return nil
}

// MustColor 解析已通过 Validate 的颜色
func MustColor(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		panic(fmt.Sprintf("config: bad color %q: %v", hex, err))
	}
	return c
}
