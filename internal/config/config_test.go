package config

import (
	"errors"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultValid(t *testing.T) {
	for name, cfg := range map[string]Config{
		"window":   Default(),
		"terminal": DefaultTerminal(),
	} {
		if err := cfg.Validate(); err != nil {
			t.Errorf("%s defaults invalid: %v", name, err)
		}
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, Config)
	}{
		{
			name: "覆盖部分字段",
			yamlContent: `
scale: 0.5
tree:
  lightsDense: 200
  lightPalette: ["#ffffff"]
snow:
  cap: 10
`,
			validate: func(t *testing.T, cfg Config) {
				if cfg.Scale != 0.5 {
					t.Errorf("scale = %.2f, want 0.5", cfg.Scale)
				}
				if cfg.Tree.LightsDense != 200 {
					t.Errorf("lightsDense = %d, want 200", cfg.Tree.LightsDense)
				}
				if len(cfg.Tree.LightPalette) != 1 {
					t.Errorf("lightPalette = %v, want one color", cfg.Tree.LightPalette)
				}
				if cfg.Snow.Cap != 10 {
					t.Errorf("snow.cap = %d, want 10", cfg.Snow.Cap)
				}
				// 未出现的字段保持默认
				if cfg.Tree.LeafCount != 2400 || cfg.Tree.LightsSparse != 60 {
					t.Errorf("defaults lost: leafCount=%d lightsSparse=%d", cfg.Tree.LeafCount, cfg.Tree.LightsSparse)
				}
				if cfg.Projection.CameraDistance != 700 {
					t.Errorf("cameraDistance = %.1f, want 700", cfg.Projection.CameraDistance)
				}
			},
		},
		{
			name:        "概率越界",
			yamlContent: "snow:\n  spawnChance: 1.5\n",
			wantErr:     true,
			errContains: "snow.spawnChance",
		},
		{
			name:        "颜色无法解析",
			yamlContent: "tree:\n  leafColor: green\n",
			wantErr:     true,
			errContains: "bad color",
		},
		{
			name:        "区间反了",
			yamlContent: "barrage:\n  speed: {min: 2, max: 1}\n",
			wantErr:     true,
			errContains: "barrage.speed",
		},
		{
			name:        "空消息列表",
			yamlContent: "barrage:\n  messages: []\n",
			wantErr:     true,
			errContains: "messages",
		},
		{
			name:        "YAML 语法错误",
			yamlContent: "tree: [",
			wantErr:     true,
			errContains: "parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tree.yaml")
			if err := os.WriteFile(path, []byte(tt.yamlContent), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}

			cfg, err := Load(path, Default())
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error = %v, want containing %q", err, tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			tt.validate(t, cfg)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), Default())
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load() error = %v, want not-exist", err)
	}
}

func TestRangeLerp(t *testing.T) {
	r := Range{Min: 0.6, Max: 1.2}
	if got := r.Lerp(0); got != 0.6 {
		t.Errorf("Lerp(0) = %.2f", got)
	}
	if got := r.Lerp(0.5); got < 0.899 || got > 0.901 {
		t.Errorf("Lerp(0.5) = %.4f, want 0.9", got)
	}
}

func TestPx(t *testing.T) {
	cfg := DefaultTerminal()
	if got := cfg.Px(100); math.Abs(got-35) > 1e-9 {
		t.Errorf("Px(100) = %.2f, want 35", got)
	}
}

func TestLoadExampleFile(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "tree.example.yaml"), DefaultTerminal())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Tree.LightsDense != 160 || cfg.Tree.LightsSparse != 40 {
		t.Errorf("lights = %d/%d, want 160/40", cfg.Tree.LightsDense, cfg.Tree.LightsSparse)
	}
	if cfg.Scale != 0.35 {
		t.Errorf("scale = %.2f, want terminal default 0.35", cfg.Scale)
	}
	if len(cfg.Barrage.Messages) != 3 {
		t.Errorf("messages = %d, want 3", len(cfg.Barrage.Messages))
	}
}
