// Command tree-window 在 ebiten 窗口中显示粒子圣诞树
//
// Usage:
//
//	go run ./cmd/tree-window [flags]
//
// Flags:
//
//	-config <path>   YAML 配置文件
//	-font <path>     TTF/OTF 字体（显示中文祝福语和弹幕需要）
//	-width, -height  初始窗口尺寸
//	-seed <n>        随机种子
//
// 点击窗口切换彩灯密度。
package main

import (
	"flag"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/AisuKyobu/christmas-particle-tree/internal/config"
	"github.com/AisuKyobu/christmas-particle-tree/internal/window"
)

var (
	configFlag  = flag.String("config", "", "YAML config file")
	fontFlag    = flag.String("font", "", "TTF/OTF font file, needed for CJK text")
	widthFlag   = flag.Int("width", 1280, "initial window width")
	heightFlag  = flag.Int("height", 800, "initial window height")
	seedFlag    = flag.Uint64("seed", 0, "random seed, 0 uses the current time")
	verboseFlag = flag.Bool("verbose", false, "enable debug logging")
)

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *verboseFlag {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg := config.Default()
	if *configFlag != "" {
		var err error
		if cfg, err = config.Load(*configFlag, cfg); err != nil {
			slog.Error("failed to load config", "error", err)
			os.Exit(1)
		}
		slog.Info("config loaded", "path", *configFlag)
	}

	var (
		fonts *window.Fonts
		err   error
	)
	if *fontFlag != "" {
		fonts, err = window.LoadFonts(*fontFlag)
	} else {
		fonts, err = window.DefaultFonts()
	}
	if err != nil {
		slog.Error("failed to load font", "error", err)
		os.Exit(1)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	slog.Info("starting", "backend", "window", "seed", seed)

	opts := window.Options{
		Title:  "Merry Christmas",
		Width:  *widthFlag,
		Height: *heightFlag,
	}
	if err := window.Run(cfg, opts, fonts, rand.New(rand.NewPCG(seed, seed>>1)), logger); err != nil {
		slog.Error("window exited", "error", err)
		os.Exit(1)
	}
}
