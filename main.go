// Command christmas-particle-tree 在终端里显示一棵旋转的粒子圣诞树
//
// 点击鼠标切换彩灯密度，q / Esc / Ctrl-C 退出。
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/AisuKyobu/christmas-particle-tree/internal/config"
	"github.com/AisuKyobu/christmas-particle-tree/internal/termui"
)

var (
	configFlag = flag.String("config", "", "YAML 配置文件，覆盖默认参数")
	seedFlag   = flag.Uint64("seed", 0, "随机种子，0 表示按当前时间")
	fpsFlag    = flag.Int("fps", 0, "帧率，0 表示使用配置")
	logFlag    = flag.String("log", "", "日志文件（终端被动画占用，默认不输出日志）")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal")
	}

	logger, closeLog, err := newLogger(*logFlag)
	if err != nil {
		return err
	}
	defer closeLog()

	// 1. 配置
	cfg := config.DefaultTerminal()
	if *configFlag != "" {
		if cfg, err = config.Load(*configFlag, cfg); err != nil {
			return err
		}
		logger.Info("config loaded", "path", *configFlag)
	}
	if *fpsFlag > 0 {
		cfg.FPS = *fpsFlag
	}

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rnd := rand.New(rand.NewPCG(seed, seed>>1))

	// 2. 初始化 Tcell
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	app, err := termui.NewApp(screen, cfg, rnd, logger)
	if err != nil {
		return err
	}

	// 监听系统信号 (Ctrl+C / SIGTERM) 以优雅退出
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting", "backend", "terminal", "seed", seed, "fps", cfg.FPS)
	return app.Run(ctx)
}

func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { f.Close() }, nil
}
