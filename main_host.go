package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"threedee/app"
	"threedee/hal"
	"threedee/internal/sceneconf"
)

func main() {
	var cfg hal.HeadlessConfig
	var appCfg app.Config
	var scenePath string
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.StringVar(&cfg.Snapshot, "snapshot", "", "Write the last frame as BMP when headless mode stops after -ticks.")
	flag.StringVar(&scenePath, "scene", "", "Scene file (.yaml); empty runs the three-cube demo.")
	flag.IntVar(&cfg.Width, "width", hal.DefaultWidth, "Framebuffer width in pixels.")
	flag.IntVar(&cfg.Height, "height", hal.DefaultHeight, "Framebuffer height in pixels.")
	flag.IntVar(&cfg.Scale, "scale", hal.DefaultScale, "Window scale factor.")
	flag.BoolVar(&appCfg.LegacyProjection, "legacy-projection", false, "Use the fixed 2.56 focal scale instead of the field of view.")
	flag.BoolVar(&appCfg.HideHUD, "no-hud", false, "Start with the FPS overlay hidden.")
	flag.Parse()

	if scenePath != "" {
		w, err := sceneconf.Load(scenePath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		appCfg.World = w
	}

	newApp := func(h hal.HAL) func() error {
		if scenePath != "" {
			h.Logger().WriteLineString(fmt.Sprintf("scene: loaded %d meshes from %s", len(appCfg.World.Bodies), scenePath))
		}
		return app.NewWithConfig(h, appCfg)
	}

	if cfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, cfg); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, app.ErrQuit) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(cfg.Config, newApp); err != nil {
		if errors.Is(err, app.ErrQuit) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
