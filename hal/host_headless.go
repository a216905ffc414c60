package hal

import (
	"context"
	"fmt"
	"os"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Config

	Enabled bool
	Hz      int
	Ticks   uint64

	// Snapshot, when set, receives the last presented frame as a BMP file
	// after the runner stops on its own (Ticks reached).
	Snapshot string
}

// RunHeadless runs the app without opening a window.
//
// Each runner tick advances host time by the wall-clock delta and calls the
// step function once.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	h := newHost(cfg.Config, os.Stderr)
	step := newApp(h)

	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			h.t.step()
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return writeSnapshotFile(h.fb, cfg.Snapshot)
			}
		}
	}
}
