package app

import (
	"errors"
	"fmt"
	"math"

	"threedee/hal"
	"threedee/internal/buildinfo"
	"threedee/wire3d"
)

// ErrQuit is returned by the step function once the user asks to exit.
var ErrQuit = errors.New("app: quit")

const (
	frameIntervalTicks = 33
	fpsReportTicks     = 1000
)

const (
	orbitStep wire3d.Scalar = 0.1
	zoomStep  wire3d.Scalar = 1
	minRadius wire3d.Scalar = 2
	maxRadius wire3d.Scalar = 100
)

var (
	background = wire3d.White
	foreground = wire3d.Black
)

type Config struct {
	// World is rendered instead of DefaultWorld when set.
	World *World

	LegacyProjection bool
	HideHUD          bool
}

type system struct {
	log   hal.Logger
	fb    hal.Framebuffer
	ticks <-chan uint64
	keys  <-chan hal.KeyEvent

	world  *World
	meshes []*wire3d.Mesh

	home     wire3d.Camera
	orbit    wire3d.OrbitController
	orbiting bool

	fc     *wire3d.FrameContext
	target *wire3d.RGB565Target
	hud    *hud

	paused  bool
	showHUD bool
	quit    bool

	now        uint64
	lastFrame  uint64
	lastReport uint64
	frames     int
	fps        int
}

// New initializes the renderer with the demo world.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{})
}

// NewWithConfig initializes the renderer and returns its step function. The
// host calls step repeatedly; each call consumes pending ticks and key
// events and draws a frame once every frameIntervalTicks.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	s := newSystem(h, cfg)
	return s.step
}

func newSystem(h hal.HAL, cfg Config) *system {
	w := cfg.World
	if w == nil {
		w = DefaultWorld()
	}
	s := &system{
		log:     h.Logger(),
		world:   w,
		meshes:  w.Meshes(),
		home:    w.Camera,
		showHUD: !cfg.HideHUD,
	}
	s.fc = wire3d.NewFrameContext(w.Camera)
	s.fc.LegacyProjection = cfg.LegacyProjection
	s.orbit = orbitFrom(w.Camera)

	if disp := h.Display(); disp != nil {
		if fb := disp.Framebuffer(); fb != nil && fb.Format() == hal.PixelFormatRGB565 {
			s.fb = fb
			s.target = &wire3d.RGB565Target{
				Buf:    fb.Buffer(),
				Stride: fb.StrideBytes(),
				W:      fb.Width(),
				H:      fb.Height(),
			}
			s.hud = newHUD(s.target)
		}
	}
	if in := h.Input(); in != nil {
		if kbd := in.Keyboard(); kbd != nil {
			s.keys = kbd.Events()
		}
	}
	if ht := h.Time(); ht != nil {
		s.ticks = ht.Ticks()
	}

	s.logf("start: threedee %s, %d meshes", buildinfo.String(), len(s.meshes))
	if s.fb == nil {
		s.logf("display: no rgb565 framebuffer, drawing disabled")
	}
	return s
}

func (s *system) step() (err error) {
	defer s.recoverPanic(&err)

	s.drainKeys()
	if s.quit {
		return ErrQuit
	}
	if !s.drainTicks() {
		return nil
	}
	s.reportFPS()

	if s.lastFrame != 0 && s.now-s.lastFrame < frameIntervalTicks {
		return nil
	}
	s.lastFrame = s.now
	if !s.paused {
		s.world.Step()
	}
	return s.draw()
}

// drainTicks moves s.now to the newest pending tick. It reports whether any
// tick arrived.
func (s *system) drainTicks() bool {
	got := false
	for {
		select {
		case seq, ok := <-s.ticks:
			if !ok {
				s.ticks = nil
				return got
			}
			s.now = seq
			got = true
		default:
			return got
		}
	}
}

func (s *system) drainKeys() {
	for {
		select {
		case ev, ok := <-s.keys:
			if !ok {
				s.keys = nil
				return
			}
			s.handleKey(ev)
		default:
			return
		}
	}
}

func (s *system) handleKey(ev hal.KeyEvent) {
	if !ev.Press {
		return
	}
	switch ev.Code {
	case hal.KeyLeft:
		s.rotateCamera(-orbitStep, 0)
	case hal.KeyRight:
		s.rotateCamera(orbitStep, 0)
	case hal.KeyUp:
		s.rotateCamera(0, orbitStep)
	case hal.KeyDown:
		s.rotateCamera(0, -orbitStep)
	case hal.KeyEnter:
		s.resetCamera()
	case hal.KeyEscape:
		s.quit = true
	}

	switch ev.Rune {
	case ' ':
		s.paused = !s.paused
		if s.paused {
			s.logf("update: paused")
		} else {
			s.logf("update: resumed")
		}
	case 'h', 'H':
		s.showHUD = !s.showHUD
	case '+', '=':
		s.zoomCamera(-zoomStep)
	case '-', '_':
		s.zoomCamera(zoomStep)
	case 'q', 'Q':
		s.quit = true
	}
}

func (s *system) rotateCamera(yaw, pitch wire3d.Scalar) {
	s.orbit.Rotate(yaw, pitch)
	s.orbiting = true
	s.orbit.Apply(&s.fc.Camera)
}

func (s *system) zoomCamera(delta wire3d.Scalar) {
	s.orbit.Zoom(delta)
	s.orbiting = true
	s.orbit.Apply(&s.fc.Camera)
}

func (s *system) resetCamera() {
	s.orbiting = false
	s.orbit = orbitFrom(s.home)
	s.fc.Camera = s.home
}

// orbitFrom returns an orbit controller that reproduces cam.
func orbitFrom(cam wire3d.Camera) wire3d.OrbitController {
	d := cam.Position.Sub(cam.Target)
	r := wire3d.Scalar(math.Sqrt(float64(wire3d.Dot(d, d))))
	o := wire3d.OrbitController{
		Target:    cam.Target,
		Radius:    r,
		MinRadius: minRadius,
		MaxRadius: max(maxRadius, r),
	}
	if r > 0 {
		sinPitch := math.Max(-1, math.Min(1, float64(d.Y/r)))
		o.Yaw = wire3d.Scalar(math.Atan2(float64(d.X), float64(d.Z)))
		o.Pitch = wire3d.Scalar(math.Asin(sinPitch))
	}
	return o
}

func (s *system) reportFPS() {
	if s.lastReport == 0 {
		s.lastReport = s.now
		return
	}
	if s.now-s.lastReport < fpsReportTicks {
		return
	}
	s.lastReport = s.now
	s.fps = s.frames
	s.frames = 0
	s.logf("fps: %d", s.fps)
}

func (s *system) draw() error {
	s.frames++
	if s.fb == nil {
		return nil
	}

	s.fb.ClearRGB(background.R, background.G, background.B)
	s.fc.Render(s.target, foreground, s.meshes...)

	if s.showHUD {
		s.hud.drawText(2, 2, fmt.Sprintf("FPS %d", s.fps), foreground)
		if s.paused {
			s.hud.drawText(2, 2+int(s.hud.fontHeight), "PAUSED", foreground)
		}
	}

	return s.fb.Present()
}

func (s *system) logf(format string, args ...any) {
	if s.log == nil {
		return
	}
	s.log.WriteLineString(fmt.Sprintf(format, args...))
}
