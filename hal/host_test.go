package hal

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/image/bmp"
)

func TestConfigDefaults(t *testing.T) {
	h, ok := New().(*hostHAL)
	if !ok {
		t.Fatalf("New returned %T", New())
	}
	fb := h.Display().Framebuffer()
	if fb.Width() != DefaultWidth || fb.Height() != DefaultHeight {
		t.Fatalf("framebuffer %dx%d, want %dx%d", fb.Width(), fb.Height(), DefaultWidth, DefaultHeight)
	}
	if fb.StrideBytes() != DefaultWidth*2 || len(fb.Buffer()) != DefaultWidth*DefaultHeight*2 {
		t.Fatalf("stride=%d len=%d", fb.StrideBytes(), len(fb.Buffer()))
	}
	if h.cfg.Scale != DefaultScale {
		t.Fatalf("scale = %d", h.cfg.Scale)
	}

	small := NewWithConfig(Config{Width: 10, Height: 4, Scale: 1}).Display().Framebuffer()
	if small.Width() != 10 || small.Height() != 4 {
		t.Fatalf("configured framebuffer %dx%d", small.Width(), small.Height())
	}
	if h.Input().Keyboard() == nil || h.Time().Ticks() == nil || h.Logger() == nil {
		t.Fatalf("host HAL is missing a device")
	}
}

func TestFramebufferPresent(t *testing.T) {
	fb := newHostFramebuffer(4, 2)
	if _, err := Snapshot(fb); err != ErrNoFrame {
		t.Fatalf("snapshot before present: err = %v", err)
	}

	fb.ClearRGB(0xFF, 0, 0)
	if err := fb.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}
	fb.ClearRGB(0, 0, 0xFF)

	img, err := Snapshot(fb)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if c := img.RGBAAt(3, 1); c.R != 0xFF || c.B != 0 || c.A != 0xFF {
		t.Fatalf("snapshot shows unpresented frame: %v", c)
	}
}

type plainFramebuffer struct {
	w, h, stride int
	buf          []byte
}

func (f *plainFramebuffer) Width() int             { return f.w }
func (f *plainFramebuffer) Height() int            { return f.h }
func (f *plainFramebuffer) Format() PixelFormat    { return PixelFormatRGB565 }
func (f *plainFramebuffer) StrideBytes() int       { return f.stride }
func (f *plainFramebuffer) Buffer() []byte         { return f.buf }
func (f *plainFramebuffer) ClearRGB(_, _, _ uint8) {}
func (f *plainFramebuffer) Present() error         { return nil }

func TestSnapshotPaddedStride(t *testing.T) {
	fb := &plainFramebuffer{w: 2, h: 2, stride: 6, buf: make([]byte, 12)}
	p := rgb565(0, 0xFF, 0)
	fb.buf[6+2] = byte(p)
	fb.buf[6+3] = byte(p >> 8)

	img, err := Snapshot(fb)
	if err != nil {
		t.Fatal(err)
	}
	if c := img.RGBAAt(1, 1); c.G != 0xFF || c.R != 0 {
		t.Fatalf("pixel (1,1) = %v", c)
	}
	if c := img.RGBAAt(0, 1); c.G != 0 {
		t.Fatalf("pixel (0,1) = %v", c)
	}
}

func TestWriteSnapshotBMP(t *testing.T) {
	fb := newHostFramebuffer(3, 3)
	fb.ClearRGB(0xFF, 0xFF, 0xFF)
	_ = fb.Present()

	var buf bytes.Buffer
	if err := WriteSnapshot(&buf, fb); err != nil {
		t.Fatalf("WriteSnapshot: %v", err)
	}
	img, err := bmp.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 3 {
		t.Fatalf("bounds = %v", b)
	}
	if r, g, b, _ := img.At(1, 1).RGBA(); r>>8 != 0xFF || g>>8 != 0xFF || b>>8 != 0xFF {
		t.Fatalf("pixel = %d,%d,%d", r>>8, g>>8, b>>8)
	}
}

func TestHostTimeSteps(t *testing.T) {
	ht := newHostTime()
	now := time.Unix(100, 0)
	ht.now = func() time.Time { return now }

	ht.step()
	if got := <-ht.Ticks(); got != 1 {
		t.Fatalf("first tick = %d", got)
	}

	now = now.Add(2500 * time.Microsecond)
	ht.step()
	if len(ht.ch) != 2 {
		t.Fatalf("queued %d ticks after 2.5ms, want 2", len(ht.ch))
	}
	now = now.Add(500 * time.Microsecond)
	ht.step()
	if len(ht.ch) != 3 {
		t.Fatalf("queued %d ticks after 3ms, want 3", len(ht.ch))
	}
	var last uint64
	for len(ht.ch) > 0 {
		last = <-ht.ch
	}
	if last != 4 {
		t.Fatalf("last tick = %d, want 4", last)
	}
}

func TestSplitTopic(t *testing.T) {
	tests := []struct {
		in, topic, msg string
	}{
		{"fps: 30", "fps", "30"},
		{"scene: loaded 3 meshes\n", "scene", "loaded 3 meshes"},
		{"no topic here", "", "no topic here"},
		{"two words: x", "", "two words: x"},
		{": empty", "", ": empty"},
	}
	for _, tc := range tests {
		topic, msg := splitTopic(tc.in)
		if topic != tc.topic || msg != tc.msg {
			t.Errorf("splitTopic(%q) = %q,%q want %q,%q", tc.in, topic, msg, tc.topic, tc.msg)
		}
	}
}

func TestHostLogger(t *testing.T) {
	var buf bytes.Buffer
	l := newHostLogger(&buf)
	l.WriteLineString("fps: 30")
	l.WriteLineBytes([]byte("plain line"))

	out := buf.String()
	if !strings.Contains(out, "topic=fps") || !strings.Contains(out, "30") {
		t.Fatalf("missing structured fields: %q", out)
	}
	if !strings.Contains(out, "plain line") {
		t.Fatalf("missing plain line: %q", out)
	}
}

func TestRunHeadless(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.bmp")
	steps := 0
	err := RunHeadless(context.Background(), func(h HAL) func() error {
		fb := h.Display().Framebuffer()
		return func() error {
			steps++
			fb.ClearRGB(0, 0xFF, 0)
			return fb.Present()
		}
	}, HeadlessConfig{Config: Config{Width: 8, Height: 6}, Hz: 1000, Ticks: 3, Snapshot: path})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if steps != 3 {
		t.Fatalf("steps = %d, want 3", steps)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := bmp.Decode(f)
	if err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 6 {
		t.Fatalf("snapshot bounds = %v", b)
	}
}

func TestRunHeadlessCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := RunHeadless(ctx, func(HAL) func() error { return nil }, HeadlessConfig{Hz: 10})
	if err != context.Canceled {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
