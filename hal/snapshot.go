package hal

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	"golang.org/x/image/bmp"
)

var ErrNoFrame = errors.New("hal: no frame presented")

// Snapshot returns the last presented frame of fb as an RGBA image.
//
// Host framebuffers copy their presented frame; other RGB565 framebuffers
// are read from their live buffer.
func Snapshot(fb Framebuffer) (*image.RGBA, error) {
	if fb == nil {
		return nil, ErrNotImplemented
	}
	if hf, ok := fb.(*hostFramebuffer); ok {
		if hf.presented() == 0 {
			return nil, ErrNoFrame
		}
		return hf.snapshotRGBA(), nil
	}
	if fb.Format() != PixelFormatRGB565 {
		return nil, fmt.Errorf("hal: snapshot: unsupported pixel format %d", fb.Format())
	}
	w, h, stride := fb.Width(), fb.Height(), fb.StrideBytes()
	buf := fb.Buffer()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		row := y * stride
		if row+w*2 > len(buf) {
			break
		}
		expandRGB565(img.Pix[y*img.Stride:(y+1)*img.Stride], buf[row:row+w*2])
	}
	return img, nil
}

// WriteSnapshot encodes the last presented frame of fb as BMP.
func WriteSnapshot(w io.Writer, fb Framebuffer) error {
	img, err := Snapshot(fb)
	if err != nil {
		return err
	}
	return bmp.Encode(w, img)
}

func writeSnapshotFile(fb Framebuffer, path string) (err error) {
	if path == "" {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("snapshot: %w", cerr)
		}
	}()
	if err := WriteSnapshot(f, fb); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	return nil
}
