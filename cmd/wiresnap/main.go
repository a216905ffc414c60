// Command wiresnap renders one frame of a scene to a BMP file.
package main

import (
	"flag"
	"fmt"
	"image"
	"os"

	"threedee/app"
	"threedee/internal/sceneconf"
	"threedee/wire3d"

	"golang.org/x/image/bmp"
)

func main() {
	var (
		scenePath = flag.String("scene", "", "Scene file (.yaml); empty renders the three-cube demo.")
		outPath   = flag.String("out", "", "Output file (.bmp).")
		width     = flag.Int("width", 144, "Image width in pixels.")
		height    = flag.Int("height", 168, "Image height in pixels.")
		steps     = flag.Int("steps", 0, "Update steps to apply before rendering.")
		legacy    = flag.Bool("legacy-projection", false, "Use the fixed 2.56 focal scale instead of the field of view.")
	)
	flag.Parse()

	if *outPath == "" {
		fatalf("usage: wiresnap -out frame.bmp [-scene scene.yaml] [-width 144] [-height 168] [-steps 0]")
	}
	if *width <= 0 || *height <= 0 {
		fatalf("size out of range: %dx%d", *width, *height)
	}
	if *steps < 0 {
		fatalf("steps out of range: %d", *steps)
	}

	world := app.DefaultWorld()
	if *scenePath != "" {
		w, err := sceneconf.Load(*scenePath)
		if err != nil {
			fatalf("scene: %v", err)
		}
		world = w
	}

	img := render(world, *width, *height, *steps, *legacy)
	if err := writeBMP(*outPath, img); err != nil {
		fatalf("write: %v", err)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

func render(world *app.World, width, height, steps int, legacy bool) *image.RGBA {
	for i := 0; i < steps; i++ {
		world.Step()
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	target := wire3d.ImageTarget{Img: img}
	target.Clear(wire3d.White)

	fc := wire3d.NewFrameContext(world.Camera)
	fc.LegacyProjection = legacy
	fc.Render(target, wire3d.Black, world.Meshes()...)
	return img
}

func writeBMP(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return bmp.Encode(f, img)
}
