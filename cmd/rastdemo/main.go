// Command rastdemo renders the built-in triangle and writes it to an
// image file.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/rast"
	"github.com/gogpu/rast/imageio"
)

func main() {
	var (
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 600, "image height")
		output  = flag.String("output", "triangle.png", "output file (.png, .jpg, .bmp, .tiff)")
		blur    = flag.Bool("blur", false, "apply a Gaussian blur to the output")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		rast.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	r, err := rast.New(*width, *height)
	if err != nil {
		log.Fatalf("Failed to create rasterizer: %v", err)
	}

	r.Update()
	pm := r.Render()

	if *blur {
		pm = imageio.GaussianBlur(pm)
	}

	if err := imageio.Save(*output, pm); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Triangle saved to %s (%dx%d)\n", *output, *width, *height)
}
