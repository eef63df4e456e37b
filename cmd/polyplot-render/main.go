// Command polyplot-render renders polygon animation frames as PNG images.
// Optionally stitches them into an animated GIF using ffmpeg, or shows the
// first frame inline in the terminal.
//
// Usage:
//
//	polyplot-render -points 20 -frames 100 -out frames/ -gif polygon.gif
package main

import (
	"flag"
	"fmt"
	"image/png"
	"math"
	"os"
	"os/exec"
	"path/filepath"

	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/teminism/polyplot"
)

func main() {
	points := flag.Int("points", 20, "Number of polygon vertices")
	frames := flag.Int("frames", 100, "Number of frames covering one full revolution")
	outDir := flag.String("out", "frames", "Output directory for PNG frames")
	gifPath := flag.String("gif", "", "Output GIF path (requires ffmpeg)")
	size := flag.Int("size", 800, "Image size in pixels (square)")
	fps := flag.Int("fps", 50, "GIF frame rate")
	preview := flag.Bool("preview", false, "Show the first frame inline (iTerm2)")
	flag.Parse()

	cfg := polyplot.DefaultConfig()
	cfg.Points = *points
	// One full revolution across the frame count, so the GIF loops seamlessly.
	cfg.RotationStep = 2 * math.Pi / float64(*frames)

	anim, err := polyplot.NewAnimator(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	// Create output directory
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "error creating output dir: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Rendering %d vertices (%d lines/frame) into %d frames\n",
		anim.Points(), anim.Colors().Len(), *frames)

	for i := 0; i < *frames; i++ {
		img := polyplot.RenderFrame(anim, *size, *size)

		filename := filepath.Join(*outDir, fmt.Sprintf("frame_%03d.png", i))
		f, err := os.Create(filename)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error creating %s: %v\n", filename, err)
			os.Exit(1)
		}
		if err := png.Encode(f, img); err != nil {
			f.Close()
			fmt.Fprintf(os.Stderr, "error encoding PNG: %v\n", err)
			os.Exit(1)
		}
		f.Close()

		anim.Advance()
	}
	fmt.Printf("  %d frames → %s\n", *frames, *outDir)

	if *preview {
		if err := imgcat.CatFile(filepath.Join(*outDir, "frame_000.png"), os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "warning: preview failed: %v\n", err)
		}
	}

	// Generate GIF with ffmpeg if requested
	if *gifPath != "" {
		if _, err := exec.LookPath("ffmpeg"); err != nil {
			fmt.Fprintln(os.Stderr, "warning: ffmpeg not found, skipping GIF generation")
		} else {
			inputPattern := filepath.Join(*outDir, "frame_%03d.png")
			rate := fmt.Sprintf("%d", *fps)

			// Two-pass for better GIF quality: generate palette first, then apply
			palettePath := filepath.Join(*outDir, "palette.png")
			cmd1 := exec.Command("ffmpeg", "-y",
				"-framerate", rate,
				"-i", inputPattern,
				"-vf", "palettegen=max_colors=64",
				palettePath,
			)
			cmd1.Stderr = os.Stderr
			if err := cmd1.Run(); err != nil {
				fmt.Fprintf(os.Stderr, "ffmpeg palette error: %v\n", err)
				os.Exit(1)
			}

			cmd2 := exec.Command("ffmpeg", "-y",
				"-framerate", rate,
				"-i", inputPattern,
				"-i", palettePath,
				"-lavfi", "paletteuse=dither=none",
				"-loop", "0",
				*gifPath,
			)
			cmd2.Stderr = os.Stderr
			if err := cmd2.Run(); err != nil {
				fmt.Fprintf(os.Stderr, "ffmpeg GIF error: %v\n", err)
				os.Exit(1)
			}

			// Clean up palette
			os.Remove(palettePath)
			fmt.Printf("  GIF → %s (%d FPS, loop forever)\n", *gifPath, *fps)
		}
	}

	fmt.Println("Done.")
}
