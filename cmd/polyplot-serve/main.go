// Command polyplot-serve runs the animation behind a small HTTP server.
// The current frame is served as a PNG, the raw line primitives as JSON,
// and / is a page that refreshes the frame in place.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"image/png"
	"log"
	"net/http"

	"github.com/teminism/polyplot"
)

// ---------- JSON response types ----------

type lineJSON struct {
	X1    int    `json:"x1"`
	Y1    int    `json:"y1"`
	X2    int    `json:"x2"`
	Y2    int    `json:"y2"`
	Color string `json:"color"`
}

type frameJSON struct {
	Angle  float64    `json:"angle"`
	Points int        `json:"points"`
	Lines  []lineJSON `json:"lines"`
}

const indexHTML = `<!DOCTYPE html>
<html>
<head>
<title>Polygon Plotter</title>
<style>body{background:#0a0a1a;margin:0;display:flex;justify-content:center}</style>
</head>
<body>
<img id="frame" width="500" height="500" alt="polygon">
<script>
const img = document.getElementById("frame");
function refresh() { img.src = "/frame.png?t=" + Date.now(); }
img.onload = () => requestAnimationFrame(refresh);
img.onerror = () => setTimeout(refresh, 1000);
refresh();
</script>
</body>
</html>`

// ---------- main ----------

func main() {
	points := flag.Int("points", 20, "number of polygon vertices")
	port := flag.Int("port", 8080, "HTTP listen port")
	size := flag.Int("size", 500, "rendered frame size in pixels")
	flag.Parse()

	cfg := polyplot.DefaultConfig()
	cfg.Points = *points
	anim, err := polyplot.NewAnimator(cfg)
	if err != nil {
		log.Fatalf("animator: %v", err)
	}

	// Advance the animation in the background; handlers only read.
	driver := polyplot.NewDriver(anim, cfg.TickInterval, nil)
	go driver.Run(context.Background())

	// Routes.
	mux := http.NewServeMux()

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, indexHTML)
	})

	mux.HandleFunc("/frame.png", func(w http.ResponseWriter, r *http.Request) {
		img := polyplot.RenderFrame(anim, *size, *size)
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", "no-store")
		if err := png.Encode(w, img); err != nil {
			log.Printf("png encode: %v", err)
		}
	})

	mux.HandleFunc("/api/frame", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		if err := json.NewEncoder(w).Encode(buildFrame(anim, *size)); err != nil {
			log.Printf("json encode: %v", err)
		}
	})

	// Print helpful startup info.
	fmt.Printf("polyplot demo server\n")
	fmt.Printf("  polygon: %d vertices, %d lines/frame\n", anim.Points(), anim.Colors().Len())
	fmt.Printf("  listen:  http://localhost:%d\n", *port)

	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", *port), mux))
}

func buildFrame(a *polyplot.Animator, size int) frameJSON {
	lines := a.Lines(size, size)
	lj := make([]lineJSON, len(lines))
	for i, ln := range lines {
		lj[i] = lineJSON{X1: ln.X1, Y1: ln.Y1, X2: ln.X2, Y2: ln.Y2, Color: ln.Color.Hex()}
	}
	return frameJSON{Angle: a.Angle(), Points: a.Points(), Lines: lj}
}
