// Command vttydemo is an end-to-end smoke test for vtcore: it spawns a
// shell under a real PTY, forwards stdin (in raw mode) to the shell,
// feeds the shell's output to the engine, and periodically dumps the
// rendered grid to a PNG so the pipeline can be inspected without a GUI
// toolkit.
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"time"

	"golang.org/x/term"

	"github.com/kernelterm/vtcore"
	"github.com/kernelterm/vtcore/hostclip"
	"github.com/kernelterm/vtcore/hostfont"
	"github.com/kernelterm/vtcore/hostpty"
)

const (
	cols, rows   = 80, 24
	advance, lineHeight = 8, 16
)

// imageTarget is the simplest possible vtcore.DrawTarget: a single
// image.RGBA the demo dumps to disk on a timer.
type imageTarget struct {
	img *image.RGBA
}

func newImageTarget(w, h int) *imageTarget {
	return &imageTarget{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (t *imageTarget) Size() (int, int) {
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

func (t *imageTarget) DrawPixel(x, y int, c vtcore.RGB) {
	t.img.Set(x, y, color.RGBA{c.R, c.G, c.B, 255})
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	vtcore.SetLogger(slog.Default())

	target := newImageTarget(cols*advance, rows*lineHeight)
	engine := vtcore.New(target)
	if err := engine.SetFontManager(hostfont.New(advance, lineHeight)); err != nil {
		fmt.Fprintln(os.Stderr, "vttydemo:", err)
		os.Exit(1)
	}
	engine.SetClipboardHandler(hostclip.System{})
	engine.SetAutoFlush(false)

	p, err := hostpty.Start("", cols, rows)
	if err != nil {
		fmt.Fprintln(os.Stderr, "vttydemo:", err)
		os.Exit(1)
	}
	engine.SetPtyWriter(p)

	oldState, rawErr := term.MakeRaw(int(os.Stdin.Fd()))
	if rawErr == nil {
		defer term.Restore(int(os.Stdin.Fd()), oldState)
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt)

	// The engine is single-owner: the PTY pump and the render ticker share
	// it under this lock.
	var mu sync.Mutex

	go func() {
		_ = p.Pump(func(b []byte) {
			mu.Lock()
			engine.Process(b)
			mu.Unlock()
		})
	}()

	go pumpStdin(p)

	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			mu.Lock()
			engine.Flush()
			dumpPNG(target.img, "vttydemo.png")
			mu.Unlock()
		case <-sigc:
			_ = p.Close()
			return
		}
	}
}

// pumpStdin is a stand-in input path: vttydemo is a pipeline smoke test,
// not a full terminal frontend, so it forwards raw stdin bytes straight
// to the PTY rather than decoding real Scan Code Set 1 scancodes (that
// path is exercised by Engine.HandleKeyboard directly in the test suite
// instead).
func pumpStdin(p *hostpty.PTY) {
	buf := make([]byte, 256)
	for {
		n, err := os.Stdin.Read(buf)
		if n > 0 {
			_, _ = p.WritePty(buf[:n])
		}
		if err != nil {
			return
		}
	}
}

func dumpPNG(img image.Image, path string) {
	f, err := os.Create(path)
	if err != nil {
		return
	}
	defer f.Close()
	_ = png.Encode(f, img)
}
