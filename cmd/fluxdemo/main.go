// Command fluxdemo mounts one of the demo applications headlessly, replays
// pointer clicks against it, and writes the final frame as a PNG.
//
// Usage:
//
//	fluxdemo [-config DIR] [-demo todo|counter] [-click X,Y]... [-out FILE] [-dump]
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/flux-ui/flux/internal/demo"
	"github.com/flux-ui/flux/pkg/app"
	"github.com/flux-ui/flux/pkg/config"
	"github.com/flux-ui/flux/pkg/core"
	"github.com/flux-ui/flux/pkg/errors"
	"github.com/flux-ui/flux/pkg/graphics"
	"github.com/flux-ui/flux/pkg/raster"
	"github.com/flux-ui/flux/pkg/text"
)

const mouse app.DeviceID = 1

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if err != flag.ErrHelp {
			fmt.Fprintf(os.Stderr, "fluxdemo: %v\n", err)
		}
		os.Exit(1)
	}
}

// points collects repeated -click flags.
type points []graphics.Offset

func (p *points) String() string {
	parts := make([]string, len(*p))
	for i, pt := range *p {
		parts[i] = fmt.Sprintf("%g,%g", pt.X, pt.Y)
	}
	return strings.Join(parts, " ")
}

func (p *points) Set(s string) error {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return fmt.Errorf("want X,Y, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return fmt.Errorf("bad x in %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return fmt.Errorf("bad y in %q: %w", s, err)
	}
	*p = append(*p, graphics.Offset{X: x, Y: y})
	return nil
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("fluxdemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	dir := fs.String("config", ".", "directory containing flux.yaml")
	name := fs.String("demo", "todo", "demo to mount ("+strings.Join(demo.Names, ", ")+")")
	out := fs.String("out", "", "write the final frame as PNG to `file`")
	dump := fs.Bool("dump", false, "print the view tree after the clicks")
	var clicks points
	fs.Var(&clicks, "click", "click at `x,y` (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	resolved, err := config.Resolve(*dir)
	if err != nil {
		return err
	}
	core.SetLogger(slog.New(slog.NewTextHandler(stderr, resolved.HandlerOptions())))
	defer core.SetLogger(nil)
	defer errors.SetHandler(errors.SetHandler(&errors.LogHandler{Verbose: resolved.LogLevel <= slog.LevelDebug, Out: stderr}))
	text.SetFallbackSize(resolved.FontSize)
	defer text.SetFallbackSize(0)

	root, ok := demo.Lookup(*name)
	if !ok {
		return fmt.Errorf("unknown demo %q (have %s)", *name, strings.Join(demo.Names, ", "))
	}

	a := app.New(root, resolved.Window)
	a.CursorEntered(mouse)
	for _, p := range clicks {
		a.CursorMoved(mouse, p)
		a.MouseInput(mouse, app.MouseButtonLeft, true)
		a.MouseInput(mouse, app.MouseButtonLeft, false)
	}

	if *dump || resolved.DumpTree {
		if err := a.Tree().Dump(stdout); err != nil {
			return err
		}
	}
	if *out != "" {
		return writeFrame(a, resolved.ClearColor, *out)
	}
	return nil
}

func writeFrame(a *app.App, background graphics.Color, path string) error {
	canvas := raster.New(a.Options().Size, background)
	a.RedrawRequested(canvas)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := canvas.WritePNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
