// Command conicview is an interactive terminal viewer for second-degree
// curves.
//
// Each terminal cell shows two vertically stacked pixels using the upper
// half block glyph. Tab and Shift-Tab move between coefficient fields,
// typing edits the focused field, Enter commits it, moving the mouse over
// the plot highlights a principal axis, '?' asks the text-generation
// service for an analysis and Esc quits.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/conic"
	"github.com/gogpu/conic/explain"
)

func main() {
	var (
		scale   = flag.Float64("scale", 24, "CSS pixels per unit")
		dpr     = flag.Float64("dpr", 0.25, "device pixels per CSS pixel")
		logPath = flag.String("log", "", "write debug log to this file")
	)
	flag.Parse()

	if *logPath != "" {
		fh, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintln(os.Stderr, "conicview:", err)
			os.Exit(1)
		}
		defer fh.Close()
		conic.SetLogger(slog.New(slog.NewTextHandler(fh, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cfg, err := explain.Load()
	if err != nil {
		conic.Logger().Warn("conicview: explain config", "err", err)
		cfg = &explain.Config{}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, "conicview:", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "conicview:", err)
		os.Exit(1)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)

	a := newApp(screen, explain.New(*cfg), *scale, *dpr)
	a.run()
	a.close()
}
