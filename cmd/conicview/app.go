package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/gogpu/conic"
	"github.com/gogpu/conic/input"
	"github.com/gogpu/conic/plot"
	"github.com/gogpu/conic/report"
)

// panelRows is the height of the status panel below the plot.
const panelRows = 3

const help = "Tab/S-Tab field  Enter commit  ? explain  Esc quit"

// Explainer produces a prose analysis. *explain.Client implements it.
type Explainer interface {
	Explain(ctx context.Context, c conic.Coefficients) string
}

// explainResult is posted back to the event loop as interrupt data.
type explainResult struct {
	seq  int
	text string
}

type app struct {
	screen    tcell.Screen
	form      *input.Form
	hover     conic.Hover
	frame     *conic.Frame
	explainer Explainer

	scale, dpr float64

	ctx     context.Context
	stop    context.CancelFunc
	cancel  context.CancelFunc // in-flight explain request
	seq     int
	message string
}

func newApp(screen tcell.Screen, ex Explainer, scale, dpr float64) *app {
	ctx, stop := context.WithCancel(context.Background())
	return &app{
		screen:    screen,
		form:      input.NewForm(conic.DefaultCoefficients),
		explainer: ex,
		scale:     scale,
		dpr:       dpr,
		ctx:       ctx,
		stop:      stop,
		message:   help,
	}
}

func (a *app) run() {
	for {
		a.draw()
		ev := a.screen.PollEvent()
		if ev == nil || !a.handle(ev) {
			return
		}
	}
}

func (a *app) close() {
	a.stop()
	a.screen.Fini()
}

// plotRows returns the number of terminal rows used by the plot.
func (a *app) plotRows() int {
	_, h := a.screen.Size()
	return max(h-panelRows, 0)
}

// compute rebuilds the frame from the current size and coefficients. The
// size is read once and used for both the viewport and the pixmap.
func (a *app) compute() {
	w, _ := a.screen.Size()
	vp := conic.Viewport{Width: w, Height: 2 * a.plotRows(), Scale: a.scale, DPR: a.dpr}
	a.frame = conic.Compute(a.form.Coefficients(), vp)
}

func (a *app) draw() {
	a.compute()
	a.screen.Clear()

	pm := plot.Render(a.frame, a.hover.Axis(), plot.WithoutLabels())
	for y := 0; 2*y+1 < pm.Height(); y++ {
		for x := 0; x < pm.Width(); x++ {
			top, bottom := pm.GetPixel(x, 2*y), pm.GetPixel(x, 2*y+1)
			st := tcell.StyleDefault.Foreground(cellColor(top)).Background(cellColor(bottom))
			a.screen.SetContent(x, y, '▀', nil, st)
		}
	}

	row := a.plotRows()
	a.drawFields(row)
	a.text(0, row+1, a.status(), tcell.StyleDefault)
	a.text(0, row+2, a.message, tcell.StyleDefault.Foreground(tcell.ColorGray))
	a.screen.Show()
}

func (a *app) drawFields(row int) {
	x := 0
	for i, f := range a.form.Fields() {
		x = a.text(x, row, input.Labels[i]+" ", tcell.StyleDefault.Foreground(tcell.ColorGray))
		st := tcell.StyleDefault
		if !f.Valid() {
			st = st.Foreground(tcell.ColorRed)
		}
		if i == a.form.Focus() {
			st = st.Reverse(true)
		}
		text := f.Text()
		if text == "" {
			text = " "
		}
		x = a.text(x, row, text, st)
		x = a.text(x, row, "  ", tcell.StyleDefault)
	}
}

func (a *app) status() string {
	f := a.frame
	if f.Field.Empty() {
		return report.EmptyNotice
	}
	label, vec, _ := report.Translation(f)
	return fmt.Sprintf("%s  θ=%s°  %s (%s, %s)  hover %s",
		f.Kind, report.Number(f.Geometry.Degrees()), label, vec[0], vec[1], a.hover.Axis())
}

// text draws s starting at (x, y) and returns the column after it.
func (a *app) text(x, y int, s string, st tcell.Style) int {
	w, _ := a.screen.Size()
	for _, r := range s {
		if x >= w {
			break
		}
		a.screen.SetContent(x, y, r, nil, st)
		x += runewidth.RuneWidth(r)
	}
	return x
}

func cellColor(c conic.RGBA) tcell.Color {
	n := c.NRGBA()
	return tcell.NewRGBColor(int32(n.R), int32(n.G), int32(n.B))
}

// handle processes one event and reports whether the loop should continue.
func (a *app) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.key(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		x, y := ev.Position()
		a.mouse(x, y)
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventInterrupt:
		if r, ok := ev.Data().(explainResult); ok && r.seq == a.seq {
			a.message = oneLine(r.text)
			a.cancel = nil
		}
	}
	return true
}

func (a *app) key(k tcell.Key, r rune) bool {
	switch k {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyTab:
		a.form.Next(1)
	case tcell.KeyBacktab:
		a.form.Next(-1)
	case tcell.KeyEnter:
		a.form.Focused().Blur()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		a.form.Backspace()
	case tcell.KeyRune:
		if r == '?' {
			a.requestExplain()
			return true
		}
		a.form.Type(r)
	}
	return true
}

// mouse runs the hover hit test for a cell. The pointer sits at the cell's
// centre in pixel space; leaving the plot area clears the hover.
func (a *app) mouse(x, y int) {
	w, _ := a.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= a.plotRows() {
		a.hover.Leave()
		return
	}
	if a.frame == nil {
		a.compute()
	}
	a.hover.Move(conic.Pt(float64(x)+0.5, float64(2*y+1)), a.frame)
}

// requestExplain starts an explain call for the current coefficients,
// cancelling any request still in flight.
func (a *app) requestExplain() {
	if a.cancel != nil {
		a.cancel()
	}
	ctx, cancel := context.WithCancel(a.ctx)
	a.cancel = cancel
	a.seq++
	seq := a.seq
	coeffs := a.form.Coefficients()
	a.message = "Analyzing..."

	go func() {
		defer cancel()
		text := a.explainer.Explain(ctx, coeffs)
		if ctx.Err() != nil {
			return
		}
		if err := a.screen.PostEvent(tcell.NewEventInterrupt(explainResult{seq: seq, text: text})); err != nil {
			conic.Logger().Warn("conicview: post explain result", "err", err)
		}
	}()
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
