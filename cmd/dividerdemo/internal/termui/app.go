package termui

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	hosterrors "github.com/go-drift/dividers/pkg/errors"
	"github.com/go-drift/dividers/pkg/graphics"
	"github.com/go-drift/dividers/pkg/input"
	"github.com/go-drift/dividers/pkg/theme"
	"github.com/go-drift/dividers/pkg/widgets"
)

// Mode selects which demo surface the app runs.
type Mode int

const (
	// ModeColumns shows a bank of resizable columns separated by a
	// MultiDivider, with the trailing edge pinned to the screen width.
	ModeColumns Mode = iota

	// ModeRows shows a two-pane horizontal split driven by a single
	// vertical-orientation Divider.
	ModeRows
)

// Options configure an App. Zero values fall back to sensible defaults.
type Options struct {
	Mode       Mode
	Theme      *theme.ThemeData
	Style      widgets.StyleFn
	Boundaries []float64 // column boundary fractions in (0, 1), ascending
	Split      float64   // row split fraction in (0, 1)
	Step       float64
	MinPane    float64 // smallest pane extent in cells
	Logger     *log.Logger
}

// widgetKey is the state-store identity of the app's one divider.
type widgetKey struct{}

// App owns the terminal screen and drives divider widgets with decoded
// mouse input. The divider itself is reconstructed from current values
// on every dispatch; only the DragState in the store persists.
type App struct {
	opts       Options
	screen     tcell.Screen
	store      *widgets.StateStore
	translator pointerTranslator
	cursor     graphics.Offset

	width, height int
	bounds        []float64 // cell-unit boundaries, trailing screen edge included
}

// New validates opts and prepares an app. The screen is not touched
// until Run.
func New(opts Options) (*App, error) {
	if opts.Theme == nil {
		opts.Theme = theme.DefaultLightTheme()
	}
	if opts.Style == nil {
		opts.Style = widgets.Primary
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Step <= 0 {
		opts.Step = 1
	}
	if opts.MinPane <= 0 {
		opts.MinPane = 2
	}
	if opts.Split <= 0 || opts.Split >= 1 {
		opts.Split = 0.5
	}
	if len(opts.Boundaries) == 0 {
		opts.Boundaries = []float64{1.0 / 3, 2.0 / 3}
	}
	if !sort.Float64sAreSorted(opts.Boundaries) {
		return nil, fmt.Errorf("column boundaries must be ascending: %v", opts.Boundaries)
	}
	for _, b := range opts.Boundaries {
		if b <= 0 || b >= 1 {
			return nil, fmt.Errorf("column boundary %v outside (0, 1)", b)
		}
	}
	return &App{
		opts:  opts,
		store: widgets.NewStateStore(),
	}, nil
}

// Run initializes the screen and blocks until the user quits with q,
// Escape or Ctrl+C.
func (a *App) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	// A panic in a user callback or style resolver must not leave the
	// terminal in raw mode. Fini is idempotent, so the regular defer
	// above is harmless after this one fired.
	defer hosterrors.RecoverWithCleanup("termui.Run", screen.Fini)
	screen.EnableMouse()

	a.screen = screen
	a.width, a.height = screen.Size()
	a.layout()
	a.opts.Logger.Info("screen ready", "width", a.width, "height", a.height)
	a.draw()

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			if a.isQuitKey(ev) {
				a.abortGesture()
				a.opts.Logger.Info("quit")
				return nil
			}
		case *tcell.EventResize:
			a.resize()
			a.draw()
		case *tcell.EventMouse:
			if pev, ok := a.translator.translate(ev); ok {
				a.dispatch(pev)
				a.draw()
			}
		}
	}
}

func (a *App) isQuitKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Key() == tcell.KeyRune && ev.Rune() == 'q'
}

// layout seeds cell-unit boundaries from the configured fractions.
func (a *App) layout() {
	if a.opts.Mode == ModeRows {
		a.bounds = []float64{a.opts.Split * float64(a.height)}
		return
	}
	a.bounds = make([]float64, 0, len(a.opts.Boundaries)+1)
	for _, f := range a.opts.Boundaries {
		a.bounds = append(a.bounds, f*float64(a.width))
	}
	a.bounds = append(a.bounds, float64(a.width))
}

// resize rescales the current boundaries proportionally into the new
// screen extents, so pane ratios survive a terminal resize.
func (a *App) resize() {
	oldW, oldH := float64(a.width), float64(a.height)
	a.width, a.height = a.screen.Size()

	if a.opts.Mode == ModeRows {
		if oldH > 0 {
			a.bounds[0] = a.bounds[0] / oldH * float64(a.height)
		}
		return
	}
	if oldW > 0 {
		scale := float64(a.width) / oldW
		for i := range a.bounds {
			a.bounds[i] *= scale
		}
	}
	a.bounds[len(a.bounds)-1] = float64(a.width)
}

func (a *App) screenBounds() graphics.Rect {
	return graphics.RectFromLTWH(0, 0, float64(a.width), float64(a.height))
}

func (a *App) dispatch(ev input.PointerEvent) {
	a.cursor = ev.Position
	status := a.widget().HandlePointer(ev, a.screenBounds(), a.store.Of(widgetKey{}))
	if status == input.EventCaptured {
		a.opts.Logger.Debug("pointer", "phase", ev.Phase, "x", ev.Position.X, "y", ev.Position.Y)
	}
}

// abortGesture reports the pointer as lost before teardown so a drag in
// flight cannot leave the retained state marked dragging.
func (a *App) abortGesture() {
	if ev, ok := a.translator.lost(a.cursor); ok {
		a.widget().HandlePointer(ev, a.screenBounds(), a.store.Of(widgetKey{}))
	}
}

// widget rebuilds the divider for the current boundary values.
func (a *App) widget() demoWidget {
	if a.opts.Mode == ModeRows {
		return widgets.New(0, a.bounds[0], widgets.Range{Start: 0, End: float64(a.height)}, 1, float64(a.width), a.moveRowSplit).
			WithOrientation(widgets.OrientationVertical).
			WithStep(a.opts.Step).
			WithStyle(a.opts.Style).
			OnRelease(a.logRelease)
	}
	return widgets.NewMulti(a.bounds, widgets.Range{Start: 0, End: float64(a.width)}, []float64{1}, float64(a.height), a.moveColumnBoundary).
		ExcludeLastHandle().
		WithStep(a.opts.Step).
		WithStyle(a.opts.Style).
		OnRelease(a.logRelease)
}

// demoWidget is the surface shared by both divider variants.
type demoWidget interface {
	HandlePointer(ev input.PointerEvent, bounds graphics.Rect, state *widgets.DragState) input.EventStatus
	Draw(canvas graphics.Canvas, t *theme.ThemeData, bounds graphics.Rect, state *widgets.DragState, cursor graphics.Offset)
	Cursor(bounds graphics.Rect, state *widgets.DragState, cursor graphics.Offset) input.Cursor
}

// moveColumnBoundary keeps each boundary at least MinPane cells away
// from its neighbors. The widget reports the raw located value; pane
// arithmetic is the host's job.
func (a *App) moveColumnBoundary(i int, value float64) {
	lo := a.opts.MinPane
	if i > 0 {
		lo = a.bounds[i-1] + a.opts.MinPane
	}
	hi := a.bounds[i+1] - a.opts.MinPane
	if value < lo {
		value = lo
	}
	if value > hi {
		value = hi
	}
	if lo > hi {
		return
	}
	a.bounds[i] = value
}

func (a *App) moveRowSplit(_ int, value float64) {
	lo := a.opts.MinPane
	hi := float64(a.height) - a.opts.MinPane
	if value < lo {
		value = lo
	}
	if value > hi {
		value = hi
	}
	if lo > hi {
		return
	}
	a.bounds[0] = value
}

func (a *App) logRelease() {
	a.opts.Logger.Debug("boundary released", "bounds", fmt.Sprintf("%.0f", a.bounds))
}

func (a *App) draw() {
	canvas := &cellCanvas{screen: a.screen}
	scheme := a.opts.Theme.ColorScheme

	// Pane backgrounds alternate between the two surface tones.
	edges := append([]float64{0}, a.bounds...)
	if a.opts.Mode == ModeRows {
		edges = append(edges, float64(a.height))
	}
	for i := 0; i+1 < len(edges); i++ {
		color := scheme.Surface
		if i%2 == 1 {
			color = scheme.SurfaceVariant
		}
		canvas.DrawRect(a.paneRect(edges[i], edges[i+1]), graphics.Paint{Color: color})
	}

	a.widget().Draw(canvas, a.opts.Theme, a.screenBounds(), a.store.Of(widgetKey{}), a.cursor)
	a.screen.Show()
}

func (a *App) paneRect(from, to float64) graphics.Rect {
	if a.opts.Mode == ModeRows {
		return graphics.Rect{Left: 0, Top: from, Right: float64(a.width), Bottom: to}
	}
	return graphics.Rect{Left: from, Top: 0, Right: to, Bottom: float64(a.height)}
}
