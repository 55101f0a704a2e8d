package main

import (
	"image"
	"image/color"
	"io"
	"log"
	"os"
	"strings"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/clipboard"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/fjl/giocalc/internal/calc"
	"github.com/fjl/giocalc/internal/session"
)

var (
	digitColor       = color.NRGBA{90, 90, 90, 255}
	specialColor     = color.NRGBA{70, 70, 70, 255}
	opColor          = color.NRGBA{122, 90, 90, 255}
	activeOpColor    = color.NRGBA{160, 90, 90, 255}
	backgroundColor  = color.NRGBA{50, 50, 50, 255}
	resultColor      = color.NRGBA{255, 255, 255, 255}
	errorColor       = color.NRGBA{255, 119, 119, 255}
	resultBackground = color.NRGBA{35, 35, 35, 255}

	designWidth  = unit.Dp(270)
	designHeight = unit.Dp(345)
	controlInset = unit.Dp(6)
	cornerRadius = unit.Dp(3.5)
)

// calcUI is the user interface of the calculator.
type calcUI struct {
	session *session.Session
	display calc.Display
	theme   *material.Theme
	buttons [5][4]*button
	keys    []event.Filter

	cornerRadius int
	gridSpacing  int
}

func newUI(theme *material.Theme, s *session.Session) *calcUI {
	ui := &calcUI{theme: theme, session: s, display: calc.Display{Text: "0"}}
	ui.buttons = [5][4]*button{
		{ui.special(calc.Clear), ui.special(calc.ToggleSign), ui.special(calc.Backspace), ui.op(calc.OpDivide)},
		{ui.digit(7), ui.digit(8), ui.digit(9), ui.op(calc.OpMultiply)},
		{ui.digit(4), ui.digit(5), ui.digit(6), ui.op(calc.OpSubtract)},
		{ui.digit(1), ui.digit(2), ui.digit(3), ui.op(calc.OpAdd)},
		{ui.digit(0), ui.special(calc.DoubleZero), ui.special(calc.Decimal), ui.special(calc.Equals)},
	}
	ui.keys = keyFilters()
	return ui
}

// digit creates a digit button.
func (ui *calcUI) digit(d int) *button {
	return newButton(calc.Digit(d), digitColor)
}

// op creates an operation button.
func (ui *calcUI) op(op calc.Operator) *button {
	return newButton(calc.Op(op), opColor)
}

// special creates a button for a non-operator key.
func (ui *calcUI) special(b calc.Button) *button {
	c := specialColor
	if b.Kind == calc.KindDoubleZero || b.Kind == calc.KindDecimal {
		c = digitColor
	}
	if b.Kind == calc.KindEquals {
		c = opColor
	}
	return newButton(b, c)
}

// press delivers b to the session.
func (ui *calcUI) press(b calc.Button) {
	d, err := ui.session.Press(b)
	if err != nil {
		log.Printf("press %v: %v", b, err)
		return
	}
	ui.display = d
}

// Layout draws the UI.
func (ui *calcUI) Layout(gtx layout.Context) layout.Dimensions {
	// Adapt design for screen size.
	scaleFactor := float32(gtx.Constraints.Max.X) / float32(gtx.Dp(designWidth))
	ui.cornerRadius = gtx.Dp(cornerRadius * unit.Dp(scaleFactor))
	ui.gridSpacing = gtx.Dp(controlInset * unit.Dp(scaleFactor))

	// Handle key events.
	ui.layoutInput(gtx)

	inset := layout.UniformInset(controlInset)
	return inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		flex := layout.Flex{Axis: layout.Vertical, Spacing: layout.SpaceStart}
		return flex.Layout(gtx,
			layout.Flexed(20, func(gtx layout.Context) layout.Dimensions {
				return inset.Layout(gtx, ui.layoutResult)
			}),
			layout.Flexed(70, func(gtx layout.Context) layout.Dimensions {
				return inset.Layout(gtx, ui.layoutButtons)
			}),
		)
	})
}

func (ui *calcUI) layoutResult(gtx layout.Context) layout.Dimensions {
	rect := image.Rectangle{Max: gtx.Constraints.Max}
	rr := clip.UniformRRect(rect, ui.cornerRadius)
	paint.FillShape(gtx.Ops, resultBackground, rr.Op(gtx.Ops))

	inset := layout.UniformInset(controlInset)
	return inset.Layout(gtx, ui.layoutResultText)
}

func (ui *calcUI) layoutResultText(gtx layout.Context) layout.Dimensions {
	// Scale font based on height.
	fontSizePx := float32(gtx.Constraints.Max.Y) / 1.1
	fontSizeSp := unit.Sp(fontSizePx / gtx.Metric.PxPerSp)

	l := material.Label(ui.theme, fontSizeSp, ui.display.Text)
	l.Color = resultColor
	if ui.display.HasError {
		l.Color = errorColor
	}
	l.Alignment = text.End
	l.MaxLines = 1
	return shrinkToFit(gtx, l.Layout)
}

func (ui *calcUI) layoutButtons(gtx layout.Context) layout.Dimensions {
	g := grid{
		rows:    len(ui.buttons),
		cols:    len(ui.buttons[0]),
		spacing: ui.gridSpacing,
	}
	return g.layout(gtx, func(row, col int, gtx layout.Context) layout.Dimensions {
		if b := ui.buttons[row][col]; b != nil {
			return ui.layoutButton(gtx, b)
		}
		return layout.Dimensions{}
	})
}

func (ui *calcUI) layoutButton(gtx layout.Context, b *button) layout.Dimensions {
	for b.clicker.Clicked(gtx) {
		ui.press(b.button)
	}

	return b.clicker.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		textSizePx := float32(gtx.Constraints.Max.Y) / 2.2
		textSizeSp := unit.Sp(textSizePx / gtx.Metric.PxPerSp)

		style := material.Button(ui.theme, &b.clicker, b.button.String())
		style.Background = b.color
		style.Inset = layout.Inset{}
		style.TextSize = textSizeSp
		style.CornerRadius = unit.Dp(float32(ui.cornerRadius) / gtx.Metric.PxPerDp)
		if b.button.Kind == calc.KindOperator && pendingOperator(ui.display, b.button.Op) {
			style.Background = activeOpColor
		}
		return style.Layout(gtx)
	})
}

// pendingOperator reports whether the expression on the display ends in op,
// i.e. the next operand is for op.
func pendingOperator(d calc.Display, op calc.Operator) bool {
	if d.HasError {
		return false
	}
	start, end := calc.LastOperandSpan(d.Text)
	prev, ok := calc.TrailingOperator(d.Text)
	if start != end || !ok || prev == d.Text {
		return false
	}
	return strings.HasPrefix(prev, op.Glyph())
}

// keyFilters returns the keys handled by the calculator.
func keyFilters() []event.Filter {
	names := []key.Name{
		"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", ".",
		"+", "-", "*", "/", "=",
		key.NameEnter, key.NameReturn,
		key.NameDeleteBackward, key.NameDeleteForward, key.NameEscape,
	}
	filters := []event.Filter{
		key.Filter{Name: "C", Required: key.ModShortcut},
		key.Filter{Name: "-", Required: key.ModAlt, Optional: key.ModShift},
	}
	for _, name := range names {
		filters = append(filters, key.Filter{Name: name, Optional: key.ModShift})
	}
	return filters
}

// layoutInput processes key events.
func (ui *calcUI) layoutInput(gtx layout.Context) {
	for {
		ev, ok := gtx.Event(ui.keys...)
		if !ok {
			break
		}
		e, ok := ev.(key.Event)
		if !ok || e.State != key.Press {
			continue
		}
		if isCopy(e) {
			gtx.Execute(clipboard.WriteCmd{
				Type: "application/text",
				Data: io.NopCloser(strings.NewReader(ui.display.Text)),
			})
			continue
		}
		if b, ok := buttonForKey(e); ok {
			ui.press(b)
		}
	}
}

func isCopy(e key.Event) bool {
	return e.Name == "C" && e.Modifiers.Contain(key.ModShortcut)
}

// buttonForKey maps a key event to a calculator button.
func buttonForKey(e key.Event) (calc.Button, bool) {
	switch e.Name {
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9":
		return calc.Digit(int(e.Name[0] - '0')), true
	case ".":
		return calc.Decimal, true
	case "+":
		return calc.Op(calc.OpAdd), true
	case "-":
		if e.Modifiers.Contain(key.ModAlt) {
			return calc.ToggleSign, true
		}
		return calc.Op(calc.OpSubtract), true
	case "*":
		return calc.Op(calc.OpMultiply), true
	case "/":
		return calc.Op(calc.OpDivide), true
	case "=", key.NameEnter, key.NameReturn:
		return calc.Equals, true
	case key.NameDeleteBackward, key.NameDeleteForward:
		return calc.Backspace, true
	case key.NameEscape:
		return calc.Clear, true
	}
	return calc.Button{}, false
}

// button is a clickable button.
type button struct {
	button calc.Button
	color  color.NRGBA

	clicker widget.Clickable
}

func newButton(b calc.Button, color color.NRGBA) *button {
	return &button{button: b, color: color}
}

func main() {
	go func() {
		w := new(app.Window)
		w.Option(
			app.Title("GioCalc"),
			app.Size(designWidth, designHeight),
			app.MinSize(designWidth, designHeight),
		)
		if err := loop(w); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

// loop is the main loop of the app.
func loop(w *app.Window) error {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))

	s := session.New(calc.Engine{}, log.Default())
	defer s.Close()

	var (
		ui  = newUI(th, s)
		ops op.Ops
	)
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			paint.Fill(gtx.Ops, backgroundColor)
			ui.Layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}
