package ui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/jakecoffman/cp"

	"github.com/samdwyer/sotora/internal/appstate"
	"github.com/samdwyer/sotora/internal/entity"
	"github.com/samdwyer/sotora/internal/gamedata"
	"github.com/samdwyer/sotora/internal/hud"
	"github.com/samdwyer/sotora/internal/menu"
	"github.com/samdwyer/sotora/internal/userconfig"
	"github.com/samdwyer/sotora/internal/world"
)

// cellWidth is how many columns one world unit spans. Terminal cells are
// roughly twice as tall as they are wide.
const cellWidth = 2

const labelColor = "#FFFFFF"

// View is everything drawn for one frame. The renderer only reads it.
type View struct {
	State    appstate.State
	Menu     *menu.Menu
	Binds    userconfig.KeyBinds
	World    *world.World
	Focus    cp.Vector // World point drawn at the screen center
	Camera   *entity.Camera
	HalfSize float64 // Ground plane half size; zero draws no ground
	Ground   string  // Ground hex color
	Dialog   *DialogView
	Label    LabelView
}

// DialogView is the conversation box content.
type DialogView struct {
	Name     string
	Message  string
	Portrait *gamedata.PortraitDef
}

// LabelView is the HUD area label state.
type LabelView struct {
	Text       string
	Frame      int
	Opacity    float64
	Visibility hud.Visibility
}

// LabelFrom reads the label's render state.
func LabelFrom(l *hud.AreaLabel) LabelView {
	return LabelView{
		Text:       l.Text(),
		Frame:      l.Frame(),
		Opacity:    l.Opacity(),
		Visibility: l.Visibility(),
	}
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	canvas Canvas
}

// NewRenderer creates a new renderer for the given canvas.
func NewRenderer(canvas Canvas) *Renderer {
	return &Renderer{canvas: canvas}
}

// Render draws one frame.
func (r *Renderer) Render(v View) {
	r.canvas.Clear()

	switch v.State {
	case appstate.MainMenu, appstate.SettingsMenu:
		r.drawMenu(v)
	case appstate.Overworld:
		r.drawScene(v)
		r.drawHints(v)
	case appstate.Battle:
		r.drawScene(v)
		r.drawText(1, 1, "BATTLE", tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true))
		_, h := r.canvas.Size()
		r.drawText(1, h-1, fmt.Sprintf("[%s/%s] rotate  [%s] flee", v.Binds.RotateLeft, v.Binds.RotateRight, v.Binds.Back), dimStyle())
	case appstate.Dialog:
		r.drawDialog(v)
	}

	r.drawLabel(v.Label)
	r.canvas.Show()
}

func dimStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.ColorGray)
}

// projection maps world points to cells so the camera's forward is up.
type projection struct {
	focus   cp.Vector
	forward cp.Vector
	right   cp.Vector
	cx, cy  int
}

func newProjection(v View, w, h int) projection {
	p := projection{
		focus:   v.Focus,
		forward: cp.Vector{X: 0, Y: -1},
		right:   cp.Vector{X: 1, Y: 0},
		cx:      w / 2,
		cy:      h / 2,
	}
	if v.Camera != nil {
		p.forward = v.Camera.Forward()
		p.right = v.Camera.Right()
	}
	return p
}

func (p projection) toScreen(pos cp.Vector) (int, int) {
	d := pos.Sub(p.focus)
	up := d.Dot(p.forward)
	rt := d.Dot(p.right)
	return p.cx + int(math.Round(rt*cellWidth)), p.cy - int(math.Round(up))
}

func (p projection) toWorld(x, y int) cp.Vector {
	rt := float64(x-p.cx) / cellWidth
	up := float64(p.cy - y)
	return p.focus.Add(p.right.Mult(rt)).Add(p.forward.Mult(up))
}

func (r *Renderer) drawScene(v View) {
	w, h := r.canvas.Size()
	proj := newProjection(v, w, h)

	if v.HalfSize > 0 {
		style := tcell.StyleDefault.Foreground(gamedata.ColorOr(v.Ground, tcell.ColorGreen))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				p := proj.toWorld(x, y)
				if math.Abs(p.X) <= v.HalfSize && math.Abs(p.Y) <= v.HalfSize {
					r.canvas.SetContent(x, y, world.TileGrass.Rune(), style)
				}
			}
		}
	}

	if v.World == nil {
		return
	}

	var players []*world.Object
	v.World.Each(func(o *world.Object) {
		switch o.Kind {
		case world.KindGround, world.KindCamera, world.KindHUD:
			return
		case world.KindPlayer:
			players = append(players, o)
			return
		case world.KindNameTag:
			parent, ok := v.World.Get(o.Parent)
			if !ok {
				return
			}
			x, y := proj.toScreen(parent.Pos)
			r.drawText(x-len([]rune(o.Name))/2, y-1, o.Name, tcell.StyleDefault.Foreground(tcell.ColorWhite))
			return
		case world.KindBoardTile:
			x, y := proj.toScreen(o.Pos)
			r.canvas.SetContent(x, y, o.Glyph, tcell.StyleDefault.Foreground(tcell.ColorGray))
			return
		}
		if o.Glyph == 0 {
			return
		}
		x, y := proj.toScreen(o.Pos)
		r.canvas.SetContent(x, y, o.Glyph, tcell.StyleDefault.Foreground(gamedata.ColorOr(o.Color, tcell.ColorWhite)).Bold(true))
	})

	// Player on top of everything else.
	for _, o := range players {
		x, y := proj.toScreen(o.Pos)
		r.canvas.SetContent(x, y, o.Glyph, tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))
	}
}

func (r *Renderer) drawHints(v View) {
	_, h := r.canvas.Size()
	kb := v.Binds
	hint := fmt.Sprintf("[%s%s%s%s] move  [%s/%s] rotate  [%s] interact  [%s] menu",
		kb.MoveForward, kb.MoveLeft, kb.MoveBackward, kb.MoveRight,
		kb.RotateLeft, kb.RotateRight, kb.Interact, kb.Back)
	r.drawText(1, h-1, hint, dimStyle())
}

func (r *Renderer) drawMenu(v View) {
	m := v.Menu
	if m == nil {
		return
	}
	w, h := r.canvas.Size()

	lines := len(m.Items) + 2
	if v.State == appstate.SettingsMenu {
		lines += len(userconfig.Actions) + 2
	}
	y := max(1, (h-lines)/2)

	r.drawCentered(w, y, m.Title, tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true))
	y += 2

	for i, item := range m.Items {
		style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
		text := "  " + item.Label + "  "
		if i == m.Selected() {
			style = style.Reverse(true)
			text = "> " + item.Label + " <"
		}
		r.drawCentered(w, y, text, style)
		y++
	}

	if v.State == appstate.SettingsMenu {
		y++
		for _, a := range userconfig.Actions {
			r.drawCentered(w, y, fmt.Sprintf("%-14s %-10s", a.String(), v.Binds.Key(a)), dimStyle())
			y++
		}
	}

	y++
	for _, line := range m.Footer {
		r.drawCentered(w, y, line, dimStyle())
		y++
	}
}

func (r *Renderer) drawDialog(v View) {
	d := v.Dialog
	if d == nil {
		return
	}
	w, h := r.canvas.Size()

	boxH := 8
	if d.Portrait != nil {
		boxH = max(boxH, len(d.Portrait.Art)+4)
	}
	top := max(0, h-boxH-1)
	r.drawBox(1, top, w-2, boxH)

	textX := 3
	if p := d.Portrait; p != nil {
		style := tcell.StyleDefault.Foreground(gamedata.ColorOr(p.Color, tcell.ColorWhite))
		for i, line := range p.Art {
			r.drawText(3, top+2+i, line, style)
		}
		textX += p.Width() + 3
	}

	r.drawText(textX, top+2, d.Name, tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))
	r.drawText(textX, top+4, d.Message, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	r.drawText(textX, top+boxH-2, fmt.Sprintf("[%s] continue", v.Binds.Confirm), dimStyle())
}

// drawLabel draws the HUD area label. The border grows from the center
// one step per animation frame; the text fades with the label opacity.
func (r *Renderer) drawLabel(l LabelView) {
	if l.Visibility == hud.Hidden || l.Text == "" {
		return
	}
	w, _ := r.canvas.Size()

	full := len([]rune(l.Text)) + 6
	span := full * (l.Frame + 1) / hud.BorderFrames
	if span < 2 {
		span = 2
	}
	left := (w - span) / 2
	color, err := gamedata.Fade(labelColor, l.Opacity)
	if err != nil {
		color = tcell.ColorWhite
	}
	border := tcell.StyleDefault.Foreground(color)

	for i := 0; i < span; i++ {
		r.canvas.SetContent(left+i, 1, '═', border)
		r.canvas.SetContent(left+i, 3, '═', border)
	}
	r.canvas.SetContent(left, 2, '║', border)
	r.canvas.SetContent(left+span-1, 2, '║', border)

	r.drawCentered(w, 2, l.Text, border.Bold(true))
}

func (r *Renderer) drawBox(x, y, w, h int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i := x + 1; i < x+w-1; i++ {
		r.canvas.SetContent(i, y, '─', style)
		r.canvas.SetContent(i, y+h-1, '─', style)
	}
	for j := y + 1; j < y+h-1; j++ {
		r.canvas.SetContent(x, j, '│', style)
		r.canvas.SetContent(x+w-1, j, '│', style)
	}
	r.canvas.SetContent(x, y, '┌', style)
	r.canvas.SetContent(x+w-1, y, '┐', style)
	r.canvas.SetContent(x, y+h-1, '└', style)
	r.canvas.SetContent(x+w-1, y+h-1, '┘', style)
}

func (r *Renderer) drawCentered(width, y int, text string, style tcell.Style) {
	r.drawText((width-len([]rune(text)))/2, y, text, style)
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		r.canvas.SetContent(x+i, y, ch, style)
	}
}
