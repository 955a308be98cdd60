package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wiredraw/document"
	"wiredraw/editor"
	"wiredraw/render/term"
)

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view <file>",
		Short: "View and edit a drawing in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(args[0])
		},
	}
}

// viewer is the terminal front end: it owns the screen, a session built
// from the loaded document, and the current selection.
type viewer struct {
	screen   tcell.Screen
	session  *editor.Session
	doc      *document.Document
	path     string
	selected string
	step     float64
	status   string
}

func runView(path string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	doc, err := document.Load(path)
	if err != nil {
		return err
	}
	session := sessionFromDocument(doc, log)
	session.SetHistoryLimit(cfg.MaxHistory)
	for _, w := range session.Wires() {
		if err := w.SetHitMargin(cfg.HitMargin); err != nil {
			log.Warn("hit margin rejected", zap.Error(err))
		}
	}
	for _, id := range doc.Unresolved {
		log.Warn("dangling terminal reference", zap.String("terminal", id))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	v := &viewer{
		screen:  screen,
		session: session,
		doc:     doc,
		path:    path,
		step:    cfg.GridSize,
	}
	if v.step <= 0 {
		v.step = 1
	}
	return v.loop()
}

// sessionFromDocument registers every pin and wire of a loaded document.
func sessionFromDocument(doc *document.Document, log *zap.Logger) *editor.Session {
	s := editor.NewSession(log)
	for _, c := range doc.Components {
		for _, pin := range c.Pins() {
			s.RegisterTerminal(pin)
		}
	}
	for _, w := range doc.Wires {
		if err := s.AddWire(w); err != nil {
			log.Warn("skipping wire", zap.Error(err))
		}
	}
	return s
}

func (v *viewer) loop() error {
	for {
		v.draw()
		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventResize:
			v.screen.Sync()
		case *tcell.EventMouse:
			if ev.Buttons()&tcell.Button1 != 0 {
				x, y := ev.Position()
				v.selectAt(float64(x), float64(y))
			}
		case *tcell.EventKey:
			if done, err := v.handleKey(ev); done {
				return err
			}
		}
	}
}

func (v *viewer) handleKey(ev *tcell.EventKey) (done bool, err error) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true, nil
	case tcell.KeyLeft:
		v.moveSelection(-v.step, 0)
	case tcell.KeyRight:
		v.moveSelection(v.step, 0)
	case tcell.KeyUp:
		v.moveSelection(0, -v.step)
	case tcell.KeyDown:
		v.moveSelection(0, v.step)
	}
	switch ev.Rune() {
	case 'q':
		return true, nil
	case 'u':
		v.withSelection(func(id string) {
			if err := v.session.Undo(id); err != nil {
				v.status = err.Error()
			} else {
				v.status = "undo"
			}
		})
	case 'r':
		v.withSelection(func(id string) {
			if err := v.session.Redo(id); err != nil {
				v.status = err.Error()
			} else {
				v.status = "redo"
			}
		})
	case 'd':
		v.withSelection(func(id string) {
			if err := v.session.DeleteWire(id); err != nil {
				v.status = err.Error()
				return
			}
			v.removeFromDocument(id)
			v.selected = ""
			v.status = "deleted"
		})
	case 's':
		v.doc.Wires = v.session.Wires()
		if err := document.Save(v.doc, v.path); err != nil {
			v.status = err.Error()
		} else {
			v.status = "saved " + v.path
		}
	}
	return false, nil
}

func (v *viewer) withSelection(f func(id string)) {
	if v.selected == "" {
		v.status = "nothing selected"
		return
	}
	f(v.selected)
}

func (v *viewer) selectAt(x, y float64) {
	if hit := v.session.HitTest(x, y); hit != nil {
		v.selected = hit.ID()
		v.session.Select(hit.ID())
		v.status = fmt.Sprintf("selected wire %s", shortID(hit.ID()))
	} else {
		v.selected = ""
		v.session.Select("")
		v.status = ""
	}
}

func (v *viewer) moveSelection(dx, dy float64) {
	v.withSelection(func(id string) {
		w := v.session.Wire(id)
		if w == nil {
			return
		}
		if w.Attached() {
			v.status = "wire is attached; move its component instead"
			return
		}
		w.Move(dx, dy)
		if err := v.session.Commit(id); err != nil {
			v.status = err.Error()
		}
	})
}

func (v *viewer) removeFromDocument(id string) {
	for i, w := range v.doc.Wires {
		if w.ID() == id {
			v.doc.Wires = append(v.doc.Wires[:i], v.doc.Wires[i+1:]...)
			return
		}
	}
}

func (v *viewer) draw() {
	width, height := v.screen.Size()
	surface := term.New(width, height-1)
	for _, c := range v.doc.Components {
		c.Draw(surface)
	}
	v.session.Draw(surface)

	v.screen.Clear()
	for y := 0; y < height-1; y++ {
		for x := 0; x < width; x++ {
			r, color := surface.CellAt(x, y)
			style := tcell.StyleDefault
			if color != "" {
				style = style.Foreground(tcell.GetColor(color))
			}
			v.screen.SetContent(x, y, r, nil, style)
		}
	}
	v.drawStatus(width, height-1)
	v.screen.Show()
}

func (v *viewer) drawStatus(width, row int) {
	line := "click: select  arrows: move  u/r: undo/redo  d: delete  s: save  q: quit"
	if v.status != "" {
		line = v.status + "  |  " + line
	}
	style := tcell.StyleDefault.Reverse(true)
	for x := 0; x < width; x++ {
		r := ' '
		if x < len(line) {
			r = rune(line[x])
		}
		v.screen.SetContent(x, row, r, nil, style)
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
