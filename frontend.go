// This file is part of Menuhost.
//
// Menuhost is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Menuhost is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Menuhost.  If not, see <https://www.gnu.org/licenses/>.


package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/jetsetilly/menuhost/detour"
	"github.com/jetsetilly/menuhost/easyterm"
	"github.com/jetsetilly/menuhost/host"
	"github.com/jetsetilly/menuhost/logger"
	"github.com/jetsetilly/menuhost/menu"
	"github.com/jetsetilly/menuhost/menus"
	"github.com/jetsetilly/menuhost/notifications"
	"github.com/jetsetilly/menuhost/prefs"
	"github.com/jetsetilly/menuhost/settings"
	"github.com/jetsetilly/menuhost/version"
)

// screen is the part of easyterm.Terminal used to draw the interface.
type screen interface {
	Clear()
	Print(s string, a ...interface{})
}

// frontend draws the view host to the terminal and turns key presses into
// view host operations. With the exception of newFrontend(), every function
// must be called from the event loop.
type frontend struct {
	scr    screen
	host   *host.Host
	store  *prefs.Store
	engine *headless
	menus  *menus.Menus
	splash *menu.Splash

	// cursor position in each menu
	cursor map[*menu.Menu]int

	// the open dialog. keys are sent to the picker while it is open
	picker *picker

	// a message shown at the bottom of the screen until the next key press
	status string

	quit func()
}

func newFrontend(scr screen, h *host.Host, store *prefs.Store, eng *headless, quit func()) *frontend {
	fe := &frontend{
		scr:    scr,
		host:   h,
		store:  store,
		engine: eng,
		cursor: make(map[*menu.Menu]int),
		quit:   quit,
	}
	fe.menus = menus.NewMenus(h, store, fe, fe, fe)

	fe.splash = menu.NewSplash(h)
	h.SetSplash(fe.splash)

	h.SetNotify(notifications.NotifyFunc(func(n notifications.Notice) error {
		logger.Log(logger.Allow, "host", n)
		return nil
	}))

	store.SetNotify(notifications.NotifyFunc(func(n notifications.Notice) error {
		if n == notifications.NotifyTerminate {
			logger.Log(logger.Allow, "menuhost", "preferences have been reset. restart required")
			fe.quit()
		}
		return nil
	}))

	return fe
}

// AfterFunc implements the detour.Scheduler interface. The function is run on
// the event loop and the screen is redrawn afterwards.
func (fe *frontend) AfterFunc(d time.Duration, f func()) detour.Timer {
	return time.AfterFunc(d, func() {
		fe.host.Post(func() {
			f()
			fe.redraw()
		})
	})
}

// Inflate implements the settings.Inflater interface.
func (fe *frontend) Inflate(kind settings.Kind) settings.Row {
	return &row{kind: kind}
}

// PickNumber implements the settings.Presenter interface.
func (fe *frontend) PickNumber(title string, min int, max int, current int, done func(int)) {
	p := &picker{
		Prompt: menu.NewPrompt(title, nil),
		min:    min,
		max:    max,
		value:  current,
	}
	p.confirm = func() {
		done(p.value)
	}
	fe.openPicker(p)
}

// PickChoice implements the settings.Presenter interface.
func (fe *frontend) PickChoice(title string, choices []string, current string, done func(string)) {
	p := &picker{
		Prompt:  menu.NewPrompt(title, nil),
		choices: choices,
		max:     len(choices) - 1,
	}
	for i, c := range choices {
		if c == current {
			p.value = i
		}
	}
	p.confirm = func() {
		done(p.choices[p.value])
	}
	fe.openPicker(p)
}

func (fe *frontend) openPicker(p *picker) {
	p.OnDismiss = func() {
		if fe.picker == p {
			fe.picker = nil
		}
	}
	fe.picker = p
	fe.host.RegisterDialog(p)
}

// closePicker closes the open picker, confirming the value if requested.
func (fe *frontend) closePicker(confirm bool) {
	p := fe.picker
	fe.host.UnregisterDialog(p)
	p.Dismiss()
	if confirm {
		p.confirm()
	}
}

// the position of a key on a qwerty keyboard. used as the position of the
// tap for calibration flows
var keyboard = []string{
	"1234567890",
	"qwertyuiop",
	"asdfghjkl",
	"zxcvbnm",
}

func tap(k easyterm.Key) menu.KeyTap {
	switch k.Special {
	case easyterm.Up:
		return menu.KeyTap{Key: "up"}
	case easyterm.Down:
		return menu.KeyTap{Key: "down"}
	case easyterm.Left:
		return menu.KeyTap{Key: "left"}
	case easyterm.Right:
		return menu.KeyTap{Key: "right"}
	case easyterm.Enter:
		return menu.KeyTap{Key: "enter"}
	}

	ev := menu.KeyTap{Key: string(k.Rune), X: -1, Y: -1}
	for y, r := range keyboard {
		if x := strings.IndexRune(r, k.Rune); x >= 0 {
			ev.X = x
			ev.Y = y
			break // for loop
		}
	}
	return ev
}

// key handles a single key press and redraws the screen.
func (fe *frontend) key(k easyterm.Key) {
	defer fe.redraw()

	fe.status = ""

	if k.Special == easyterm.Interrupt {
		fe.quit()
		return
	}

	if fe.picker != nil {
		fe.pickerKey(k)
		return
	}

	top := fe.host.Peek()

	// calibration flows take every key except escape
	if top != nil && top.IsCalibrating() {
		if k.Special == easyterm.Escape {
			top.Dismiss()
			return
		}
		if !top.OnKeyTapCalibrationEvent(tap(k)) {
			logger.Logf(logger.Allow, "menuhost", "%v ignored %c", top, k.Rune)
		}
		return
	}

	switch k.Rune {
	case 'q':
		fe.quit()
		return
	case 'p':
		fe.host.SetExternalPause(!fe.host.ExternalPause())
		return
	case 'D':
		fe.host.DismissAll()
		return
	case 's':
		err := fe.host.RunBackground("persist", fe.store.Persist, func(err error) {
			if err != nil {
				fe.status = err.Error()
			} else {
				fe.status = fmt.Sprintf("preferences saved to %s", fe.store.Path())
			}
			fe.redraw()
		})
		if err != nil {
			fe.status = err.Error()
		}
		return
	}

	switch v := top.(type) {
	case nil:
		if k.Special == easyterm.Enter || k.Rune == 'm' {
			if err := fe.menus.Open(menus.Root); err != nil {
				fe.status = err.Error()
			}
		}
	case *menu.Splash:
		v.Dismiss()
	case *menu.Menu:
		fe.menuKey(v, k)
	}
}

func (fe *frontend) menuKey(m *menu.Menu, k easyterm.Key) {
	rows, err := m.Rows()
	if err != nil {
		fe.status = err.Error()
		return
	}

	c := min(fe.cursor[m], len(rows)-1)

	switch {
	case k.Special == easyterm.Up || k.Rune == 'k':
		if c > 0 {
			c--
		}
	case k.Special == easyterm.Down || k.Rune == 'j':
		if c < len(rows)-1 {
			c++
		}
	case k.Special == easyterm.Enter || k.Special == easyterm.Right || k.Rune == ' ':
		if c < 0 {
			break // switch
		}
		isChecked := false
		if r, ok := rows[c].(*row); ok && r.kind == settings.Toggle {
			b, _ := r.binding.Value.(bool)
			isChecked = !b
		}
		if err := m.Select(c, isChecked); err != nil {
			fe.status = err.Error()
		}
	case k.Special == easyterm.Escape || k.Special == easyterm.Left || k.Special == easyterm.Backspace:
		fe.host.Pop()
	}

	fe.cursor[m] = c
}

func (fe *frontend) pickerKey(k easyterm.Key) {
	switch {
	case k.Special == easyterm.Left || k.Special == easyterm.Down || k.Rune == 'h':
		fe.picker.step(-1)
	case k.Special == easyterm.Right || k.Special == easyterm.Up || k.Rune == 'l':
		fe.picker.step(1)
	case k.Special == easyterm.Enter || k.Rune == ' ':
		fe.closePicker(true)
	case k.Special == easyterm.Escape || k.Special == easyterm.Backspace:
		fe.closePicker(false)
	}
}

// redraw the entire screen.
func (fe *frontend) redraw() {
	fe.scr.Clear()

	views := fe.host.Views()
	path := make([]string, len(views))
	for i, v := range views {
		path[len(views)-1-i] = fmt.Sprint(v)
	}

	fe.scr.Print("menuhost  %s", fe.engine)
	if fe.host.ExternalPause() {
		fe.scr.Print("  [held]")
	}
	fe.scr.Print("\n")
	if d := fe.host.DetourDepth(); d > 0 {
		fe.scr.Print("detour depth %d\n", d)
	}
	fe.scr.Print("%s\n\n", strings.Join(path, " > "))

	switch v := fe.host.Peek().(type) {
	case nil:
		fe.scr.Print("press enter for the settings menu\n")
	case *menu.Splash:
		fe.scr.Print("%s\n\npress any key\n", version.Version())
	case *menu.Menu:
		fe.drawMenu(v)
	case *detour.Flow:
		slot, _ := v.Slot()
		fe.scr.Print("%s\n\n%s\n\n(escape to cancel)\n", v.Progress(), slot.Prompt)
	default:
		fe.scr.Print("%v\n", v)
	}

	if fe.picker != nil {
		fe.scr.Print("\n%s\n", fe.picker)
	}

	if fe.status != "" {
		fe.scr.Print("\n%s\n", fe.status)
	}

	fe.scr.Print("\n[q]uit [p]ause [s]ave [D]ismiss all\n")
}

func (fe *frontend) drawMenu(m *menu.Menu) {
	rows, err := m.Rows()
	if err != nil {
		fe.scr.Print("%v\n", err)
		return
	}

	c := fe.cursor[m]
	for i, r := range rows {
		marker := "  "
		if i == c {
			marker = "> "
		}
		fe.scr.Print("%s%v\n", marker, r)
	}
}

// row is the terminal's settings.Row.
type row struct {
	kind    settings.Kind
	binding settings.Binding
}

// Kind implements the settings.Row interface.
func (r *row) Kind() settings.Kind {
	return r.kind
}

// Bind implements the settings.Row interface.
func (r *row) Bind(b settings.Binding) {
	r.binding = b
}

func (r *row) String() string {
	s := r.binding.Title
	switch r.kind {
	case settings.Toggle:
		if b, _ := r.binding.Value.(bool); b {
			s = fmt.Sprintf("[x] %s", s)
		} else {
			s = fmt.Sprintf("[ ] %s", s)
		}
	case settings.Submenu:
		s = fmt.Sprintf("%s ...", s)
	}
	if r.binding.Summary != "" && r.kind != settings.Toggle {
		s = fmt.Sprintf("%s: %s", s, r.binding.Summary)
	}
	if !r.binding.Enabled {
		s = fmt.Sprintf("%s (unavailable)", s)
	}
	return s
}

// picker is the dialog opened by the Slider and Choice settings. The title
// of the picker is the text of the prompt.
type picker struct {
	*menu.Prompt

	// the value is an index into choices if choices is not nil
	choices []string
	min     int
	max     int
	value   int

	confirm func()
}

func (p *picker) step(n int) {
	p.value = max(p.min, min(p.max, p.value+n))
}

func (p *picker) String() string {
	if p.choices != nil {
		return fmt.Sprintf("%s: < %s >", p.Text, p.choices[p.value])
	}
	return fmt.Sprintf("%s: < %d > (%d to %d)", p.Text, p.value, p.min, p.max)
}
