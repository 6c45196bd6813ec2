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

package menu

import "sync/atomic"

// Prompt is a Dialog with a single line of text. It is dismissed by the user
// or by the view host.
type Prompt struct {
	Text string

	// called once, when the prompt is dismissed
	OnDismiss func()

	dismissed atomic.Bool
}

// NewPrompt is the preferred method of initialisation for the Prompt type.
func NewPrompt(text string, onDismiss func()) *Prompt {
	return &Prompt{
		Text:      text,
		OnDismiss: onDismiss,
	}
}

// Dismiss implements the Dialog interface. Only the first call has any
// effect.
func (p *Prompt) Dismiss() {
	if p.dismissed.Swap(true) {
		return
	}
	if p.OnDismiss != nil {
		p.OnDismiss()
	}
}

// IsDismissed returns true if Dismiss() has been called.
func (p *Prompt) IsDismissed() bool {
	return p.dismissed.Load()
}

func (p *Prompt) String() string {
	return p.Text
}
