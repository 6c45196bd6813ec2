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

package prefs

import (
	"sort"
	"strings"
)

// the value of a key before it was overridden. present is false if the key did
// not exist in the document.
type prior struct {
	value   Value
	present bool
}

// checkpoint is a single group of overridden keys
type checkpoint map[Key]prior

// domains returns the sorted list of domains in the checkpoint.
func (cp checkpoint) domains() []string {
	m := make(map[string]bool)
	for k := range cp {
		m[k.Domain] = true
	}
	d := make([]string, 0, len(m))
	for k := range m {
		d = append(d, k)
	}
	sort.Strings(d)
	return d
}

// PushOverrides records the current value of each key and then sets the new
// value. The recorded values are restored by PopOverrides(). Checkpoints can
// be nested.
//
// Overridden values are never persisted. The recorded values are written in
// their place. A key that is changed with Set() while overridden is no longer
// overridden.
//
// Returns the sorted list of domains that have been changed, which the caller
// will probably want to Sync().
func (s *Store) PushOverrides(values map[Key]Value) []string {
	s.crit.Lock()
	defer s.crit.Unlock()

	cp := make(checkpoint, len(values))
	for k, v := range values {
		p, ok := s.doc[k.Domain][k.Name]
		cp[k] = prior{value: p, present: ok}
		s.set(k.Domain, k.Name, v)
	}
	s.overrides = append(s.overrides, cp)

	return cp.domains()
}

// PopOverrides restores the values recorded by the most recent call to
// PushOverrides(). Keys that did not exist before the override are removed
// from the document.
//
// Returns the sorted list of domains that have been changed. Returns nil if
// there are no checkpoints.
func (s *Store) PopOverrides() []string {
	s.crit.Lock()
	defer s.crit.Unlock()

	if len(s.overrides) == 0 {
		return nil
	}

	cp := s.overrides[len(s.overrides)-1]
	s.overrides = s.overrides[:len(s.overrides)-1]

	for k, p := range cp {
		if p.present {
			s.set(k.Domain, k.Name, p.value)
		} else {
			s.remove(k.Domain, k.Name)
		}
	}

	return cp.domains()
}

// release forgets the key in every checkpoint. must be called from inside
// the critical section.
func (s *Store) release(k Key) {
	for _, cp := range s.overrides {
		delete(cp, k)
	}
}

// persistent returns the document without any overridden values. Keys are
// returned to the value they had before the outermost checkpoint that names
// them. must be called from inside the critical section.
func (s *Store) persistent() document {
	if len(s.overrides) == 0 {
		return s.doc
	}

	doc := make(document, len(s.doc))
	for domain, d := range s.doc {
		c := make(map[string]Value, len(d))
		for k, v := range d {
			c[k] = v
		}
		doc[domain] = c
	}

	// innermost checkpoint first so that the outermost prior value is the one
	// that remains
	for i := len(s.overrides) - 1; i >= 0; i-- {
		for k, p := range s.overrides[i] {
			if p.present {
				if _, ok := doc[k.Domain]; !ok {
					doc[k.Domain] = make(map[string]Value)
				}
				doc[k.Domain][k.Name] = p.value
				continue // for loop
			}
			delete(doc[k.Domain], k.Name)
			if len(doc[k.Domain]) == 0 {
				delete(doc, k.Domain)
			}
		}
	}

	return doc
}

// OverrideDepth returns the number of override checkpoints.
func (s *Store) OverrideDepth() int {
	s.crit.Lock()
	defer s.crit.Unlock()
	return len(s.overrides)
}

// ParseOverrides parses a string of overrides. The format is a list of
// key/value pairs separated by a semi-colon. The key is the domain and name
// separated by a dot and the value is separated from the key by a double
// colon:
//
//	audio.speakerVolume::8; joystick.variant::keypad
//
// Malformed entries are ignored. The result can be passed to PushOverrides().
func ParseOverrides(overrides string) map[Key]Value {
	m := make(map[Key]Value)

	for _, p := range strings.Split(overrides, ";") {
		kv := strings.Split(p, "::")
		if len(kv) != 2 {
			continue
		}

		key := strings.TrimSpace(kv[0])
		i := strings.Index(key, ".")
		if i <= 0 || i == len(key)-1 {
			continue
		}

		m[Key{Domain: key[:i], Name: key[i+1:]}] = parseValue(kv[1])
	}

	return m
}
