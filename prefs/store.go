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
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jetsetilly/menuhost/notifications"
	"github.com/spf13/afero"
)

// NativeSync is called by Sync() when the store has been changed since the
// previous sync. It pushes the preferences of the domain to the engine.
type NativeSync func(domain string)

// the default number of times a write is attempted before giving up and the
// pause between attempts
const (
	defaultAttempts = 3
	defaultBackoff  = 50 * time.Millisecond
)

// document is the in memory preference document
type document map[string]map[string]Value

// Store is the single preference store for the application.
type Store struct {
	crit sync.Mutex

	fs   afero.Fs
	path string
	doc  document

	// true if Set() has been called since the last successful Sync()
	dirty bool

	// override checkpoints. see PushOverrides()
	overrides []checkpoint

	nativeSync NativeSync
	notify     notifications.Notify

	attempts int
	backoff  time.Duration
}

// NewStore is the preferred method of initialisation for the Store type. The
// document is empty until Load() is called.
//
// The afero.Fs argument will usually be afero.NewOsFs(). The path is usually
// the value returned by paths.PrefsFile().
func NewStore(fs afero.Fs, path string) *Store {
	return &Store{
		fs:       fs,
		path:     path,
		doc:      make(document),
		attempts: defaultAttempts,
		backoff:  defaultBackoff,
	}
}

// SetNativeSync sets the function called by Sync() when the store is dirty.
func (s *Store) SetNativeSync(f NativeSync) {
	s.crit.Lock()
	defer s.crit.Unlock()
	s.nativeSync = f
}

// SetNotify sets the recipient of the NotifyTerminate notice sent by Reset().
func (s *Store) SetNotify(n notifications.Notify) {
	s.crit.Lock()
	defer s.crit.Unlock()
	s.notify = n
}

// SetRetry changes the number of write attempts and the pause between each
// attempt. Values less than one attempt are treated as one attempt.
func (s *Store) SetRetry(attempts int, backoff time.Duration) {
	s.crit.Lock()
	defer s.crit.Unlock()
	if attempts < 1 {
		attempts = 1
	}
	s.attempts = attempts
	s.backoff = backoff
}

// Path returns the location of the preferences file.
func (s *Store) Path() string {
	return s.path
}

// Get returns the value stored for the key. If the key is not present the
// default value is added to the document and returned.
//
// Lists and objects are copied. Changing the returned value will not change
// the document. Use Set() to store a changed value.
func (s *Store) Get(domain string, key string, def Value) Value {
	s.crit.Lock()
	defer s.crit.Unlock()
	return deepCopy(s.get(domain, key, def))
}

// get is Get() without the critical section.
func (s *Store) get(domain string, key string, def Value) Value {
	d, ok := s.doc[domain]
	if !ok {
		d = make(map[string]Value)
		s.doc[domain] = d
	}
	if v, ok := d[key]; ok {
		return v
	}
	d[key] = def
	return def
}

// Has returns true if the key is present in the document. It does not
// materialise the key.
func (s *Store) Has(domain string, key string) bool {
	s.crit.Lock()
	defer s.crit.Unlock()
	_, ok := s.doc[domain][key]
	return ok
}

// Set a preference value. The store is marked as dirty.
//
// If the key is overridden then the override is forgotten. The value will be
// persisted and will not be replaced by PopOverrides().
func (s *Store) Set(domain string, key string, value Value) {
	s.crit.Lock()
	defer s.crit.Unlock()
	s.set(domain, key, value)
	s.release(Key{Domain: domain, Name: key})
}

// set is Set() without the critical section.
func (s *Store) set(domain string, key string, value Value) {
	d, ok := s.doc[domain]
	if !ok {
		d = make(map[string]Value)
		s.doc[domain] = d
	}
	d[key] = value
	s.dirty = true
}

// Delete removes the key from the document. The store is marked as dirty. A
// later Get() of the key will materialise the default value.
func (s *Store) Delete(domain string, key string) {
	s.crit.Lock()
	defer s.crit.Unlock()
	s.remove(domain, key)
	s.release(Key{Domain: domain, Name: key})
}

// remove a key from the document. the store is marked as dirty.
func (s *Store) remove(domain string, key string) {
	if d, ok := s.doc[domain]; ok {
		delete(d, key)
		if len(d) == 0 {
			delete(s.doc, domain)
		}
	}
	s.dirty = true
}

// GetBool returns the value of the key as a bool. Strings of "true" and
// "false" are accepted. Any other non-bool value returns false.
func (s *Store) GetBool(domain string, key string, def bool) bool {
	b, _ := toBool(s.Get(domain, key, def))
	return b
}

// GetString returns the value of the key as a string. Numbers and booleans are
// rendered as strings. Any other type returns the empty string.
func (s *Store) GetString(domain string, key string, def string) string {
	v, _ := toString(s.Get(domain, key, def))
	return v
}

// GetFloat64 returns the value of the key as a float64. NaN is returned if the
// value cannot be coerced.
func (s *Store) GetFloat64(domain string, key string, def float64) float64 {
	f, ok := toFloat64(s.Get(domain, key, def))
	if !ok {
		return math.NaN()
	}
	return f
}

// GetFloat32 returns the value of the key as a float32. NaN is returned if the
// value cannot be coerced.
func (s *Store) GetFloat32(domain string, key string, def float32) float32 {
	f, ok := toFloat64(s.Get(domain, key, def))
	if !ok {
		return float32(math.NaN())
	}
	return float32(f)
}

// GetInt64 returns the value of the key as an int64. InvalidInt is returned if
// the value cannot be coerced.
func (s *Store) GetInt64(domain string, key string, def int64) int64 {
	i, _ := toInt64(s.Get(domain, key, def))
	return i
}

// GetInt returns the value of the key as an int. math.MinInt is returned if
// the value cannot be coerced (or does not fit in an int). On 64bit platforms
// this is the same as InvalidInt.
func (s *Store) GetInt(domain string, key string, def int) int {
	i, ok := toInt64(s.Get(domain, key, def))
	if !ok || i > math.MaxInt || i < math.MinInt {
		return math.MinInt
	}
	return int(i)
}

// GetList returns the value of the key as a list. Structured values such as
// button mappings are stored as a list of objects. The returned list is a
// copy and changing it will not change the document. Use Set() to store a
// changed list.
//
// Returns nil if the value is not a list.
func (s *Store) GetList(domain string, key string, def []interface{}) []interface{} {
	s.crit.Lock()
	defer s.crit.Unlock()

	switch v := deepCopy(s.get(domain, key, def)).(type) {
	case []interface{}:
		return v
	}
	return nil
}

// Dirty returns true if Set() has been called since the last successful
// Sync().
func (s *Store) Dirty() bool {
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.dirty
}

// Domains returns the sorted list of domains in the document.
func (s *Store) Domains() []string {
	s.crit.Lock()
	defer s.crit.Unlock()

	d := make([]string, 0, len(s.doc))
	for k := range s.doc {
		d = append(d, k)
	}
	sort.Strings(d)
	return d
}

// Document returns a copy of the preference document.
func (s *Store) Document() map[string]map[string]Value {
	s.crit.Lock()
	defer s.crit.Unlock()

	c := make(map[string]map[string]Value, len(s.doc))
	for domain, d := range s.doc {
		cd := make(map[string]Value, len(d))
		for k, v := range d {
			cd[k] = deepCopy(v)
		}
		c[domain] = cd
	}
	return c
}

// String returns the document in compact JSON form. Keys are sorted.
func (s *Store) String() string {
	s.crit.Lock()
	defer s.crit.Unlock()

	b, err := json.Marshal(s.doc)
	if err != nil {
		return fmt.Sprintf("unprintable preferences: %v", err)
	}
	return strings.TrimSpace(string(b))
}
