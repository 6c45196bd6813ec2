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
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/jetsetilly/menuhost/curated"
	"github.com/jetsetilly/menuhost/logger"
	"github.com/jetsetilly/menuhost/notifications"
	"github.com/spf13/afero"
)

// Sentinal error patterns returned by the disk functions.
const (
	// the document could not be serialised in any form. an empty document
	// has been written in its place
	FatalPersist = "prefs: fatal: cannot serialise preferences: %v"

	// the document could not be written after all attempts
	PersistFailed = "prefs: persist: %v"
)

// the document written when the real document cannot be serialised
var emptyDocument = []byte("{}")

// Load the document from disk. A missing or unparsable file is not an error:
// the document is simply empty and defaults will be materialised as keys are
// read. Any override checkpoints are forgotten.
func (s *Store) Load() error {
	s.crit.Lock()
	defer s.crit.Unlock()

	s.doc = make(document)
	s.overrides = s.overrides[:0]
	s.dirty = false

	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Logf(logger.Allow, "prefs", "no preferences file at %s", s.path)
		} else {
			logger.Logf(logger.Allow, "prefs", "cannot read preferences: %v", err)
		}
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]interface{}
	if err := dec.Decode(&raw); err != nil {
		logger.Logf(logger.Allow, "prefs", "unparsable preferences file, starting with empty document: %v", err)
		return nil
	}

	// nothing but whitespace can follow the document
	if _, err := dec.Token(); err != io.EOF {
		logger.Log(logger.Allow, "prefs", "unparsable preferences file, starting with empty document: trailing data after document")
		return nil
	}

	for domain, v := range raw {
		d, ok := v.(map[string]interface{})
		if !ok {
			logger.Logf(logger.Allow, "prefs", "ignoring domain %s: not an object", domain)
			continue
		}
		for key := range d {
			if isDefunct(domain, key) {
				logger.Logf(logger.Allow, "prefs", "dropping defunct preference %s.%s", domain, key)
				delete(d, key)
			}
		}
		s.doc[domain] = d
	}

	return nil
}

// encode the document. pretty printing is preferred but a compact form will
// be used if the pretty form fails. overridden values are not encoded.
func (s *Store) encode() ([]byte, error) {
	doc := s.persistent()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err == nil {
		return append(data, '\n'), nil
	}
	logger.Logf(logger.Allow, "prefs", "cannot pretty print preferences: %v", err)

	data, err = json.Marshal(doc)
	if err == nil {
		return data, nil
	}
	logger.Logf(logger.Allow, "prefs", "cannot serialise preferences: %v", err)

	return nil, err
}

// write data to the preferences file. the data is written to a temporary file
// and then moved into place. the write is attempted several times to absorb
// transient failures.
func (s *Store) write(data []byte) error {
	tmp := s.path + ".tmp"

	var err error
	for attempt := 1; attempt <= s.attempts; attempt++ {
		err = s.fs.MkdirAll(filepath.Dir(s.path), 0o700)
		if err == nil {
			err = afero.WriteFile(s.fs, tmp, data, 0o600)
		}
		if err == nil {
			err = s.fs.Rename(tmp, s.path)
		}
		if err == nil {
			return nil
		}

		logger.Logf(logger.Allow, "prefs", "persist attempt %d of %d failed: %v", attempt, s.attempts, err)
		if attempt < s.attempts {
			time.Sleep(s.backoff)
		}
	}

	return curated.Errorf(PersistFailed, err)
}

// Persist writes the document to disk.
//
// If the document cannot be serialised an empty document is written instead
// and a FatalPersist error is returned. The next call to Load() will then find
// an empty document, which has the same effect as a Reset().
func (s *Store) Persist() error {
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.persist()
}

// persist is Persist() without the critical section.
func (s *Store) persist() error {
	data, encErr := s.encode()
	if encErr != nil {
		if err := s.write(emptyDocument); err != nil {
			logger.Log(logger.Allow, "prefs", err)
		}
		return curated.Errorf(FatalPersist, encErr)
	}
	return s.write(data)
}

// Sync persists the document and then, only if the store is dirty, calls the
// NativeSync function for the domain. The dirty flag is cleared after a
// successful sync.
//
// If Persist() fails then the NativeSync function is not called and the store
// remains dirty.
func (s *Store) Sync(domain string) error {
	s.crit.Lock()

	if err := s.persist(); err != nil {
		s.crit.Unlock()
		return err
	}

	dirty := s.dirty
	s.dirty = false
	f := s.nativeSync

	// the native sync function is called outside of the critical section
	// because it is likely to read the preferences
	s.crit.Unlock()

	if dirty && f != nil {
		f(domain)
	}

	return nil
}

// Reset replaces the document with an empty document and persists it. The
// NotifyTerminate notice is then sent because every consumer of the
// preferences assumes the document it loaded is still in place. The
// application should relaunch.
func (s *Store) Reset() error {
	s.crit.Lock()
	s.doc = make(document)
	s.overrides = s.overrides[:0]
	err := s.persist()
	n := s.notify
	s.crit.Unlock()

	logger.Log(logger.Allow, "prefs", "preferences have been reset")

	if n != nil {
		if nerr := n.Notify(notifications.NotifyTerminate); nerr != nil {
			logger.Log(logger.Allow, "prefs", nerr)
		}
	}

	return err
}
