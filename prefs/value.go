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
	"strconv"
	"strings"
)

// Value represents the actual Go preference value. Values read from disk
// will be one of bool, json.Number, string, []interface{} or
// map[string]interface{}.
type Value = interface{}

// InvalidInt is returned by the integer accessors when the stored value cannot
// be coerced to an integer.
const InvalidInt = math.MinInt64

// Key identifies a single preference.
type Key struct {
	Domain string
	Name   string
}

func (k Key) String() string {
	return fmt.Sprintf("%s.%s", k.Domain, k.Name)
}

// toFloat64 coerces any numeric representation to float64. numeric strings are
// accepted because command line overrides are stored as strings.
func toFloat64(v Value) (float64, bool) {
	switch v := v.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	}
	return math.NaN(), false
}

// toInt64 coerces any numeric representation to int64. floating point values
// are truncated.
func toInt64(v Value) (int64, bool) {
	switch v := v.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return int64(v), true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		if v > math.MaxInt64 {
			return InvalidInt, false
		}
		return int64(v), true
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i, true
		}
	case string:
		if i, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
			return i, true
		}
	}

	// anything else that is numeric is treated as a float and truncated
	f, ok := toFloat64(v)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return InvalidInt, false
	}
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return InvalidInt, false
	}
	return int64(f), true
}

// toBool accepts booleans and the strings "true" and "false" (case
// insensitive).
func toBool(v Value) (bool, bool) {
	switch v := v.(type) {
	case bool:
		return v, true
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true":
			return true, true
		case "false":
			return false, true
		}
	}
	return false, false
}

// toString accepts strings and renders numbers and booleans.
func toString(v Value) (string, bool) {
	switch v := v.(type) {
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case bool:
		return strconv.FormatBool(v), true
	}
	if f, ok := toFloat64(v); ok {
		return strconv.FormatFloat(f, 'g', -1, 64), true
	}
	return "", false
}

// parseValue converts a string from a command line override into the most
// suitable preference value.
func parseValue(s string) Value {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "true":
		return true
	case "false":
		return false
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// deepCopy copies the structured parts of a value (maps and slices) so that
// callers cannot alter the document through a returned value.
func deepCopy(v Value) Value {
	switch v := v.(type) {
	case map[string]interface{}:
		c := make(map[string]interface{}, len(v))
		for k, e := range v {
			c[k] = deepCopy(e)
		}
		return c
	case []interface{}:
		c := make([]interface{}, len(v))
		for i, e := range v {
			c[i] = deepCopy(e)
		}
		return c
	case []map[string]interface{}:
		c := make([]interface{}, len(v))
		for i, e := range v {
			c[i] = deepCopy(e)
		}
		return c
	}
	return v
}
