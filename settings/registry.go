// Package settings implements the registry of host settings that machine
// files feed: typed definitions with defaults, value application with
// coercion, and optional binding of plain structs through `machconf` tags.
package settings

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"time"
)

// Definition declares one host setting. The default's dynamic type decides
// what applied values are coerced to.
type Definition struct {
	Key     string
	Default any
	Doc     string
}

// Registry holds setting definitions and their current values. It is not
// safe for concurrent use; the expected host is a single interactive
// session.
type Registry struct {
	defs     map[string]Definition
	values   map[string]any
	bindings map[string][]reflect.Value
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		defs:     make(map[string]Definition),
		values:   make(map[string]any),
		bindings: make(map[string][]reflect.Value),
	}
}

// Register declares a setting and seeds its current value from the default.
// Registering the same key twice is an error.
func (r *Registry) Register(def Definition) error {
	if def.Key == "" {
		return errors.New("settings: definition key cannot be empty")
	}
	if def.Default == nil {
		return fmt.Errorf("settings: %s: a typed default is required", def.Key)
	}
	if _, exists := r.defs[def.Key]; exists {
		return fmt.Errorf("settings: %s is already registered", def.Key)
	}
	r.defs[def.Key] = def
	r.values[def.Key] = def.Default
	return nil
}

// MustRegister is Register for declaration-time wiring; it panics on error.
func (r *Registry) MustRegister(def Definition) {
	if err := r.Register(def); err != nil {
		panic(err)
	}
}

// Apply coerces and stores the given values, typically the decoded contents
// of one machine file. Unknown keys and uncoercible values are collected
// into an *ApplyError while every remaining entry still applies, so one bad
// entry cannot block a file's other settings. Bound struct fields update in
// the same pass. Entries apply in sorted key order.
func (r *Registry) Apply(values map[string]any) error {
	var group *ApplyError
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		def, ok := r.defs[key]
		if !ok {
			appendEntryError(&group, key, errors.New("setting not registered"))
			continue
		}
		coerced, err := coerce(values[key], reflect.TypeOf(def.Default))
		if err != nil {
			appendEntryError(&group, key, err)
			continue
		}
		r.values[key] = coerced
		for _, field := range r.bindings[key] {
			field.Set(reflect.ValueOf(coerced))
		}
	}
	if group.Has() {
		return group
	}
	return nil
}

// Value returns the current value for key and whether key is registered.
func (r *Registry) Value(key string) (any, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Definition returns the definition for key and whether key is registered.
func (r *Registry) Definition(key string) (Definition, bool) {
	def, ok := r.defs[key]
	return def, ok
}

// String returns the current value for key as a string, or "" when the key
// is missing or not string-kinded.
func (r *Registry) String(key string) string {
	if v, ok := r.values[key]; ok {
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.String {
			return rv.String()
		}
	}
	return ""
}

// Int returns the current value for key as an int, or 0 when the key is
// missing or not integer-kinded.
func (r *Registry) Int(key string) int {
	if v, ok := r.values[key]; ok {
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return int(rv.Int())
		}
	}
	return 0
}

// Bool returns the current value for key as a bool, or false when the key is
// missing or not bool-kinded.
func (r *Registry) Bool(key string) bool {
	if v, ok := r.values[key]; ok {
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Bool {
			return rv.Bool()
		}
	}
	return false
}

// Float returns the current value for key as a float64, or 0 when the key is
// missing or not float-kinded.
func (r *Registry) Float(key string) float64 {
	if v, ok := r.values[key]; ok {
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Float32, reflect.Float64:
			return rv.Float()
		}
	}
	return 0
}

// Duration returns the current value for key as a time.Duration, or 0 when
// the key is missing or holds another type.
func (r *Registry) Duration(key string) time.Duration {
	if v, ok := r.values[key]; ok {
		if d, ok := v.(time.Duration); ok {
			return d
		}
	}
	return 0
}

// Snapshot returns a copy of the current values keyed by setting.
func (r *Registry) Snapshot() map[string]any {
	out := make(map[string]any, len(r.values))
	for key, value := range r.values {
		out[key] = value
	}
	return out
}

// Keys returns the registered keys, sorted.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.defs))
	for key := range r.defs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
