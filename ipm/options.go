// Copyright ©2026 ruckstead. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipm

type optKind int

const (
	optNumber optKind = iota
	optBool
	optString
)

type optValue struct {
	kind optKind
	num  float64
	b    bool
	str  string
}

// Options is a layered option store. The bottom layer is the snapshot
// captured at initialization; Override creates a fresh child layer whose
// entries shadow the parent on lookup. Lookup walks child-first, so a layer
// never observes mutations made above it and never mutates anything below it.
type Options struct {
	values map[string]optValue
	parent *Options
}

// NewOptions returns an empty base snapshot.
func NewOptions() *Options {
	return &Options{values: make(map[string]optValue)}
}

// Override returns a new empty layer on top of o. Sets on the returned layer
// leave o and every layer below it untouched.
func (o *Options) Override() *Options {
	return &Options{values: make(map[string]optValue), parent: o}
}

func (o *Options) lookup(name string) (optValue, bool) {
	for l := o; l != nil; l = l.parent {
		if v, ok := l.values[name]; ok {
			return v, true
		}
	}
	return optValue{}, false
}

// SetNumber stores a numeric option in this layer.
func (o *Options) SetNumber(name string, v float64) {
	o.values[name] = optValue{kind: optNumber, num: v}
}

// SetBool stores a boolean option in this layer.
func (o *Options) SetBool(name string, v bool) {
	o.values[name] = optValue{kind: optBool, b: v}
}

// SetStr stores a string option in this layer.
func (o *Options) SetStr(name, v string) {
	o.values[name] = optValue{kind: optString, str: v}
}

// SetNumberIfUnset stores a numeric option unless any layer already holds it.
func (o *Options) SetNumberIfUnset(name string, v float64) {
	if _, ok := o.lookup(name); !ok {
		o.SetNumber(name, v)
	}
}

// SetBoolIfUnset stores a boolean option unless any layer already holds it.
func (o *Options) SetBoolIfUnset(name string, v bool) {
	if _, ok := o.lookup(name); !ok {
		o.SetBool(name, v)
	}
}

// SetStrIfUnset stores a string option unless any layer already holds it.
func (o *Options) SetStrIfUnset(name, v string) {
	if _, ok := o.lookup(name); !ok {
		o.SetStr(name, v)
	}
}

// Number returns the numeric option and whether it is set.
func (o *Options) Number(name string) (float64, bool) {
	v, ok := o.lookup(name)
	if !ok || v.kind != optNumber {
		return 0, false
	}
	return v.num, true
}

// NumberOr returns the numeric option, or def when unset.
func (o *Options) NumberOr(name string, def float64) float64 {
	if v, ok := o.Number(name); ok {
		return v
	}
	return def
}

// Bool returns the boolean option and whether it is set.
func (o *Options) Bool(name string) (bool, bool) {
	v, ok := o.lookup(name)
	if !ok || v.kind != optBool {
		return false, false
	}
	return v.b, true
}

// BoolOr returns the boolean option, or def when unset.
func (o *Options) BoolOr(name string, def bool) bool {
	if v, ok := o.Bool(name); ok {
		return v
	}
	return def
}

// Str returns the string option and whether it is set.
func (o *Options) Str(name string) (string, bool) {
	v, ok := o.lookup(name)
	if !ok || v.kind != optString {
		return "", false
	}
	return v.str, true
}

// StrOr returns the string option, or def when unset.
func (o *Options) StrOr(name, def string) string {
	if v, ok := o.Str(name); ok {
		return v
	}
	return def
}

// ScopedNumber looks up prefix+name first and falls back to the bare name,
// so a nested run with its own option prefix inherits the outer values.
func (o *Options) ScopedNumber(prefix, name string) (float64, bool) {
	if v, ok := o.Number(prefix + name); ok {
		return v, true
	}
	return o.Number(name)
}

// ScopedBool is the boolean analog of ScopedNumber.
func (o *Options) ScopedBool(prefix, name string) (bool, bool) {
	if v, ok := o.Bool(prefix + name); ok {
		return v, true
	}
	return o.Bool(name)
}
