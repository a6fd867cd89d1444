package registry

import (
	"fmt"
	"strings"
)

// Kind is the simplified enum for capturable field kinds.
type Kind string

const (
	// KindText is a single-line free text value.
	KindText Kind = "text"
	// KindDate is a date value paired with a sibling "no date" override flag
	// transmitted under "<key>_nodate".
	KindDate Kind = "date"
	// KindFile is an optional binary attachment with zero or one file.
	KindFile Kind = "file"
	// KindTextBlock is a multi-line free text block.
	KindTextBlock Kind = "textblock"
	// KindBool is a yes/no flag serialised as "si"/"no".
	KindBool Kind = "bool"
)

// NoDateSuffix is appended to a date field key to form its override flag key.
const NoDateSuffix = "_nodate"

// Field declares a single capturable value: its wire key, a human label, the
// input kind, an optional default, and the conditional group it belongs to.
// An empty Group means the field is always part of the active set.
type Field struct {
	Key     string
	Label   string
	Kind    Kind
	Default string
	Group   string
}

// Registry is a pure declarative lookup over the declared fields of one form.
// It has no behaviour beyond lookup; a missing key is a configuration defect
// on the caller's side, not a runtime failure.
type Registry struct {
	fields map[string]Field
	order  []string
}

// New builds a registry from the declared fields. Duplicate or empty keys are
// rejected since the transport payload requires unique keys.
func New(fields ...Field) (*Registry, error) {
	reg := &Registry{
		fields: make(map[string]Field, len(fields)),
		order:  make([]string, 0, len(fields)),
	}
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			return nil, fmt.Errorf("registry: field with empty key (label %q)", field.Label)
		}
		if _, exists := reg.fields[key]; exists {
			return nil, fmt.Errorf("registry: duplicate field key %q", key)
		}
		field.Key = key
		reg.fields[key] = field
		reg.order = append(reg.order, key)
	}
	return reg, nil
}

// MustNew panics on registration failure. Useful for the built-in sale and
// lease declarations which are wired at init time.
func MustNew(fields ...Field) *Registry {
	reg, err := New(fields...)
	if err != nil {
		panic(err)
	}
	return reg
}

// Lookup returns the declaration for a key.
func (r *Registry) Lookup(key string) (Field, bool) {
	if r == nil {
		return Field{}, false
	}
	field, ok := r.fields[key]
	return field, ok
}

// Keys returns every declared key in declaration order.
func (r *Registry) Keys() []string {
	if r == nil {
		return nil
	}
	return append([]string(nil), r.order...)
}

// Fields returns every declaration in declaration order.
func (r *Registry) Fields() []Field {
	if r == nil {
		return nil
	}
	out := make([]Field, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.fields[key])
	}
	return out
}

// GroupKeys returns the keys belonging to a conditional group, in declaration
// order. An empty group name selects the unconditional fields.
func (r *Registry) GroupKeys(group string) []string {
	if r == nil {
		return nil
	}
	var out []string
	for _, key := range r.order {
		if r.fields[key].Group == group {
			out = append(out, key)
		}
	}
	return out
}

// Len reports the number of declared fields.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.order)
}
