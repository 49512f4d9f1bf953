package wire

import "fmt"

// LabelTable maps enum members to their wire labels bidirectionally.
// Labels are explicit per-member strings, independent of the member's
// Go name, so interchange spelling survives internal renames.
type LabelTable[S comparable] struct {
	enum    string
	labels  map[S]string
	symbols map[string]S
	order   []S
}

// NewLabelTable builds a table for the named enumeration. Members keeps
// declaration order; each member must have an entry in labels and every
// label must be unique. Violations panic: the tables are package-level
// constants and a bad one is a programmer error, not a data error.
func NewLabelTable[S comparable](enum string, members []S, labels map[S]string) *LabelTable[S] {
	t := &LabelTable[S]{
		enum:    enum,
		labels:  make(map[S]string, len(members)),
		symbols: make(map[string]S, len(members)),
		order:   members,
	}
	for _, m := range members {
		label, ok := labels[m]
		if !ok {
			panic(fmt.Sprintf("wire: %s member %v has no label", enum, m))
		}
		if _, dup := t.symbols[label]; dup {
			panic(fmt.Sprintf("wire: %s label %q is not unique", enum, label))
		}
		t.labels[m] = label
		t.symbols[label] = m
	}
	return t
}

// Enum returns the enumeration name used in error messages.
func (t *LabelTable[S]) Enum() string {
	return t.enum
}

// LabelOf returns the wire label for a member. Total for members listed
// at construction; an unlisted member panics.
func (t *LabelTable[S]) LabelOf(s S) string {
	label, ok := t.labels[s]
	if !ok {
		panic(fmt.Sprintf("wire: %s has no member %v", t.enum, s))
	}
	return label
}

// SymbolOf resolves a wire label back to its member. An unrecognized
// label yields a recoverable UnknownSymbolError.
func (t *LabelTable[S]) SymbolOf(label string) (S, error) {
	s, ok := t.symbols[label]
	if !ok {
		var zero S
		return zero, &UnknownSymbolError{Enum: t.enum, Label: label}
	}
	return s, nil
}

// Members returns the enumeration members in declaration order.
// Declaration order is the precedence order used wherever a payload
// populates more than one variant at once.
func (t *LabelTable[S]) Members() []S {
	out := make([]S, len(t.order))
	copy(out, t.order)
	return out
}
