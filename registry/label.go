/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"github.com/suparena/labelkit/errors"
)

// Label is a member of the closed label enumeration. Its ordinal value is
// the bit position of the label in a Bitmask.
type Label uint8

const (
	// Deprecated marks a callable as scheduled for removal.
	Deprecated Label = iota
	// Pure marks a callable as free of side effects.
	Pure
	// Idempotent marks a callable as safe to invoke repeatedly.
	Idempotent

	numLabels
)

// labelNames maps each Label to its canonical name, indexed by ordinal.
var labelNames = [numLabels]string{
	Deprecated: "deprecated",
	Pure:       "pure",
	Idempotent: "idempotent",
}

// labelMessages holds the fixed human-readable warning text emitted when an
// instrumented callable carrying the label is invoked.
var labelMessages = [numLabels]string{
	Deprecated: "Function is deprecated.",
	Pure:       "Function is pure.",
	Idempotent: "Function is idempotent.",
}

// String returns the canonical name of the label.
func (l Label) String() string {
	if l >= numLabels {
		return "unknown"
	}
	return labelNames[l]
}

// Message returns the fixed warning message associated with the label.
func (l Label) Message() string {
	if l >= numLabels {
		return ""
	}
	return labelMessages[l]
}

// Bit returns the bitmask value of the label, 1 shifted by its ordinal.
func (l Label) Bit() Bitmask {
	return 1 << l
}

// ParseLabel returns the Label with the given canonical name.
func ParseLabel(name string) (Label, error) {
	for l, n := range labelNames {
		if n == name {
			return Label(l), nil
		}
	}
	return 0, errors.NewUnknownLabelError(name)
}

// LabelAt returns the Label at the given bit position.
func LabelAt(ordinal int) (Label, error) {
	if ordinal < 0 || ordinal >= int(numLabels) {
		return 0, errors.NewUnknownOrdinalError(ordinal)
	}
	return Label(ordinal), nil
}

// Labels returns every member of the enumeration in ascending ordinal order.
func Labels() []Label {
	all := make([]Label, numLabels)
	for i := range all {
		all[i] = Label(i)
	}
	return all
}

// Bitmask encodes a set of labels as an integer; bit i is set iff the
// callable carries the label with ordinal i.
type Bitmask uint64

// validMask has every defined label bit set.
const validMask = Bitmask(1)<<numLabels - 1

// MaskOf returns the bitwise OR of the bit values for every given label name.
func MaskOf(names ...string) (Bitmask, error) {
	var mask Bitmask
	for _, name := range names {
		l, err := ParseLabel(name)
		if err != nil {
			return 0, err
		}
		mask |= l.Bit()
	}
	return mask, nil
}

// Labels decodes the bitmask, walking from bit 0 upward so the result is
// ordered by ascending bit index. Consumers rely on this ordering.
func (b Bitmask) Labels() []Label {
	var labels []Label
	for i := 0; b != 0; i++ {
		if b&1 != 0 {
			labels = append(labels, Label(i))
		}
		b >>= 1
	}
	return labels
}

// Names decodes the bitmask into canonical label names, ascending by bit index.
func (b Bitmask) Names() []string {
	labels := b.Labels()
	names := make([]string, 0, len(labels))
	for _, l := range labels {
		names = append(names, l.String())
	}
	return names
}

// Valid reports whether every set bit corresponds to a defined label ordinal.
func (b Bitmask) Valid() bool {
	return b&^validMask == 0
}
