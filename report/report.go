/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package report

import (
	"fmt"
	"io"
	"time"

	"github.com/go-openapi/strfmt"
	"gopkg.in/yaml.v3"

	"github.com/suparena/labelkit"
	"github.com/suparena/labelkit/registry"
)

// Snapshot is a point-in-time view of a registry's contents, suitable for
// diagnostics output. It is derived from live state on demand and never
// read back.
type Snapshot struct {
	Version string  `yaml:"version"`
	TakenAt string  `yaml:"takenAt"`
	Count   int     `yaml:"count"`
	Entries []Entry `yaml:"entries"`
}

// Entry describes one registered callable.
type Entry struct {
	Callable string   `yaml:"callable"`
	Labels   []string `yaml:"labels"`
	Mask     uint64   `yaml:"mask"`
}

// Capture builds a Snapshot of the registry in insertion order.
func Capture(reg *registry.Registry) Snapshot {
	snap := Snapshot{
		Version: labelkit.Version,
		TakenAt: strfmt.DateTime(time.Now().UTC()).String(),
	}
	for clb := range reg.Callables() {
		mask, err := reg.Get(clb)
		if err != nil {
			continue
		}
		snap.Entries = append(snap.Entries, Entry{
			Callable: displayName(clb),
			Labels:   mask.Names(),
			Mask:     uint64(mask),
		})
	}
	snap.Count = len(snap.Entries)
	return snap
}

// Write encodes the snapshot as YAML.
func Write(w io.Writer, snap Snapshot) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return nil
}

// WriteRegistry captures reg and writes it in one step.
func WriteRegistry(w io.Writer, reg *registry.Registry) error {
	return Write(w, Capture(reg))
}

func displayName(clb any) string {
	if name := registry.DisplayName(clb); name != "" {
		return name
	}
	return fmt.Sprintf("%T", clb)
}
