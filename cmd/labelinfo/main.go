/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// labelinfo is a small diagnostic tool for the labelkit enumeration:
// it encodes label names into a bitmask, decodes a bitmask back into
// names, or lists the closed label set.
//
//	labelinfo deprecated idempotent   # encode names -> mask
//	labelinfo -mask 5                 # decode mask -> names
//	labelinfo                         # list the enumeration
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/suparena/labelkit"
	"github.com/suparena/labelkit/registry"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")
	maskFlag    = flag.Int64("mask", -1, "Decode a label bitmask into names")
)

func main() {
	// Parse flags early to catch version flag
	flag.Parse()

	// Handle version flag
	if *versionFlag || *vFlag {
		info := labelkit.GetVersionInfo()
		fmt.Printf("labelkit labelinfo version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	// A .env file may supply LABELINFO_FORMAT; absence is fine
	_ = godotenv.Load()
	format := os.Getenv("LABELINFO_FORMAT")
	if format == "" {
		format = "yaml"
	}

	out, err := run(flag.Args(), *maskFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "labelinfo: %v\n", err)
		os.Exit(1)
	}

	if err := emit(format, out); err != nil {
		fmt.Fprintf(os.Stderr, "labelinfo: %v\n", err)
		os.Exit(1)
	}
}

// result is the YAML shape for every mode.
type result struct {
	Mask   uint64   `yaml:"mask"`
	Labels []string `yaml:"labels"`
}

func run(names []string, mask int64) (any, error) {
	switch {
	case mask >= 0:
		b := registry.Bitmask(mask)
		if !b.Valid() {
			return nil, fmt.Errorf("mask %d encodes undefined label bits", mask)
		}
		return result{Mask: uint64(b), Labels: b.Names()}, nil

	case len(names) > 0:
		b, err := registry.MaskOf(names...)
		if err != nil {
			return nil, err
		}
		return result{Mask: uint64(b), Labels: b.Names()}, nil

	default:
		type member struct {
			Ordinal int    `yaml:"ordinal"`
			Name    string `yaml:"name"`
			Message string `yaml:"message"`
		}
		var members []member
		for _, l := range registry.Labels() {
			members = append(members, member{
				Ordinal: int(l),
				Name:    l.String(),
				Message: l.Message(),
			})
		}
		return members, nil
	}
}

func emit(format string, out any) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()
		return enc.Encode(out)
	case "plain":
		fmt.Println(out)
		return nil
	default:
		return fmt.Errorf("unsupported LABELINFO_FORMAT %q", format)
	}
}
