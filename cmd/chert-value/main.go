// Copyright 2026 The Chert Authors
// SPDX-License-Identifier: Apache-2.0

// chert-value parses and inspects typed values from the command line.
// Operators use it to check how a piece of human-entered text (a
// timestamp, a duration, a byte size, a session id) will be
// interpreted by the value layer before putting it in a hunt rule or
// query, and to decode the wire form of a value pulled from the store.
//
// The output is a YAML document showing the value in all three
// encodings plus its fingerprint.
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/chertdb/chert/lib/rdf"
	"github.com/chertdb/chert/lib/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// summary is the YAML document printed for a parsed value.
type summary struct {
	Kind        string `yaml:"kind"`
	Input       string `yaml:"input"`
	Text        string `yaml:"text,omitempty"`
	Wire        string `yaml:"wire"`
	StoreType   string `yaml:"store_type"`
	StoreScalar any    `yaml:"store_scalar"`
	AgeMicros   int64  `yaml:"age_micros"`
	Fingerprint string `yaml:"fingerprint"`
}

func run() error {
	var kind string
	var endOfYear bool
	var fromWire bool
	var list bool

	flagSet := pflag.NewFlagSet("chert-value", pflag.ContinueOnError)
	flagSet.StringVar(&kind, "kind", "", "value kind to parse as (see --list)")
	flagSet.BoolVar(&endOfYear, "eoy", false, "default unspecified calendar fields to end of year (datetime kinds)")
	flagSet.BoolVar(&fromWire, "wire", false, "treat the input as wire bytes instead of human-readable text")
	flagSet.BoolVar(&list, "list", false, "list registered value kinds and exit")
	flagSet.BoolP("help", "h", false, "show help")

	// Handle --version before flag parsing to match other Chert binaries.
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		fmt.Printf("chert-value %s\n", version.Info())
		return nil
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}

	if list {
		fmt.Println(strings.Join(rdf.Kinds(), "\n"))
		return nil
	}

	args := flagSet.Args()
	if kind == "" {
		return fmt.Errorf("--kind is required (see --list for available kinds)")
	}
	if len(args) != 1 {
		return fmt.Errorf("expected exactly one input argument, got %d", len(args))
	}
	input := args[0]

	value, err := parse(kind, input, fromWire, endOfYear)
	if err != nil {
		return err
	}

	fingerprint := rdf.Fingerprint(value)
	document := summary{
		Kind:        value.Kind(),
		Input:       input,
		Wire:        string(value.SerializeToWire()),
		StoreType:   value.Store().String(),
		StoreScalar: value.SerializeToStore(),
		AgeMicros:   value.Age().AsMicrosecondsSinceEpoch(),
		Fingerprint: hex.EncodeToString(fingerprint[:]),
	}
	if stringer, ok := value.(fmt.Stringer); ok {
		document.Text = stringer.String()
	}

	encoded, err := yaml.Marshal(document)
	if err != nil {
		return fmt.Errorf("rendering summary: %w", err)
	}
	fmt.Print(string(encoded))
	return nil
}

// parse builds the value from the requested representation. The
// end-of-year default only exists for the calendar grammar of the
// datetime kinds, so it routes through their dedicated constructors.
func parse(kind, input string, fromWire, endOfYear bool) (rdf.Value, error) {
	if fromWire {
		return rdf.FromWire(kind, []byte(input), nil)
	}
	if endOfYear {
		switch kind {
		case "datetime":
			return rdf.DatetimeFromHumanReadable(input, true)
		case "datetime_seconds":
			return rdf.DatetimeSecondsFromHumanReadable(input, true)
		default:
			return nil, fmt.Errorf("--eoy applies only to datetime kinds, not %q", kind)
		}
	}
	return rdf.FromHumanReadable(kind, input)
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `Chert value inspector — parse text as a typed value and show all encodings.

Usage:
  chert-value --kind <kind> [--eoy] [--wire] <input>
  chert-value --list

Examples:
  chert-value --kind duration 90m
  chert-value --kind bytesize 1.5GiB
  chert-value --kind datetime --eoy 2011
  chert-value --kind session_id aff4:/flows/W:ABCDEF
  chert-value --kind datetime --wire 1434321632000000

Flags:
%s`, flagSet.FlagUsages())
}
