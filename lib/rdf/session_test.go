// Copyright 2026 The Chert Authors
// SPDX-License-Identifier: Apache-2.0

package rdf_test

import (
	"errors"
	"regexp"
	"testing"

	"github.com/chertdb/chert/lib/rdf"
	"github.com/chertdb/chert/lib/testutil"
)

func TestSessionIDGrammar(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{name: "queue-flow", text: "aff4:/flows/W:ABCDEF"},
		{name: "with-suffix", text: "aff4:/flows/H:123456:hunt"},
		{name: "dashed-queue", text: "aff4:/flows/DEBUG-user1:TransferStore"},
		{name: "space-in-id", text: "aff4:/flows/bad id", wantErr: true},
		{name: "no-colon", text: "aff4:/flows/badid", wantErr: true},
		{name: "too-many-colons", text: "aff4:/flows/a:b:c:d", wantErr: true},
		{name: "empty-component", text: "aff4:/flows/W:", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := rdf.ParseSessionID(tt.text)
			if tt.wantErr {
				if !errors.Is(err, rdf.ErrInitialize) {
					t.Fatalf("error = %v, want ErrInitialize", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSessionID: %v", err)
			}
		})
	}
}

func TestSessionIDAccessors(t *testing.T) {
	id, err := rdf.ParseSessionID("aff4:/flows/W:ABCDEF")
	if err != nil {
		t.Fatalf("ParseSessionID: %v", err)
	}
	if got := id.Queue().Path(); got != "/W" {
		t.Errorf("Queue = %q, want %q", got, "/W")
	}
	if got := id.FlowName(); got != "ABCDEF" {
		t.Errorf("FlowName = %q, want %q", got, "ABCDEF")
	}

	// The suffix stays attached to the flow name.
	hunt, err := rdf.ParseSessionID("aff4:/flows/H:123456:hunt")
	if err != nil {
		t.Fatalf("ParseSessionID: %v", err)
	}
	if got := hunt.FlowName(); got != "123456:hunt" {
		t.Errorf("FlowName = %q, want %q", got, "123456:hunt")
	}
}

func TestSessionIDAddDegradesToURN(t *testing.T) {
	id, err := rdf.ParseSessionID("aff4:/flows/W:ABCDEF")
	if err != nil {
		t.Fatalf("ParseSessionID: %v", err)
	}

	// Appended sub-paths are not session identifiers; the result is a
	// plain URN whose basename no longer satisfies the grammar.
	child := id.Add("state")
	if got := child.Path(); got != "/flows/W:ABCDEF/state" {
		t.Fatalf("Add = %q", got)
	}
	if _, err := rdf.ParseSessionID(child.String()); err == nil {
		t.Fatalf("degraded path unexpectedly parses as a SessionID")
	}
}

func TestNewSessionIDDefaults(t *testing.T) {
	id, err := rdf.NewSessionID("", "", "TransferStore")
	if err != nil {
		t.Fatalf("NewSessionID: %v", err)
	}
	if got := id.String(); got != "aff4:/flows/F:TransferStore" {
		t.Fatalf("default construction = %q", got)
	}
}

func TestNewSessionIDExplicitParts(t *testing.T) {
	// Hyphenated flow names are valid grammar; UniqueID output fits.
	flow := testutil.UniqueID("flow")
	id, err := rdf.NewSessionID("/hunts", "H", flow)
	if err != nil {
		t.Fatalf("NewSessionID: %v", err)
	}
	if got := id.Queue().Path(); got != "/H" {
		t.Errorf("Queue = %q, want %q", got, "/H")
	}
	if got := id.FlowName(); got != flow {
		t.Errorf("FlowName = %q, want %q", got, flow)
	}
	if got := id.Dirname(); got != "/hunts" {
		t.Errorf("Dirname = %q, want %q", got, "/hunts")
	}
}

func TestRandomSessionID(t *testing.T) {
	pattern := regexp.MustCompile(`^F:[0-9A-F]+$`)

	first := rdf.RandomSessionID()
	if !pattern.MatchString(first.Basename()) {
		t.Fatalf("random id %q does not match queue:hexflow", first.Basename())
	}

	// 32 random bits colliding across two draws would be remarkable.
	second := rdf.RandomSessionID()
	if first.Equal(&second.URN) && first.FlowName() == second.FlowName() {
		t.Logf("two random session ids collided: %s", first)
	}
}

func TestFlowSessionIDLegacyInput(t *testing.T) {
	value, err := rdf.FromWire("flow_session_id", []byte("W:TransferStore"), nil)
	if err != nil {
		t.Fatalf("FromWire: %v", err)
	}
	id := value.(*rdf.FlowSessionID)
	if got := id.Path(); got != "/flows/W:TransferStore" {
		t.Fatalf("legacy input rehomed to %q, want %q", got, "/flows/W:TransferStore")
	}

	// Fully qualified input passes through untouched.
	qualified, err := rdf.FromWire("flow_session_id", []byte("aff4:/flows/W:ABCDEF"), nil)
	if err != nil {
		t.Fatalf("FromWire: %v", err)
	}
	if got := qualified.(*rdf.FlowSessionID).Path(); got != "/flows/W:ABCDEF" {
		t.Fatalf("qualified input parsed to %q", got)
	}

	// Legacy tolerance does not weaken the grammar.
	if _, err := rdf.FromWire("flow_session_id", []byte("bad id"), nil); !errors.Is(err, rdf.ErrInitialize) {
		t.Fatalf("error = %v, want ErrInitialize", err)
	}
}
