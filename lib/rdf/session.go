// Copyright 2026 The Chert Authors
// SPDX-License-Identifier: Apache-2.0

package rdf

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"
)

// SessionID names a long-running unit of work. It is a URN whose final
// segment satisfies the grammar queue:flow or queue:flow:suffix, each
// component drawn from [-0-9a-zA-Z]. The grammar is validated on every
// parse, so a SessionID in hand is always well-formed.
type SessionID struct {
	URN
}

func init() {
	Register(&Descriptor{Name: "session_id", Store: StoreString, New: func() Value {
		s := &SessionID{}
		s.stampAge()
		return s
	}})
	Register(&Descriptor{Name: "flow_session_id", Store: StoreString, New: func() Value {
		f := &FlowSessionID{}
		f.stampAge()
		return f
	}})
}

const (
	// DefaultSessionBase is the namespace fresh session identifiers
	// are created under.
	DefaultSessionBase = "/flows"

	// DefaultFlowQueue is the queue component used when none is
	// given.
	DefaultFlowQueue = "F"
)

var sessionIDPattern = regexp.MustCompile(`^[-0-9a-zA-Z]+:[-0-9a-zA-Z]+(:[-0-9a-zA-Z]+)?$`)

// NewSessionID builds a session identifier from explicit parts. An
// empty base or queue falls back to the defaults. The suffix may be
// empty.
func NewSessionID(base, queue, flowName string) (*SessionID, error) {
	if base == "" {
		base = DefaultSessionBase
	}
	if queue == "" {
		queue = DefaultFlowQueue
	}
	urn := NewURN(base).Add(queue + ":" + flowName)
	return ParseSessionID(urn.String())
}

// RandomSessionID synthesizes a fresh identifier under the default
// base and queue, with a process-wide random 32-bit flow number
// formatted as uppercase hex.
func RandomSessionID() *SessionID {
	id, err := NewSessionID("", "", fmt.Sprintf("%X", rand.Uint32()))
	if err != nil {
		// Unreachable: hex digits always satisfy the grammar.
		panic("rdf: random session id failed validation: " + err.Error())
	}
	return id
}

// ParseSessionID parses and validates session identifier text.
func ParseSessionID(text string) (*SessionID, error) {
	id := &SessionID{}
	id.stampAge()
	if err := id.ParseFromWire([]byte(text)); err != nil {
		return nil, err
	}
	return id, nil
}

// Kind implements Value.
func (s *SessionID) Kind() string { return "session_id" }

// ParseFromWire decodes URN text and validates the final segment
// against the session grammar.
func (s *SessionID) ParseFromWire(data []byte) error {
	var urn URN
	if err := urn.ParseFromWire(data); err != nil {
		return err
	}
	if !sessionIDPattern.MatchString(urn.Basename()) {
		return initializeErrorf("invalid URN for SessionID: %q", data)
	}
	s.value = urn.value
	return nil
}

// ParseFromStore implements Value.
func (s *SessionID) ParseFromStore(scalar any) error {
	text, err := stringScalar(scalar, s.Kind())
	if err != nil {
		return err
	}
	return s.ParseFromWire([]byte(text))
}

// ParseFromHumanReadable implements HumanReadable.
func (s *SessionID) ParseFromHumanReadable(text string) error {
	return s.ParseFromWire([]byte(text))
}

// Queue returns the queue component as a URN.
func (s *SessionID) Queue() *URN {
	queue, _, _ := strings.Cut(s.Basename(), ":")
	return NewURN(queue)
}

// FlowName returns everything after the queue component, including
// any suffix.
func (s *SessionID) FlowName() string {
	_, flow, _ := strings.Cut(s.Basename(), ":")
	return flow
}

// Add returns a plain URN: paths appended under a session identifier
// are not session identifiers themselves, so the result deliberately
// sheds the grammar constraint.
func (s *SessionID) Add(segment string) *URN {
	return s.URN.Add(segment)
}

// Copy returns an independent instance with identical payload and age.
func (s *SessionID) Copy() *SessionID {
	out := &SessionID{}
	out.value = s.value
	out.SetRawAge(s.ageMicros)
	return out
}

// FlowSessionID tolerates legacy inputs that omit the scheme and base
// path: old agents sent bare identifiers like "W:TransferStore", which
// are rehomed under the default base before validation.
type FlowSessionID struct {
	SessionID
}

// Kind implements Value.
func (f *FlowSessionID) Kind() string { return "flow_session_id" }

// ParseFromWire prepends the canonical base when the input lacks the
// scheme, then validates as usual.
func (f *FlowSessionID) ParseFromWire(data []byte) error {
	text := string(data)
	if !strings.HasPrefix(text, urnScheme) {
		text = urnScheme + DefaultSessionBase + "/" + text
	}
	return f.SessionID.ParseFromWire([]byte(text))
}

// ParseFromStore implements Value. Routed through the legacy-tolerant
// wire parser rather than the promoted one.
func (f *FlowSessionID) ParseFromStore(scalar any) error {
	text, err := stringScalar(scalar, f.Kind())
	if err != nil {
		return err
	}
	return f.ParseFromWire([]byte(text))
}

// ParseFromHumanReadable implements HumanReadable.
func (f *FlowSessionID) ParseFromHumanReadable(text string) error {
	return f.ParseFromWire([]byte(text))
}

var _ HumanReadable = (*SessionID)(nil)
var _ HumanReadable = (*FlowSessionID)(nil)
