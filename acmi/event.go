// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package acmi

import (
	"fmt"
	"strings"
)

// EventKind is the discriminant of an Event.
type EventKind uint8

// The event kinds.
const (
	// EventMessage generic event attached to an object.
	// Event=Message|705|Maverick has violated ATC directives
	EventMessage EventKind = iota
	// EventBookmark highlighted in the time line and the event log,
	// handy to mark parts of the flight.
	// Event=Bookmark|Starting precautionary landing practice
	EventBookmark
	// EventDebug displayed only when the viewer runs with debugging on.
	// Event=Debug|327 active planes
	EventDebug
	// EventLeftArea the object was cleanly removed from the
	// battlefield, not destroyed.
	// Event=LeftArea|507|
	EventLeftArea
	// EventDestroyed the object has been officially destroyed.
	// Event=Destroyed|6A56|
	EventDestroyed
	// EventTakenOff manually injected take-off marker.
	// Event=TakenOff|2723|Col. Sinclair has taken off from Camarillo Airport
	EventTakenOff
	// EventLanded manually injected landing marker.
	// Event=Landed|705|Maverick has landed on the USS Ranger
	EventLanded
	// EventTimeout a weapon reached or missed its target; carries the
	// shot-log fields.
	EventTimeout
	// EventUnknown any other event type, kept verbatim.
	EventUnknown
)

var eventKindNames = []string{
	"Message", "Bookmark", "Debug", "LeftArea", "Destroyed",
	"TakenOff", "Landed", "Timeout", "Unknown",
}

func (sf EventKind) String() string {
	if int(sf) < len(eventKindNames) {
		return eventKindNames[sf]
	}
	return fmt.Sprintf("EventKind(%d)", uint8(sf))
}

// Event is one discrete battlefield event. Only the fields relevant to
// Kind are set: ObjectID for Message/LeftArea/Destroyed/TakenOff/Landed,
// Text for Message/Bookmark/Debug/TakenOff/Landed, Timeout for
// EventTimeout, Name and Text (the raw tail) for EventUnknown.
type Event struct {
	Kind     EventKind
	ObjectID uint64
	Text     string
	Timeout  *TimeoutEvent
	Name     string
}

// TimeoutEvent carries the weapon shot-log fields. Every field is
// optional; nil means the server did not include it. Bullseye
// coordinates are in meters even when the viewer displays miles.
type TimeoutEvent struct {
	SourceID       *string
	AmmoType       *string
	AmmoCount      *string
	Bullseye       *string
	TargetID       *string
	IntendedTarget *string
	Outcome        *string
}

// parseEvent decodes the Event=<Name>|<field>|... sub-grammar. s still
// carries the Event= prefix.
func parseEvent(s string) (Event, error) {
	tokens := splitEscaped(s, '|')
	if len(tokens) == 0 {
		return Event{}, fmt.Errorf("%w: %q", ErrMalformedEvent, s)
	}

	switch tokens[0] {
	case "Event=Message":
		id, text, err := eventIDText(tokens, s)
		if err != nil {
			return Event{}, err
		}
		return Event{Kind: EventMessage, ObjectID: id, Text: text}, nil
	case "Event=Bookmark":
		text, err := eventText(tokens, s)
		if err != nil {
			return Event{}, err
		}
		return Event{Kind: EventBookmark, Text: text}, nil
	case "Event=Debug":
		text, err := eventText(tokens, s)
		if err != nil {
			return Event{}, err
		}
		return Event{Kind: EventDebug, Text: text}, nil
	case "Event=LeftArea":
		id, err := eventID(tokens, s)
		if err != nil {
			return Event{}, err
		}
		return Event{Kind: EventLeftArea, ObjectID: id}, nil
	case "Event=Destroyed":
		id, err := eventID(tokens, s)
		if err != nil {
			return Event{}, err
		}
		return Event{Kind: EventDestroyed, ObjectID: id}, nil
	case "Event=TakenOff":
		id, text, err := eventIDText(tokens, s)
		if err != nil {
			return Event{}, err
		}
		return Event{Kind: EventTakenOff, ObjectID: id, Text: text}, nil
	case "Event=Landed":
		id, text, err := eventIDText(tokens, s)
		if err != nil {
			return Event{}, err
		}
		return Event{Kind: EventLanded, ObjectID: id, Text: text}, nil
	case "Event=Timeout":
		return Event{Kind: EventTimeout, Timeout: parseTimeoutEvent(tokens[1:])}, nil
	default:
		_, typeName, ok := strings.Cut(tokens[0], "=")
		if !ok {
			return Event{}, fmt.Errorf("%w: %q", ErrMalformedEvent, s)
		}
		_, tail, _ := strings.Cut(s, "|")
		return Event{Kind: EventUnknown, Name: typeName, Text: tail}, nil
	}
}

// eventID decodes a |<hex id> tail.
func eventID(tokens []string, s string) (uint64, error) {
	if len(tokens) < 2 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedEvent, s)
	}
	return parseObjectID(tokens[1])
}

// eventText decodes a |<text> tail.
func eventText(tokens []string, s string) (string, error) {
	if len(tokens) < 2 {
		return "", fmt.Errorf("%w: %q", ErrMalformedEvent, s)
	}
	return tokens[1], nil
}

// eventIDText decodes a |<hex id>|<text> tail.
func eventIDText(tokens []string, s string) (uint64, string, error) {
	if len(tokens) < 3 {
		return 0, "", fmt.Errorf("%w: %q", ErrMalformedEvent, s)
	}
	id, err := parseObjectID(tokens[1])
	if err != nil {
		return 0, "", err
	}
	return id, tokens[2], nil
}

// timeout token prefixes, fixed set; tokens matching none are ignored
var timeoutFields = map[string]func(*TimeoutEvent, *string){
	"SourceId":       func(sf *TimeoutEvent, v *string) { sf.SourceID = v },
	"AmmoType":       func(sf *TimeoutEvent, v *string) { sf.AmmoType = v },
	"AmmoCount":      func(sf *TimeoutEvent, v *string) { sf.AmmoCount = v },
	"Bullseye":       func(sf *TimeoutEvent, v *string) { sf.Bullseye = v },
	"TargetId":       func(sf *TimeoutEvent, v *string) { sf.TargetID = v },
	"IntendedTarget": func(sf *TimeoutEvent, v *string) { sf.IntendedTarget = v },
	"Outcome":        func(sf *TimeoutEvent, v *string) { sf.Outcome = v },
}

// parseTimeoutEvent decodes the Key:Value tokens after Event=Timeout.
func parseTimeoutEvent(tokens []string) *TimeoutEvent {
	ev := &TimeoutEvent{}
	for _, tok := range tokens {
		key, value, ok := strings.Cut(tok, ":")
		if !ok {
			continue
		}
		set, ok := timeoutFields[key]
		if !ok {
			continue
		}
		v := value
		set(ev, &v)
	}
	return ev
}
