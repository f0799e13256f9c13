// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package acmi

import (
	"fmt"
	"strings"
)

// RecordKind is the discriminant of a Record.
type RecordKind uint8

// The record kinds.
const (
	// RecordRemove the object has been withdrawn from the battlefield.
	// -2D50A7
	RecordRemove RecordKind = iota
	// RecordFrame declares the time offset, in seconds relative to
	// ReferenceTime, of all subsequent updates until the next frame.
	// #123.45
	RecordFrame
	// RecordEvent a discrete event.
	// 0,Event=Bookmark|Starting precautionary landing practice
	RecordEvent
	// RecordGlobalProperties a batch of mission-wide property updates.
	// 0,ReferenceTime=2011-06-02T05:00:00Z,Title=Counter Attack
	RecordGlobalProperties
	// RecordUpdate a batch of property updates for one object.
	// A1,T=12.3|45.6|789,Name=F/A-18C
	RecordUpdate
)

var recordKindNames = []string{
	"Remove", "Frame", "Event", "GlobalProperties", "Update",
}

func (sf RecordKind) String() string {
	if int(sf) < len(recordKindNames) {
		return recordKindNames[sf]
	}
	return fmt.Sprintf("RecordKind(%d)", uint8(sf))
}

// Record is one decoded logical line of the stream. Only the fields
// relevant to Kind are set: ObjectID for Remove and Update, TimeOffset
// for Frame, Event for Event, Globals for GlobalProperties, Props for
// Update. Records are owned by the caller; the reader keeps no
// reference to them.
type Record struct {
	Kind       RecordKind
	ObjectID   uint64
	TimeOffset float64
	Event      Event
	Globals    []GlobalProperty
	Props      []ObjectProperty
}

// parseRecord classifies one logical line and decodes it.
func parseRecord(line string) (Record, error) {
	// remove
	if rest, ok := strings.CutPrefix(line, "-"); ok {
		id, err := parseObjectID(rest)
		if err != nil {
			return Record{}, err
		}
		return Record{Kind: RecordRemove, ObjectID: id}, nil
	}

	// time frame
	if rest, ok := strings.CutPrefix(line, "#"); ok {
		offset, err := parseFloat(rest)
		if err != nil {
			return Record{}, err
		}
		return Record{Kind: RecordFrame, TimeOffset: offset}, nil
	}

	head, tail, ok := strings.Cut(line, ",")
	if !ok {
		return Record{}, fmt.Errorf("%w: %q", ErrMissingDelimiter, line)
	}

	// object id 0 is the mission-global row
	if head == "0" {
		if strings.HasPrefix(tail, "Event=") {
			ev, err := parseEvent(tail)
			if err != nil {
				return Record{}, err
			}
			return Record{Kind: RecordEvent, Event: ev}, nil
		}
		fields := splitEscaped(tail, ',')
		globals := make([]GlobalProperty, 0, len(fields))
		for _, f := range fields {
			p, err := parseGlobalProperty(f)
			if err != nil {
				return Record{}, err
			}
			globals = append(globals, p)
		}
		return Record{Kind: RecordGlobalProperties, Globals: globals}, nil
	}

	id, err := parseObjectID(head)
	if err != nil {
		return Record{}, err
	}
	fields := splitEscaped(tail, ',')
	props := make([]ObjectProperty, 0, len(fields))
	for _, f := range fields {
		p, err := parseObjectProperty(f)
		if err != nil {
			return Record{}, err
		}
		props = append(props, p)
	}
	return Record{Kind: RecordUpdate, ObjectID: id, Props: props}, nil
}
