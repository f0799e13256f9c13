// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package acmi

import (
	"errors"
	"reflect"
	"testing"
)

func sp(s string) *string { return &s }

func TestParseEvent(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Event
	}{
		{
			name: "message",
			in:   "Event=Message|705|Maverick has violated ATC directives",
			want: Event{Kind: EventMessage, ObjectID: 0x705, Text: "Maverick has violated ATC directives"},
		},
		{
			name: "bookmark",
			in:   "Event=Bookmark|Starting precautionary landing practice",
			want: Event{Kind: EventBookmark, Text: "Starting precautionary landing practice"},
		},
		{
			name: "debug",
			in:   "Event=Debug|327 active planes",
			want: Event{Kind: EventDebug, Text: "327 active planes"},
		},
		{
			name: "left area with trailing pipe",
			in:   "Event=LeftArea|507|",
			want: Event{Kind: EventLeftArea, ObjectID: 0x507},
		},
		{
			name: "destroyed",
			in:   "Event=Destroyed|6A56|",
			want: Event{Kind: EventDestroyed, ObjectID: 0x6A56},
		},
		{
			name: "taken off",
			in:   "Event=TakenOff|2723|Col. Sinclair has taken off from Camarillo Airport",
			want: Event{Kind: EventTakenOff, ObjectID: 0x2723, Text: "Col. Sinclair has taken off from Camarillo Airport"},
		},
		{
			name: "landed",
			in:   "Event=Landed|705|Maverick has landed on the USS Ranger",
			want: Event{Kind: EventLanded, ObjectID: 0x705, Text: "Maverick has landed on the USS Ranger"},
		},
		{
			name: "timeout full",
			in:   "Event=Timeout|SourceId:507|AmmoType:FOX2|AmmoCount:1|Bullseye:50/15000/2500|TargetId:201|IntendedTarget:Leader|Outcome:Kill",
			want: Event{Kind: EventTimeout, Timeout: &TimeoutEvent{
				SourceID:       sp("507"),
				AmmoType:       sp("FOX2"),
				AmmoCount:      sp("1"),
				Bullseye:       sp("50/15000/2500"),
				TargetID:       sp("201"),
				IntendedTarget: sp("Leader"),
				Outcome:        sp("Kill"),
			}},
		},
		{
			name: "timeout partial with ignored token",
			in:   "Event=Timeout|AmmoType:FOX2|Bogus:thing|nonsense",
			want: Event{Kind: EventTimeout, Timeout: &TimeoutEvent{AmmoType: sp("FOX2")}},
		},
		{
			name: "unknown event keeps tail",
			in:   "Event=Refueling|705|probe connected",
			want: Event{Kind: EventUnknown, Name: "Refueling", Text: "705|probe connected"},
		},
		{
			name: "unknown event without tail",
			in:   "Event=Refueling",
			want: Event{Kind: EventUnknown, Name: "Refueling"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseEvent(tt.in)
			if err != nil {
				t.Fatalf("parseEvent(%q) error %v", tt.in, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseEvent(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseEventErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"message missing text", "Event=Message|705", ErrMalformedEvent},
		{"bookmark missing text", "Event=Bookmark", ErrMalformedEvent},
		{"left area missing id", "Event=LeftArea", ErrMalformedEvent},
		{"taken off missing text", "Event=TakenOff|2723", ErrMalformedEvent},
		{"bad object id", "Event=Destroyed|XYZ|", ErrParseInt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseEvent(tt.in)
			if !errors.Is(err, tt.want) {
				t.Errorf("parseEvent(%q) error %v, want %v", tt.in, err, tt.want)
			}
		})
	}
}
