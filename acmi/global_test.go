// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package acmi

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	v, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatalf("bad test timestamp %q: %v", s, err)
	}
	return v
}

func TestParseGlobalProperty(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want GlobalProperty
	}{
		{
			name: "data source",
			in:   "DataSource=DCS 2.0.0.48763",
			want: GlobalProperty{Kind: GlobalDataSource, Text: "DCS 2.0.0.48763"},
		},
		{
			name: "data recorder",
			in:   "DataRecorder=Tacview 1.5",
			want: GlobalProperty{Kind: GlobalDataRecorder, Text: "Tacview 1.5"},
		},
		{
			name: "title",
			in:   "Title=Counter Attack",
			want: GlobalProperty{Kind: GlobalTitle, Text: "Counter Attack"},
		},
		{
			name: "comments keep equals sign",
			in:   "Comments=score=12",
			want: GlobalProperty{Kind: GlobalComments, Text: "score=12"},
		},
		{
			name: "reference longitude",
			in:   "ReferenceLongitude=-129",
			want: GlobalProperty{Kind: GlobalReferenceLongitude, Float: -129},
		},
		{
			name: "reference latitude",
			in:   "ReferenceLatitude=43",
			want: GlobalProperty{Kind: GlobalReferenceLatitude, Float: 43},
		},
		{
			name: "unknown key",
			in:   "FlightRecorder=ACME FDR mk.3",
			want: GlobalProperty{Kind: GlobalUnknown, Name: "FlightRecorder", Text: "ACME FDR mk.3"},
		},
		{
			name: "unknown key with empty value",
			in:   "Remarks=",
			want: GlobalProperty{Kind: GlobalUnknown, Name: "Remarks"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseGlobalProperty(tt.in)
			if err != nil {
				t.Fatalf("parseGlobalProperty(%q) error %v", tt.in, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseGlobalProperty(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseGlobalPropertyTimes(t *testing.T) {
	got, err := parseGlobalProperty("ReferenceTime=2011-06-02T05:00:00Z")
	if err != nil {
		t.Fatalf("parseGlobalProperty() error %v", err)
	}
	if got.Kind != GlobalReferenceTime {
		t.Errorf("Kind = %v, want %v", got.Kind, GlobalReferenceTime)
	}
	if want := mustTime(t, "2011-06-02T05:00:00Z"); !got.Time.Equal(want) {
		t.Errorf("Time = %v, want %v", got.Time, want)
	}

	got, err = parseGlobalProperty("RecordingTime=2016-02-18T16:44:12+09:00")
	if err != nil {
		t.Fatalf("parseGlobalProperty() error %v", err)
	}
	if got.Kind != GlobalRecordingTime {
		t.Errorf("Kind = %v, want %v", got.Kind, GlobalRecordingTime)
	}
	if want := mustTime(t, "2016-02-18T16:44:12+09:00"); !got.Time.Equal(want) {
		t.Errorf("Time = %v, want %v", got.Time, want)
	}
}

func TestParseGlobalPropertyErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"no equals sign", "justtext", ErrMalformedGlobalProperty},
		{"bad timestamp", "ReferenceTime=yesterday", ErrParseTime},
		{"bad float", "ReferenceLongitude=west", ErrParseFloat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseGlobalProperty(tt.in)
			if !errors.Is(err, tt.want) {
				t.Errorf("parseGlobalProperty(%q) error %v, want %v", tt.in, err, tt.want)
			}
		})
	}
}
