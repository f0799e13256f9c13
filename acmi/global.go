// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package acmi

import (
	"fmt"
	"strings"
	"time"
)

// GlobalPropertyKind is the discriminant of a GlobalProperty.
type GlobalPropertyKind uint8

// The global property kinds.
const (
	// GlobalDataSource source simulator, control station or file format.
	// DataSource=DCS 2.0.0.48763
	GlobalDataSource GlobalPropertyKind = iota
	// GlobalDataRecorder software or hardware used to record the data.
	// DataRecorder=Tacview 1.5
	GlobalDataRecorder
	// GlobalReferenceTime base UTC time for the mission; combined with
	// each frame offset to get the absolute time of a sample.
	// ReferenceTime=2011-06-02T05:00:00Z
	GlobalReferenceTime
	// GlobalRecordingTime recording creation UTC time.
	// RecordingTime=2016-02-18T16:44:12Z
	GlobalRecordingTime
	// GlobalAuthor author or operator who created the recording.
	GlobalAuthor
	// GlobalTitle mission or flight title.
	GlobalTitle
	// GlobalCategory category of the flight or mission.
	GlobalCategory
	// GlobalBriefing free text briefing.
	GlobalBriefing
	// GlobalDebriefing free text debriefing.
	GlobalDebriefing
	// GlobalComments free comments about the flight.
	GlobalComments
	// GlobalReferenceLongitude median longitude added to each object
	// longitude to reduce stream size.
	GlobalReferenceLongitude
	// GlobalReferenceLatitude median latitude, same role.
	GlobalReferenceLatitude
	// GlobalUnknown any other key, kept verbatim for forwarding.
	GlobalUnknown
)

// GlobalProperty is one mission-wide property update. Text holds the
// value of textual kinds and the raw value of GlobalUnknown, Time the
// two timestamp kinds, Float the two reference coordinates, Name the
// key of GlobalUnknown.
type GlobalProperty struct {
	Kind  GlobalPropertyKind
	Text  string
	Time  time.Time
	Float float64
	Name  string
}

type globalEntry struct {
	kind  GlobalPropertyKind
	class propClass
}

// globalProps maps the property key to its kind and value class. Keys
// outside the table decode as GlobalUnknown and never fail.
var globalProps = map[string]globalEntry{
	"DataSource":         {GlobalDataSource, classText},
	"DataRecorder":       {GlobalDataRecorder, classText},
	"ReferenceTime":      {GlobalReferenceTime, classTime},
	"RecordingTime":      {GlobalRecordingTime, classTime},
	"Author":             {GlobalAuthor, classText},
	"Title":              {GlobalTitle, classText},
	"Category":           {GlobalCategory, classText},
	"Briefing":           {GlobalBriefing, classText},
	"Debriefing":         {GlobalDebriefing, classText},
	"Comments":           {GlobalComments, classText},
	"ReferenceLongitude": {GlobalReferenceLongitude, classFloat},
	"ReferenceLatitude":  {GlobalReferenceLatitude, classFloat},
}

var globalPropNames = func() map[GlobalPropertyKind]string {
	m := make(map[GlobalPropertyKind]string, len(globalProps))
	for name, e := range globalProps {
		m[e.kind] = name
	}
	return m
}()

func (sf GlobalPropertyKind) String() string {
	if s, ok := globalPropNames[sf]; ok {
		return s
	}
	return "Unknown"
}

// parseGlobalProperty decodes one Key=Value field of a global row.
func parseGlobalProperty(s string) (GlobalProperty, error) {
	name, value, ok := strings.Cut(s, "=")
	if !ok {
		return GlobalProperty{}, fmt.Errorf("%w: %q", ErrMalformedGlobalProperty, s)
	}

	ent, known := globalProps[name]
	if !known {
		return GlobalProperty{Kind: GlobalUnknown, Name: name, Text: value}, nil
	}

	p := GlobalProperty{Kind: ent.kind}
	var err error
	switch ent.class {
	case classText:
		p.Text = value
	case classTime:
		p.Time, err = parseTime(value)
	case classFloat:
		p.Float, err = parseFloat(value)
	}
	if err != nil {
		return GlobalProperty{}, err
	}
	return p, nil
}
