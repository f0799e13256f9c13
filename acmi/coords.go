// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package acmi

import "fmt"

// Coords is the decoded value of a T= positional field. Every position
// is optional: a nil field was not transmitted this tick. Longitude and
// latitude are offsets relative to the mission reference point, u/v are
// the native coordinates of flat-map projections, heading is the yaw
// relative to the flat map's north; it is only carried by the
// nine-position form, next to roll, pitch and yaw.
type Coords struct {
	Longitude *float64
	Latitude  *float64
	Altitude  *float64
	Roll      *float64
	Pitch     *float64
	Yaw       *float64
	U         *float64
	V         *float64
	Heading   *float64
}

// Update sets every field of sf that is present in other, leaving the
// rest intact. Consumers merge successive partial updates with it to
// reconstruct full pose across delta frames.
func (sf *Coords) Update(other Coords) {
	if other.Longitude != nil {
		sf.Longitude = other.Longitude
	}
	if other.Latitude != nil {
		sf.Latitude = other.Latitude
	}
	if other.Altitude != nil {
		sf.Altitude = other.Altitude
	}
	if other.Roll != nil {
		sf.Roll = other.Roll
	}
	if other.Pitch != nil {
		sf.Pitch = other.Pitch
	}
	if other.Yaw != nil {
		sf.Yaw = other.Yaw
	}
	if other.U != nil {
		sf.U = other.U
	}
	if other.V != nil {
		sf.V = other.V
	}
	if other.Heading != nil {
		sf.Heading = other.Heading
	}
}

// parseCoords decodes the '|'-separated positional grammar. The shape
// is selected by arity alone:
//
//	3: lon|lat|alt
//	5: lon|lat|alt|u|v
//	6: lon|lat|alt|roll|pitch|yaw
//	9: lon|lat|alt|roll|pitch|yaw|u|v|heading
//
// Any other arity is malformed. An empty position means not updated
// this tick and decodes to nil.
func parseCoords(s string) (Coords, error) {
	fields := splitEscapedAll(s, '|')

	var c Coords
	var err error
	switch len(fields) {
	case 3:
		err = fillCoords(fields, &c.Longitude, &c.Latitude, &c.Altitude)
	case 5:
		err = fillCoords(fields, &c.Longitude, &c.Latitude, &c.Altitude,
			&c.U, &c.V)
	case 6:
		err = fillCoords(fields, &c.Longitude, &c.Latitude, &c.Altitude,
			&c.Roll, &c.Pitch, &c.Yaw)
	case 9:
		err = fillCoords(fields, &c.Longitude, &c.Latitude, &c.Altitude,
			&c.Roll, &c.Pitch, &c.Yaw, &c.U, &c.V, &c.Heading)
	default:
		return Coords{}, fmt.Errorf("%w: %q", ErrMalformedCoords, s)
	}
	if err != nil {
		return Coords{}, err
	}
	return c, nil
}

// fillCoords decodes each field into the destination of the same rank.
func fillCoords(fields []string, dst ...**float64) error {
	for i, f := range fields {
		if f == "" {
			continue
		}
		v, err := parseFloat(f)
		if err != nil {
			return err
		}
		*dst[i] = &v
	}
	return nil
}
