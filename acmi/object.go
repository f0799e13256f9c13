// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package acmi

import (
	"fmt"
	"strings"
)

// ObjectPropertyKind is the discriminant of an ObjectProperty.
type ObjectPropertyKind uint16

// The object property kinds.
const (
	// PropT object coordinates, see Coords.
	PropT ObjectPropertyKind = iota

	// Text properties
	PropName         // most common notation of the object, ICAO/NATO names preferred
	PropType         // tag set making up the object type
	PropParent       // parent object id, e.g. the launcher of a missile
	PropNext         // id of the following object, links waypoints together
	PropCallsign     // displayed in priority over name and pilot
	PropRegistration // tail number
	PropSquawk       // current transponder code
	PropICAO24       // Mode S 24-bit address
	PropPilot        // pilot in command name
	PropGroup        // group the object belongs to
	PropCountry      // ISO 3166-1 alpha-2 country code
	PropCoalition
	PropColor
	PropShape // 3D model filename
	PropDebug // debug text, shown only with debugging on
	PropLabel // free real-time text
	PropFocusedTarget
	PropLockedTarget
	PropLockedTarget2
	PropLockedTarget3
	PropLockedTarget4
	PropLockedTarget5
	PropLockedTarget6
	PropLockedTarget7
	PropLockedTarget8
	PropLockedTarget9

	// Numeric properties
	PropImportance // ratio, the higher the more important the object
	PropSlot       // position in the group, lowest is the leader
	PropDisabled   // out-of-combat without being destroyed
	PropVisible    // ratio, fog-of-war style visibility
	PropHealth     // ratio, 1.0 brand new, 0.0 out of combat
	PropLength     // m
	PropWidth      // m
	PropRadius     // m, bounding sphere
	PropIAS        // m/s indicated airspeed
	PropCAS        // m/s calibrated airspeed
	PropTAS        // m/s true airspeed
	PropMach
	PropAOA // deg angle of attack
	PropAOS // deg angle of sideslip
	PropAGL // m altitude above ground level
	PropHDG // deg heading
	PropHDM // deg magnetic heading
	PropThrottle
	PropAfterburner
	PropAirBrakes
	PropFlaps
	PropLandingGear
	PropLandingGearHandle
	PropTailhook
	PropParachute
	PropDragChute
	PropFuelWeight // kg, tanks 1..9
	PropFuelWeight2
	PropFuelWeight3
	PropFuelWeight4
	PropFuelWeight5
	PropFuelWeight6
	PropFuelWeight7
	PropFuelWeight8
	PropFuelWeight9
	PropFuelVolume // l, tanks 1..9
	PropFuelVolume2
	PropFuelVolume3
	PropFuelVolume4
	PropFuelVolume5
	PropFuelVolume6
	PropFuelVolume7
	PropFuelVolume8
	PropFuelVolume9
	PropFuelFlowWeight // kg/hour, engines 1..7
	PropFuelFlowWeight2
	PropFuelFlowWeight3
	PropFuelFlowWeight4
	PropFuelFlowWeight5
	PropFuelFlowWeight6
	PropFuelFlowWeight7
	PropFuelFlowVolume // l/hour, engines 1..7
	PropFuelFlowVolume2
	PropFuelFlowVolume3
	PropFuelFlowVolume4
	PropFuelFlowVolume5
	PropFuelFlowVolume6
	PropFuelFlowVolume7
	PropRadarMode // 0 = off
	PropRadarAzimuth
	PropRadarElevation
	PropRadarRoll
	PropRadarRange
	PropRadarHorizontalBeamwidth
	PropRadarVerticalBeamwidth
	PropRadarRangeGateAzimuth
	PropRadarRangeGateElevation
	PropRadarRangeGateRoll
	PropRadarRangeGateMin
	PropRadarRangeGateMax
	PropRadarRangeGateHorizontalBeamwidth
	PropRadarRangeGateVerticalBeamwidth
	PropLockedTargetMode // 0 = no lock
	PropLockedTargetAzimuth
	PropLockedTargetElevation
	PropLockedTargetRange
	PropEngagementMode // 0 = off
	PropEngagementMode2
	PropEngagementRange
	PropEngagementRange2
	PropVerticalEngagementRange
	PropVerticalEngagementRange2
	PropRollControlInput // raw input device position
	PropPitchControlInput
	PropYawControlInput
	PropRollControlPosition // position in the cockpit, response curves applied
	PropPitchControlPosition
	PropYawControlPosition
	PropRollTrimTab
	PropPitchTrimTab
	PropYawTrimTab
	PropAileronLeft // control surfaces
	PropAileronRight
	PropElevator
	PropRudder
	PropPilotHeadRoll // pilot head orientation relative to the aircraft
	PropPilotHeadPitch
	PropPilotHeadYaw
	PropVerticalGForce // g
	PropLongitudinalGForce
	PropLateralGForce
	PropTriggerPressed // 1 or 1.0 means fully pressed
	PropENL            // environmental noise level, glider engine detection
	PropHeartRate      // beats per minute
	PropSpO2           // blood oxygen saturation ratio

	// PropUnknown any other key, kept verbatim for forwarding.
	PropUnknown
)

// ObjectProperty is one property update of a battlefield object. Only
// the fields relevant to Kind are set: Coords for PropT, Text for the
// identity text kinds and the raw value of PropUnknown, ID for the
// parent/next/target kinds, Tags for PropType, Color for PropColor,
// Float/Uint/Bool for the numeric kinds, Name for PropUnknown's key.
type ObjectProperty struct {
	Kind   ObjectPropertyKind
	Coords Coords
	Text   string
	ID     uint64
	Tags   TagSet
	Color  Color
	Float  float64
	Uint   uint64
	Bool   bool
	Name   string
}

// propClass selects how a property value is decoded.
type propClass uint8

const (
	classText propClass = iota
	classTime
	classFloat
	classCoords
	classID
	classTags
	classColor
	classUint
	classBool        // "1" is true, anything else false
	classBoolTrigger // "1" or "1.0" is true, anything else false
)

type objectEntry struct {
	kind  ObjectPropertyKind
	class propClass
}

// objectProps maps the property key to its kind and value class. Keys
// outside the table decode as PropUnknown and never fail the stream.
var objectProps = map[string]objectEntry{
	"T": {PropT, classCoords},

	"Name":          {PropName, classText},
	"Type":          {PropType, classTags},
	"Parent":        {PropParent, classID},
	"Next":          {PropNext, classID},
	"Callsign":      {PropCallsign, classText},
	"Registration":  {PropRegistration, classText},
	"Squawk":        {PropSquawk, classText},
	"ICAO24":        {PropICAO24, classText},
	"Pilot":         {PropPilot, classText},
	"Group":         {PropGroup, classText},
	"Country":       {PropCountry, classText},
	"Coalition":     {PropCoalition, classText},
	"Color":         {PropColor, classColor},
	"Shape":         {PropShape, classText},
	"Debug":         {PropDebug, classText},
	"Label":         {PropLabel, classText},
	"FocusedTarget": {PropFocusedTarget, classID},
	"LockedTarget":  {PropLockedTarget, classID},
	"LockedTarget2": {PropLockedTarget2, classID},
	"LockedTarget3": {PropLockedTarget3, classID},
	"LockedTarget4": {PropLockedTarget4, classID},
	"LockedTarget5": {PropLockedTarget5, classID},
	"LockedTarget6": {PropLockedTarget6, classID},
	"LockedTarget7": {PropLockedTarget7, classID},
	"LockedTarget8": {PropLockedTarget8, classID},
	"LockedTarget9": {PropLockedTarget9, classID},

	"Importance":        {PropImportance, classUint},
	"Slot":              {PropSlot, classUint},
	"Disabled":          {PropDisabled, classBool},
	"Visible":           {PropVisible, classFloat},
	"Health":            {PropHealth, classFloat},
	"Length":            {PropLength, classFloat},
	"Width":             {PropWidth, classFloat},
	"Radius":            {PropRadius, classFloat},
	"IAS":               {PropIAS, classFloat},
	"CAS":               {PropCAS, classFloat},
	"TAS":               {PropTAS, classFloat},
	"Mach":              {PropMach, classFloat},
	"AOA":               {PropAOA, classFloat},
	"AOS":               {PropAOS, classFloat},
	"AGL":               {PropAGL, classFloat},
	"HDG":               {PropHDG, classFloat},
	"HDM":               {PropHDM, classFloat},
	"Throttle":          {PropThrottle, classFloat},
	"Afterburner":       {PropAfterburner, classFloat},
	"AirBrakes":         {PropAirBrakes, classFloat},
	"Flaps":             {PropFlaps, classFloat},
	"LandingGear":       {PropLandingGear, classFloat},
	"LandingGearHandle": {PropLandingGearHandle, classFloat},
	"Tailhook":          {PropTailhook, classFloat},
	"Parachute":         {PropParachute, classFloat},
	"DragChute":         {PropDragChute, classFloat},

	"FuelWeight":      {PropFuelWeight, classFloat},
	"FuelWeight2":     {PropFuelWeight2, classFloat},
	"FuelWeight3":     {PropFuelWeight3, classFloat},
	"FuelWeight4":     {PropFuelWeight4, classFloat},
	"FuelWeight5":     {PropFuelWeight5, classFloat},
	"FuelWeight6":     {PropFuelWeight6, classFloat},
	"FuelWeight7":     {PropFuelWeight7, classFloat},
	"FuelWeight8":     {PropFuelWeight8, classFloat},
	"FuelWeight9":     {PropFuelWeight9, classFloat},
	"FuelVolume":      {PropFuelVolume, classFloat},
	"FuelVolume2":     {PropFuelVolume2, classFloat},
	"FuelVolume3":     {PropFuelVolume3, classFloat},
	"FuelVolume4":     {PropFuelVolume4, classFloat},
	"FuelVolume5":     {PropFuelVolume5, classFloat},
	"FuelVolume6":     {PropFuelVolume6, classFloat},
	"FuelVolume7":     {PropFuelVolume7, classFloat},
	"FuelVolume8":     {PropFuelVolume8, classFloat},
	"FuelVolume9":     {PropFuelVolume9, classFloat},
	"FuelFlowWeight":  {PropFuelFlowWeight, classFloat},
	"FuelFlowWeight2": {PropFuelFlowWeight2, classFloat},
	"FuelFlowWeight3": {PropFuelFlowWeight3, classFloat},
	"FuelFlowWeight4": {PropFuelFlowWeight4, classFloat},
	"FuelFlowWeight5": {PropFuelFlowWeight5, classFloat},
	"FuelFlowWeight6": {PropFuelFlowWeight6, classFloat},
	"FuelFlowWeight7": {PropFuelFlowWeight7, classFloat},
	"FuelFlowVolume":  {PropFuelFlowVolume, classFloat},
	"FuelFlowVolume2": {PropFuelFlowVolume2, classFloat},
	"FuelFlowVolume3": {PropFuelFlowVolume3, classFloat},
	"FuelFlowVolume4": {PropFuelFlowVolume4, classFloat},
	"FuelFlowVolume5": {PropFuelFlowVolume5, classFloat},
	"FuelFlowVolume6": {PropFuelFlowVolume6, classFloat},
	"FuelFlowVolume7": {PropFuelFlowVolume7, classFloat},

	"RadarMode":                         {PropRadarMode, classUint},
	"RadarAzimuth":                      {PropRadarAzimuth, classFloat},
	"RadarElevation":                    {PropRadarElevation, classFloat},
	"RadarRoll":                         {PropRadarRoll, classFloat},
	"RadarRange":                        {PropRadarRange, classFloat},
	"RadarHorizontalBeamwidth":          {PropRadarHorizontalBeamwidth, classFloat},
	"RadarVerticalBeamwidth":            {PropRadarVerticalBeamwidth, classFloat},
	"RadarRangeGateAzimuth":             {PropRadarRangeGateAzimuth, classFloat},
	"RadarRangeGateElevation":           {PropRadarRangeGateElevation, classFloat},
	"RadarRangeGateRoll":                {PropRadarRangeGateRoll, classFloat},
	"RadarRangeGateMin":                 {PropRadarRangeGateMin, classFloat},
	"RadarRangeGateMax":                 {PropRadarRangeGateMax, classFloat},
	"RadarRangeGateHorizontalBeamwidth": {PropRadarRangeGateHorizontalBeamwidth, classFloat},
	"RadarRangeGateVerticalBeamwidth":   {PropRadarRangeGateVerticalBeamwidth, classFloat},

	"LockedTargetMode":         {PropLockedTargetMode, classUint},
	"LockedTargetAzimuth":      {PropLockedTargetAzimuth, classFloat},
	"LockedTargetElevation":    {PropLockedTargetElevation, classFloat},
	"LockedTargetRange":        {PropLockedTargetRange, classFloat},
	"EngagementMode":           {PropEngagementMode, classUint},
	"EngagementMode2":          {PropEngagementMode2, classUint},
	"EngagementRange":          {PropEngagementRange, classFloat},
	"EngagementRange2":         {PropEngagementRange2, classFloat},
	"VerticalEngagementRange":  {PropVerticalEngagementRange, classFloat},
	"VerticalEngagementRange2": {PropVerticalEngagementRange2, classFloat},

	"RollControlInput":     {PropRollControlInput, classFloat},
	"PitchControlInput":    {PropPitchControlInput, classFloat},
	"YawControlInput":      {PropYawControlInput, classFloat},
	"RollControlPosition":  {PropRollControlPosition, classFloat},
	"PitchControlPosition": {PropPitchControlPosition, classFloat},
	"YawControlPosition":   {PropYawControlPosition, classFloat},
	"RollTrimTab":          {PropRollTrimTab, classFloat},
	"PitchTrimTab":         {PropPitchTrimTab, classFloat},
	"YawTrimTab":           {PropYawTrimTab, classFloat},
	"AileronLeft":          {PropAileronLeft, classFloat},
	"AileronRight":         {PropAileronRight, classFloat},
	"Elevator":             {PropElevator, classFloat},
	"Rudder":               {PropRudder, classFloat},
	"PilotHeadRoll":        {PropPilotHeadRoll, classFloat},
	"PilotHeadPitch":       {PropPilotHeadPitch, classFloat},
	"PilotHeadYaw":         {PropPilotHeadYaw, classFloat},
	"VerticalGForce":       {PropVerticalGForce, classFloat},
	"LongitudinalGForce":   {PropLongitudinalGForce, classFloat},
	"LateralGForce":        {PropLateralGForce, classFloat},

	"TriggerPressed": {PropTriggerPressed, classBoolTrigger},
	"ENL":            {PropENL, classFloat},
	"HeartRate":      {PropHeartRate, classUint},
	"SpO2":           {PropSpO2, classFloat},
}

var objectPropNames = func() map[ObjectPropertyKind]string {
	m := make(map[ObjectPropertyKind]string, len(objectProps))
	for name, e := range objectProps {
		m[e.kind] = name
	}
	return m
}()

func (sf ObjectPropertyKind) String() string {
	if s, ok := objectPropNames[sf]; ok {
		return s
	}
	return "Unknown"
}

// parseObjectProperty decodes one Key=Value field of an object row.
func parseObjectProperty(s string) (ObjectProperty, error) {
	name, value, ok := strings.Cut(s, "=")
	if !ok {
		return ObjectProperty{}, fmt.Errorf("%w: %q", ErrMalformedObjectProperty, s)
	}

	ent, known := objectProps[name]
	if !known {
		return ObjectProperty{Kind: PropUnknown, Name: name, Text: value}, nil
	}

	p := ObjectProperty{Kind: ent.kind}
	var err error
	switch ent.class {
	case classText:
		p.Text = value
	case classCoords:
		p.Coords, err = parseCoords(value)
	case classID:
		p.ID, err = parseObjectID(value)
	case classTags:
		p.Tags = parseTagSet(value)
	case classColor:
		p.Color = Color(value)
	case classFloat:
		p.Float, err = parseFloat(value)
	case classUint:
		p.Uint, err = parseUint(value)
	case classBool:
		p.Bool = value == "1"
	case classBoolTrigger:
		p.Bool = value == "1" || value == "1.0"
	}
	if err != nil {
		return ObjectProperty{}, err
	}
	return p, nil
}
