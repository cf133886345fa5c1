package oi

// Sensor packet ids per the OI spec. Single-value packets occupy 7-58;
// ids 0-6 and 100/101/106/107 are groups (see groups below).
const (
	PktBumpsWheeldrops     = 7
	PktWall                = 8
	PktCliffLeft           = 9
	PktCliffFrontLeft      = 10
	PktCliffFrontRight     = 11
	PktCliffRight          = 12
	PktVirtualWall         = 13
	PktOvercurrents        = 14
	PktDirtDetect          = 15
	PktUnused1             = 16
	PktIROpcode            = 17
	PktButtons             = 18
	PktDistance            = 19
	PktAngle               = 20
	PktChargingState       = 21
	PktVoltage             = 22
	PktCurrent             = 23
	PktTemperature         = 24
	PktBatteryCharge       = 25
	PktBatteryCapacity     = 26
	PktWallSignal          = 27
	PktCliffLeftSignal     = 28
	PktCliffFrontLeftSig   = 29
	PktCliffFrontRightSig  = 30
	PktCliffRightSignal    = 31
	PktUnused2             = 32
	PktUnused3             = 33
	PktChargerAvailable    = 34
	PktOIMode              = 35
	PktSongNumber          = 36
	PktSongPlaying         = 37
	PktStreamPackets       = 38
	PktVelocity            = 39
	PktRadius              = 40
	PktVelocityRight       = 41
	PktVelocityLeft        = 42
	PktEncoderCountsLeft   = 43
	PktEncoderCountsRight  = 44
	PktLightBumper         = 45
	PktLightBumpLeft       = 46
	PktLightBumpFrontLeft  = 47
	PktLightBumpCenterLeft = 48
	PktLightBumpCenterRt   = 49
	PktLightBumpFrontRight = 50
	PktLightBumpRight      = 51
	PktIROpcodeLeft        = 52
	PktIROpcodeRight       = 53
	PktLeftMotorCurrent    = 54
	PktRightMotorCurrent   = 55
	PktMainBrushCurrent    = 56
	PktSideBrushCurrent    = 57
	PktStasis              = 58
)

// Group packet ids. A group's payload is the concatenation of its members'
// bytes in member order.
const (
	PktGroup0   = 0
	PktGroup1   = 1
	PktGroup2   = 2
	PktGroup3   = 3
	PktGroup4   = 4
	PktGroup5   = 5
	PktGroup6   = 6
	PktGroupAll = 100
	PktGroup101 = 101
	PktGroup106 = 106
	PktGroup107 = 107
)

// PacketSpec describes the wire shape of one single-value sensor packet.
type PacketSpec struct {
	ID     byte
	Name   string
	Width  int // bytes on the wire, 1 or 2
	Signed bool
}

// packets maps every single-value packet id to its descriptor. Widths and
// signedness follow the OI spec sensor tables.
var packets = map[byte]PacketSpec{
	PktBumpsWheeldrops:     {PktBumpsWheeldrops, "bumps and wheel drops", 1, false},
	PktWall:                {PktWall, "wall", 1, false},
	PktCliffLeft:           {PktCliffLeft, "cliff left", 1, false},
	PktCliffFrontLeft:      {PktCliffFrontLeft, "cliff front left", 1, false},
	PktCliffFrontRight:     {PktCliffFrontRight, "cliff front right", 1, false},
	PktCliffRight:          {PktCliffRight, "cliff right", 1, false},
	PktVirtualWall:         {PktVirtualWall, "virtual wall", 1, false},
	PktOvercurrents:        {PktOvercurrents, "wheel overcurrents", 1, false},
	PktDirtDetect:          {PktDirtDetect, "dirt detect", 1, false},
	PktUnused1:             {PktUnused1, "unused 1", 1, false},
	PktIROpcode:            {PktIROpcode, "ir opcode", 1, false},
	PktButtons:             {PktButtons, "buttons", 1, false},
	PktDistance:            {PktDistance, "distance", 2, true},
	PktAngle:               {PktAngle, "angle", 2, true},
	PktChargingState:       {PktChargingState, "charging state", 1, false},
	PktVoltage:             {PktVoltage, "voltage", 2, false},
	PktCurrent:             {PktCurrent, "current", 2, true},
	PktTemperature:         {PktTemperature, "temperature", 1, true},
	PktBatteryCharge:       {PktBatteryCharge, "battery charge", 2, false},
	PktBatteryCapacity:     {PktBatteryCapacity, "battery capacity", 2, false},
	PktWallSignal:          {PktWallSignal, "wall signal", 2, false},
	PktCliffLeftSignal:     {PktCliffLeftSignal, "cliff left signal", 2, false},
	PktCliffFrontLeftSig:   {PktCliffFrontLeftSig, "cliff front left signal", 2, false},
	PktCliffFrontRightSig:  {PktCliffFrontRightSig, "cliff front right signal", 2, false},
	PktCliffRightSignal:    {PktCliffRightSignal, "cliff right signal", 2, false},
	PktUnused2:             {PktUnused2, "unused 2", 1, false},
	PktUnused3:             {PktUnused3, "unused 3", 2, false},
	PktChargerAvailable:    {PktChargerAvailable, "charger available", 1, false},
	PktOIMode:              {PktOIMode, "oi mode", 1, false},
	PktSongNumber:          {PktSongNumber, "song number", 1, false},
	PktSongPlaying:         {PktSongPlaying, "song playing", 1, false},
	PktStreamPackets:       {PktStreamPackets, "stream packet count", 1, false},
	PktVelocity:            {PktVelocity, "requested velocity", 2, true},
	PktRadius:              {PktRadius, "requested radius", 2, true},
	PktVelocityRight:       {PktVelocityRight, "requested right velocity", 2, true},
	PktVelocityLeft:        {PktVelocityLeft, "requested left velocity", 2, true},
	PktEncoderCountsLeft:   {PktEncoderCountsLeft, "left encoder counts", 2, false},
	PktEncoderCountsRight:  {PktEncoderCountsRight, "right encoder counts", 2, false},
	PktLightBumper:         {PktLightBumper, "light bumper", 1, false},
	PktLightBumpLeft:       {PktLightBumpLeft, "light bump left signal", 2, false},
	PktLightBumpFrontLeft:  {PktLightBumpFrontLeft, "light bump front left signal", 2, false},
	PktLightBumpCenterLeft: {PktLightBumpCenterLeft, "light bump center left signal", 2, false},
	PktLightBumpCenterRt:   {PktLightBumpCenterRt, "light bump center right signal", 2, false},
	PktLightBumpFrontRight: {PktLightBumpFrontRight, "light bump front right signal", 2, false},
	PktLightBumpRight:      {PktLightBumpRight, "light bump right signal", 2, false},
	PktIROpcodeLeft:        {PktIROpcodeLeft, "ir opcode left", 1, false},
	PktIROpcodeRight:       {PktIROpcodeRight, "ir opcode right", 1, false},
	PktLeftMotorCurrent:    {PktLeftMotorCurrent, "left motor current", 2, true},
	PktRightMotorCurrent:   {PktRightMotorCurrent, "right motor current", 2, true},
	PktMainBrushCurrent:    {PktMainBrushCurrent, "main brush motor current", 2, true},
	PktSideBrushCurrent:    {PktSideBrushCurrent, "side brush motor current", 2, true},
	PktStasis:              {PktStasis, "stasis", 1, false},
}

// groups maps each group id to its ordered member list. Membership is fixed
// protocol knowledge, taken verbatim from the OI spec.
var groups = map[byte][]byte{
	PktGroup0:   packetRange(7, 26),
	PktGroup1:   packetRange(7, 16),
	PktGroup2:   packetRange(17, 20),
	PktGroup3:   packetRange(21, 26),
	PktGroup4:   packetRange(27, 34),
	PktGroup5:   packetRange(35, 42),
	PktGroup6:   packetRange(7, 42),
	PktGroupAll: packetRange(7, 58),
	PktGroup101: packetRange(43, 58),
	PktGroup106: packetRange(46, 51),
	PktGroup107: packetRange(54, 58),
}

func packetRange(first, last byte) []byte {
	ids := make([]byte, 0, last-first+1)
	for id := first; id <= last; id++ {
		ids = append(ids, id)
	}
	return ids
}

// LookupPacket returns the descriptor of a single-value packet id.
// Group ids and unknown ids report ok=false.
func LookupPacket(id byte) (PacketSpec, bool) {
	spec, ok := packets[id]
	return spec, ok
}

// GroupMembers returns the ordered member packet ids of a group id.
func GroupMembers(id byte) ([]byte, bool) {
	members, ok := groups[id]
	return members, ok
}

// IsGroup reports whether id denotes a group packet.
func IsGroup(id byte) bool {
	_, ok := groups[id]
	return ok
}

// PacketWidth returns the total payload width in bytes for a packet id,
// summing member widths for groups.
func PacketWidth(id byte) (int, bool) {
	if spec, ok := packets[id]; ok {
		return spec.Width, true
	}
	members, ok := groups[id]
	if !ok {
		return 0, false
	}
	total := 0
	for _, m := range members {
		total += packets[m].Width
	}
	return total, true
}
