package oi

// Command opcodes per the iRobot Create 2 Open Interface spec.
const (
	// OpReset resets the robot as if the battery had been pulled
	OpReset = 7

	// OpStart starts the OI; must precede every other command
	OpStart = 128

	// OpBaud sets the serial bit rate from a baud code (0-11)
	OpBaud = 129

	// OpControl is the legacy SCI alias of OpSafe
	OpControl = 130

	// OpSafe puts the OI into Safe mode
	OpSafe = 131

	// OpFull puts the OI into Full mode (safety features off)
	OpFull = 132

	// OpPower powers the robot down
	OpPower = 133

	// OpSpot starts the Spot cleaning cycle
	OpSpot = 134

	// OpClean starts the default cleaning cycle
	OpClean = 135

	// OpMax starts the Max cleaning cycle
	OpMax = 136

	// OpDrive drives with a velocity and turn radius
	OpDrive = 137

	// OpMotors switches the cleaning motors on or off via a bitfield
	OpMotors = 138

	// OpLEDs controls the LEDs and the Clean/Power LED color/intensity
	OpLEDs = 139

	// OpSong defines a song of up to 16 notes
	OpSong = 140

	// OpPlay plays a previously defined song
	OpPlay = 141

	// OpSensors requests a single sensor packet
	OpSensors = 142

	// OpSeekDock sends the robot to its charging dock
	OpSeekDock = 143

	// OpPWMMotors sets cleaning motor PWM duty cycles directly
	OpPWMMotors = 144

	// OpDriveDirect drives the wheels with independent velocities
	OpDriveDirect = 145

	// OpDrivePWM drives the wheels with raw PWM values
	OpDrivePWM = 146

	// OpStream starts a 15ms telemetry stream of the listed packets
	OpStream = 148

	// OpQueryList requests the listed packets once
	OpQueryList = 149

	// OpPauseResumeStream pauses (0) or resumes (1) the stream
	OpPauseResumeStream = 150

	// OpSchedulingLEDs controls the scheduling display LEDs
	OpSchedulingLEDs = 162

	// OpDigitLEDsRaw drives the 7-segment digits by raw segment bits
	OpDigitLEDsRaw = 163

	// OpDigitLEDsASCII drives the 7-segment digits from ASCII codes
	OpDigitLEDsASCII = 164

	// OpButtons presses Roomba buttons via a bitfield
	OpButtons = 165

	// OpSchedule sets the weekly cleaning schedule
	OpSchedule = 167

	// OpSetDayTime sets the robot's day of week and clock
	OpSetDayTime = 168

	// OpStop stops the OI
	OpStop = 173
)

// Drive radius sentinels. They fall outside the regular [-2000, 2000] radius
// range but are legal on the wire: 0x7FFF/0x8000 drive straight, and the spin
// values -1/1 happen to sit inside the range anyway.
const (
	RadiusStraight  = 0x7FFF
	RadiusStraight2 = -0x8000
	RadiusSpinCW    = -1
	RadiusSpinCCW   = 1
)

// Baud codes accepted by OpBaud.
const (
	Baud300 = iota
	Baud600
	Baud1200
	Baud2400
	Baud4800
	Baud9600
	Baud14400
	Baud19200
	Baud28800
	Baud38400
	Baud57600
	Baud115200
)

// ArgSpec declares the wire shape and numeric domain of one command argument.
// A value is legal when it lies in [Min, Max] or equals one of the Sentinels.
type ArgSpec struct {
	Name      string
	Width     int // bytes on the wire, 1 or 2
	Signed    bool
	Min, Max  int
	Sentinels []int
}

// CommandSpec describes one opcode: its fixed arguments in wire order and,
// for variable-length commands, a repeated tail group whose repetition count
// is the value of the last fixed argument.
type CommandSpec struct {
	Name   string
	Args   []ArgSpec
	Repeat []ArgSpec
}

// Variable reports whether the command carries a count-prefixed tail.
func (s CommandSpec) Variable() bool { return len(s.Repeat) > 0 }

func u8(name string) ArgSpec { return ArgSpec{Name: name, Width: 1, Min: 0, Max: 255} }

func i16(name string, min, max int, sentinels ...int) ArgSpec {
	return ArgSpec{Name: name, Width: 2, Signed: true, Min: min, Max: max, Sentinels: sentinels}
}

// packetArg is the domain of a requestable packet id: single packets 0-58
// plus the extended group ids.
func packetArg(name string) ArgSpec {
	return ArgSpec{Name: name, Width: 1, Min: 0, Max: 58, Sentinels: []int{100, 101, 106, 107}}
}

// commands is the opcode catalog. Built once, never mutated.
var commands = map[byte]CommandSpec{
	OpReset:   {Name: "Reset"},
	OpStart:   {Name: "Start"},
	OpBaud:    {Name: "Baud", Args: []ArgSpec{{Name: "baud code", Width: 1, Min: 0, Max: 11}}},
	OpControl: {Name: "Control"},
	OpSafe:    {Name: "Safe"},
	OpFull:    {Name: "Full"},
	OpPower:   {Name: "Power"},
	OpSpot:    {Name: "Spot"},
	OpClean:   {Name: "Clean"},
	OpMax:     {Name: "Max"},
	OpDrive: {Name: "Drive", Args: []ArgSpec{
		i16("velocity", -500, 500),
		i16("radius", -2000, 2000, RadiusStraight, RadiusStraight2),
	}},
	OpMotors: {Name: "Motors", Args: []ArgSpec{u8("motor bits")}},
	OpLEDs: {Name: "LEDs", Args: []ArgSpec{
		u8("led bits"), u8("power color"), u8("power intensity"),
	}},
	OpSong: {Name: "Song",
		Args: []ArgSpec{
			{Name: "song number", Width: 1, Min: 0, Max: 4},
			{Name: "song length", Width: 1, Min: 1, Max: 16},
		},
		Repeat: []ArgSpec{
			{Name: "note number", Width: 1, Min: 31, Max: 127},
			u8("note duration"),
		}},
	OpPlay:     {Name: "Play", Args: []ArgSpec{{Name: "song number", Width: 1, Min: 0, Max: 4}}},
	OpSensors:  {Name: "Sensors", Args: []ArgSpec{packetArg("packet id")}},
	OpSeekDock: {Name: "Seek Dock"},
	OpPWMMotors: {Name: "PWM Motors", Args: []ArgSpec{
		{Name: "main brush pwm", Width: 1, Signed: true, Min: -127, Max: 127},
		{Name: "side brush pwm", Width: 1, Signed: true, Min: -127, Max: 127},
		{Name: "vacuum pwm", Width: 1, Min: 0, Max: 127},
	}},
	OpDriveDirect: {Name: "Drive Direct", Args: []ArgSpec{
		i16("right velocity", -500, 500),
		i16("left velocity", -500, 500),
	}},
	OpDrivePWM: {Name: "Drive PWM", Args: []ArgSpec{
		i16("right pwm", -255, 255),
		i16("left pwm", -255, 255),
	}},
	OpStream: {Name: "Stream",
		Args:   []ArgSpec{u8("packet count")},
		Repeat: []ArgSpec{packetArg("packet id")}},
	OpQueryList: {Name: "Query List",
		Args:   []ArgSpec{u8("packet count")},
		Repeat: []ArgSpec{packetArg("packet id")}},
	OpPauseResumeStream: {Name: "Pause/Resume Stream",
		Args: []ArgSpec{{Name: "stream state", Width: 1, Min: 0, Max: 1}}},
	OpSchedulingLEDs: {Name: "Scheduling LEDs", Args: []ArgSpec{
		u8("weekday bits"), u8("scheduling bits"),
	}},
	OpDigitLEDsRaw: {Name: "Digit LEDs Raw", Args: []ArgSpec{
		u8("digit 3 bits"), u8("digit 2 bits"), u8("digit 1 bits"), u8("digit 0 bits"),
	}},
	OpDigitLEDsASCII: {Name: "Digit LEDs ASCII", Args: []ArgSpec{
		asciiArg("digit 3"), asciiArg("digit 2"), asciiArg("digit 1"), asciiArg("digit 0"),
	}},
	OpButtons:  {Name: "Buttons", Args: []ArgSpec{u8("button bits")}},
	OpSchedule: {Name: "Schedule", Args: scheduleArgs()},
	OpSetDayTime: {Name: "Set Day/Time", Args: []ArgSpec{
		{Name: "day", Width: 1, Min: 0, Max: 6},
		{Name: "hour", Width: 1, Min: 0, Max: 23},
		{Name: "minute", Width: 1, Min: 0, Max: 59},
	}},
	OpStop: {Name: "Stop"},
}

func asciiArg(name string) ArgSpec {
	return ArgSpec{Name: name, Width: 1, Min: 32, Max: 126}
}

// scheduleArgs builds the 15 arguments of OpSchedule: a day bitfield followed
// by an (hour, minute) pair for each day Sunday through Saturday.
func scheduleArgs() []ArgSpec {
	args := []ArgSpec{u8("day bits")}
	days := []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}
	for _, d := range days {
		args = append(args,
			ArgSpec{Name: d + " hour", Width: 1, Min: 0, Max: 23},
			ArgSpec{Name: d + " minute", Width: 1, Min: 0, Max: 59},
		)
	}
	return args
}

// LookupCommand returns the argument specification for an opcode.
// Unknown opcodes report ok=false rather than a default spec.
func LookupCommand(op byte) (CommandSpec, bool) {
	spec, ok := commands[op]
	return spec, ok
}
