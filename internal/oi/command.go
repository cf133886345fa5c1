package oi

import "fmt"

// Encode validates args against the opcode's argument specification and
// serializes the command in wire order: the opcode byte followed by each
// argument, high byte first for 16-bit values.
//
// On failure it returns nil and an error naming the argument at fault; a
// partially valid command is never serialized.
func Encode(op byte, args ...int) ([]byte, error) {
	spec, ok := LookupCommand(op)
	if !ok {
		return nil, fmt.Errorf("%w 0x%02X", ErrUnknownOpcode, op)
	}

	want := len(spec.Args)
	if spec.Variable() {
		if len(args) < want {
			return nil, &LengthError{What: spec.Name + " arguments", Got: len(args), Want: want}
		}
		count := args[want-1]
		countSpec := spec.Args[want-1]
		if !countSpec.allows(count) {
			return nil, argErr(spec, countSpec, count)
		}
		want += count * len(spec.Repeat)
	}
	if len(args) != want {
		return nil, &LengthError{What: spec.Name + " arguments", Got: len(args), Want: want}
	}

	frame := make([]byte, 0, 1+wireBytes(spec, args))
	frame = append(frame, op)
	for i, v := range args {
		as := spec.argAt(i)
		if !as.allows(v) {
			return nil, argErr(spec, as, v)
		}
		if as.Width == 2 {
			frame = append(frame, byte(v>>8), byte(v))
		} else {
			frame = append(frame, byte(v))
		}
	}
	return frame, nil
}

// Validate reports whether a raw outbound frame, opcode byte first, is
// structurally correct and every argument lies in its declared domain.
// Unknown opcodes are invalid. Nothing is transmitted.
func Validate(frame []byte) bool {
	if len(frame) == 0 {
		return false
	}
	spec, ok := LookupCommand(frame[0])
	if !ok {
		return false
	}

	data := frame[1:]
	var count int
	for _, as := range spec.Args {
		v, rest, ok := readArg(as, data)
		if !ok || !as.allows(v) {
			return false
		}
		count = v // last fixed argument is the repeat count for variable ops
		data = rest
	}
	if spec.Variable() {
		for i := 0; i < count; i++ {
			for _, as := range spec.Repeat {
				v, rest, ok := readArg(as, data)
				if !ok || !as.allows(v) {
					return false
				}
				data = rest
			}
		}
	}
	return len(data) == 0
}

// argAt resolves the spec of the i-th argument, indexing into the repeated
// tail for variable-length commands.
func (s CommandSpec) argAt(i int) ArgSpec {
	if i < len(s.Args) {
		return s.Args[i]
	}
	return s.Repeat[(i-len(s.Args))%len(s.Repeat)]
}

// allows reports whether v lies in the argument's range or sentinel set.
func (a ArgSpec) allows(v int) bool {
	if v >= a.Min && v <= a.Max {
		return true
	}
	for _, s := range a.Sentinels {
		if v == s {
			return true
		}
	}
	return false
}

// readArg consumes one argument's bytes, reinterpreting them per the spec's
// width and signedness. ok is false when data is too short.
func readArg(a ArgSpec, data []byte) (v int, rest []byte, ok bool) {
	if len(data) < a.Width {
		return 0, nil, false
	}
	if a.Width == 2 {
		u := uint16(data[0])<<8 | uint16(data[1])
		if a.Signed {
			v = int(int16(u))
		} else {
			v = int(u)
		}
		return v, data[2:], true
	}
	if a.Signed {
		v = int(int8(data[0]))
	} else {
		v = int(data[0])
	}
	return v, data[1:], true
}

func wireBytes(spec CommandSpec, args []int) int {
	n := 0
	for i := range args {
		n += spec.argAt(i).Width
	}
	return n
}

func argErr(spec CommandSpec, as ArgSpec, v int) error {
	reason := fmt.Sprintf("outside [%d, %d]", as.Min, as.Max)
	if len(as.Sentinels) > 0 {
		reason = fmt.Sprintf("outside [%d, %d] and not one of %v", as.Min, as.Max, as.Sentinels)
	}
	return &ArgumentError{Command: spec.Name, Argument: as.Name, Value: v, Reason: reason}
}
