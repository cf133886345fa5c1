package oi

import "testing"

func TestLookupPacket(t *testing.T) {
	tests := []struct {
		name   string
		id     byte
		ok     bool
		width  int
		signed bool
	}{
		{name: "distance is signed 16-bit", id: PktDistance, ok: true, width: 2, signed: true},
		{name: "voltage is unsigned 16-bit", id: PktVoltage, ok: true, width: 2, signed: false},
		{name: "temperature is signed 8-bit", id: PktTemperature, ok: true, width: 1, signed: true},
		{name: "stasis is unsigned 8-bit", id: PktStasis, ok: true, width: 1, signed: false},
		{name: "group id is not a single packet", id: PktGroup2, ok: false},
		{name: "id above catalog", id: 59, ok: false},
		{name: "id in group gap", id: 99, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, ok := LookupPacket(tt.id)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if spec.Width != tt.width || spec.Signed != tt.signed {
				t.Errorf("spec = width %d signed %v, want width %d signed %v",
					spec.Width, spec.Signed, tt.width, tt.signed)
			}
		})
	}
}

func TestGroupMembers(t *testing.T) {
	members, ok := GroupMembers(PktGroup2)
	if !ok {
		t.Fatal("GroupMembers(PktGroup2) not found")
	}
	want := []byte{17, 18, 19, 20}
	if len(members) != len(want) {
		t.Fatalf("members = %v, want %v", members, want)
	}
	for i := range want {
		if members[i] != want[i] {
			t.Fatalf("members = %v, want %v", members, want)
		}
	}

	if _, ok := GroupMembers(PktDistance); ok {
		t.Error("GroupMembers accepted a single-value packet id")
	}
	if _, ok := GroupMembers(102); ok {
		t.Error("GroupMembers accepted an unknown group id")
	}
}

// Group widths are fixed protocol knowledge; the member tables must sum to
// the byte counts the OI spec documents per group.
func TestGroupWidths(t *testing.T) {
	tests := []struct {
		id    byte
		width int
	}{
		{PktGroup0, 26},
		{PktGroup1, 10},
		{PktGroup2, 6},
		{PktGroup3, 10},
		{PktGroup4, 14},
		{PktGroup5, 12},
		{PktGroup6, 52},
		{PktGroupAll, 80},
		{PktGroup101, 28},
		{PktGroup106, 12},
		{PktGroup107, 9},
	}
	for _, tt := range tests {
		got, ok := PacketWidth(tt.id)
		if !ok {
			t.Errorf("PacketWidth(%d) not found", tt.id)
			continue
		}
		if got != tt.width {
			t.Errorf("PacketWidth(%d) = %d, want %d", tt.id, got, tt.width)
		}
	}
}

func TestIsGroup(t *testing.T) {
	for id := byte(0); id <= 6; id++ {
		if !IsGroup(id) {
			t.Errorf("IsGroup(%d) = false, want true", id)
		}
	}
	for _, id := range []byte{100, 101, 106, 107} {
		if !IsGroup(id) {
			t.Errorf("IsGroup(%d) = false, want true", id)
		}
	}
	for _, id := range []byte{7, 58, 99, 255} {
		if IsGroup(id) {
			t.Errorf("IsGroup(%d) = true, want false", id)
		}
	}
}

// Every group member must itself be a cataloged single-value packet.
func TestGroupMembersAreCataloged(t *testing.T) {
	for _, gid := range []byte{0, 1, 2, 3, 4, 5, 6, 100, 101, 106, 107} {
		members, ok := GroupMembers(gid)
		if !ok {
			t.Fatalf("group %d missing", gid)
		}
		for _, m := range members {
			if _, ok := LookupPacket(m); !ok {
				t.Errorf("group %d member %d not in packet catalog", gid, m)
			}
		}
	}
}
