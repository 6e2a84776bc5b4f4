package midi

import (
	"testing"

	"gitlab.com/gomidi/midi/v2"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		msg  []byte
		want Event
	}{
		{"note on ch1", []byte{0x90, 60, 100}, Event{CommandNoteOn, 1, 60, 100}},
		{"note off ch1", []byte{0x80, 60, 0}, Event{CommandNoteOff, 1, 60, 0}},
		{"note on ch2", []byte{0x91, 61, 80}, Event{CommandNoteOn, 2, 61, 80}},
		{"note on ch16", []byte{0x9F, 127, 127}, Event{CommandNoteOn, 16, 127, 127}},
		{"two bytes", []byte{0x90, 64}, Event{CommandNoteOn, 1, 64, 0}},
		{"cc passed through", []byte{0xB3, 7, 90}, Event{CommandControlChange, 4, 7, 90}},
		{"data byte above 127", []byte{0x90, 200, 255}, Event{CommandNoteOn, 1, 200, 255}},
	}

	for _, tt := range tests {
		got, ok := Decode(tt.msg)
		if !ok {
			t.Errorf("%s: expected ok", tt.name)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestDecodeMalformed(t *testing.T) {
	for _, msg := range [][]byte{nil, {}, {0x90}} {
		if ev, ok := Decode(msg); ok {
			t.Errorf("Decode(%v): expected drop, got %v", msg, ev)
		}
	}
}

func TestDecodeLibraryMessages(t *testing.T) {
	// Channel numbers in the library are 0-based
	ev, ok := Decode(midi.NoteOn(2, 64, 33))
	if !ok {
		t.Fatal("expected ok")
	}
	if ev.Command != CommandNoteOn || ev.Channel != 3 || ev.Note != 64 || ev.Velocity != 33 {
		t.Errorf("unexpected event %v", ev)
	}

	ev, ok = Decode(midi.NoteOff(0, 64))
	if !ok {
		t.Fatal("expected ok")
	}
	if ev.Command != CommandNoteOff || ev.Channel != 1 || ev.Velocity != 0 {
		t.Errorf("unexpected event %v", ev)
	}
}

func TestCommandString(t *testing.T) {
	if CommandNoteOn.String() != "note_on" {
		t.Errorf("expected note_on, got %s", CommandNoteOn)
	}
	if Command(0xE).String() != "cmd_e" {
		t.Errorf("expected cmd_e, got %s", Command(0xE))
	}
}
