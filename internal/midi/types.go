package midi

import "fmt"

// Command is the high nibble of a channel voice status byte
type Command uint8

const (
	CommandNoteOff       Command = 0x8
	CommandNoteOn        Command = 0x9
	CommandControlChange Command = 0xB
)

func (c Command) String() string {
	switch c {
	case CommandNoteOff:
		return "note_off"
	case CommandNoteOn:
		return "note_on"
	case CommandControlChange:
		return "cc"
	default:
		return fmt.Sprintf("cmd_%x", uint8(c))
	}
}

// Event is a decoded hardware message
type Event struct {
	Command  Command
	Channel  uint8 // 1-16
	Note     uint8
	Velocity uint8 // 0 when the message carried no third byte
}

func (e Event) String() string {
	return fmt.Sprintf("%s ch%d note%d vel%d", e.Command, e.Channel, e.Note, e.Velocity)
}
