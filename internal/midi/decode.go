package midi

// Decode splits a raw 2 or 3 byte message into its command, 1-based channel,
// note and velocity. Messages shorter than 2 bytes are reported with ok=false
// and must be dropped by the caller.
func Decode(msg []byte) (ev Event, ok bool) {
	if len(msg) < 2 {
		return Event{}, false
	}

	ev = Event{
		Command: Command(msg[0] >> 4),
		Channel: msg[0]&0x0F + 1,
		Note:    msg[1],
	}
	if len(msg) > 2 {
		ev.Velocity = msg[2]
	}
	return ev, true
}
