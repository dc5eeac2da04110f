package logging

import "time"

// Message is the event payload for a log message
type Message struct {
	Time       time.Time
	Level      string
	Message    string
	Attributes []Attr

	// Serial uniquely identifies the message (within the scope of the logger
	// it was emitted from). The higher the Serial number the newer the
	// message.
	Serial uint
}

type Attr struct {
	Key   string
	Value string
}

func BySerialDesc(i, j Message) int {
	if i.Serial < j.Serial {
		return 1
	}
	return -1
}
