package game

import "strings"

// MsgPriority controls the color of a popup or log line.
type MsgPriority uint8

const (
	MsgInfo      MsgPriority = iota // cyan
	MsgDiscovery                    // green, new star kind
	MsgConcept                      // light blue, concept card
	MsgSpecial                      // magenta, special card
	MsgDanger                       // red, hazard contact
)

// LogTextWidth is the pixel width log lines are wrapped to.
const LogTextWidth = 300

// Message is a single line in the message log.
type Message struct {
	Text     string
	Priority MsgPriority
}

// MessageLog is a bounded FIFO of messages.
type MessageLog struct {
	Messages []Message
	maxSize  int
}

// NewMessageLog creates a log that keeps the most recent maxSize lines.
func NewMessageLog(maxSize int) *MessageLog {
	return &MessageLog{
		Messages: make([]Message, 0, maxSize),
		maxSize:  maxSize,
	}
}

// Add appends text, evicting the oldest lines if full.
// Line breaks are flattened and the text is rewrapped to LogTextWidth.
func (l *MessageLog) Add(text string, priority MsgPriority) {
	flat := strings.Join(strings.Fields(text), " ")
	for _, line := range WrapText(flat, LogTextWidth) {
		msg := Message{Text: line, Priority: priority}
		if len(l.Messages) >= l.maxSize {
			copy(l.Messages, l.Messages[1:])
			l.Messages[len(l.Messages)-1] = msg
		} else {
			l.Messages = append(l.Messages, msg)
		}
	}
}

// Recent returns the last n messages (or fewer if the log is shorter).
func (l *MessageLog) Recent(n int) []Message {
	if n > len(l.Messages) {
		n = len(l.Messages)
	}
	return l.Messages[len(l.Messages)-n:]
}
