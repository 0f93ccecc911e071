package scrollback

// Log is a bounded record of messages, newest first. Appending beyond
// capacity evicts the oldest entry.
type Log struct {
	messages []Message
	capacity int
}

// NewLog creates a log holding at most capacity messages.
func NewLog(capacity int) *Log {
	if capacity < 1 {
		capacity = 1
	}
	return &Log{capacity: capacity}
}

// Append adds a message at the newest end.
func (l *Log) Append(m Message) {
	l.messages = append([]Message{m}, l.messages...)
	if len(l.messages) > l.capacity {
		l.messages = l.messages[:l.capacity]
	}
}

// Clear removes every message.
func (l *Log) Clear() {
	l.messages = nil
}

// Len returns the number of stored messages.
func (l *Log) Len() int {
	return len(l.messages)
}

// At returns the i-th message, newest first.
func (l *Log) At(i int) Message {
	return l.messages[i]
}
