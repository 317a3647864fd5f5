package domain

// Message is one chat bubble. Messages live in memory only; nothing is
// persisted or synced across devices.
type Message struct {
	ID     int64  `json:"id"`
	Text   string `json:"text"`
	Sender string `json:"user"`
}
