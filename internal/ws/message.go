package ws

// Event types pushed to clients.
const (
	TypeChecking   = "checking"
	TypeFieldError = "field_error"
	TypeSubmission = "submission"
	TypeToast      = "toast"
	TypeNavigate   = "navigate"
	TypeMessage    = "message"
)

// Message is the single frame format on every socket this service serves.
type Message struct {
	Type   string      `json:"type"`
	Field  string      `json:"field,omitempty"`
	Error  string      `json:"error,omitempty"`
	Text   string      `json:"text,omitempty"`
	Route  string      `json:"route,omitempty"`
	Value  string      `json:"value,omitempty"`
	Data   interface{} `json:"data,omitempty"`
}
