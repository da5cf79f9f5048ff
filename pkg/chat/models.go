package chat

import "time"

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// BeamStatus is the lifecycle state of a beam as reported by the server.
// Values other than the ones below decode without error.
type BeamStatus string

const (
	BeamStatusActive     BeamStatus = "active"
	BeamStatusRetired    BeamStatus = "retired"
	BeamStatusTombstoned BeamStatus = "tombstoned"
)

// ChatMessage is one message of the conversation.
type ChatMessage struct {
	ID        string         `json:"id"`
	Role      Role           `json:"role"`
	Content   string         `json:"content"`
	Timestamp int64          `json:"timestamp"` // epoch milliseconds
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// Time returns Timestamp as a time.Time.
func (m ChatMessage) Time() time.Time {
	return time.UnixMilli(m.Timestamp)
}

// SendMessageResponse is returned by SendMessage.
type SendMessageResponse struct {
	Message  ChatMessage `json:"message"`
	StreamID *string     `json:"stream_id,omitempty"`
}

// ChatHistoryResponse is one page of chat history.
type ChatHistoryResponse struct {
	Messages []ChatMessage `json:"messages"`
	Total    int           `json:"total"`
	Limit    int           `json:"limit"`
	Offset   int           `json:"offset"`
}

// Beam is a tagged, status-tracked note.
type Beam struct {
	BeamID      string     `json:"beam_id"`
	Kind        string     `json:"kind"`
	Title       string     `json:"title"`
	Tags        []string   `json:"tags"`
	Body        string     `json:"body"`
	Status      BeamStatus `json:"status"`
	Pinned      bool       `json:"pinned"`
	UpdatedAtMs int64      `json:"updated_at_ms"`
}

// UpdatedAt returns UpdatedAtMs as a time.Time.
func (b Beam) UpdatedAt() time.Time {
	return time.UnixMilli(b.UpdatedAtMs)
}

// BeamQueryResponse holds the beams matching a query, in server order. Total
// is the server's count and may exceed len(Beams).
type BeamQueryResponse struct {
	Beams []Beam `json:"beams"`
	Total int    `json:"total"`
}

// HistoryOptions pages through chat history. Nil fields are not sent.
type HistoryOptions struct {
	Limit  *int
	Offset *int
}

// BeamQuery filters QueryBeams. Nil fields are not sent; Tags and Kinds are
// sent as repeated query parameters.
type BeamQuery struct {
	Text        *string
	Tags        []string
	Kinds       []string
	IncludeDead *bool
	Limit       *int
}

// CreateBeamRequest describes a new beam. BeamID lets the caller choose the
// id; the server assigns one otherwise.
type CreateBeamRequest struct {
	Kind   string
	Title  string
	Tags   []string
	Body   string
	BeamID *string
	Pinned *bool
}

// UpdateBeamRequest changes the fields that are set. A non-nil empty Tags
// clears the tags.
type UpdateBeamRequest struct {
	Title *string
	Tags  []string
	Body  *string
}

// TombstoneRequest permanently removes a beam. Whether an approval token is
// needed is up to the server.
type TombstoneRequest struct {
	ReasonCode    string
	ApprovalToken *string
}
