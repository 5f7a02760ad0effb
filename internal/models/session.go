package models

// FlashKind distinguishes a success notice from an error notice.
type FlashKind string

const (
	FlashSuccess FlashKind = "success"
	FlashError   FlashKind = "error"
)

func (k FlashKind) IsValid() bool {
	return k == FlashSuccess || k == FlashError
}

// Flash is a one-time status message shown by the next rendered page.
type Flash struct {
	Kind    FlashKind `json:"kind"`
	Message string    `json:"message"`
}

// Session is the per-browser state container.
type Session struct {
	ID        string `json:"id"`
	Lists     []List `json:"lists"`
	Flash     *Flash `json:"flash,omitempty"`
	CreatedAt int64  `json:"createdAt"`
	UpdatedAt int64  `json:"updatedAt"`
}

// SetFlash replaces any pending flash message.
func (s *Session) SetFlash(kind FlashKind, message string) {
	s.Flash = &Flash{Kind: kind, Message: message}
}

// PopFlash returns the pending flash message, if any, and clears it.
func (s *Session) PopFlash() *Flash {
	f := s.Flash
	s.Flash = nil
	return f
}

// HealthResponse is returned from GET /health.
type HealthResponse struct {
	Status       string       `json:"status"`
	DB           ServiceCheck `json:"db"`
	SessionCount int          `json:"sessionCount"`
}

// ServiceCheck is the status of a single dependency.
type ServiceCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}
