package models

import "time"

// Email represents a normalized parsed email message. Once returned by a
// retrieval call it belongs to the caller; the retriever never mutates it
// afterwards.
type Email struct {
	ID           uint32
	From         string
	To           []string
	ToPrimary    string
	Subject      string
	BodyText     string
	InternalDate time.Time
	TraceID      string
}
