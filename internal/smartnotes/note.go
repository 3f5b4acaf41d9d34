package smartnotes

import "errors"

var (
	ErrNoteNotFound = errors.New("note not found")
	ErrEmptyNote    = errors.New("note raw text empty")
)

type Attachment struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	Type        string `json:"type"`
	StoragePath string `json:"storagePath,omitempty"`
}

type SmartNote struct {
	ID          string       `json:"id"`
	Ts          int64        `json:"ts"`
	Raw         string       `json:"raw"`
	Summary     string       `json:"summary"`
	Pending     bool         `json:"pending,omitempty"`
	Events      []Event      `json:"events"`
	Attachments []Attachment `json:"attachments,omitempty"`
}
