package models

import "github.com/composure-bot/composure/internal/domain"

// PartialAttachment is the attachment shape accepted in response payloads.
type PartialAttachment struct {
	Filename    string  `json:"filename"`
	Description *string `json:"description,omitempty"`
}

// Attachment is the full attachment object found in messages and resolved
// interaction data.
type Attachment struct {
	ID          domain.Snowflake `json:"id"`
	Filename    string           `json:"filename"`
	Description *string          `json:"description,omitempty"`
	ContentType *string          `json:"content_type,omitempty"`
	Size        uint32           `json:"size"`
	URL         string           `json:"url"`
	ProxyURL    string           `json:"proxy_url"`
	Height      *uint32          `json:"height,omitempty"`
	Width       *uint32          `json:"width,omitempty"`
	Ephemeral   *bool            `json:"ephemeral,omitempty"`

	DurationSecs *float32 `json:"duration_secs,omitempty"`
	Waveform     *string  `json:"waveform,omitempty"`
}
