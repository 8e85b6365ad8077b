package models

import "github.com/composure-bot/composure/internal/domain"

// MessageFlags is a bitfield of message behaviors.
type MessageFlags uint64

const (
	MessageFlagCrossposted           MessageFlags = 1 << 0
	MessageFlagIsCrosspost           MessageFlags = 1 << 1
	MessageFlagSuppressEmbeds        MessageFlags = 1 << 2
	MessageFlagSourceMessageDeleted  MessageFlags = 1 << 3
	MessageFlagUrgent                MessageFlags = 1 << 4
	MessageFlagHasThread             MessageFlags = 1 << 5
	MessageFlagEphemeral             MessageFlags = 1 << 6
	MessageFlagLoading               MessageFlags = 1 << 7
	MessageFlagSuppressNotifications MessageFlags = 1 << 12
)

// Has reports whether every bit of flag is set.
func (f MessageFlags) Has(flag MessageFlags) bool {
	return f&flag == flag
}

// Message is a channel message, as seen in resolved interaction data and in
// message command targets.
type Message struct {
	ID              domain.Snowflake   `json:"id"`
	ChannelID       domain.Snowflake   `json:"channel_id"`
	Author          User               `json:"author"`
	Content         string             `json:"content"`
	Timestamp       string             `json:"timestamp"`
	EditedTimestamp *string            `json:"edited_timestamp"`
	TTS             bool               `json:"tts"`
	MentionEveryone bool               `json:"mention_everyone"`
	Mentions        []User             `json:"mentions"`
	MentionRoles    []domain.Snowflake `json:"mention_roles"`
	Attachments     []Attachment       `json:"attachments"`
	Embeds          []Embed            `json:"embeds"`
	Pinned          bool               `json:"pinned"`
	WebhookID       *domain.Snowflake  `json:"webhook_id,omitempty"`
	Type            uint8              `json:"type"`
	Flags           *MessageFlags      `json:"flags,omitempty"`
	Components      ComponentList      `json:"components,omitempty"`
}
