package models

import (
	"fmt"

	"github.com/composure-bot/composure/internal/domain"
)

// Member is the guild member object attached to guild interactions.
type Member struct {
	User     User               `json:"user"`
	Nick     *string            `json:"nick,omitempty"`
	Avatar   *string            `json:"avatar,omitempty"`
	Roles    []domain.Snowflake `json:"roles"`
	JoinedAt string             `json:"joined_at"`

	PremiumSince *string `json:"premium_since,omitempty"`
	Deaf         bool    `json:"deaf"`
	Mute         bool    `json:"mute"`
	Flags        uint64  `json:"flags"`
	Pending      *bool   `json:"pending,omitempty"`

	// Permissions is the member's total permissions in the channel the
	// interaction came from, overwrites included.
	Permissions *Permissions `json:"permissions,omitempty"`

	CommunicationDisabledUntil *string `json:"communication_disabled_until,omitempty"`
}

// Mention renders the chat mention for the member's user.
func (m *Member) Mention() string {
	return fmt.Sprintf("<@%s>", m.User.ID)
}

// PartialMember is the member shape found in resolved interaction data,
// which omits the user and voice fields.
type PartialMember struct {
	Nick         *string            `json:"nick,omitempty"`
	Avatar       *string            `json:"avatar,omitempty"`
	Roles        []domain.Snowflake `json:"roles"`
	JoinedAt     string             `json:"joined_at"`
	PremiumSince *string            `json:"premium_since,omitempty"`
	Pending      *bool              `json:"pending,omitempty"`
	Permissions  Permissions        `json:"permissions"`
}
