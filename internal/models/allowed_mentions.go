package models

import "github.com/composure-bot/composure/internal/domain"

// AllowedMentionType selects which mention classes are parsed from message
// content.
type AllowedMentionType string

const (
	AllowedMentionRoles    AllowedMentionType = "roles"
	AllowedMentionUsers    AllowedMentionType = "users"
	AllowedMentionEveryone AllowedMentionType = "everyone"
)

// AllowedMentions restricts which mentions in a response actually ping.
type AllowedMentions struct {
	Parse       []AllowedMentionType `json:"parse"`
	Roles       []domain.Snowflake   `json:"roles"`
	Users       []domain.Snowflake   `json:"users"`
	RepliedUser bool                 `json:"replied_user"`
}
