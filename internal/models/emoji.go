package models

import "github.com/composure-bot/composure/internal/domain"

// PartialEmoji is the emoji shape used by components and reactions.
type PartialEmoji struct {
	ID       *domain.Snowflake `json:"id"`
	Name     *string           `json:"name"`
	Animated *bool             `json:"animated,omitempty"`
}

// Emoji is the full guild emoji object.
type Emoji struct {
	ID            *domain.Snowflake `json:"id"`
	Name          *string           `json:"name"`
	Roles         []Role            `json:"roles,omitempty"`
	User          *User             `json:"user,omitempty"`
	RequireColons *bool             `json:"require_colons,omitempty"`
	Managed       *bool             `json:"managed,omitempty"`
	Animated      *bool             `json:"animated,omitempty"`
	Available     *bool             `json:"available,omitempty"`
}
