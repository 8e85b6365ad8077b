package models

import (
	"encoding/json"
	"fmt"

	"github.com/composure-bot/composure/internal/domain"
)

// Role is the guild role object.
type Role struct {
	ID           domain.Snowflake `json:"id"`
	Name         string           `json:"name"`
	Color        int32            `json:"color"`
	Hoist        bool             `json:"hoist"`
	Icon         *string          `json:"icon,omitempty"`
	UnicodeEmoji *string          `json:"unicode_emoji,omitempty"`
	Position     int32            `json:"position"`
	Permissions  Permissions      `json:"permissions"`
	Managed      bool             `json:"managed"`
	Mentionable  bool             `json:"mentionable"`
	Tags         *RoleTags        `json:"tags,omitempty"`
}

// Mention renders the chat mention for the role.
func (r *Role) Mention() string {
	return fmt.Sprintf("<@&%s>", r.ID)
}

// RoleTags describes what a role belongs to. The premium_subscriber,
// available_for_purchase and guild_connections fields are presence-flagged
// on the wire: the key appears with a null value when true and is absent
// when false.
type RoleTags struct {
	BotID                 *domain.Snowflake
	IntegrationID         *domain.Snowflake
	PremiumSubscriber     bool
	SubscriptionListingID *domain.Snowflake
	AvailableForPurchase  bool
	GuildConnections      bool
}

// UnmarshalJSON decodes the presence-flagged booleans by key existence
// rather than value.
func (r *RoleTags) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	if raw, ok := fields["bot_id"]; ok {
		if err := json.Unmarshal(raw, &r.BotID); err != nil {
			return err
		}
	}
	if raw, ok := fields["integration_id"]; ok {
		if err := json.Unmarshal(raw, &r.IntegrationID); err != nil {
			return err
		}
	}
	if raw, ok := fields["subscription_listing_id"]; ok {
		if err := json.Unmarshal(raw, &r.SubscriptionListingID); err != nil {
			return err
		}
	}

	_, r.PremiumSubscriber = fields["premium_subscriber"]
	_, r.AvailableForPurchase = fields["available_for_purchase"]
	_, r.GuildConnections = fields["guild_connections"]
	return nil
}
