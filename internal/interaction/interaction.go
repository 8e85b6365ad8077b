// Package interaction implements the inbound half of the Discord interaction
// wire protocol: the tag-discriminated request envelope, its per-kind data
// payloads, and the response envelope written back on the webhook connection.
package interaction

import (
	"github.com/composure-bot/composure/internal/codec"
	"github.com/composure-bot/composure/internal/domain"
	"github.com/composure-bot/composure/internal/models"
)

// Kind is the interaction envelope discriminant.
type Kind uint8

const (
	KindPing               Kind = 1
	KindApplicationCommand Kind = 2
	KindMessageComponent   Kind = 3
	KindAutocomplete       Kind = 4
	KindModalSubmit        Kind = 5
)

// Interaction is one decoded request envelope. The concrete type is selected
// by the envelope's type discriminant.
type Interaction interface {
	InteractionKind() Kind
	Header() *Common
}

// Common carries the header fields shared by every interaction kind. Guild
// interactions populate Member, direct messages populate User.
type Common struct {
	ID             domain.Snowflake       `json:"id"`
	ApplicationID  domain.Snowflake       `json:"application_id"`
	GuildID        *domain.Snowflake      `json:"guild_id,omitempty"`
	Channel        *models.PartialChannel `json:"channel,omitempty"`
	ChannelID      *domain.Snowflake      `json:"channel_id,omitempty"`
	Member         *models.Member         `json:"member,omitempty"`
	User           *models.User           `json:"user,omitempty"`
	Token          string                 `json:"token"`
	Version        uint8                  `json:"version"`
	AppPermissions *models.Permissions    `json:"app_permissions,omitempty"`
	GuildLocale    *string                `json:"guild_locale,omitempty"`
}

// Sender returns the invoking user, whichever of the member or user slots it
// arrived in.
func (c *Common) Sender() *models.User {
	if c.Member != nil {
		return &c.Member.User
	}
	return c.User
}

// Ping is the liveness probe Discord sends when the endpoint URL is
// registered. It carries no data payload.
type Ping struct {
	Type Kind `json:"type"`
	Common
}

// InteractionKind implements Interaction.
func (p *Ping) InteractionKind() Kind { return KindPing }

// Header implements Interaction.
func (p *Ping) Header() *Common { return &p.Common }

// ApplicationCommand is a slash command, user command or message command
// invocation.
type ApplicationCommand struct {
	Type Kind `json:"type"`
	Common
	Data   CommandData `json:"data"`
	Locale *string     `json:"locale,omitempty"`
}

// InteractionKind implements Interaction.
func (i *ApplicationCommand) InteractionKind() Kind { return KindApplicationCommand }

// Header implements Interaction.
func (i *ApplicationCommand) Header() *Common { return &i.Common }

// MessageComponent is a button press or select menu submission on a message
// the application previously sent.
type MessageComponent struct {
	Type Kind `json:"type"`
	Common
	Data    ComponentData   `json:"data"`
	Message *models.Message `json:"message,omitempty"`
	Locale  *string         `json:"locale,omitempty"`
}

// InteractionKind implements Interaction.
func (i *MessageComponent) InteractionKind() Kind { return KindMessageComponent }

// Header implements Interaction.
func (i *MessageComponent) Header() *Common { return &i.Common }

// Autocomplete is a partial command invocation asking for choice suggestions
// for the focused option.
type Autocomplete struct {
	Type Kind `json:"type"`
	Common
	Data   CommandData `json:"data"`
	Locale *string     `json:"locale,omitempty"`
}

// InteractionKind implements Interaction.
func (i *Autocomplete) InteractionKind() Kind { return KindAutocomplete }

// Header implements Interaction.
func (i *Autocomplete) Header() *Common { return &i.Common }

// ModalSubmit carries the field values of a submitted modal.
type ModalSubmit struct {
	Type Kind `json:"type"`
	Common
	Data    ModalData       `json:"data"`
	Message *models.Message `json:"message,omitempty"`
	Locale  *string         `json:"locale,omitempty"`
}

// InteractionKind implements Interaction.
func (i *ModalSubmit) InteractionKind() Kind { return KindModalSubmit }

// Header implements Interaction.
func (i *ModalSubmit) Header() *Common { return &i.Common }

var envelopeDecoder = codec.NewTaggedDecoder("interaction", map[uint64]codec.DecodeFunc[Interaction]{
	1: codec.Variant(func(i *Ping) Interaction { return i }),
	2: codec.Variant(func(i *ApplicationCommand) Interaction { return i }),
	3: codec.Variant(func(i *MessageComponent) Interaction { return i }),
	4: codec.Variant(func(i *Autocomplete) Interaction { return i }),
	5: codec.Variant(func(i *ModalSubmit) Interaction { return i }),
})

// Decode parses one request body into its concrete interaction type. The
// caller must have verified the request signature first; nothing here assumes
// the bytes are trustworthy beyond being attacker-supplied JSON.
func Decode(body []byte) (Interaction, error) {
	return envelopeDecoder.Decode(body)
}
