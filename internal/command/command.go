// Package command models application command definitions: the shapes pushed
// to Discord during registration, as opposed to the invocation payloads that
// arrive on the webhook.
package command

import (
	"encoding/json"

	"github.com/composure-bot/composure/internal/codec"
	"github.com/composure-bot/composure/internal/domain"
	"github.com/composure-bot/composure/internal/models"
)

// Kind discriminates the three application command shapes.
type Kind uint8

const (
	KindChatInput Kind = 1
	KindUser      Kind = 2
	KindMessage   Kind = 3
)

// Command is one application command definition.
type Command interface {
	CommandType() Kind
	Definition() *Details
}

// Details carries the fields shared by every command kind. ID, ApplicationID
// and Version are assigned by Discord; they decode from API reads and are
// stripped when a definition is marshaled for a write.
type Details struct {
	ID            *domain.Snowflake `json:"id,omitempty"`
	ApplicationID *domain.Snowflake `json:"application_id,omitempty"`
	Version       *domain.Snowflake `json:"version,omitempty"`

	GuildID                  *domain.Snowflake   `json:"guild_id,omitempty"`
	Name                     string              `json:"name"`
	NameLocalizations        map[string]string   `json:"name_localizations,omitempty"`
	DefaultMemberPermissions *models.Permissions `json:"default_member_permissions,omitempty"`
	DMPermission             *bool               `json:"dm_permission,omitempty"`
	NSFW                     *bool               `json:"nsfw,omitempty"`
}

// readOnlyShadow blanks the Discord-assigned fields during marshal.
type readOnlyShadow struct {
	ID            *domain.Snowflake `json:"id,omitempty"`
	ApplicationID *domain.Snowflake `json:"application_id,omitempty"`
	Version       *domain.Snowflake `json:"version,omitempty"`
}

// ChatInputCommand is a slash command. It is the only kind that carries a
// description and an option tree.
type ChatInputCommand struct {
	Type Kind `json:"type"`
	Details
	Description              string            `json:"description"`
	DescriptionLocalizations map[string]string `json:"description_localizations,omitempty"`
	Options                  OptionList        `json:"options,omitempty"`
}

// CommandType implements Command.
func (c *ChatInputCommand) CommandType() Kind { return KindChatInput }

// Definition implements Command.
func (c *ChatInputCommand) Definition() *Details { return &c.Details }

// MarshalJSON strips the Discord-assigned read-only fields.
func (c ChatInputCommand) MarshalJSON() ([]byte, error) {
	type alias ChatInputCommand
	return json.Marshal(struct {
		alias
		readOnlyShadow
	}{alias: alias(c)})
}

// UserCommand appears in the context menu of a user.
type UserCommand struct {
	Type Kind `json:"type"`
	Details
}

// CommandType implements Command.
func (c *UserCommand) CommandType() Kind { return KindUser }

// Definition implements Command.
func (c *UserCommand) Definition() *Details { return &c.Details }

// MarshalJSON strips the Discord-assigned read-only fields.
func (c UserCommand) MarshalJSON() ([]byte, error) {
	type alias UserCommand
	return json.Marshal(struct {
		alias
		readOnlyShadow
	}{alias: alias(c)})
}

// MessageCommand appears in the context menu of a message.
type MessageCommand struct {
	Type Kind `json:"type"`
	Details
}

// CommandType implements Command.
func (c *MessageCommand) CommandType() Kind { return KindMessage }

// Definition implements Command.
func (c *MessageCommand) Definition() *Details { return &c.Details }

// MarshalJSON strips the Discord-assigned read-only fields.
func (c MessageCommand) MarshalJSON() ([]byte, error) {
	type alias MessageCommand
	return json.Marshal(struct {
		alias
		readOnlyShadow
	}{alias: alias(c)})
}

var commandDecoder = codec.NewTaggedDecoder("command definition", map[uint64]codec.DecodeFunc[Command]{
	1: codec.Variant(func(c *ChatInputCommand) Command { return c }),
	2: codec.Variant(func(c *UserCommand) Command { return c }),
	3: codec.Variant(func(c *MessageCommand) Command { return c }),
})

// DecodeCommand parses one command definition as returned by the API. A
// definition without a type field is a chat input command; the API omits the
// discriminant for the default kind on some routes.
func DecodeCommand(data []byte) (Command, error) {
	if _, err := codec.PeekTag("command definition", data); err != nil {
		var c ChatInputCommand
		if uerr := json.Unmarshal(data, &c); uerr != nil {
			return nil, err
		}
		c.Type = KindChatInput
		return &c, nil
	}
	return commandDecoder.Decode(data)
}

// DecodeCommandList parses a JSON array of command definitions.
func DecodeCommandList(data []byte) ([]Command, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, err
	}

	commands := make([]Command, 0, len(raws))
	for _, raw := range raws {
		c, err := DecodeCommand(raw)
		if err != nil {
			return nil, err
		}
		commands = append(commands, c)
	}
	return commands, nil
}
