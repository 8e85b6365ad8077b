package command

import (
	"github.com/composure-bot/composure/internal/models"
)

// Builder accumulates a command set for registration.
type Builder struct {
	commands []Command
}

// NewBuilder returns an empty command set builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// ChatInput adds a slash command. The configure func, when non-nil, fills in
// options and overrides.
func (b *Builder) ChatInput(name, description string, configure func(*ChatInputBuilder)) *Builder {
	cb := &ChatInputBuilder{
		command: &ChatInputCommand{
			Type:        KindChatInput,
			Details:     Details{Name: name},
			Description: description,
		},
	}
	if configure != nil {
		configure(cb)
	}
	b.commands = append(b.commands, cb.command)
	return b
}

// User adds a user context menu command.
func (b *Builder) User(name string) *Builder {
	b.commands = append(b.commands, &UserCommand{Type: KindUser, Details: Details{Name: name}})
	return b
}

// Message adds a message context menu command.
func (b *Builder) Message(name string) *Builder {
	b.commands = append(b.commands, &MessageCommand{Type: KindMessage, Details: Details{Name: name}})
	return b
}

// Build returns the accumulated command definitions.
func (b *Builder) Build() []Command {
	return b.commands
}

// ChatInputBuilder configures one slash command.
type ChatInputBuilder struct {
	command *ChatInputCommand
}

// DefaultMemberPermissions restricts who sees the command by default.
func (b *ChatInputBuilder) DefaultMemberPermissions(p models.Permissions) *ChatInputBuilder {
	b.command.DefaultMemberPermissions = &p
	return b
}

// NoDMs hides the command outside guilds.
func (b *ChatInputBuilder) NoDMs() *ChatInputBuilder {
	f := false
	b.command.DMPermission = &f
	return b
}

// StringOption adds a string parameter.
func (b *ChatInputBuilder) StringOption(name, description string, required bool, configure func(*StringOption)) *ChatInputBuilder {
	o := &StringOption{Type: OptionKindString, BaseOption: base(name, description, required)}
	if configure != nil {
		configure(o)
	}
	b.command.Options = append(b.command.Options, o)
	return b
}

// IntegerOption adds a whole number parameter.
func (b *ChatInputBuilder) IntegerOption(name, description string, required bool, configure func(*IntegerOption)) *ChatInputBuilder {
	o := &IntegerOption{Type: OptionKindInteger, BaseOption: base(name, description, required)}
	if configure != nil {
		configure(o)
	}
	b.command.Options = append(b.command.Options, o)
	return b
}

// NumberOption adds a floating point parameter.
func (b *ChatInputBuilder) NumberOption(name, description string, required bool, configure func(*NumberOption)) *ChatInputBuilder {
	o := &NumberOption{Type: OptionKindNumber, BaseOption: base(name, description, required)}
	if configure != nil {
		configure(o)
	}
	b.command.Options = append(b.command.Options, o)
	return b
}

// BooleanOption adds a true/false parameter.
func (b *ChatInputBuilder) BooleanOption(name, description string, required bool) *ChatInputBuilder {
	b.command.Options = append(b.command.Options, &BooleanOption{Type: OptionKindBoolean, BaseOption: base(name, description, required)})
	return b
}

// UserOption adds a user parameter.
func (b *ChatInputBuilder) UserOption(name, description string, required bool) *ChatInputBuilder {
	b.command.Options = append(b.command.Options, &UserOption{Type: OptionKindUser, BaseOption: base(name, description, required)})
	return b
}

// RoleOption adds a role parameter.
func (b *ChatInputBuilder) RoleOption(name, description string, required bool) *ChatInputBuilder {
	b.command.Options = append(b.command.Options, &RoleOption{Type: OptionKindRole, BaseOption: base(name, description, required)})
	return b
}

// MentionableOption adds a user-or-role parameter.
func (b *ChatInputBuilder) MentionableOption(name, description string, required bool) *ChatInputBuilder {
	b.command.Options = append(b.command.Options, &MentionableOption{Type: OptionKindMentionable, BaseOption: base(name, description, required)})
	return b
}

// ChannelOption adds a channel parameter restricted to the given types.
func (b *ChatInputBuilder) ChannelOption(name, description string, required bool, types ...models.ChannelType) *ChatInputBuilder {
	b.command.Options = append(b.command.Options, &ChannelOption{
		Type:         OptionKindChannel,
		BaseOption:   base(name, description, required),
		ChannelTypes: types,
	})
	return b
}

// AttachmentOption adds a file upload parameter.
func (b *ChatInputBuilder) AttachmentOption(name, description string, required bool) *ChatInputBuilder {
	b.command.Options = append(b.command.Options, &AttachmentOption{Type: OptionKindAttachment, BaseOption: base(name, description, required)})
	return b
}

// Subcommand adds a subcommand with its own leaf options.
func (b *ChatInputBuilder) Subcommand(name, description string, configure func(*SubcommandBuilder)) *ChatInputBuilder {
	sb := &SubcommandBuilder{option: &SubcommandOption{
		Type:       OptionKindSubcommand,
		BaseOption: BaseOption{Name: name, Description: description},
	}}
	if configure != nil {
		configure(sb)
	}
	b.command.Options = append(b.command.Options, sb.option)
	return b
}

// Group adds a subcommand group.
func (b *ChatInputBuilder) Group(name, description string, configure func(*GroupBuilder)) *ChatInputBuilder {
	gb := &GroupBuilder{option: &SubcommandGroupOption{
		Type:       OptionKindSubcommandGroup,
		BaseOption: BaseOption{Name: name, Description: description},
	}}
	if configure != nil {
		configure(gb)
	}
	b.command.Options = append(b.command.Options, gb.option)
	return b
}

// SubcommandBuilder configures one subcommand's leaf options.
type SubcommandBuilder struct {
	option *SubcommandOption
}

// StringOption adds a string parameter.
func (b *SubcommandBuilder) StringOption(name, description string, required bool, configure func(*StringOption)) *SubcommandBuilder {
	o := &StringOption{Type: OptionKindString, BaseOption: base(name, description, required)}
	if configure != nil {
		configure(o)
	}
	b.option.Options = append(b.option.Options, o)
	return b
}

// IntegerOption adds a whole number parameter.
func (b *SubcommandBuilder) IntegerOption(name, description string, required bool, configure func(*IntegerOption)) *SubcommandBuilder {
	o := &IntegerOption{Type: OptionKindInteger, BaseOption: base(name, description, required)}
	if configure != nil {
		configure(o)
	}
	b.option.Options = append(b.option.Options, o)
	return b
}

// BooleanOption adds a true/false parameter.
func (b *SubcommandBuilder) BooleanOption(name, description string, required bool) *SubcommandBuilder {
	b.option.Options = append(b.option.Options, &BooleanOption{Type: OptionKindBoolean, BaseOption: base(name, description, required)})
	return b
}

// UserOption adds a user parameter.
func (b *SubcommandBuilder) UserOption(name, description string, required bool) *SubcommandBuilder {
	b.option.Options = append(b.option.Options, &UserOption{Type: OptionKindUser, BaseOption: base(name, description, required)})
	return b
}

// RoleOption adds a role parameter.
func (b *SubcommandBuilder) RoleOption(name, description string, required bool) *SubcommandBuilder {
	b.option.Options = append(b.option.Options, &RoleOption{Type: OptionKindRole, BaseOption: base(name, description, required)})
	return b
}

// GroupBuilder configures one subcommand group.
type GroupBuilder struct {
	option *SubcommandGroupOption
}

// Subcommand adds a subcommand to the group.
func (b *GroupBuilder) Subcommand(name, description string, configure func(*SubcommandBuilder)) *GroupBuilder {
	sb := &SubcommandBuilder{option: &SubcommandOption{
		Type:       OptionKindSubcommand,
		BaseOption: BaseOption{Name: name, Description: description},
	}}
	if configure != nil {
		configure(sb)
	}
	b.option.Options = append(b.option.Options, *sb.option)
	return b
}

func base(name, description string, required bool) BaseOption {
	b := BaseOption{Name: name, Description: description}
	if required {
		b.Required = &required
	}
	return b
}
