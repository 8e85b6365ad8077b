package interaction

import (
	"encoding/json"
	"fmt"

	"github.com/composure-bot/composure/internal/codec"
	"github.com/composure-bot/composure/internal/domain"
	"github.com/composure-bot/composure/internal/models"
)

// CommandKind discriminates the three application command shapes.
type CommandKind uint8

const (
	CommandKindChatInput CommandKind = 1
	CommandKindUser      CommandKind = 2
	CommandKindMessage   CommandKind = 3
)

// CommandData is the payload of a command invocation or autocomplete request.
type CommandData struct {
	ID       domain.Snowflake  `json:"id"`
	Name     string            `json:"name"`
	Type     CommandKind       `json:"type"`
	Resolved *Resolved         `json:"resolved,omitempty"`
	Options  OptionList        `json:"options,omitempty"`
	GuildID  *domain.Snowflake `json:"guild_id,omitempty"`
	TargetID *domain.Snowflake `json:"target_id,omitempty"`
}

// UnmarshalJSON rejects command kinds outside the known range.
func (d *CommandData) UnmarshalJSON(data []byte) error {
	type alias CommandData
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	switch a.Type {
	case CommandKindChatInput, CommandKindUser, CommandKindMessage:
	default:
		return fmt.Errorf("command %q: unknown command type %d", a.Name, a.Type)
	}
	*d = CommandData(a)
	return nil
}

// Option returns the top-level option with the given name.
func (d *CommandData) Option(name string) (DataOption, bool) {
	return d.Options.byName(name)
}

// ComponentData is the payload of a button press or select submission.
// Values is populated for select menus only.
type ComponentData struct {
	CustomID      string                `json:"custom_id"`
	ComponentType models.ComponentKind  `json:"component_type"`
	Values        []models.SelectOption `json:"values,omitempty"`
}

// ModalData is the payload of a submitted modal: the modal's custom id plus
// the component tree with user-entered values filled in.
type ModalData struct {
	CustomID   string               `json:"custom_id"`
	Components models.ComponentList `json:"components"`
}

// TextValue returns the submitted value of the text input with the given
// custom id, searching action rows one level deep.
func (d *ModalData) TextValue(customID string) (string, bool) {
	for _, c := range d.Components {
		row, ok := c.(*models.ActionRow)
		if !ok {
			continue
		}
		for _, child := range row.Components {
			input, ok := child.(*models.TextInput)
			if !ok || input.CustomID != customID {
				continue
			}
			if input.Value == nil {
				return "", true
			}
			return *input.Value, true
		}
	}
	return "", false
}

// Resolved carries the full objects behind the snowflakes referenced by a
// command's options and targets, keyed by id.
type Resolved struct {
	Users       map[domain.Snowflake]models.User           `json:"users,omitempty"`
	Members     map[domain.Snowflake]models.PartialMember  `json:"members,omitempty"`
	Roles       map[domain.Snowflake]models.Role           `json:"roles,omitempty"`
	Channels    map[domain.Snowflake]models.PartialChannel `json:"channels,omitempty"`
	Messages    map[domain.Snowflake]models.Message        `json:"messages,omitempty"`
	Attachments map[domain.Snowflake]models.Attachment     `json:"attachments,omitempty"`
}

// OptionKind is the data option discriminant.
type OptionKind uint8

const (
	OptionKindSubcommand      OptionKind = 1
	OptionKindSubcommandGroup OptionKind = 2
	OptionKindString          OptionKind = 3
	OptionKindInteger         OptionKind = 4
	OptionKindBoolean         OptionKind = 5
	OptionKindUser            OptionKind = 6
	OptionKindChannel         OptionKind = 7
	OptionKindRole            OptionKind = 8
	OptionKindMentionable     OptionKind = 9
	OptionKindNumber          OptionKind = 10
	OptionKindAttachment      OptionKind = 11
)

// DataOption is one node of a command invocation's option tree: a subcommand,
// a subcommand group, or a typed leaf value.
type DataOption interface {
	OptionType() OptionKind
	OptionName() string
}

const optionFamily = "command data option"

var optionDecoder = codec.NewTaggedDecoder(optionFamily, map[uint64]codec.DecodeFunc[DataOption]{
	1:  codec.Variant(func(o *SubcommandOption) DataOption { return o }),
	2:  decodeSubcommandGroup,
	3:  codec.Variant(func(o *StringOptionData) DataOption { return o }),
	4:  codec.Variant(func(o *IntegerOptionData) DataOption { return o }),
	5:  codec.Variant(func(o *BooleanOptionData) DataOption { return o }),
	6:  idOption(OptionKindUser),
	7:  idOption(OptionKindChannel),
	8:  idOption(OptionKindRole),
	9:  idOption(OptionKindMentionable),
	10: codec.Variant(func(o *NumberOptionData) DataOption { return o }),
	11: idOption(OptionKindAttachment),
})

// OptionList decodes a JSON array of heterogeneous data options.
type OptionList []DataOption

// UnmarshalJSON dispatches each element through the option decoder.
func (l *OptionList) UnmarshalJSON(data []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return err
	}

	list := make(OptionList, 0, len(raws))
	for _, raw := range raws {
		o, err := optionDecoder.DecodeRaw(raw)
		if err != nil {
			return err
		}
		list = append(list, o)
	}
	*l = list
	return nil
}

func (l OptionList) byName(name string) (DataOption, bool) {
	for _, o := range l {
		if o.OptionName() == name {
			return o, true
		}
	}
	return nil, false
}

// SubcommandOption names the invoked subcommand and carries its leaf options.
type SubcommandOption struct {
	Name    string     `json:"name"`
	Options OptionList `json:"options,omitempty"`
}

// OptionType implements DataOption.
func (o *SubcommandOption) OptionType() OptionKind { return OptionKindSubcommand }

// OptionName implements DataOption.
func (o *SubcommandOption) OptionName() string { return o.Name }

// Option returns the leaf option with the given name.
func (o *SubcommandOption) Option(name string) (DataOption, bool) {
	return o.Options.byName(name)
}

// SubcommandGroupOption names the invoked group. Its children are always
// subcommands; any other child kind is rejected during decode.
type SubcommandGroupOption struct {
	Name    string             `json:"name"`
	Options []SubcommandOption `json:"options"`
}

// OptionType implements DataOption.
func (o *SubcommandGroupOption) OptionType() OptionKind { return OptionKindSubcommandGroup }

// OptionName implements DataOption.
func (o *SubcommandGroupOption) OptionName() string { return o.Name }

func decodeSubcommandGroup(data []byte) (DataOption, error) {
	var raw struct {
		Name    string            `json:"name"`
		Options []json.RawMessage `json:"options"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	group := &SubcommandGroupOption{Name: raw.Name}
	for _, r := range raw.Options {
		tag, err := codec.PeekTag(optionFamily, r)
		if err != nil {
			return nil, err
		}
		if tag != uint64(OptionKindSubcommand) {
			return nil, fmt.Errorf("subcommand group %q: child of type %d is not a subcommand", raw.Name, tag)
		}
		var sub SubcommandOption
		if err := json.Unmarshal(r, &sub); err != nil {
			return nil, err
		}
		group.Options = append(group.Options, sub)
	}
	return group, nil
}

// StringOptionData is a string leaf. Focused marks the option an autocomplete
// request is asking about.
type StringOptionData struct {
	Name    string `json:"name"`
	Value   string `json:"value"`
	Focused *bool  `json:"focused,omitempty"`
}

// OptionType implements DataOption.
func (o *StringOptionData) OptionType() OptionKind { return OptionKindString }

// OptionName implements DataOption.
func (o *StringOptionData) OptionName() string { return o.Name }

// IntegerOptionData is an integer leaf.
type IntegerOptionData struct {
	Name    string `json:"name"`
	Value   int64  `json:"value"`
	Focused *bool  `json:"focused,omitempty"`
}

// OptionType implements DataOption.
func (o *IntegerOptionData) OptionType() OptionKind { return OptionKindInteger }

// OptionName implements DataOption.
func (o *IntegerOptionData) OptionName() string { return o.Name }

// BooleanOptionData is a boolean leaf.
type BooleanOptionData struct {
	Name  string `json:"name"`
	Value bool   `json:"value"`
}

// OptionType implements DataOption.
func (o *BooleanOptionData) OptionType() OptionKind { return OptionKindBoolean }

// OptionName implements DataOption.
func (o *BooleanOptionData) OptionName() string { return o.Name }

// NumberOptionData is a floating point leaf.
type NumberOptionData struct {
	Name    string  `json:"name"`
	Value   float64 `json:"value"`
	Focused *bool   `json:"focused,omitempty"`
}

// OptionType implements DataOption.
func (o *NumberOptionData) OptionType() OptionKind { return OptionKindNumber }

// OptionName implements DataOption.
func (o *NumberOptionData) OptionName() string { return o.Name }

// IDOptionData is the shared leaf shape for user, channel, role, mentionable
// and attachment options. The value is the referenced object's id; the full
// object, when present, is in the command's resolved data.
type IDOptionData struct {
	Kind  OptionKind       `json:"-"`
	Name  string           `json:"name"`
	Value domain.Snowflake `json:"value"`
}

// OptionType implements DataOption.
func (o *IDOptionData) OptionType() OptionKind { return o.Kind }

// OptionName implements DataOption.
func (o *IDOptionData) OptionName() string { return o.Name }

func idOption(kind OptionKind) codec.DecodeFunc[DataOption] {
	return func(data []byte) (DataOption, error) {
		var o IDOptionData
		if err := json.Unmarshal(data, &o); err != nil {
			return nil, err
		}
		o.Kind = kind
		return &o, nil
	}
}
