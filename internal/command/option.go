package command

import (
	"encoding/json"
	"fmt"

	"github.com/composure-bot/composure/internal/codec"
	"github.com/composure-bot/composure/internal/models"
)

// OptionKind is the command option discriminant. The values mirror the data
// option kinds of an invocation.
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

// Option is one node of a command definition's option tree.
type Option interface {
	OptionType() OptionKind
}

// BaseOption carries the fields every option kind shares.
type BaseOption struct {
	Name                     string            `json:"name"`
	NameLocalizations        map[string]string `json:"name_localizations,omitempty"`
	Description              string            `json:"description"`
	DescriptionLocalizations map[string]string `json:"description_localizations,omitempty"`
	Required                 *bool             `json:"required,omitempty"`
}

// Choice is one fixed value a string, integer or number option offers.
type Choice[T string | int64 | float64] struct {
	Name              string            `json:"name"`
	NameLocalizations map[string]string `json:"name_localizations,omitempty"`
	Value             T                 `json:"value"`
}

// SubcommandOption nests leaf options one level down. Subcommands cannot
// contain further subcommands or groups.
type SubcommandOption struct {
	Type OptionKind `json:"type"`
	BaseOption
	Options OptionList `json:"options,omitempty"`
}

// OptionType implements Option.
func (o *SubcommandOption) OptionType() OptionKind { return OptionKindSubcommand }

// SubcommandGroupOption nests subcommands. Its children must all be
// subcommands; anything else is rejected during decode.
type SubcommandGroupOption struct {
	Type OptionKind `json:"type"`
	BaseOption
	Options []SubcommandOption `json:"options"`
}

// OptionType implements Option.
func (o *SubcommandGroupOption) OptionType() OptionKind { return OptionKindSubcommandGroup }

// StringOption is a free-form or choice-constrained string parameter.
type StringOption struct {
	Type OptionKind `json:"type"`
	BaseOption
	Choices      []Choice[string] `json:"choices,omitempty"`
	MinLength    *uint16          `json:"min_length,omitempty"`
	MaxLength    *uint16          `json:"max_length,omitempty"`
	Autocomplete *bool            `json:"autocomplete,omitempty"`
}

// OptionType implements Option.
func (o *StringOption) OptionType() OptionKind { return OptionKindString }

// IntegerOption is a whole number parameter.
type IntegerOption struct {
	Type OptionKind `json:"type"`
	BaseOption
	Choices      []Choice[int64] `json:"choices,omitempty"`
	MinValue     *int64          `json:"min_value,omitempty"`
	MaxValue     *int64          `json:"max_value,omitempty"`
	Autocomplete *bool           `json:"autocomplete,omitempty"`
}

// OptionType implements Option.
func (o *IntegerOption) OptionType() OptionKind { return OptionKindInteger }

// BooleanOption is a true/false parameter.
type BooleanOption struct {
	Type OptionKind `json:"type"`
	BaseOption
}

// OptionType implements Option.
func (o *BooleanOption) OptionType() OptionKind { return OptionKindBoolean }

// UserOption selects a user.
type UserOption struct {
	Type OptionKind `json:"type"`
	BaseOption
}

// OptionType implements Option.
func (o *UserOption) OptionType() OptionKind { return OptionKindUser }

// ChannelOption selects a channel, optionally restricted to given channel
// types.
type ChannelOption struct {
	Type OptionKind `json:"type"`
	BaseOption
	ChannelTypes []models.ChannelType `json:"channel_types,omitempty"`
}

// OptionType implements Option.
func (o *ChannelOption) OptionType() OptionKind { return OptionKindChannel }

// RoleOption selects a role.
type RoleOption struct {
	Type OptionKind `json:"type"`
	BaseOption
}

// OptionType implements Option.
func (o *RoleOption) OptionType() OptionKind { return OptionKindRole }

// MentionableOption selects a user or a role.
type MentionableOption struct {
	Type OptionKind `json:"type"`
	BaseOption
}

// OptionType implements Option.
func (o *MentionableOption) OptionType() OptionKind { return OptionKindMentionable }

// NumberOption is a floating point parameter.
type NumberOption struct {
	Type OptionKind `json:"type"`
	BaseOption
	Choices      []Choice[float64] `json:"choices,omitempty"`
	MinValue     *float64          `json:"min_value,omitempty"`
	MaxValue     *float64          `json:"max_value,omitempty"`
	Autocomplete *bool             `json:"autocomplete,omitempty"`
}

// OptionType implements Option.
func (o *NumberOption) OptionType() OptionKind { return OptionKindNumber }

// AttachmentOption accepts an uploaded file.
type AttachmentOption struct {
	Type OptionKind `json:"type"`
	BaseOption
}

// OptionType implements Option.
func (o *AttachmentOption) OptionType() OptionKind { return OptionKindAttachment }

const optionFamily = "command option"

var optionDecoder = codec.NewTaggedDecoder(optionFamily, map[uint64]codec.DecodeFunc[Option]{
	1:  codec.Variant(func(o *SubcommandOption) Option { return o }),
	2:  decodeSubcommandGroup,
	3:  codec.Variant(func(o *StringOption) Option { return o }),
	4:  codec.Variant(func(o *IntegerOption) Option { return o }),
	5:  codec.Variant(func(o *BooleanOption) Option { return o }),
	6:  codec.Variant(func(o *UserOption) Option { return o }),
	7:  codec.Variant(func(o *ChannelOption) Option { return o }),
	8:  codec.Variant(func(o *RoleOption) Option { return o }),
	9:  codec.Variant(func(o *MentionableOption) Option { return o }),
	10: codec.Variant(func(o *NumberOption) Option { return o }),
	11: codec.Variant(func(o *AttachmentOption) Option { return o }),
})

func decodeSubcommandGroup(data []byte) (Option, error) {
	var raw struct {
		SubcommandGroupOption
		Options []json.RawMessage `json:"options"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	group := raw.SubcommandGroupOption
	group.Options = nil
	for _, r := range raw.Options {
		tag, err := codec.PeekTag(optionFamily, r)
		if err != nil {
			return nil, err
		}
		if tag != uint64(OptionKindSubcommand) {
			return nil, fmt.Errorf("subcommand group %q: child of type %d is not a subcommand", group.Name, tag)
		}
		var sub SubcommandOption
		if err := json.Unmarshal(r, &sub); err != nil {
			return nil, err
		}
		group.Options = append(group.Options, sub)
	}
	return &group, nil
}

// OptionList decodes a JSON array of heterogeneous option definitions.
type OptionList []Option

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
