package models

import (
	"encoding/json"

	"github.com/composure-bot/composure/internal/codec"
)

// ComponentKind discriminates the message component shapes.
type ComponentKind uint8

const (
	ComponentKindActionRow         ComponentKind = 1
	ComponentKindButton            ComponentKind = 2
	ComponentKindStringSelect      ComponentKind = 3
	ComponentKindTextInput         ComponentKind = 4
	ComponentKindUserSelect        ComponentKind = 5
	ComponentKindRoleSelect        ComponentKind = 6
	ComponentKindMentionableSelect ComponentKind = 7
	ComponentKindChannelSelect     ComponentKind = 8
)

// Component is one node of a message component tree.
type Component interface {
	ComponentType() ComponentKind
}

var componentDecoder = codec.NewTaggedDecoder("component", map[uint64]codec.DecodeFunc[Component]{
	1: codec.Variant(func(c *ActionRow) Component { return c }),
	2: codec.Variant(func(c *Button) Component { return c }),
	3: codec.Variant(func(c *SelectMenu) Component { return c }),
	4: codec.Variant(func(c *TextInput) Component { return c }),
	5: codec.Variant(func(c *SelectMenu) Component { return c }),
	6: codec.Variant(func(c *SelectMenu) Component { return c }),
	7: codec.Variant(func(c *SelectMenu) Component { return c }),
	8: codec.Variant(func(c *SelectMenu) Component { return c }),
})

// DecodeComponent decodes one component by its type discriminant.
func DecodeComponent(data []byte) (Component, error) {
	return componentDecoder.Decode(data)
}

// ComponentList decodes a JSON array of heterogeneous components.
type ComponentList []Component

// UnmarshalJSON dispatches each element through the component decoder.
func (l *ComponentList) UnmarshalJSON(data []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return err
	}

	list := make(ComponentList, 0, len(raws))
	for _, raw := range raws {
		c, err := componentDecoder.DecodeRaw(raw)
		if err != nil {
			return err
		}
		list = append(list, c)
	}
	*l = list
	return nil
}

// ActionRow is the top-level container for up to five child components.
type ActionRow struct {
	Type       ComponentKind `json:"type"`
	Components ComponentList `json:"components"`
}

// NewActionRow builds a row around the given children.
func NewActionRow(children ...Component) *ActionRow {
	return &ActionRow{Type: ComponentKindActionRow, Components: children}
}

// ComponentType implements Component.
func (r *ActionRow) ComponentType() ComponentKind { return ComponentKindActionRow }

// ButtonStyle selects the rendering of a button.
type ButtonStyle uint8

const (
	ButtonStylePrimary   ButtonStyle = 1
	ButtonStyleSecondary ButtonStyle = 2
	ButtonStyleSuccess   ButtonStyle = 3
	ButtonStyleDanger    ButtonStyle = 4
	ButtonStyleLink      ButtonStyle = 5
)

// Button is a clickable message component. Link buttons carry a URL instead
// of a custom id.
type Button struct {
	Type     ComponentKind `json:"type"`
	Style    ButtonStyle   `json:"style"`
	Label    *string       `json:"label,omitempty"`
	Emoji    *PartialEmoji `json:"emoji,omitempty"`
	CustomID *string       `json:"custom_id,omitempty"`
	URL      *string       `json:"url,omitempty"`
	Disabled *bool         `json:"disabled,omitempty"`
}

// NewButton builds a non-link button.
func NewButton(style ButtonStyle, label, customID string) *Button {
	return &Button{Type: ComponentKindButton, Style: style, Label: &label, CustomID: &customID}
}

// ComponentType implements Component.
func (b *Button) ComponentType() ComponentKind { return ComponentKindButton }

// SelectMenu covers the string, user, role, mentionable and channel select
// variants; Type records which one this is.
type SelectMenu struct {
	Type         ComponentKind  `json:"type"`
	CustomID     string         `json:"custom_id"`
	Options      []SelectOption `json:"options,omitempty"`
	ChannelTypes []ChannelType  `json:"channel_types,omitempty"`
	Placeholder  *string        `json:"placeholder,omitempty"`
	MinValues    *int32         `json:"min_values,omitempty"`
	MaxValues    *int32         `json:"max_values,omitempty"`
	Disabled     *bool          `json:"disabled,omitempty"`
}

// NewStringSelect builds a string select with explicit options.
func NewStringSelect(customID string, options ...SelectOption) *SelectMenu {
	return &SelectMenu{Type: ComponentKindStringSelect, CustomID: customID, Options: options}
}

// ComponentType implements Component.
func (s *SelectMenu) ComponentType() ComponentKind { return s.Type }

// SelectOption is one choice in a string select.
type SelectOption struct {
	Label       string        `json:"label"`
	Value       string        `json:"value"`
	Description *string       `json:"description,omitempty"`
	Emoji       *PartialEmoji `json:"emoji,omitempty"`
	Default     *bool         `json:"default,omitempty"`
}

// TextInputStyle selects single or multi line rendering.
type TextInputStyle uint8

const (
	TextInputStyleShort     TextInputStyle = 1
	TextInputStyleParagraph TextInputStyle = 2
)

// TextInput is a modal text field.
type TextInput struct {
	Type        ComponentKind  `json:"type"`
	CustomID    string         `json:"custom_id"`
	Style       TextInputStyle `json:"style"`
	Label       string         `json:"label"`
	MinLength   *int32         `json:"min_length,omitempty"`
	MaxLength   *int32         `json:"max_length,omitempty"`
	Required    *bool          `json:"required,omitempty"`
	Value       *string        `json:"value,omitempty"`
	Placeholder *string        `json:"placeholder,omitempty"`
}

// NewTextInput builds a modal text field.
func NewTextInput(customID, label string, style TextInputStyle) *TextInput {
	return &TextInput{Type: ComponentKindTextInput, CustomID: customID, Style: style, Label: label}
}

// ComponentType implements Component.
func (t *TextInput) ComponentType() ComponentKind { return ComponentKindTextInput }
