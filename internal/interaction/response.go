package interaction

import (
	"encoding/json"

	"github.com/composure-bot/composure/internal/models"
)

// ResponseKind is the response envelope discriminant.
type ResponseKind uint8

const (
	ResponseKindPong                             ResponseKind = 1
	ResponseKindChannelMessageWithSource         ResponseKind = 4
	ResponseKindDeferredChannelMessageWithSource ResponseKind = 5
	ResponseKindDeferredUpdateMessage            ResponseKind = 6
	ResponseKindUpdateMessage                    ResponseKind = 7
	ResponseKindAutocompleteResult               ResponseKind = 8
	ResponseKindModal                            ResponseKind = 9
)

// Response is one outbound response envelope. Variants without a payload
// encode as the bare type discriminant with no data key at all.
type Response interface {
	responseType() ResponseKind
	callbackData() any
}

// Pong answers a ping.
type Pong struct{}

func (Pong) responseType() ResponseKind { return ResponseKindPong }
func (Pong) callbackData() any          { return nil }

// ChannelMessageWithSource posts a new message in reply to the interaction.
type ChannelMessageWithSource struct {
	Data MessageCallback
}

func (r ChannelMessageWithSource) responseType() ResponseKind {
	return ResponseKindChannelMessageWithSource
}
func (r ChannelMessageWithSource) callbackData() any { return r.Data }

// DeferredChannelMessageWithSource acknowledges the interaction and shows a
// loading state until a followup arrives.
type DeferredChannelMessageWithSource struct{}

func (DeferredChannelMessageWithSource) responseType() ResponseKind {
	return ResponseKindDeferredChannelMessageWithSource
}
func (DeferredChannelMessageWithSource) callbackData() any { return nil }

// DeferredUpdateMessage acknowledges a component interaction without any
// visible change.
type DeferredUpdateMessage struct{}

func (DeferredUpdateMessage) responseType() ResponseKind {
	return ResponseKindDeferredUpdateMessage
}
func (DeferredUpdateMessage) callbackData() any { return nil }

// UpdateMessage edits the message the component interaction came from.
type UpdateMessage struct {
	Data MessageCallback
}

func (r UpdateMessage) responseType() ResponseKind { return ResponseKindUpdateMessage }
func (r UpdateMessage) callbackData() any          { return r.Data }

// AutocompleteResult answers an autocomplete request with choice suggestions.
type AutocompleteResult struct {
	Data AutocompleteCallback
}

func (r AutocompleteResult) responseType() ResponseKind { return ResponseKindAutocompleteResult }
func (r AutocompleteResult) callbackData() any          { return r.Data }

// Modal opens a modal for the user to fill in.
type Modal struct {
	Data ModalCallback
}

func (r Modal) responseType() ResponseKind { return ResponseKindModal }
func (r Modal) callbackData() any          { return r.Data }

// MessageCallback is the message payload of a message or update response.
type MessageCallback struct {
	TTS             *bool                      `json:"tts,omitempty"`
	Content         *string                    `json:"content,omitempty"`
	Embeds          []models.Embed             `json:"embeds,omitempty"`
	AllowedMentions *models.AllowedMentions    `json:"allowed_mentions,omitempty"`
	Flags           *models.MessageFlags       `json:"flags,omitempty"`
	Components      models.ComponentList       `json:"components,omitempty"`
	Attachments     []models.PartialAttachment `json:"attachments,omitempty"`
}

// Ephemeral marks the message visible only to the invoking user.
func (c MessageCallback) Ephemeral() MessageCallback {
	flags := models.MessageFlagEphemeral
	if c.Flags != nil {
		flags |= *c.Flags
	}
	c.Flags = &flags
	return c
}

// AutocompleteCallback is the choice list payload of an autocomplete
// response.
type AutocompleteCallback struct {
	Choices []Choice `json:"choices"`
}

// Choice is one autocomplete suggestion. Value must be a string, integer or
// float matching the focused option's type.
type Choice struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// ModalCallback is the modal payload of a modal response.
type ModalCallback struct {
	CustomID   string               `json:"custom_id"`
	Title      string               `json:"title"`
	Components models.ComponentList `json:"components"`
}

// EncodeResponse renders the response envelope. Payload-less variants encode
// as an object holding only the type discriminant.
func EncodeResponse(r Response) ([]byte, error) {
	envelope := struct {
		Type ResponseKind `json:"type"`
		Data any          `json:"data,omitempty"`
	}{
		Type: r.responseType(),
		Data: r.callbackData(),
	}
	return json.Marshal(envelope)
}

// RespondWithMessage builds a plain text message response.
func RespondWithMessage(content string) Response {
	return ChannelMessageWithSource{Data: MessageCallback{Content: &content}}
}

// RespondWithEmbed builds a single-embed message response.
func RespondWithEmbed(embed models.Embed) Response {
	return ChannelMessageWithSource{Data: MessageCallback{Embeds: []models.Embed{embed}}}
}

// RespondWithAutocompleteChoices builds an autocomplete response. Calling it
// with no choices produces the empty suggestion list.
func RespondWithAutocompleteChoices(choices ...Choice) Response {
	if choices == nil {
		choices = []Choice{}
	}
	return AutocompleteResult{Data: AutocompleteCallback{Choices: choices}}
}
