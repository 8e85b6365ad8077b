package models

// Embed is a rich message embed. Up to ten may be attached to one message.
type Embed struct {
	Title       *string        `json:"title,omitempty"`
	Description *string        `json:"description,omitempty"`
	URL         *string        `json:"url,omitempty"`
	Timestamp   *string        `json:"timestamp,omitempty"`
	Color       *uint32        `json:"color,omitempty"`
	Footer      *EmbedFooter   `json:"footer,omitempty"`
	Image       *EmbedImage    `json:"image,omitempty"`
	Thumbnail   *EmbedImage    `json:"thumbnail,omitempty"`
	Video       *EmbedVideo    `json:"video,omitempty"`
	Provider    *EmbedProvider `json:"provider,omitempty"`
	Author      *EmbedAuthor   `json:"author,omitempty"`
	Fields      []EmbedField   `json:"fields,omitempty"`
}

// NewEmbed returns an empty embed for fluent construction.
func NewEmbed() Embed {
	return Embed{}
}

// WithTitle sets the embed title.
func (e Embed) WithTitle(title string) Embed {
	e.Title = &title
	return e
}

// WithDescription sets the embed description.
func (e Embed) WithDescription(description string) Embed {
	e.Description = &description
	return e
}

// WithURL sets the embed URL.
func (e Embed) WithURL(url string) Embed {
	e.URL = &url
	return e
}

// WithColor sets the accent color as 0xRRGGBB.
func (e Embed) WithColor(color uint32) Embed {
	e.Color = &color
	return e
}

// WithFooter sets the footer text.
func (e Embed) WithFooter(text string) Embed {
	e.Footer = &EmbedFooter{Text: text}
	return e
}

// AddField appends a field.
func (e Embed) AddField(name, value string, inline bool) Embed {
	e.Fields = append(e.Fields, EmbedField{Name: name, Value: value, Inline: &inline})
	return e
}

// EmbedFooter is the footer block of an embed.
type EmbedFooter struct {
	Text         string  `json:"text"`
	IconURL      *string `json:"icon_url,omitempty"`
	ProxyIconURL *string `json:"proxy_icon_url,omitempty"`
}

// EmbedImage is the image and thumbnail block of an embed.
type EmbedImage struct {
	URL      string  `json:"url"`
	ProxyURL *string `json:"proxy_url,omitempty"`
	Height   *int32  `json:"height,omitempty"`
	Width    *int32  `json:"width,omitempty"`
}

// EmbedVideo is the video block of an embed.
type EmbedVideo struct {
	URL      *string `json:"url,omitempty"`
	ProxyURL *string `json:"proxy_url,omitempty"`
	Height   *int32  `json:"height,omitempty"`
	Width    *int32  `json:"width,omitempty"`
}

// EmbedProvider is the provider block of an embed.
type EmbedProvider struct {
	Name *string `json:"name,omitempty"`
	URL  *string `json:"url,omitempty"`
}

// EmbedAuthor is the author block of an embed.
type EmbedAuthor struct {
	Name         string  `json:"name"`
	URL          *string `json:"url,omitempty"`
	IconURL      *string `json:"icon_url,omitempty"`
	ProxyIconURL *string `json:"proxy_icon_url,omitempty"`
}

// EmbedField is one name/value pair of an embed.
type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline *bool  `json:"inline,omitempty"`
}
