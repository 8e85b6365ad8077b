// Package models holds the Discord data transfer objects referenced by
// interactions and command definitions. They are value objects: created from
// one decoded request, read, and dropped.
package models

import (
	"fmt"
	"strconv"

	"github.com/composure-bot/composure/internal/domain"
)

const cdnBaseURL = "https://cdn.discordapp.com"

// ImageFormat selects the CDN rendition of an avatar or icon.
type ImageFormat string

const (
	ImageFormatPNG  ImageFormat = "png"
	ImageFormatJPEG ImageFormat = "jpeg"
	ImageFormatWebp ImageFormat = "webp"
	ImageFormatGif  ImageFormat = "gif"
)

// User is the Discord user object.
type User struct {
	ID            domain.Snowflake `json:"id"`
	Username      string           `json:"username"`
	Discriminator string           `json:"discriminator"`
	DisplayName   *string          `json:"display_name,omitempty"`
	Avatar        *string          `json:"avatar,omitempty"`
	PublicFlags   uint64           `json:"public_flags"`
}

// AvatarURL builds the CDN URL for the user's avatar, falling back to the
// default avatar derived from the discriminator when none is set.
func (u *User) AvatarURL(format ImageFormat) string {
	if u.Avatar != nil {
		hash := *u.Avatar
		if format == ImageFormatGif {
			hash = "a_" + hash
		}
		return fmt.Sprintf("%s/avatars/%s/%s.%s", cdnBaseURL, u.ID, hash, format)
	}

	disc, _ := strconv.Atoi(u.Discriminator)
	return fmt.Sprintf("%s/embed/avatars/%d.png", cdnBaseURL, disc%5)
}

// Mention renders the chat mention for the user.
func (u *User) Mention() string {
	return fmt.Sprintf("<@%s>", u.ID)
}
