package models

import (
	"github.com/composure-bot/composure/internal/domain"
)

// ChannelType discriminates the channel object shapes.
type ChannelType uint8

const (
	ChannelTypeGuildText          ChannelType = 0
	ChannelTypeDM                 ChannelType = 1
	ChannelTypeGuildVoice         ChannelType = 2
	ChannelTypeGroupDM            ChannelType = 3
	ChannelTypeGuildCategory      ChannelType = 4
	ChannelTypeGuildAnnouncement  ChannelType = 5
	ChannelTypeAnnouncementThread ChannelType = 10
	ChannelTypePublicThread       ChannelType = 11
	ChannelTypePrivateThread      ChannelType = 12
	ChannelTypeGuildStageVoice    ChannelType = 13
	ChannelTypeGuildDirectory     ChannelType = 14
	ChannelTypeGuildForum         ChannelType = 15
)

// Channel is the full channel object carried on interactions.
type Channel struct {
	ID   domain.Snowflake `json:"id"`
	Type ChannelType      `json:"type"`

	GuildID              *domain.Snowflake `json:"guild_id,omitempty"`
	Position             *int32            `json:"position,omitempty"`
	PermissionOverwrites []Overwrite       `json:"permission_overwrites,omitempty"`
	Name                 *string           `json:"name,omitempty"`
	Topic                *string           `json:"topic,omitempty"`
	NSFW                 *bool             `json:"nsfw,omitempty"`
	LastMessageID        *domain.Snowflake `json:"last_message_id,omitempty"`
	Bitrate              *uint32           `json:"bitrate,omitempty"`
	UserLimit            *uint32           `json:"user_limit,omitempty"`
	RateLimitPerUser     *uint32           `json:"rate_limit_per_user,omitempty"`
	Recipients           []User            `json:"recipients,omitempty"`
	Icon                 *string           `json:"icon,omitempty"`
	OwnerID              *domain.Snowflake `json:"owner_id,omitempty"`
	ApplicationID        *domain.Snowflake `json:"application_id,omitempty"`
	Managed              *bool             `json:"managed,omitempty"`
	ParentID             *domain.Snowflake `json:"parent_id,omitempty"`
	LastPinTimestamp     *string           `json:"last_pin_timestamp,omitempty"`
	RTCRegion            *string           `json:"rtc_region,omitempty"`
	VideoQualityMode     *uint8            `json:"video_quality_mode,omitempty"`
	MessageCount         *uint32           `json:"message_count,omitempty"`
	MemberCount          *uint8            `json:"member_count,omitempty"`
	ThreadMetadata       *ThreadMetadata   `json:"thread_metadata,omitempty"`
	Member               *ThreadMember     `json:"member,omitempty"`

	DefaultAutoArchiveDuration *uint32      `json:"default_auto_archive_duration,omitempty"`
	Permissions                *Permissions `json:"permissions,omitempty"`
	Flags                      *uint64      `json:"flags,omitempty"`
	TotalMessageSent           *uint32      `json:"total_message_sent,omitempty"`

	AppliedTags                   []domain.Snowflake `json:"applied_tags,omitempty"`
	DefaultReactionEmoji          *PartialEmoji      `json:"default_reaction_emoji,omitempty"`
	DefaultThreadRateLimitPerUser *uint32            `json:"default_thread_rate_limit_per_user,omitempty"`
	DefaultSortOrder              *uint8             `json:"default_sort_order,omitempty"`
	DefaultForumLayout            *uint8             `json:"default_forum_layout,omitempty"`
}

// PartialChannel is the channel shape found in resolved interaction data.
type PartialChannel struct {
	ID             domain.Snowflake  `json:"id"`
	Type           ChannelType       `json:"type"`
	Name           *string           `json:"name,omitempty"`
	Permissions    *Permissions      `json:"permissions,omitempty"`
	ThreadMetadata *ThreadMetadata   `json:"thread_metadata,omitempty"`
	ParentID       *domain.Snowflake `json:"parent_id,omitempty"`
}

// Overwrite is a channel permission overwrite for a role or member.
type Overwrite struct {
	ID    domain.Snowflake `json:"id"`
	Type  uint8            `json:"type"`
	Allow Permissions      `json:"allow"`
	Deny  Permissions      `json:"deny"`
}

// ThreadMetadata carries the thread-only channel fields.
type ThreadMetadata struct {
	Archived            bool    `json:"archived"`
	AutoArchiveDuration uint32  `json:"auto_archive_duration"`
	ArchiveTimestamp    string  `json:"archive_timestamp"`
	Locked              bool    `json:"locked"`
	Invitable           *bool   `json:"invitable,omitempty"`
	CreateTimestamp     *string `json:"create_timestamp,omitempty"`
}

// ThreadMember is the calling user's membership of a thread.
type ThreadMember struct {
	ID            *domain.Snowflake `json:"id,omitempty"`
	UserID        *domain.Snowflake `json:"user_id,omitempty"`
	JoinTimestamp string            `json:"join_timestamp"`
	Flags         uint64            `json:"flags"`
}
