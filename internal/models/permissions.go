package models

import "strconv"

// Permissions is Discord's permission bit set. The wire form is a decimal
// string because the set exceeds the safe integer range of some producers.
type Permissions uint64

const (
	PermissionCreateInstantInvite Permissions = 1 << 0
	PermissionKickMembers         Permissions = 1 << 1
	PermissionBanMembers          Permissions = 1 << 2
	PermissionAdministrator       Permissions = 1 << 3
	PermissionManageChannels      Permissions = 1 << 4
	PermissionManageGuild         Permissions = 1 << 5
	PermissionAddReactions        Permissions = 1 << 6
	PermissionViewAuditLog        Permissions = 1 << 7
	PermissionPrioritySpeaker     Permissions = 1 << 8
	PermissionStream              Permissions = 1 << 9
	PermissionViewChannel         Permissions = 1 << 10
	PermissionSendMessages        Permissions = 1 << 11
	PermissionSendTTSMessages     Permissions = 1 << 12
	PermissionManageMessages      Permissions = 1 << 13
	PermissionEmbedLinks          Permissions = 1 << 14
	PermissionAttachFiles         Permissions = 1 << 15
	PermissionReadMessageHistory  Permissions = 1 << 16
	PermissionMentionEveryone     Permissions = 1 << 17
	PermissionUseExternalEmojis   Permissions = 1 << 18
	PermissionViewGuildInsights   Permissions = 1 << 19
	PermissionConnect             Permissions = 1 << 20
	PermissionSpeak               Permissions = 1 << 21
	PermissionMuteMembers         Permissions = 1 << 22
	PermissionDeafenMembers       Permissions = 1 << 23
	PermissionMoveMembers         Permissions = 1 << 24
	PermissionUseVAD              Permissions = 1 << 25
	PermissionChangeNickname      Permissions = 1 << 26
	PermissionManageNicknames     Permissions = 1 << 27
	PermissionManageRoles         Permissions = 1 << 28
	PermissionManageWebhooks      Permissions = 1 << 29
	PermissionManageExpressions   Permissions = 1 << 30
	PermissionUseSlashCommands    Permissions = 1 << 31
	PermissionRequestToSpeak      Permissions = 1 << 32
	PermissionManageEvents        Permissions = 1 << 33
	PermissionManageThreads       Permissions = 1 << 34
	PermissionCreatePublicThreads Permissions = 1 << 35
	PermissionCreatePrivateThread Permissions = 1 << 36
	PermissionUseExternalStickers Permissions = 1 << 37
	PermissionSendMessagesThreads Permissions = 1 << 38
	PermissionUseEmbeddedActivity Permissions = 1 << 39
	PermissionModerateMembers     Permissions = 1 << 40
)

// Has reports whether every bit of p is set.
func (perms Permissions) Has(p Permissions) bool {
	return perms&p == p
}

// MarshalText renders the decimal wire form.
func (perms Permissions) MarshalText() ([]byte, error) {
	return []byte(strconv.FormatUint(uint64(perms), 10)), nil
}

// UnmarshalText parses the decimal wire form.
func (perms *Permissions) UnmarshalText(text []byte) error {
	v, err := strconv.ParseUint(string(text), 10, 64)
	if err != nil {
		return err
	}
	*perms = Permissions(v)
	return nil
}
