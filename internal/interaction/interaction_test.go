package interaction

import (
	"testing"

	"github.com/composure-bot/composure/internal/domain"
	"github.com/composure-bot/composure/internal/models"
)

// The body of a signed request captured from a live application.
const liveCommandBody = `{"app_permissions":"137411140374081","application_id":"1052322265397739523","channel":{"flags":0,"guild_id":"798662131062931547","id":"941169456686723122","last_message_id":"1100155827400229026","name":"bot-stuff","nsfw":false,"parent_id":"798662131678969866","permissions":"140737488355327","position":1,"rate_limit_per_user":0,"topic":null,"type":0},"channel_id":"941169456686723122","data":{"guild_id":"798662131062931547","id":"1052358444704862218","name":"ping","type":1},"entitlement_sku_ids":[],"entitlements":[],"guild_id":"798662131062931547","guild_locale":"en-US","id":"1100173248714518568","locale":"en-US","member":{"avatar":null,"communication_disabled_until":null,"deaf":false,"flags":0,"is_pending":false,"joined_at":"2021-01-12T21:18:10.481000+00:00","mute":false,"nick":null,"pending":false,"permissions":"140737488355327","premium_since":null,"roles":["943607715639484456"],"user":{"avatar":"fa82e15e24ee16c9fcbf8dd34d10b4cc","avatar_decoration":null,"discriminator":"9846","display_name":null,"global_name":null,"id":"282265607313817601","public_flags":0,"username":"BlueFrog"}},"token":"aW50ZXJhY3Rpb246MTEwMDE3MzI0ODcxNDUxODU2ODppVTFuSkNSbndrZ01Na3RCWk81MVhTWkdSbk8yTlBaM1U3Z3JlckR4YUZJMTZFTm9wc21nZnlaSnN4ZUZCTTd0Q0Jzc09ac3BHV1E1MGlBZGZnZzh0NDJmTElIcTB1M0FZQTJPS1BxcG1GTEtZUjNDWWFEamhEeTRPMWZnS0R4dQ","type":2,"version":1}`

func TestDecodePing(t *testing.T) {
	body := `{"id":"1100173248714518568","application_id":"1052322265397739523","token":"tok","type":1,"version":1}`

	i, err := Decode([]byte(body))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	ping, ok := i.(*Ping)
	if !ok {
		t.Fatalf("expected *Ping, got %T", i)
	}
	if ping.InteractionKind() != KindPing {
		t.Errorf("InteractionKind() = %d", ping.InteractionKind())
	}
	if ping.ID.Uint64() != 1100173248714518568 {
		t.Errorf("id = %d", ping.ID.Uint64())
	}
	if ping.Token != "tok" || ping.Version != 1 {
		t.Errorf("unexpected header: %+v", ping.Common)
	}
}

func TestDecodeLiveApplicationCommand(t *testing.T) {
	i, err := Decode([]byte(liveCommandBody))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	cmd, ok := i.(*ApplicationCommand)
	if !ok {
		t.Fatalf("expected *ApplicationCommand, got %T", i)
	}

	if cmd.Data.Name != "ping" || cmd.Data.Type != CommandKindChatInput {
		t.Errorf("unexpected data: %+v", cmd.Data)
	}
	if cmd.GuildID == nil || cmd.GuildID.Uint64() != 798662131062931547 {
		t.Errorf("guild_id = %v", cmd.GuildID)
	}
	if cmd.Locale == nil || *cmd.Locale != "en-US" {
		t.Errorf("locale = %v", cmd.Locale)
	}
	if cmd.AppPermissions == nil || !cmd.AppPermissions.Has(models.PermissionSendMessages) {
		t.Errorf("app_permissions = %v", cmd.AppPermissions)
	}

	sender := cmd.Header().Sender()
	if sender == nil || sender.Username != "BlueFrog" {
		t.Fatalf("sender = %+v", sender)
	}
	if sender.ID.Uint64() != 282265607313817601 {
		t.Errorf("sender id = %d", sender.ID.Uint64())
	}
}

func TestDecodeCommandOptionTree(t *testing.T) {
	body := `{
		"id": "1", "application_id": "2", "token": "tok", "version": 1, "type": 2,
		"data": {
			"id": "3", "name": "admin", "type": 1,
			"options": [
				{
					"type": 2, "name": "role",
					"options": [
						{
							"type": 1, "name": "grant",
							"options": [
								{"type": 6, "name": "who", "value": "282265607313817601"},
								{"type": 8, "name": "role", "value": "943607715639484456"},
								{"type": 5, "name": "notify", "value": true},
								{"type": 4, "name": "days", "value": 30},
								{"type": 10, "name": "weight", "value": 0.5},
								{"type": 3, "name": "reason", "value": "cleanup"}
							]
						}
					]
				}
			]
		}
	}`

	i, err := Decode([]byte(body))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	cmd := i.(*ApplicationCommand)

	opt, ok := cmd.Data.Option("role")
	if !ok {
		t.Fatal("group option missing")
	}
	group, ok := opt.(*SubcommandGroupOption)
	if !ok {
		t.Fatalf("expected *SubcommandGroupOption, got %T", opt)
	}
	if len(group.Options) != 1 || group.Options[0].Name != "grant" {
		t.Fatalf("unexpected group children: %+v", group.Options)
	}

	sub := group.Options[0]
	if len(sub.Options) != 6 {
		t.Fatalf("expected 6 leaves, got %d", len(sub.Options))
	}

	who, _ := sub.Option("who")
	id, ok := who.(*IDOptionData)
	if !ok || id.Kind != OptionKindUser {
		t.Fatalf("who = %#v", who)
	}
	if id.Value.Uint64() != 282265607313817601 {
		t.Errorf("who value = %d", id.Value.Uint64())
	}

	role, _ := sub.Option("role")
	if r, ok := role.(*IDOptionData); !ok || r.Kind != OptionKindRole {
		t.Errorf("role = %#v", role)
	}
	if notify, _ := sub.Option("notify"); notify.(*BooleanOptionData).Value != true {
		t.Error("notify != true")
	}
	if days, _ := sub.Option("days"); days.(*IntegerOptionData).Value != 30 {
		t.Error("days != 30")
	}
	if weight, _ := sub.Option("weight"); weight.(*NumberOptionData).Value != 0.5 {
		t.Error("weight != 0.5")
	}
	if reason, _ := sub.Option("reason"); reason.(*StringOptionData).Value != "cleanup" {
		t.Error(`reason != "cleanup"`)
	}
}

func TestDecodeGroupRejectsNonSubcommandChild(t *testing.T) {
	body := `{
		"id": "1", "application_id": "2", "token": "tok", "version": 1, "type": 2,
		"data": {
			"id": "3", "name": "admin", "type": 1,
			"options": [
				{"type": 2, "name": "role", "options": [{"type": 3, "name": "x", "value": "y"}]}
			]
		}
	}`

	_, err := Decode([]byte(body))
	if domain.KindOf(err) != domain.KindSchemaMismatch {
		t.Fatalf("expected schema_mismatch, got %v", err)
	}
}

func TestDecodeMessageComponent(t *testing.T) {
	body := `{
		"id": "1", "application_id": "2", "token": "tok", "version": 1, "type": 3,
		"data": {
			"custom_id": "color_pick",
			"component_type": 3,
			"values": [{"label": "Red", "value": "red"}]
		}
	}`

	i, err := Decode([]byte(body))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	comp, ok := i.(*MessageComponent)
	if !ok {
		t.Fatalf("expected *MessageComponent, got %T", i)
	}
	if comp.Data.CustomID != "color_pick" || comp.Data.ComponentType != models.ComponentKindStringSelect {
		t.Errorf("unexpected data: %+v", comp.Data)
	}
	if len(comp.Data.Values) != 1 || comp.Data.Values[0].Value != "red" {
		t.Errorf("unexpected values: %+v", comp.Data.Values)
	}
}

func TestDecodeAutocomplete(t *testing.T) {
	body := `{
		"id": "1", "application_id": "2", "token": "tok", "version": 1, "type": 4,
		"data": {
			"id": "3", "name": "search", "type": 1,
			"options": [{"type": 3, "name": "query", "value": "par", "focused": true}]
		}
	}`

	i, err := Decode([]byte(body))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	ac, ok := i.(*Autocomplete)
	if !ok {
		t.Fatalf("expected *Autocomplete, got %T", i)
	}

	opt, _ := ac.Data.Option("query")
	s, ok := opt.(*StringOptionData)
	if !ok || s.Focused == nil || !*s.Focused {
		t.Fatalf("focused option = %#v", opt)
	}
}

func TestDecodeModalSubmit(t *testing.T) {
	body := `{
		"id": "1", "application_id": "2", "token": "tok", "version": 1, "type": 5,
		"data": {
			"custom_id": "feedback",
			"components": [
				{"type": 1, "components": [
					{"type": 4, "custom_id": "note", "style": 2, "label": "Note", "value": "hello"}
				]}
			]
		}
	}`

	i, err := Decode([]byte(body))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	modal, ok := i.(*ModalSubmit)
	if !ok {
		t.Fatalf("expected *ModalSubmit, got %T", i)
	}
	if modal.Data.CustomID != "feedback" {
		t.Errorf("custom_id = %q", modal.Data.CustomID)
	}

	value, ok := modal.Data.TextValue("note")
	if !ok || value != "hello" {
		t.Errorf("TextValue = %q, %v", value, ok)
	}
	if _, ok := modal.Data.TextValue("absent"); ok {
		t.Error("TextValue found a missing field")
	}
}

func TestDecodeResolvedData(t *testing.T) {
	body := `{
		"id": "1", "application_id": "2", "token": "tok", "version": 1, "type": 2,
		"data": {
			"id": "3", "name": "inspect", "type": 2,
			"target_id": "282265607313817601",
			"resolved": {
				"users": {
					"282265607313817601": {"id": "282265607313817601", "username": "BlueFrog", "discriminator": "9846", "public_flags": 0}
				}
			}
		}
	}`

	i, err := Decode([]byte(body))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	cmd := i.(*ApplicationCommand)

	if cmd.Data.TargetID == nil {
		t.Fatal("target_id missing")
	}
	user, ok := cmd.Data.Resolved.Users[*cmd.Data.TargetID]
	if !ok {
		t.Fatalf("target not resolved: %+v", cmd.Data.Resolved)
	}
	if user.Username != "BlueFrog" {
		t.Errorf("resolved user = %+v", user)
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		name string
		body string
		want domain.ErrorKind
	}{
		{"no type", `{"id":"1"}`, domain.KindMissingDiscriminant},
		{"string type", `{"type":"1"}`, domain.KindMissingDiscriminant},
		{"negative type", `{"type":-2}`, domain.KindMissingDiscriminant},
		{"not json", `ping`, domain.KindMissingDiscriminant},
		{"unknown kind", `{"type":11}`, domain.KindUnknownVariant},
		{"bad command kind", `{"type":2,"id":"1","application_id":"2","token":"t","version":1,"data":{"id":"3","name":"x","type":12}}`, domain.KindSchemaMismatch},
		{"bad snowflake", `{"type":1,"id":"abc","application_id":"2","token":"t","version":1}`, domain.KindSchemaMismatch},
	}

	for _, tc := range cases {
		_, err := Decode([]byte(tc.body))
		if domain.KindOf(err) != tc.want {
			t.Errorf("%s: err = %v, want %s", tc.name, err, tc.want)
		}
	}
}
