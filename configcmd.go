package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
)

func (b *botState) handleConfig(e *gateway.InteractionCreateEvent, d *discord.CommandInteractionData) {
	var embed discord.Embed

block:
	switch cmd := d.Options[0]; cmd.Name {
	case "ignore":
		user, err := discord.ParseSnowflake(cmd.Options[0].String())
		if err != nil {
			embed = failEmbed("Error", "That is not a valid user.")
			break block
		}

		if ok := b.canIgnore(e.GuildID, user); !ok {
			embed = failEmbed("Error", fmt.Sprintf("You cannot ignore <@!%s>.", user))
			break block
		}

		if _, ok := b.cfg.Blacklist[user]; ok {
			embed = failEmbed("Error", fmt.Sprintf("<@!%s> is already being ignored.", user))
			break block
		}

		b.cfg.Blacklist[user] = struct{}{}
		embed = discord.Embed{
			Title:       "Success",
			Description: fmt.Sprintf("<@!%s> is now going to be ignored from all commands on deskbot.", user),
			Color:       accentColor,
		}

	case "unignore":
		user, err := discord.ParseSnowflake(cmd.Options[0].String())
		if err != nil {
			embed = failEmbed("Error", "That is not a valid user.")
			break block
		}

		if _, ok := b.cfg.Blacklist[user]; !ok {
			embed = failEmbed("Error", fmt.Sprintf("<@!%s> is not being ignored.", user))
			break block
		}

		delete(b.cfg.Blacklist, user)
		embed = discord.Embed{
			Title:       "Success",
			Description: fmt.Sprintf("<@!%s> is now unignored.", user),
			Color:       accentColor,
		}

	case "preset-add":
		name := cmd.Options[0].String()
		prompt := cmd.Options[1].String()

		if strings.ContainsAny(name, " !@") {
			embed = failEmbed("Error", "Your preset name contains illegal characters.")
			break block
		}

		b.cfg.Presets[name] = prompt
		embed = discord.Embed{
			Title:       "Success",
			Description: fmt.Sprintf("Asking **!%s** will now send `%s`.", name, prompt),
			Color:       accentColor,
		}

	case "preset-remove":
		name := cmd.Options[0].String()

		if _, ok := b.cfg.Presets[name]; !ok {
			embed = failEmbed("Error", fmt.Sprintf("There is no preset named `%s`.", name))
			break block
		}

		delete(b.cfg.Presets, name)
		embed = discord.Embed{
			Title:       "Success",
			Description: fmt.Sprintf("The `%s` preset has now been removed.", name),
			Color:       accentColor,
		}

	case "prune":
		n := b.assistant.Prune(time.Hour * 24)
		embed = discord.Embed{
			Title:       "Success",
			Description: fmt.Sprintf("Removed %d cached replies.", n),
			Color:       accentColor,
		}
	}

	if !strings.HasPrefix(embed.Title, "Error") {
		if err := b.cfg.save(); err != nil {
			embed = failEmbed("Error", fmt.Sprintf("Could not save config: `%v`", err))
		}
	}

	b.state.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
		Type: api.MessageInteractionWithSource,
		Data: &api.InteractionResponseData{
			Flags:  api.EphemeralResponse,
			Embeds: &[]discord.Embed{embed},
		},
	})
}

func (b *botState) canIgnore(guild discord.GuildID, user discord.Snowflake) bool {
	m, err := b.state.Member(guild, discord.UserID(user))
	if err != nil {
		return false
	}
	for _, role := range m.RoleIDs {
		if b.cfg.Permissions.Ask[role] {
			return false
		}
	}
	return true
}
