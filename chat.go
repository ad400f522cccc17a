package main

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/k0kubun/pp"

	"github.com/hhhapz/deskbot/assistant"
	"github.com/hhhapz/deskbot/markup"
)

var (
	askErr         = "The assistant could not answer right now.\n\nTry `/ask prompt:help` for usage."
	presetNotFound = "There is no preset named `%s`.\n\nUse `/ask prompt:presets` to list them."
	notOwner       = "Only the message sender can do this."
)

type interactionData struct {
	id      string
	created time.Time
	token   string
	userID  discord.UserID
	prompt  string
}

var (
	interactionMap = map[string]*interactionData{}
	mu             sync.Mutex
)

func (b *botState) gcInteractionData() {
	mapTicker := time.NewTicker(time.Minute * 5)
	cacheTicker := time.NewTicker(time.Hour * 24)
	for {
		select {

		// gc interaction tokens
		case <-mapTicker.C:
			now := time.Now()
			for _, data := range interactionMap {
				if !now.After(data.created.Add(time.Minute * 5)) {
					continue
				}

				mu.Lock()
				delete(interactionMap, data.id)
				mu.Unlock()

				if data.token == "" {
					continue
				}

				b.state.EditInteractionResponse(b.appID, data.token, api.EditInteractionResponseData{
					Components: &[]discord.Component{},
				})
			}

		case <-cacheTicker.C:
			b.assistant.WithCache(func(cache map[string]*assistant.CachedResponse) {
				for k := range cache {
					delete(cache, k)
				}
			})
		}
	}
}

func (b *botState) handleAsk(e *gateway.InteractionCreateEvent, d *discord.CommandInteractionData) {
	data := api.InteractionResponse{Type: api.DeferredMessageInteractionWithSource}
	if err := b.state.RespondInteraction(e.ID, e.Token, data); err != nil {
		log.Println(fmt.Errorf("could not send interaction callback, %v", err))
		return
	}

	// only arg and required, always present
	prompt := d.Options[0].String()

	log.Printf("%s used ask(%q)", e.User.Tag(), prompt)

	var embed discord.Embed
	var internal, more bool
	switch prompt {
	case "?", "help", "usage":
		embed, internal = helpEmbed(), true
	case "preset", "presets":
		embed, internal = presetList(b.cfg.Presets), true
	default:
		embed, more = b.ask(*e.User, e.ID.String(), prompt, false)
	}

	if internal || strings.HasPrefix(embed.Title, "Error") {
		err := b.state.DeleteInteractionResponse(e.AppID, e.Token)
		if err != nil {
			log.Printf("failed to delete message: %v", err)
			return
		}

		// Discord's API means this will always error out, but its still valid.
		_, _ = b.state.CreateInteractionFollowup(e.AppID, e.Token, api.InteractionResponseData{
			Flags:  api.EphemeralResponse,
			Embeds: &[]discord.Embed{embed},
		})
		return
	}

	mu.Lock()
	interactionMap[e.ID.String()] = &interactionData{
		id:      e.ID.String(),
		created: time.Now(),
		token:   e.Token,
		userID:  e.User.ID,
		prompt:  prompt,
	}
	mu.Unlock()

	// If more is true, part of the reply was omitted from the embed. If more
	// is false, the expand option becomes redundant.
	var component discord.Component = selectComponent(e.ID.String(), false)
	if !more {
		component = buttonComponent(e.ID.String())
	}

	if _, err := b.state.EditInteractionResponse(e.AppID, e.Token, api.EditInteractionResponseData{
		Embeds: &[]discord.Embed{embed},
		Components: &[]discord.Component{
			&discord.ActionRowComponent{
				Components: []discord.Component{component},
			},
		},
	}); err != nil {
		log.Printf("could not send interaction callback, %v", err)
		return
	}
}

func (b *botState) handleAskComponent(e *gateway.InteractionCreateEvent, data *interactionData) {
	var embed discord.Embed
	var components *[]discord.Component

	// if e.Member is nil, all operations should be allowed
	hasRole := e.Member == nil
	if !hasRole {
		for _, role := range e.Member.RoleIDs {
			if b.cfg.Permissions.Ask[role] {
				hasRole = true
				break
			}
		}
	}

	hasPerm := func() bool {
		if hasRole {
			return true
		}

		perms, err := b.state.Permissions(e.ChannelID, e.User.ID)
		if err != nil {
			return false
		}
		if !perms.Has(discord.PermissionAdministrator) {
			return false
		}
		return true
	}

	cid := e.Data.(*discord.ComponentInteractionData)

	action := "hide"
	if len(cid.Values) != 0 {
		action = cid.Values[0]
	}

	log.Printf("%s used ask component(%q)", e.User.Tag(), action)

	switch action {
	case "minimize":
		embed, _ = b.ask(*e.User, data.id, data.prompt, false)
		components = &[]discord.Component{
			&discord.ActionRowComponent{
				Components: []discord.Component{selectComponent(data.id, false)},
			},
		}

	// Admin or privileged only.
	// (Only check admin here to reduce total API calls).
	// If not privileged, send ephemeral instead.
	case "expand.all":
		embed, _ = b.ask(*e.User, data.id, data.prompt, true)
		components = &[]discord.Component{
			&discord.ActionRowComponent{
				Components: []discord.Component{selectComponent(data.id, true)},
			},
		}

	case "expand":
		embed, _ = b.ask(*e.User, data.id, data.prompt, true)
		components = &[]discord.Component{
			&discord.ActionRowComponent{
				Components: []discord.Component{selectComponent(data.id, true)},
			},
		}

		_ = b.state.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
			Type: api.MessageInteractionWithSource,
			Data: &api.InteractionResponseData{
				Flags:  api.EphemeralResponse,
				Embeds: &[]discord.Embed{embed},
			},
		})
		return

	case "hide":
		components = &[]discord.Component{}
		embed, _ = b.ask(*e.User, data.id, data.prompt, false)
		embed.Description = ""

		if hasPerm() {
			mu.Lock()
			delete(interactionMap, data.id)
			mu.Unlock()
		}
	}

	if e.GuildID != discord.NullGuildID {
		// Check admin last.
		if e.User.ID != data.userID && !hasPerm() {
			embed = failEmbed("Error", notOwner)
		}
	}

	var resp api.InteractionResponse
	if strings.HasPrefix(embed.Title, "Error") {
		resp = api.InteractionResponse{
			Type: api.MessageInteractionWithSource,
			Data: &api.InteractionResponseData{
				Flags:  api.EphemeralResponse,
				Embeds: &[]discord.Embed{embed},
			},
		}
	} else {
		resp = api.InteractionResponse{
			Type: api.UpdateMessage,
			Data: &api.InteractionResponseData{
				Embeds:     &[]discord.Embed{embed},
				Components: components,
			},
		}
	}
	b.state.RespondInteraction(e.ID, e.Token, resp)
}

// ask forwards the prompt to the assistant and renders the reply into an
// embed. The session ties component re-renders of one message to the cached
// reply, so expand and minimize never trigger a second API call.
func (b *botState) ask(user discord.User, session, prompt string, full bool) (discord.Embed, bool) {
	preset, rest := parsePrompt(prompt)
	if preset != "" {
		text, ok := b.cfg.Presets[preset]
		if !ok {
			return failEmbed("Error", fmt.Sprintf(presetNotFound, preset)), false
		}
		prompt = text
		if rest != "" {
			prompt = text + "\n\n" + rest
		}
	}

	resp, err := b.assistant.Ask(context.Background(), assistant.Request{
		SessionID: session,
		Prompt:    prompt,
	})
	if err != nil {
		log.Printf("Assistant request by %s(%q) failed: %v", user.Tag(), prompt, err)
		return failEmbed("Error", askErr), false
	}
	if debug {
		pp.Println(resp)
	}

	limit := docLimit
	if full {
		limit = fullLimit
	}

	body, more := render(markup.Segment(resp.Reply), limit)
	if more && !full {
		body += "\n\n*More of the reply omitted*"
	}

	return askEmbed(resp, body), more
}

// parsePrompt splits a "!name rest of the prompt" form into its preset name
// and remainder. Prompts without the prefix pass through unchanged.
func parsePrompt(prompt string) (preset, rest string) {
	if !strings.HasPrefix(prompt, "!") {
		return "", prompt
	}

	split := strings.SplitN(prompt[1:], " ", 2)
	if split[0] == "" {
		return "", prompt
	}
	if len(split) == 1 {
		return split[0], ""
	}
	return split[0], strings.TrimSpace(split[1])
}

func selectComponent(id string, full bool) *discord.SelectComponent {
	expand := discord.SelectComponentOption{
		Label:       "Expand",
		Value:       "expand",
		Description: "Show the full reply.",
		Emoji:       &discord.ButtonEmoji{Name: "⬇️"},
	}
	if full {
		expand = discord.SelectComponentOption{
			Label:       "Minimize",
			Value:       "minimize",
			Description: "Show less of the reply.",
			Emoji:       &discord.ButtonEmoji{Name: "⬆️"},
		}
	}

	sel := &discord.SelectComponent{
		CustomID:    id,
		Placeholder: "Actions",
		Options: []discord.SelectComponentOption{
			expand,
			{
				Label:       "Hide",
				Value:       "hide",
				Description: "Hide the message.",
				Emoji:       &discord.ButtonEmoji{Name: "❌"},
			},
		},
	}
	if !full {
		sel.Options = append(sel.Options, discord.SelectComponentOption{
			Label:       "Expand (For everyone)",
			Value:       "expand.all",
			Description: "Show the full reply. (Requires permissions)",
			Emoji:       &discord.ButtonEmoji{Name: "🌏"},
		})
	}

	return sel
}

func buttonComponent(id string) *discord.ButtonComponent {
	return &discord.ButtonComponent{
		CustomID: id,
		Label:    "Hide",
		Emoji:    &discord.ButtonEmoji{Name: "🇽"},
		Style:    discord.SecondaryButton,
	}
}
