package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"

	"github.com/hhhapz/deskbot/articles"
)

func (b *botState) updateArticles() {
	arts, err := articles.Articles(http.DefaultClient, b.cfg.API.BaseURL)
	if err != nil {
		log.Printf("Error querying articles: %v", err)
	}
	b.articles = arts

	articleTicker := time.NewTicker(time.Hour * 72)
	for range articleTicker.C {
		arts, err := articles.Articles(http.DefaultClient, b.cfg.API.BaseURL)
		if err != nil {
			log.Printf("Error querying articles: %v", err)
			continue
		}

		b.articles = arts
	}
}

func (b *botState) handleHelp(e *gateway.InteractionCreateEvent, d *discord.CommandInteractionData) {
	// only arg and required, always present
	query := d.Options[0].String()

	log.Printf("%s used help(%q)", e.User.Tag(), query)

	if len(query) < 3 || len(query) > 40 {
		embed := failEmbed("Error", "Your query must be between 3 and 40 characters.")
		b.state.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
			Type: api.MessageInteractionWithSource,
			Data: &api.InteractionResponseData{
				Flags:  api.EphemeralResponse,
				Embeds: &[]discord.Embed{embed},
			},
		})
		return
	}

	title, desc, total := articles.MatchAll(b.articles, query)

	if total == 0 {
		embed := failEmbed("Error", fmt.Sprintf("No articles found for %q", query))
		b.state.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
			Type: api.MessageInteractionWithSource,
			Data: &api.InteractionResponseData{
				Flags:  api.EphemeralResponse,
				Embeds: &[]discord.Embed{embed},
			},
		})
		return
	}

	if total == 1 {
		match := title
		if len(match) == 0 {
			match = desc
		}

		b.state.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
			Type: api.MessageInteractionWithSource,
			Data: &api.InteractionResponseData{
				Embeds: &[]discord.Embed{b.articleEmbed(match[0])},
			},
		})
		return
	}

	var fields []discord.EmbedField
	for _, match := range append(title, desc...) {
		if len(fields) == 5 {
			break
		}
		fields = append(fields, discord.EmbedField{
			Name:  fmt.Sprintf("%s (%s)", match.Title, match.Category),
			Value: fmt.Sprintf("%s\n%s", match.Summary, match.URL),
		})
	}

	b.state.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
		Type: api.MessageInteractionWithSource,
		Data: &api.InteractionResponseData{
			Embeds: &[]discord.Embed{
				{
					Title:       fmt.Sprintf("Help: %d Results", total),
					Description: fmt.Sprintf("Search Term: %q", query),
					Fields:      fields,
					Color:       accentColor,
				},
			},
		},
	})
}

// articleEmbed renders the full article body through the same block pipeline
// as assistant replies, falling back to the index summary if the page cannot
// be fetched.
func (b *botState) articleEmbed(a articles.Article) discord.Embed {
	embed := a.Display()

	blocks, err := articles.Body(http.DefaultClient, a)
	if err != nil {
		log.Printf("Error fetching article %q: %v", a.Slug, err)
		return embed
	}

	body, more := render(blocks, docLimit)
	if more {
		body += fmt.Sprintf("\n\n*Read the full article at %s*", a.URL)
	}
	embed.Description = body
	return embed
}
