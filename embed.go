package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/dustin/go-humanize"

	"github.com/hhhapz/deskbot/assistant"
)

const (
	docLimit  = 2800
	fullLimit = 4000

	accentColor = 0x5865F2
)

func askEmbed(resp assistant.Response, body string) discord.Embed {
	tokens := int64(resp.Usage.PromptTokens + resp.Usage.ReplyTokens)
	return discord.Embed{
		Title:       "Desk Assistant",
		Description: body,
		Color:       accentColor,
		Footer: &discord.EmbedFooter{
			Text: fmt.Sprintf("%s • %s tokens", resp.Model, humanize.Comma(tokens)),
		},
	}
}

func helpEmbed() discord.Embed {
	return discord.Embed{
		Title: "Using /ask",
		Description: "Ask the assistant about your workspace in plain language:\n" +
			"`/ask prompt:how many invoices are overdue`\n\n" +
			"Start the prompt with `!name` to use a saved preset:\n" +
			"`/ask prompt:!standup`\n" +
			"`/ask prompt:!standup include the billing board`\n\n" +
			"Use `/ask prompt:presets` to list saved presets.",
		Color: accentColor,
	}
}

func presetList(presets map[string]string) discord.Embed {
	switch len(presets) {
	case 0:
		return discord.Embed{
			Title:       "Presets",
			Description: "*No presets saved*",
			Color:       accentColor,
		}
	}

	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "`!%s`: %s\n", name, presets[name])
	}

	return discord.Embed{
		Title:       "Presets",
		Description: b.String(),
		Color:       accentColor,
	}
}

func failEmbed(title, description string) discord.Embed {
	return discord.Embed{
		Title:       title,
		Description: description,
		Color:       0xEE0000,
	}
}
