package main

import (
	"context"
	"flag"
	"log"
	"net/http"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/state"
	"github.com/pkg/errors"

	"github.com/hhhapz/deskbot/articles"
	"github.com/hhhapz/deskbot/assistant"
)

type botState struct {
	cfg       configuration
	appID     discord.AppID
	assistant *assistant.CachedClient
	state     *state.State

	articles []articles.Article
}

func (b *botState) OnCommand(e *gateway.InteractionCreateEvent) {
	if e.GuildID != 0 {
		e.User = &e.Member.User
	}

	// ignore blacklisted users
	if _, ok := b.cfg.Blacklist[discord.Snowflake(e.User.ID)]; ok {
		log.Printf("Ignoring interaction from %s", e.User.Tag())
		return
	}

	switch data := e.Data.(type) {
	case *discord.CommandInteractionData:
		switch data.Name {
		case "ask":
			b.handleAsk(e, data)
		case "help":
			b.handleHelp(e, data)
		case "info":
			b.handleInfo(e, data)
		case "config":
			b.handleConfig(e, data)
		}

	case *discord.ComponentInteractionData:
		if d, ok := interactionMap[data.CustomID]; ok {
			b.handleAskComponent(e, d)
			return
		}
	}
}

var (
	update bool
	debug  bool
)

func main() {
	updateVar := flag.Bool("update", false, "update all commands, regardless of if they are present or not")
	debugVar := flag.Bool("debug", false, "pretty-print assistant api responses")
	flag.Parse()
	update = *updateVar
	debug = *debugVar

	cfg := config()
	if cfg.Token == "" {
		log.Fatal("no token provided")
	}

	s, err := state.New("Bot " + cfg.Token)
	if err != nil {
		log.Fatalln(errors.Wrap(err, "could not open session"))
	}

	client := assistant.New(http.DefaultClient, cfg.API.BaseURL, cfg.API.Token)
	b := botState{
		cfg:       cfg,
		assistant: assistant.WithCache(client),
		state:     s,
	}

	s.AddHandler(b.OnCommand)
	s.AddIntents(gateway.IntentGuilds)

	if err := s.Open(context.Background()); err != nil {
		log.Fatalln("failed to open:", err)
	}
	defer s.Close()

	log.Println("Gateway connection established.")
	me, err := s.Me()
	if err != nil {
		log.Println("Could not get me:", err)
		return
	}
	b.appID = discord.AppID(me.ID)

	log.Println("Logged in as ", me.Tag())

	if err := loadCommands(s, me.ID); err != nil {
		log.Println("Could not load commands:", err)
		return
	}

	go b.gcInteractionData()
	go b.updateArticles()
	select {}
}

func loadCommands(s *state.State, me discord.UserID) error {
	appID := discord.AppID(me)
	registered, err := s.Commands(appID)
	if err != nil {
		return err
	}

	registeredMap := map[string]bool{}
	if !update {
		for _, c := range registered {
			registeredMap[c.Name] = true
			log.Println("Registered command:", c.Name)
		}
	}

	for _, c := range commands {
		if registeredMap[c.Name] {
			continue
		}
		var err error
		if _, err = s.CreateCommand(appID, c); err != nil {
			return errors.Wrap(err, "could not register "+c.Name)
		}
		log.Println("Created command:", c.Name)
	}

	return nil
}

var commands = []api.CreateCommandData{
	{
		Name:        "ask",
		Description: "Ask the Desk Assistant",
		Options: []discord.CommandOption{
			{
				Name:        "prompt",
				Description: "Your question (start with !name to use a saved preset)",
				Type:        discord.StringOption,
				Required:    true,
			},
		},
	},
	{
		Name:        "help",
		Description: "Search Help Center Articles",
		Options: []discord.CommandOption{
			{
				Name:        "query",
				Description: "Search query (i.e. invoicing)",
				Type:        discord.StringOption,
				Required:    true,
			},
		},
	},
	{
		Name:        "info",
		Description: "Generic Bot Info",
	},
	{
		Name:                "config",
		Description:         "Configure Deskbot",
		NoDefaultPermission: true,
		Options: []discord.CommandOption{
			{
				Name:        "ignore",
				Description: "Ignore commands and actions from a user",
				Type:        discord.SubcommandOption,
				Options: []discord.CommandOption{
					{
						Name:        "user",
						Description: "User to ignore",
						Type:        discord.UserOption,
						Required:    true,
					},
				},
			},
			{
				Name:        "unignore",
				Description: "Stop ignoring commands and actions from a user",
				Type:        discord.SubcommandOption,
				Options: []discord.CommandOption{
					{
						Name:        "user",
						Description: "User to unignore",
						Type:        discord.UserOption,
						Required:    true,
					},
				},
			},
			{
				Name:        "preset-add",
				Description: "Save a prompt preset",
				Type:        discord.SubcommandOption,
				Options: []discord.CommandOption{
					{
						Name:        "name",
						Description: "Preset name",
						Type:        discord.StringOption,
						Required:    true,
					},
					{
						Name:        "prompt",
						Description: "Prompt text",
						Type:        discord.StringOption,
						Required:    true,
					},
				},
			},
			{
				Name:        "preset-remove",
				Description: "Remove a prompt preset",
				Type:        discord.SubcommandOption,
				Options: []discord.CommandOption{
					{
						Name:        "name",
						Description: "Preset name",
						Type:        discord.StringOption,
						Required:    true,
					},
				},
			},
			{
				Name:        "prune",
				Description: "Prune cached replies not used in over 24 hours",
				Type:        discord.SubcommandOption,
			},
		},
	},
}
