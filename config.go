package main

import (
	"encoding/json"
	"log"
	"os"
	"sort"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/pkg/errors"
)

const configPath = "config.json"

type configuration struct {
	Token       string             `json:"token"`
	API         apiConfiguration   `json:"api"`
	Permissions commandPermissions `json:"permissions"`
	Presets     map[string]string  `json:"presets"`
	Blacklist   snowflakeLookup    `json:"blacklist"`
}

type apiConfiguration struct {
	BaseURL string `json:"base_url"`
	Token   string `json:"token"`
}

type commandPermissions struct {
	// Roles allowed to use privileged ask actions (expand for everyone,
	// hiding other users' replies).
	Ask map[discord.RoleID]bool `json:"ask"`
}

// snowflakeLookup is a set of snowflakes stored as a sorted string array in
// JSON, since Discord IDs do not fit in JSON numbers.
type snowflakeLookup map[discord.Snowflake]struct{}

func (l snowflakeLookup) MarshalJSON() ([]byte, error) {
	ids := make([]discord.Snowflake, 0, len(l))
	for id := range l {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return json.Marshal(out)
}

func (l snowflakeLookup) UnmarshalJSON(data []byte) error {
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}

	for _, raw := range ids {
		id, err := discord.ParseSnowflake(raw)
		if err != nil {
			return errors.Wrap(err, "invalid snowflake "+raw)
		}
		l[id] = struct{}{}
	}
	return nil
}

func config() configuration {
	fileBytes, err := os.ReadFile(configPath)
	if err != nil {
		log.Fatal(errors.Wrap(err, "could not open config"))
	}
	config, err := configFromBytes(fileBytes)
	if err != nil {
		log.Fatal(errors.Wrap(err, "could not parse config"))
	}
	return config
}

func configFromBytes(fileBytes []byte) (configuration, error) {
	config := configuration{
		Blacklist: snowflakeLookup{},
	}
	if err := json.Unmarshal(fileBytes, &config); err != nil {
		return configuration{}, err
	}

	if config.Presets == nil {
		config.Presets = map[string]string{}
	}
	if config.Permissions.Ask == nil {
		config.Permissions.Ask = map[discord.RoleID]bool{}
	}
	return config, nil
}

func (c configuration) save() error {
	fileBytes, err := json.MarshalIndent(c, "", "\t")
	if err != nil {
		return errors.Wrap(err, "could not encode config")
	}
	if err := os.WriteFile(configPath, fileBytes, 0o644); err != nil {
		return errors.Wrap(err, "could not write config")
	}
	return nil
}
