package main

import (
	"encoding/json"
	"testing"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/stretchr/testify/assert"
)

func TestSnowflakeLookup_MarshalJSON(t *testing.T) {
	lookup := snowflakeLookup{
		discord.Snowflake(1337): struct{}{},
		discord.Snowflake(42):   struct{}{},
		discord.Snowflake(777):  struct{}{},
	}

	d, err := json.Marshal(lookup)
	assert.NoError(t, err)
	assert.EqualValues(t, `["42","777","1337"]`, string(d))
}

func TestSnowflakeLookup_UnmarshalJSON(t *testing.T) {
	lookup := make(snowflakeLookup)
	input := []byte(`["1337","42","777"]`)

	err := json.Unmarshal(input, &lookup)
	assert.NoError(t, err)

	expected := snowflakeLookup{
		discord.Snowflake(1337): struct{}{},
		discord.Snowflake(42):   struct{}{},
		discord.Snowflake(777):  struct{}{},
	}

	assert.Equal(t, expected, lookup)
}

func TestConfigFromBytes(t *testing.T) {
	input := []byte(`
{
	"token": "bot-token",
	"api": {
		"base_url": "https://desk.example.com",
		"token": "api-token"
	},
	"permissions": {
		"ask": {
			"42": true
		}
	},
	"presets": {
		"standup": "Summarize open tasks for today."
	},
	"blacklist": [
		"1337"
	]
}
`)

	config, err := configFromBytes(input)
	assert.NoError(t, err)

	expected := configuration{
		Token: "bot-token",
		API: apiConfiguration{
			BaseURL: "https://desk.example.com",
			Token:   "api-token",
		},
		Permissions: commandPermissions{
			Ask: map[discord.RoleID]bool{
				42: true,
			},
		},
		Presets: map[string]string{
			"standup": "Summarize open tasks for today.",
		},
		Blacklist: snowflakeLookup{
			1337: {},
		},
	}

	assert.Equal(t, expected, config)
}

func TestConfigFromBytesDefaults(t *testing.T) {
	config, err := configFromBytes([]byte(`{"token": "t"}`))
	assert.NoError(t, err)

	assert.NotNil(t, config.Presets)
	assert.NotNil(t, config.Blacklist)
	assert.NotNil(t, config.Permissions.Ask)
	assert.Empty(t, config.Blacklist)
}
