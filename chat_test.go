package main

import "testing"

func TestParsePrompt(t *testing.T) {
	cases := []struct {
		name   string
		prompt string
		preset string
		rest   string
	}{
		{
			name:   "plain prompt",
			prompt: "how many invoices are overdue",
			preset: "",
			rest:   "how many invoices are overdue",
		},
		{
			name:   "preset only",
			prompt: "!standup",
			preset: "standup",
			rest:   "",
		},
		{
			name:   "preset with remainder",
			prompt: "!standup include the billing board",
			preset: "standup",
			rest:   "include the billing board",
		},
		{
			name:   "bare bang",
			prompt: "!",
			preset: "",
			rest:   "!",
		},
		{
			name:   "bang mid-prompt is not a preset",
			prompt: "why is task ! failing",
			preset: "",
			rest:   "why is task ! failing",
		},
		{
			name:   "remainder whitespace trimmed",
			prompt: "!standup   with extras",
			preset: "standup",
			rest:   "with extras",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			preset, rest := parsePrompt(c.prompt)
			if preset != c.preset {
				t.Errorf("INVALID PRESET:\nGOT:%s\nEXPECTED:%s", preset, c.preset)
			}
			if rest != c.rest {
				t.Errorf("INVALID REST:\nGOT:%s\nEXPECTED:%s", rest, c.rest)
			}
		})
	}
}
