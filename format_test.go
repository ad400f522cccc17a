package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hhhapz/deskbot/markup"
)

func TestRender(t *testing.T) {
	blocks := markup.Segment("**Summary**\nAll **good**.\n\n- one\n- two")

	body, more := render(blocks, docLimit)
	assert.False(t, more)

	want := "> __**Summary**__\n" +
		"All **good**.\n" +
		"\n" +
		"• one\n• two"
	assert.Equal(t, want, body)
}

func TestRenderTruncates(t *testing.T) {
	reply := strings.Repeat("a long line of reply text\n", 50)

	body, more := render(markup.Segment(reply), 100)
	assert.True(t, more)
	assert.Less(t, len(body), 200)
}

func TestRenderEmpty(t *testing.T) {
	body, more := render(nil, docLimit)
	assert.False(t, more)
	assert.Equal(t, "*The assistant sent an empty reply*", body)
}
