package articles

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hhhapz/deskbot/markup"
)

const indexHTML = `
<html><body>
<div class="article-title">
	<a href="/help/articles/getting-started">Getting Started</a>
	<span class="category">Basics</span>
	<span class="updated">2024-03-02</span>
</div>
<div class="article-summary">
	Set up your workspace and invite your team.
</div>
<div class="article-title">
	<a href="/help/articles/invoicing">Invoicing</a>
	<span class="category">Billing</span>
	<span class="updated">2024-05-11</span>
</div>
<div class="article-summary">
	Create, send, and reconcile invoices.
</div>
</body></html>`

func TestParseIndex(t *testing.T) {
	articles, err := parseIndex(strings.NewReader(indexHTML), "https://desk.example.com")
	assert.NoError(t, err)
	assert.Len(t, articles, 2)

	first := articles[0]
	assert.Equal(t, "Getting Started", first.Title)
	assert.Equal(t, "https://desk.example.com/help/articles/getting-started", first.URL)
	assert.Equal(t, "Basics", first.Category)
	assert.Equal(t, "getting-started", first.Slug)
	assert.Equal(t, "Set up your workspace and invite your team.", first.Summary)
}

func TestMatch(t *testing.T) {
	articles, err := parseIndex(strings.NewReader(indexHTML), "")
	assert.NoError(t, err)

	assert.Equal(t, MatchExact, articles[1].Match("invoicing"))
	assert.Equal(t, MatchTitle, articles[0].Match("getting started"))
	assert.Equal(t, MatchDesc, articles[0].Match("workspace"))
	assert.Equal(t, NoMatch, articles[0].Match("payroll"))
}

func TestMatchAll(t *testing.T) {
	articles, err := parseIndex(strings.NewReader(indexHTML), "")
	assert.NoError(t, err)

	title, desc, total := MatchAll(articles, "invoices")
	assert.Empty(t, title)
	assert.Len(t, desc, 1)
	assert.Equal(t, 1, total)

	exact, _, total := MatchAll(articles, "getting-started")
	assert.Len(t, exact, 1)
	assert.Equal(t, 1, total)
	assert.Equal(t, "Getting Started", exact[0].Title)
}

const bodyHTML = `
<html><body><div class="article-content">
<h2>Sending an invoice</h2>
<p>Open <b>Billing</b> and press <code>Send</code>.</p>
<ul>
	<li>Pick a <i>client</i></li>
	<li>Set the amount</li>
</ul>
<table>
	<tr><th>Plan</th><th>Limit</th></tr>
	<tr><td>Free</td><td>5</td></tr>
	<tr><td>Pro</td><td>500</td></tr>
</table>
</div></body></html>`

func TestParseBody(t *testing.T) {
	blocks, err := parseBody(strings.NewReader(bodyHTML))
	assert.NoError(t, err)

	want := []markup.Block{
		markup.Header("Sending an invoice"),
		markup.Paragraph{
			markup.Text("Open "),
			markup.Bold("Billing"),
			markup.Text(" and press "),
			markup.Code("Send"),
			markup.Text("."),
		},
		markup.Spacer{},
		markup.List{Items: []string{"Pick a *client*", "Set the amount"}},
		markup.Table{
			Headers: []string{"Plan", "Limit"},
			Rows:    [][]string{{"Free", "5"}, {"Pro", "500"}},
		},
	}
	assert.Equal(t, want, blocks)
}
