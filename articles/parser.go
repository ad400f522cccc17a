package articles

import (
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/hhhapz/deskbot/markup"
)

const indexPath = "/help/articles"

// Articles fetches and parses the help-center index.
func Articles(client *http.Client, base string) ([]Article, error) {
	res, err := client.Get(base + indexPath)
	if err != nil {
		return nil, fmt.Errorf("could not get articles: %w", err)
	}
	defer res.Body.Close()

	return parseIndex(res.Body, base)
}

func parseIndex(r io.Reader, base string) ([]Article, error) {
	document, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("could not parse body: %w", err)
	}

	var articles []Article
	var article Article

	document.Find(".article-title, .article-summary").Each(func(_ int, s *goquery.Selection) {
		class, _ := s.Attr("class")
		switch class {
		case "article-title":
			a := s.Find("a")
			uri := a.AttrOr("href", "")

			article = Article{
				Title:    a.Text(),
				URL:      base + uri,
				Category: s.Find(".category").Text(),
				Updated:  s.Find(".updated").Text(),
				Slug:     path.Base(uri),
			}
			if article.Category == "" {
				article.Category = "Uncategorized"
			}

			article.titleLower = strings.ToLower(article.Title)

		case "article-summary":
			article.Summary = strings.TrimSpace(s.Text())
			article.summaryLower = strings.ToLower(article.Summary)
			articles = append(articles, article)
		}
	})

	return articles, nil
}

// Body fetches an article page and converts its content into markup blocks,
// ready for the same rendering path as assistant replies.
func Body(client *http.Client, a Article) ([]markup.Block, error) {
	res, err := client.Get(a.URL)
	if err != nil {
		return nil, fmt.Errorf("could not get article: %w", err)
	}
	defer res.Body.Close()

	return parseBody(res.Body)
}

func parseBody(r io.Reader) ([]markup.Block, error) {
	document, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("could not parse body: %w", err)
	}

	var blocks []markup.Block

	content := document.Find(".article-content").Children()
	content.Each(func(i int, s *goquery.Selection) {
		node := content.Get(i)

		switch node.Data {
		case "h2", "h3":
			blocks = append(blocks, markup.Header(s.Text()))

		case "p":
			blocks = append(blocks, markup.Paragraph(parseText(node)), markup.Spacer{})

		case "ul":
			blocks = append(blocks, markup.List{Items: parseList(node)})

		case "ol":
			blocks = append(blocks, markup.List{Ordered: true, Items: parseList(node)})

		case "table":
			blocks = append(blocks, parseTable(s))
		}
	})

	return blocks, nil
}

func parseList(node *html.Node) (items []string) {
	for li := node.FirstChild; li != nil; li = li.NextSibling {
		if li.Data != "li" {
			continue
		}

		var b strings.Builder
		for _, n := range parseText(li) {
			b.WriteString(n.Markdown())
		}
		items = append(items, b.String())
	}
	return
}

func parseText(node *html.Node) (p []markup.Note) {
	for n := node.FirstChild; n != nil; n = n.NextSibling {
		switch n.Type {
		case html.TextNode:
			str := strings.ReplaceAll(n.Data, "\n", " ")
			p = append(p, markup.Text(str))

		case html.ElementNode:
			if n.FirstChild == nil {
				continue
			}
			switch n.Data {
			case "b", "strong":
				p = append(p, markup.Bold(n.FirstChild.Data))
			case "i", "em":
				p = append(p, markup.Italic(n.FirstChild.Data))
			case "code":
				p = append(p, markup.Code(n.FirstChild.Data))
			case "s", "del":
				p = append(p, markup.Strike(n.FirstChild.Data))
			}
		}
	}
	return
}

func parseTable(s *goquery.Selection) markup.Table {
	var t markup.Table

	s.Find("tr").Each(func(_ int, row *goquery.Selection) {
		var cells []string
		header := false

		row.Children().Each(func(_ int, cell *goquery.Selection) {
			if goquery.NodeName(cell) == "th" {
				header = true
			}
			cells = append(cells, strings.TrimSpace(cell.Text()))
		})

		if header && t.Headers == nil {
			t.Headers = cells
			return
		}
		t.Rows = append(t.Rows, cells)
	})

	return t
}
