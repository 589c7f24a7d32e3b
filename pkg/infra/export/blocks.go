package export

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/m-mizutani/goerr/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

type blockKind int

const (
	blockHeading blockKind = iota + 1
	blockParagraph
	blockCode
	blockListItem
	blockRule
)

// block is a flattened piece of the rendered document. Level is the heading
// level for headings and the nesting depth for list items.
type block struct {
	kind  blockKind
	level int
	text  string
}

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// parseBlocks renders markdown to HTML and walks the top level elements.
func parseBlocks(src string) ([]block, error) {
	var html bytes.Buffer
	if err := markdown.Convert([]byte(src), &html); err != nil {
		return nil, goerr.Wrap(err, "failed to convert markdown")
	}

	doc, err := goquery.NewDocumentFromReader(&html)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse rendered markdown")
	}

	var blocks []block
	doc.Find("body").Children().Each(func(_ int, s *goquery.Selection) {
		blocks = appendBlocks(blocks, s, 0)
	})

	return blocks, nil
}

func appendBlocks(blocks []block, s *goquery.Selection, depth int) []block {
	switch name := goquery.NodeName(s); name {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return append(blocks, block{kind: blockHeading, level: int(name[1] - '0'), text: collapse(s.Text())})

	case "pre":
		return append(blocks, block{kind: blockCode, text: strings.TrimRight(s.Text(), "\n")})

	case "ul", "ol":
		s.Children().Each(func(_ int, li *goquery.Selection) {
			nested := li.ChildrenFiltered("ul, ol")
			item := li.Clone()
			item.ChildrenFiltered("ul, ol").Remove()
			if text := collapse(item.Text()); text != "" {
				blocks = append(blocks, block{kind: blockListItem, level: depth, text: text})
			}
			nested.Each(func(_ int, n *goquery.Selection) {
				blocks = appendBlocks(blocks, n, depth+1)
			})
		})
		return blocks

	case "hr":
		return append(blocks, block{kind: blockRule})

	case "blockquote":
		s.Children().Each(func(_ int, c *goquery.Selection) {
			blocks = appendBlocks(blocks, c, depth)
		})
		return blocks

	case "table":
		s.Find("tr").Each(func(_ int, tr *goquery.Selection) {
			var cells []string
			tr.Children().Each(func(_ int, td *goquery.Selection) {
				cells = append(cells, collapse(td.Text()))
			})
			blocks = append(blocks, block{kind: blockParagraph, text: strings.Join(cells, " | ")})
		})
		return blocks

	default:
		if text := collapse(s.Text()); text != "" {
			return append(blocks, block{kind: blockParagraph, text: text})
		}
		return blocks
	}
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
