package html

import (
	"bytes"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	markdownOnce sync.Once
	markdownConv goldmark.Markdown

	policyOnce sync.Once
	policy     *bluemonday.Policy
)

func markdownConverter() goldmark.Markdown {
	markdownOnce.Do(func() {
		markdownConv = goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		)
	})
	return markdownConv
}

func descriptionPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		p := bluemonday.NewPolicy()
		p.AllowElements("code", "em", "strong", "a", "kbd", "br", "del")
		p.AllowAttrs("href").OnElements("a")
		p.AllowStandardURLs()
		p.RequireNoFollowOnLinks(true)
		policy = p
	})
	return policy
}

// inlineHTML renders the inline Markdown used in descriptions (code spans,
// emphasis, links) and strips everything else. The wrapping paragraph is
// removed so the result fits in a table cell.
func inlineHTML(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := markdownConverter().Convert([]byte(trimmed), &buf); err != nil {
		return "", err
	}
	cleaned := descriptionPolicy().Sanitize(buf.String())
	return strings.TrimSpace(cleaned), nil
}
