package services

import (
	"bytes"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

var policy = bluemonday.UGCPolicy()

// RenderDescription converts a project description into HTML that is safe
// to embed in a page, honoring the declared content type. Markdown goes
// through goldmark, HTML is sanitized as-is, and anything else is treated
// as preformatted plain text.
func RenderDescription(description, contentType string) string {
	if description == "" {
		return ""
	}

	ct := strings.ToLower(contentType)
	switch {
	case strings.Contains(ct, "markdown"):
		var buf bytes.Buffer
		if err := goldmark.Convert([]byte(description), &buf); err != nil {
			return "<pre>" + html.EscapeString(description) + "</pre>"
		}
		return policy.Sanitize(buf.String())
	case strings.Contains(ct, "html"):
		return policy.Sanitize(description)
	default:
		return "<pre>" + html.EscapeString(description) + "</pre>"
	}
}
