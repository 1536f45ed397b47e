package text

import (
	"html"
	"net/url"
	"strings"
)

// LinkOptions controls the anchors AutoLink produces.
type LinkOptions struct {
	// HashtagURL returns the link target for a tag. Default: Twitter search.
	HashtagURL func(tag string) string

	// MentionURL returns the link target for a screen name. Default: the profile page.
	MentionURL func(screenName string) string

	// Expanded maps shortened URLs (t.co) to their destination. Expanded
	// links point to, and display, the destination.
	Expanded map[string]string

	// Target is the anchor target attribute. Empty omits it.
	Target string
}

func (o *LinkOptions) defaults() {
	if o.HashtagURL == nil {
		o.HashtagURL = func(tag string) string {
			return "https://twitter.com/search?q=" + url.QueryEscape("#"+tag)
		}
	}
	if o.MentionURL == nil {
		o.MentionURL = func(screenName string) string {
			return "https://twitter.com/" + screenName
		}
	}
}

// AutoLink returns text as HTML with every entity wrapped in an anchor.
// Text outside entities is escaped.
func AutoLink(text string, opts LinkOptions) string {
	opts.defaults()

	var b strings.Builder
	last := 0
	for _, e := range ExtractEntities(text) {
		b.WriteString(html.EscapeString(text[last:e.Start]))
		source := text[e.Start:e.End]
		switch e.Kind {
		case KindURL:
			href := e.Value
			if expanded, ok := opts.Expanded[e.Value]; ok && expanded != "" {
				href = expanded
			}
			writeAnchor(&b, "url", href, href, opts.Target)
		case KindHashtag:
			writeAnchor(&b, "hash", opts.HashtagURL(e.Value), source, opts.Target)
		case KindMention:
			writeAnchor(&b, "nick", opts.MentionURL(e.Value), source, opts.Target)
		}
		last = e.End
	}
	b.WriteString(html.EscapeString(text[last:]))
	return b.String()
}

func writeAnchor(b *strings.Builder, class, href, display, target string) {
	b.WriteString(`<a class="`)
	b.WriteString(class)
	b.WriteString(`" href="`)
	b.WriteString(html.EscapeString(href))
	b.WriteString(`"`)
	if target != "" {
		b.WriteString(` target="`)
		b.WriteString(html.EscapeString(target))
		b.WriteString(`"`)
	}
	b.WriteString(`>`)
	b.WriteString(html.EscapeString(display))
	b.WriteString(`</a>`)
}
