package text

import (
	"cmp"
	"slices"
	"strings"
)

// Kind identifies the type of an Entity.
type Kind int

const (
	KindURL Kind = iota + 1
	KindHashtag
	KindMention
)

func (k Kind) String() string {
	switch k {
	case KindURL:
		return "url"
	case KindHashtag:
		return "hashtag"
	case KindMention:
		return "mention"
	}
	return "unknown"
}

// Entity is any extracted entity. Value is the URL, the tag without its
// hash sign, or the screen name without its at sign.
type Entity struct {
	Kind Kind
	Span
	Value string
}

// ExtractEntities returns the URLs, hashtags and mentions in text ordered by
// position. Entities never overlap: a hashtag or mention that falls inside a
// URL (http://example.com/@user/status) belongs to the URL.
func ExtractEntities(text string) []Entity {
	var entities []Entity
	for u := range ExtractURLs(text) {
		entities = append(entities, Entity{Kind: KindURL, Span: u.Span, Value: u.URL})
	}
	add := func(e Entity) {
		for _, prev := range entities {
			if prev.Overlaps(e.Span) {
				return
			}
		}
		entities = append(entities, e)
	}
	for h := range ExtractHashtags(text) {
		add(Entity{Kind: KindHashtag, Span: h.Span, Value: h.Tag})
	}
	for m := range ExtractMentions(text) {
		add(Entity{Kind: KindMention, Span: m.Span, Value: m.ScreenName})
	}

	slices.SortFunc(entities, func(a, b Entity) int {
		return cmp.Compare(a.Start, b.Start)
	})
	return entities
}

// HasInvalidCharacters reports whether text contains characters Twitter
// refuses in a status: byte order marks, U+FFFF and directional overrides.
func HasInvalidCharacters(text string) bool {
	return strings.ContainsAny(text, invalidCharacters)
}
