// Package text finds URLs, hashtags and @mentions in tweet text.
//
// All offsets are byte offsets into the UTF-8 input. Extraction never fails:
// text without entities, including the empty string, yields an empty sequence.
package text

import (
	"iter"
	"regexp"
)

// Span is the half-open byte range [Start, End) of an entity in its source text.
type Span struct {
	Start int
	End   int
}

// Len returns the length of the span in bytes.
func (s Span) Len() int { return s.End - s.Start }

// Overlaps reports whether s and o share at least one byte.
func (s Span) Overlaps(o Span) bool {
	return s.Start < o.End && o.Start < s.End
}

// URL is a link found in text. The span covers URL only; Preceding is the
// character in front of it, or "" at the start of the text.
type URL struct {
	Span
	Preceding string
	URL       string
	Protocol  string
	Domain    string
	Path      string
	Query     string
}

// Hashtag is a #tag found in text. The span covers the hash sign and the tag.
type Hashtag struct {
	Span
	Boundary string
	Tag      string
}

// Mention is an @screen_name found in text. The span covers the at sign and the name.
type Mention struct {
	Span
	Boundary   string
	ScreenName string
}

// ExtractURLs returns the http and https links in text, left to right.
// The text is scanned each time the sequence is ranged over.
func ExtractURLs(text string) iter.Seq[URL] {
	return func(yield func(URL) bool) {
		for _, m := range matchers().url.FindAllStringSubmatchIndex(text, -1) {
			if !yield(urlFromMatch(text, m)) {
				return
			}
		}
	}
}

// ExtractHashtags returns the hashtags in text, left to right. A tag made
// only of digits and underscores is not a hashtag.
func ExtractHashtags(text string) iter.Seq[Hashtag] {
	return func(yield func(Hashtag) bool) {
		for _, m := range matchers().hashtag.FindAllStringSubmatchIndex(text, -1) {
			if !yield(hashtagFromMatch(text, m)) {
				return
			}
		}
	}
}

// ExtractMentions returns the @mentions in text, left to right. A screen
// name directly followed by another at sign, an accented Latin letter or
// "://" is part of an address, not a mention, and is skipped.
func ExtractMentions(text string) iter.Seq[Mention] {
	return func(yield func(Mention) bool) {
		ms := matchers()
		for _, m := range ms.mention.FindAllStringSubmatchIndex(text, -1) {
			if endsScreenName(ms.endScreenName, text, m) {
				continue
			}
			if !yield(mentionFromMatch(text, m)) {
				return
			}
		}
	}
}

func urlFromMatch(text string, m []int) URL {
	return URL{
		Span:      Span{Start: m[4], End: m[5]},
		Preceding: group(text, m, 1),
		URL:       group(text, m, 2),
		Protocol:  group(text, m, 3),
		Domain:    group(text, m, 4),
		Path:      group(text, m, 5),
		Query:     group(text, m, 6),
	}
}

func hashtagFromMatch(text string, m []int) Hashtag {
	return Hashtag{
		Span:     Span{Start: m[4], End: m[1]},
		Boundary: group(text, m, 1),
		Tag:      group(text, m, 3),
	}
}

func mentionFromMatch(text string, m []int) Mention {
	return Mention{
		Span:       Span{Start: m[4], End: m[1]},
		Boundary:   group(text, m, 1),
		ScreenName: group(text, m, 3),
	}
}

// endsScreenName reports whether the text after a mention match rejects it.
func endsScreenName(re *regexp.Regexp, text string, m []int) bool {
	return re.MatchString(text[m[1]:])
}

// group returns submatch n of m, or "" if it did not participate.
func group(text string, m []int, n int) string {
	if m[2*n] < 0 {
		return ""
	}
	return text[m[2*n]:m[2*n+1]]
}
