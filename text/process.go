package text

import (
	"regexp"
	"strings"
)

// ProcessURLs rewrites every URL in text with the string fn returns for it.
// The preceding character is always kept. If fn returns false the URL is
// removed.
func ProcessURLs(text string, fn func(URL) (string, bool)) string {
	return rewrite(text, matchers().url, func(m []int) string {
		u := urlFromMatch(text, m)
		if repl, ok := fn(u); ok {
			return u.Preceding + repl
		}
		return u.Preceding
	})
}

// ProcessHashtags rewrites every hashtag (hash sign included) in text with
// the string fn returns for it. The boundary character is always kept. If fn
// returns false the hashtag is removed.
func ProcessHashtags(text string, fn func(Hashtag) (string, bool)) string {
	return rewrite(text, matchers().hashtag, func(m []int) string {
		h := hashtagFromMatch(text, m)
		if repl, ok := fn(h); ok {
			return h.Boundary + repl
		}
		return h.Boundary
	})
}

// ProcessMentions rewrites every mention (at sign included) in text with the
// string fn returns for it. The boundary character is always kept. If fn
// returns false the mention is removed. Candidates rejected as addresses
// are copied unchanged and fn is not called for them.
func ProcessMentions(text string, fn func(Mention) (string, bool)) string {
	ms := matchers()
	return rewrite(text, ms.mention, func(m []int) string {
		if endsScreenName(ms.endScreenName, text, m) {
			return text[m[0]:m[1]]
		}
		mn := mentionFromMatch(text, m)
		if repl, ok := fn(mn); ok {
			return mn.Boundary + repl
		}
		return mn.Boundary
	})
}

// rewrite copies text, replacing each whole match of re with replace(m).
func rewrite(text string, re *regexp.Regexp, replace func(m []int) string) string {
	matches := re.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, m := range matches {
		b.WriteString(text[last:m[0]])
		b.WriteString(replace(m))
		last = m[1]
	}
	b.WriteString(text[last:])
	return b.String()
}
