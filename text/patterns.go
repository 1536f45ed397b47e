package text

import (
	"regexp"
	"sync"
)

// Hashtags.
const (
	hashtagBoundary     = `(?:^|$|[` + spaceChars + `]|「|」|。|、|\.|!|！|\?|？|,)`
	// Both cases are spelled out: (?i) would also fold in U+212A and U+017F.
	hashtagLetters      = `A-Za-z` + latinAccentChars + `\x{015E}\x{0178}` + nonLatinHashtagChars
	hashtagAlpha        = `[` + hashtagLetters + `]`
	hashtagAlphaNumeric = `[0-9_` + hashtagLetters + `]`

	// groups: 1 boundary, 2 hash sign, 3 tag
	hashtagPattern = `(` + hashtagBoundary + `)([#＃])(` +
		hashtagAlphaNumeric + `*` + hashtagAlpha + hashtagAlphaNumeric + `*)`
)

// Mentions.
const (
	// groups: 1 boundary, 2 at sign, 3 screen name
	mentionPattern = `(^|[^a-zA-Z0-9_])([` + atSigns + `])([a-zA-Z0-9_]{1,20})`

	endScreenNamePattern = `^(?:[` + atSigns + `]|[` + latinAccentChars + `]|://)`
)

// URLs.
const (
	invalidDomainChars  = `\x{00A0}` + punctChars + spaceChars
	validPrecedingChars = `(?:[^\-/"':!=a-z0-9_` + atSigns + `]|^|:)`

	validSubdomain  = `(?:[^` + invalidDomainChars + `](?:[_\-]|[^` + invalidDomainChars + `])*)?[^` + invalidDomainChars + `]\.`
	validDomainName = `(?:[^` + invalidDomainChars + `](?:-|[^` + invalidDomainChars + `])*)?[^` + invalidDomainChars + `]`
	validDomain     = `(?:` + validSubdomain + `)*` + validDomainName +
		`\.(?:xn--[a-z0-9]{2,}|[a-z]{2,})(?::[0-9]+)?`

	validGeneralURLPathChars = `[a-z0-9!*';:=+$/%#\[\]\-_,~|` + latinAccentChars + `]`

	// Balanced parens, as in Wikipedia's /Primer_(film) or IIS's /S(dfd346)/.
	wikipediaDisambiguation = `(?:\(` + validGeneralURLPathChars + `+\))`

	// @ is allowed mid-path only: http://example.com/@user/.
	validURLPathChars = `(?:` + wikipediaDisambiguation + `|@` + validGeneralURLPathChars + `+/|[.,]?` + validGeneralURLPathChars + `?)`

	// So that /foo. does not take the period.
	validURLPathEndingChars = `(?:[+\-a-z0-9=_#/` + latinAccentChars + `]|` + wikipediaDisambiguation + `)`

	validURLQueryChars       = `[a-z0-9!*'();:&=+$/%#\[\]\-_.,~|]`
	validURLQueryEndingChars = `[a-z0-9_&=#/]`

	validURLPath = `/(?:` +
		validURLPathChars + `+` + validURLPathEndingChars + `|` +
		validURLPathChars + `+` + validURLPathEndingChars + `?|` +
		validURLPathEndingChars +
		`)?`

	// groups: 1 preceding, 2 url, 3 protocol, 4 domain, 5 path, 6 query
	urlPattern = `(?i)(` + validPrecedingChars + `)(` +
		`(https?://)` +
		`(` + validDomain + `)` +
		`(` + validURLPath + `)?` +
		`(\?` + validURLQueryChars + `*` + validURLQueryEndingChars + `)?` +
		`)`
)

type matcherSet struct {
	url           *regexp.Regexp
	hashtag       *regexp.Regexp
	mention       *regexp.Regexp
	endScreenName *regexp.Regexp
}

// matchers compiles the extraction patterns on first use and shares them
// afterwards. *regexp.Regexp is safe for concurrent use.
var matchers = sync.OnceValue(func() *matcherSet {
	return &matcherSet{
		url:           regexp.MustCompile(urlPattern),
		hashtag:       regexp.MustCompile(hashtagPattern),
		mention:       regexp.MustCompile(mentionPattern),
		endScreenName: regexp.MustCompile(endScreenNamePattern),
	}
})
