package text

// Character class bodies, written without the enclosing brackets so they can
// be combined into larger classes.
const (
	// spaceChars is the Unicode White_Space set.
	spaceChars = `\x{0009}-\x{000D}\x{0020}\x{0085}\x{00A0}\x{1680}\x{180E}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}`

	// latinAccentChars are the accented Latin-1 letters. U+00D7 and U+00F7
	// are left out: the multiplication sign looks like an "x".
	latinAccentChars = `\x{00C0}-\x{00D6}\x{00D8}-\x{00F6}\x{00F8}-\x{00FF}\x{015F}`

	punctChars = `!'#%&()*+,\\\-./:;<=>?@\[\]\^_{|}~`

	atSigns = `@＠`

	cyrillicChars = `\x{0400}-\x{04FF}` + // Cyrillic
		`\x{0500}-\x{0527}` + // Cyrillic Supplement
		`\x{2DE0}-\x{2DFF}` + // Cyrillic Extended A
		`\x{A640}-\x{A69F}` // Cyrillic Extended B

	hangulChars = `\x{1100}-\x{11FF}` + // Hangul Jamo
		`\x{3130}-\x{3185}` + // Hangul Compatibility Jamo
		`\x{A960}-\x{A97F}` + // Hangul Jamo Extended-A
		`\x{AC00}-\x{D7AF}` + // Hangul Syllables
		`\x{D7B0}-\x{D7FF}` + // Hangul Jamo Extended-B
		`\x{FFA1}-\x{FFDC}` // half-width Hangul

	cjkChars = `\x{30A1}-\x{30FA}` + // Katakana (full-width)
		`\x{30FC}-\x{30FE}` + // Katakana chouon and iteration marks
		`\x{FF66}-\x{FF9F}` + // Katakana (half-width), includes chouon U+FF70
		`\x{FF10}-\x{FF19}\x{FF21}-\x{FF3A}\x{FF41}-\x{FF5A}` + // Latin (full-width)
		`\x{3041}-\x{3096}` + // Hiragana
		`\x{3099}-\x{309E}` + // Hiragana voicing and iteration mark
		`\x{3400}-\x{4DBF}` + // CJK Extension A
		`\x{4E00}-\x{9FFF}` + // CJK Unified
		`\x{2A700}-\x{2B73F}` + // CJK Extension C
		`\x{2B740}-\x{2B81F}` + // CJK Extension D
		`\x{2F800}-\x{2FA1F}` + // CJK Compatibility Supplement
		`\x{3005}\x{303B}` // Kanji and Han iteration marks

	nonLatinHashtagChars = cyrillicChars + hangulChars + cjkChars
)

// invalidCharacters are rejected by Twitter anywhere in a status.
const invalidCharacters = "\uFFFE\uFEFF\uFFFF\u202A\u202B\u202C\u202D\u202E"
