package transliteration

import (
	"strings"

	"github.com/jusunglee/josa"
)

// Revised Romanization of Korean, indexed like josa.Syllable.
var (
	choseong = []string{
		"g", "kk", "n", "d", "tt", "r", "m", "b", "pp",
		"s", "ss", "", "j", "jj", "ch", "k", "t", "p", "h",
	}
	jungseong = []string{
		"a", "ae", "ya", "yae", "eo", "e", "yeo", "ye", "o",
		"wa", "wae", "oe", "yo", "u", "wo", "we", "wi", "yu",
		"eu", "ui", "i",
	}
	jongseong = []string{
		"", "g", "kk", "gs", "n", "nj", "nh", "d", "l", "lg",
		"lm", "lb", "ls", "lt", "lp", "lh", "m", "b", "bs",
		"s", "ss", "ng", "j", "ch", "k", "t", "p", "h",
	}
)

// Romanize spells each Hangul syllable of text letter by letter and copies
// every other rune unchanged. Sound changes across syllables are not applied.
func Romanize(text string) string {
	var b strings.Builder
	for _, r := range text {
		s, ok := josa.Decompose(r)
		if !ok {
			b.WriteRune(r)
			continue
		}
		b.WriteString(choseong[s.Cho])
		b.WriteString(jungseong[s.Jung])
		b.WriteString(jongseong[s.Jong])
	}
	return b.String()
}

// Pronounce romanizes a word with its josa attached, or returns "" when the
// word contains no Hangul syllables.
func Pronounce(text string) string {
	for _, r := range text {
		if _, ok := josa.Decompose(r); ok {
			return Romanize(text)
		}
	}
	return ""
}
