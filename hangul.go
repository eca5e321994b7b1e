package josa

import "unicode/utf8"

const (
	hangulBase = 0xAC00
	hangulEnd  = 0xD7A3
	jongN      = 28
	jungN      = 21
)

// jongseong index of ㄹ
const jongRieul = 8

var jongseong = []rune{
	0, 'ㄱ', 'ㄲ', 'ㄳ', 'ㄴ', 'ㄵ', 'ㄶ', 'ㄷ', 'ㄹ', 'ㄺ',
	'ㄻ', 'ㄼ', 'ㄽ', 'ㄾ', 'ㄿ', 'ㅀ', 'ㅁ', 'ㅂ', 'ㅄ',
	'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ',
}

var (
	choseong  = []rune("ㄱㄲㄴㄷㄸㄹㅁㅂㅃㅅㅆㅇㅈㅉㅊㅋㅌㅍㅎ")
	jungseong = []rune("ㅏㅐㅑㅒㅓㅔㅕㅖㅗㅘㅙㅚㅛㅜㅝㅞㅟㅠㅡㅢㅣ")
)

// Class is the phonological shape of the last character of a word.
type Class int

const (
	NotHangul Class = iota
	NoCoda
	HasCoda
)

func (c Class) String() string {
	switch c {
	case HasCoda:
		return "has_coda"
	case NoCoda:
		return "no_coda"
	default:
		return "not_hangul"
	}
}

// Syllable is a precomposed Hangul syllable split into its jamo indices.
type Syllable struct {
	Cho  int
	Jung int
	Jong int
}

// Decompose splits r into choseong, jungseong and jongseong indices.
// It reports false if r is not a precomposed Hangul syllable.
func Decompose(r rune) (Syllable, bool) {
	if r < hangulBase || r > hangulEnd {
		return Syllable{}, false
	}
	code := int(r) - hangulBase
	return Syllable{
		Cho:  code / (jongN * jungN),
		Jung: (code / jongN) % jungN,
		Jong: code % jongN,
	}, true
}

// HasCoda reports whether the syllable ends in a consonant.
func (s Syllable) HasCoda() bool { return s.Jong != 0 }

// Initial returns the leading consonant as a compatibility jamo.
func (s Syllable) Initial() rune { return choseong[s.Cho] }

// Medial returns the vowel as a compatibility jamo.
func (s Syllable) Medial() rune { return jungseong[s.Jung] }

// Coda returns the trailing consonant as a compatibility jamo, or 0 if the
// syllable is open.
func (s Syllable) Coda() rune { return jongseong[s.Jong] }

// Classify inspects the last codepoint of text. Only that single codepoint
// is considered, so a trailing combining mark or joiner yields NotHangul.
func Classify(text string) (Class, error) {
	r, ok := lastRune(text)
	if !ok {
		return NotHangul, &Error{Kind: ErrEmptyInput}
	}
	return classifyRune(r), nil
}

func classifyRune(r rune) Class {
	s, ok := Decompose(r)
	switch {
	case !ok:
		return NotHangul
	case s.HasCoda():
		return HasCoda
	default:
		return NoCoda
	}
}

func lastRune(text string) (rune, bool) {
	if text == "" {
		return 0, false
	}
	r, _ := utf8.DecodeLastRuneInString(text)
	return r, true
}
