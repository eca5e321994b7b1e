// Package josa picks the Korean postposition (josa) allomorph that matches
// the last syllable of a word.
//
//	s, _ := josa.Append("유진", josa.EunNeun) // 유진은
//	s, _ = josa.Append("고등어", josa.IGa)    // 고등어가
//
// Only the final codepoint of the word is inspected: a Hangul syllable with
// a trailing consonant selects the coda form, an open syllable selects the
// no-coda form, and anything else falls back to the josa's fallback form or
// fails with ErrUndeterminedJosa.
package josa

import (
	"fmt"
	"strings"
)

// Josa is one of a closed set of coda-sensitive postpositions.
type Josa int

const (
	// 은/는, topic marker
	EunNeun Josa = iota + 1
	// 이/가, subject marker
	IGa
	// 을/를, object marker
	EulReul
	// 과/와, "and"
	GwaWa
	// 아/야, vocative
	AYa
	// 으로/로, direction and instrumental. Words ending in ㄹ take 로.
	EuroRo
	// 이랑/랑, "with"
	IRang
	// 이나/나, "or"
	INa
	// 이다/다, copula
	IDa
)

type forms struct {
	name     string
	role     string
	coda     string
	noCoda   string
	fallback string
}

var table = [...]forms{
	EunNeun: {name: "EunNeun", role: "topic", coda: "은", noCoda: "는"},
	IGa:     {name: "IGa", role: "subject", coda: "이", noCoda: "가"},
	EulReul: {name: "EulReul", role: "object", coda: "을", noCoda: "를"},
	GwaWa:   {name: "GwaWa", role: "and", coda: "과", noCoda: "와"},
	AYa:     {name: "AYa", role: "vocative", coda: "아", noCoda: "야"},
	EuroRo:  {name: "EuroRo", role: "direction", coda: "으로", noCoda: "로", fallback: "(으)로"},
	IRang:   {name: "IRang", role: "with", coda: "이랑", noCoda: "랑", fallback: "(이)랑"},
	INa:     {name: "INa", role: "or", coda: "이나", noCoda: "나", fallback: "(이)나"},
	IDa:     {name: "IDa", role: "copula", coda: "이다", noCoda: "다", fallback: "(이)다"},
}

// Josas returns every josa in declaration order.
func Josas() []Josa {
	out := make([]Josa, 0, len(table)-1)
	for j := EunNeun; int(j) < len(table); j++ {
		out = append(out, j)
	}
	return out
}

func (j Josa) valid() bool { return j > 0 && int(j) < len(table) }

func (j Josa) forms() forms {
	if !j.valid() {
		panic(fmt.Sprintf("josa: invalid Josa %d", int(j)))
	}
	return table[j]
}

// CodaForm is used after a syllable that ends in a consonant.
func (j Josa) CodaForm() string { return j.forms().coda }

// NoCodaForm is used after a syllable that ends in a vowel.
func (j Josa) NoCodaForm() string { return j.forms().noCoda }

// Fallback returns the form used after a non-Hangul character, if the josa
// defines one. Only josas whose coda form is the no-coda form with an
// inserted vowel have a fallback, written with that vowel in parentheses.
func (j Josa) Fallback() (string, bool) {
	f := j.forms().fallback
	return f, f != ""
}

// Name returns the Go identifier of the josa, e.g. "EunNeun".
func (j Josa) Name() string { return j.forms().name }

// Role returns a short English label for the grammatical role.
func (j Josa) Role() string { return j.forms().role }

// String returns the "coda/no-coda" notation, e.g. "은/는".
func (j Josa) String() string {
	if !j.valid() {
		return fmt.Sprintf("Josa(%d)", int(j))
	}
	return j.CodaForm() + "/" + j.NoCodaForm()
}

func (j Josa) MarshalText() ([]byte, error) {
	if !j.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownJosa, int(j))
	}
	return []byte(j.String()), nil
}

func (j *Josa) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*j = v
	return nil
}

var lookup = buildLookup()

func buildLookup() map[string]Josa {
	m := make(map[string]Josa)
	for _, j := range Josas() {
		f := table[j]
		m[strings.ToLower(f.name)] = j
		m[f.role] = j
		m[f.coda] = j
		m[f.noCoda] = j
		m[f.coda+"/"+f.noCoda] = j
		m[f.noCoda+"/"+f.coda] = j
		if f.fallback != "" {
			m[f.fallback] = j
		} else {
			m[f.coda+"("+f.noCoda+")"] = j
		}
	}
	m["destination"] = EuroRo
	m["instrumental"] = EuroRo
	m["accompaniment"] = IRang
	return m
}

// Parse resolves a josa from its Go name, its "coda/no-coda" notation in
// either order, its parenthesised form, either surface form or its role.
func Parse(s string) (Josa, error) {
	key := strings.TrimSpace(s)
	if j, ok := lookup[key]; ok {
		return j, nil
	}
	if j, ok := lookup[strings.ToLower(key)]; ok {
		return j, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownJosa, s)
}
