package josa

var defaultSelector Selector

// Select returns the form of j that follows text, for example
// Select("고양이", IGa) is "가" and Select("사냥꾼", EunNeun) is "은".
//
// It is useful when the word is wrapped in markup before the josa is
// attached:
//
//	form, err := josa.Select(cat, josa.IGa)
//	html := fmt.Sprintf(`<b>%s</b>%s`, cat, form)
//
// Select fails with ErrEmptyInput for an empty text and with
// ErrUndeterminedJosa when text does not end in a Hangul syllable and j has
// no fallback form.
func Select(text string, j Josa) (string, error) {
	return defaultSelector.Select(text, j)
}

// Append returns text with the selected form of j attached.
func Append(text string, j Josa) (string, error) {
	return defaultSelector.Append(text, j)
}

// MustAppend is like Append but panics on error.
func MustAppend(text string, j Josa) string {
	s, err := Append(text, j)
	if err != nil {
		panic(err)
	}
	return s
}

// Push attaches the selected form of j to *buf in place. On error *buf is
// unchanged.
func Push(buf *string, j Josa) error {
	return defaultSelector.Push(buf, j)
}

// AppendBytes appends text and the selected form of j to dst.
func AppendBytes(dst []byte, text string, j Josa) ([]byte, error) {
	return defaultSelector.AppendBytes(dst, text, j)
}
