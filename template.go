package josa

import "text/template"

// FuncMap returns template functions backed by s:
//
//	{{ josa .Name "은/는" }}      the form alone
//	{{ withJosa .Name "이/가" }}  the name followed by the form
//
// The josa argument accepts anything Parse does. For html/template convert
// the result with htmltemplate.FuncMap(...).
func (s Selector) FuncMap() template.FuncMap {
	return template.FuncMap{
		"josa": func(text, name string) (string, error) {
			j, err := Parse(name)
			if err != nil {
				return "", err
			}
			return s.Select(text, j)
		},
		"withJosa": func(text, name string) (string, error) {
			j, err := Parse(name)
			if err != nil {
				return "", err
			}
			return s.Append(text, j)
		},
	}
}

// FuncMap returns the template functions of the default selector.
func FuncMap() template.FuncMap {
	return defaultSelector.FuncMap()
}
