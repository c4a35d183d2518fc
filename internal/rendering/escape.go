// Package rendering turns a tailored resume into LaTeX source and
// compiles it to PDF.
package rendering

import "strings"

// EscapeLaTeX escapes special LaTeX characters in text. Each source
// character is examined exactly once; replacement text is never
// rescanned, so escaping already-escaped output cannot compound.
func EscapeLaTeX(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text) * 2)

	for _, r := range text {
		switch r {
		case '\\':
			result.WriteString(`\textbackslash{}`)
		case '&':
			result.WriteString(`\&`)
		case '%':
			result.WriteString(`\%`)
		case '$':
			result.WriteString(`\$`)
		case '#':
			result.WriteString(`\#`)
		case '_':
			result.WriteString(`\_`)
		case '{':
			result.WriteString(`\{`)
		case '}':
			result.WriteString(`\}`)
		case '~':
			result.WriteString(`\textasciitilde{}`)
		case '^':
			result.WriteString(`\^{}`)
		case '\n':
			result.WriteString("\\newline%\n")
		case '\u00a0':
			result.WriteString(`~`)
		case '-':
			result.WriteString(`{-}`)
		case '[':
			result.WriteString(`{[}`)
		case ']':
			result.WriteString(`{]}`)
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}

// EscapeValue walks a decoded JSON value and escapes every string in it.
// Maps and slices are rebuilt; other values pass through unchanged.
func EscapeValue(value any) any {
	switch v := value.(type) {
	case string:
		return EscapeLaTeX(v)
	case map[string]any:
		escaped := make(map[string]any, len(v))
		for key, item := range v {
			escaped[key] = EscapeValue(item)
		}
		return escaped
	case []any:
		escaped := make([]any, len(v))
		for i, item := range v {
			escaped[i] = EscapeValue(item)
		}
		return escaped
	default:
		return v
	}
}
