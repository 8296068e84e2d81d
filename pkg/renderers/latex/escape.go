package latex

import "strings"

// escaper rewrites every LaTeX-special character to its escaped form in a
// single left-to-right pass, so an escape sequence is never itself
// re-escaped.
var escaper = strings.NewReplacer(
	"&", `\&`,
	"%", `\%`,
	"_", `\_`,
	"#", `\#`,
	"$", `\$`,
	"{", `\{`,
	"}", `\}`,
	"^", `\^{}`,
	"~", `\~{}`,
)

// Escape returns s with all LaTeX-special characters escaped. Strings free of
// special characters pass through unchanged.
func Escape(s string) string {
	return escaper.Replace(s)
}
