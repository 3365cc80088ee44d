package expr

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// funcNameCaser lower-cases the Title-cased function labels (Sin, Asin, ...)
// into the canonical lower-case tokens ("sin", "asin", ...) the text and
// LaTeX printers emit.
var funcNameCaser = cases.Lower(language.English)

func canonicalFuncName(label string) string { return funcNameCaser.String(label) }
