package token

// namedEntities is the fixed table of HTML4/5 named character references
// this tokenizer recognises. It is not the full ~2000-entry HTML5 table —
// see DESIGN.md's Open Question resolution for why a smaller, common
// subset is sufficient here: the tokenizer only needs to decide whether a
// `&name;` sequence is a real entity or literal text, not render it.
var namedEntities = map[string]bool{
	"amp": true, "lt": true, "gt": true, "quot": true, "apos": true,
	"nbsp": true, "copy": true, "reg": true, "trade": true,
	"mdash": true, "ndash": true, "hellip": true, "middot": true,
	"sect": true, "para": true, "dagger": true, "Dagger": true,
	"lsquo": true, "rsquo": true, "ldquo": true, "rdquo": true,
	"laquo": true, "raquo": true, "deg": true, "plusmn": true,
	"times": true, "divide": true, "frac12": true, "frac14": true,
	"frac34": true, "sup1": true, "sup2": true, "sup3": true,
	"micro": true, "euro": true, "pound": true, "cent": true,
	"yen": true, "curren": true, "brvbar": true, "uml": true,
	"acute": true, "cedil": true, "ordf": true, "ordm": true,
	"iquest": true, "iexcl": true, "shy": true, "macr": true,
	"eacute": true, "egrave": true, "ecirc": true, "euml": true,
	"aacute": true, "agrave": true, "acirc": true, "auml": true,
	"atilde": true, "aring": true, "aelig": true, "ccedil": true,
	"iacute": true, "igrave": true, "icirc": true, "iuml": true,
	"oacute": true, "ograve": true, "ocirc": true, "ouml": true,
	"otilde": true, "oslash": true, "uacute": true, "ugrave": true,
	"ucirc": true, "uuml": true, "ntilde": true, "yacute": true,
	"yuml": true, "szlig": true, "alpha": true, "beta": true,
	"gamma": true, "delta": true, "epsilon": true, "pi": true,
	"sigma": true, "omega": true, "infin": true, "ne": true,
	"le": true, "ge": true, "larr": true, "rarr": true,
	"uarr": true, "darr": true, "harr": true, "bull": true,
}

// IsNamedEntity reports whether name (without the surrounding '&' and ';')
// is a recognised HTML character entity name. Name lookup is
// case-sensitive, matching real HTML entity references (e.g. "AMP" is not
// the same entity as "amp" in the full HTML5 table, though this module's
// subset only lists the lower/mixed-case spellings actually in common use).
func IsNamedEntity(name string) bool {
	return namedEntities[name]
}
