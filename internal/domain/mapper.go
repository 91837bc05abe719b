package domain

// placeholder stands in for any non-ASCII code point without a listed
// replacement.
const placeholder = "?"

// asciiReplacements maps typographic code points to their ASCII spellings.
// The table is process-wide constant data; everything above 0x7F that is
// not listed here degrades to the placeholder.
var asciiReplacements = map[rune]string{
	'©': "(c)",  // copyright sign
	'®': "(R)",  // registered sign
	'™': "(TM)", // trademark sign
	'–': "-",    // en dash
	'—': "-",    // em dash
	'…': "...",  // horizontal ellipsis
	'‘': "'",    // left single quotation mark
	'’': "'",    // right single quotation mark
	'“': `"`,    // left double quotation mark
	'”': `"`,    // right double quotation mark
	'«': `"`,    // left guillemet
	'»': `"`,    // right guillemet
	'·': "*",    // middle dot
	' ': " ",    // no-break space
}

// Replace maps a single code point to its ASCII replacement string.
// ASCII input is returned unchanged. The function is pure and total:
// it is defined for every rune and never fails.
func Replace(r rune) string {
	if r <= 0x7F {
		return string(r)
	}

	if mapped, ok := asciiReplacements[r]; ok {
		return mapped
	}

	return placeholder
}
