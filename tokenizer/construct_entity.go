package tokenizer

import "github.com/wikitextgo/wikitok/token"

// parseEntity handles '&' (spec §4.5.11). Unlike the bracketed constructs,
// an entity has no nested body to dispatch into — it is recognised and
// validated in one flat scan — so it stages its tokens in a throwaway
// frame rather than recursing through parse/tryParse.
func (t *tokenizer) parseEntity() {
	reset := t.head
	t.push(0)
	if !t.scanEntity() {
		t.deleteTop()
		t.head = reset
		t.writeText('&')
		t.advance()
		return
	}
	t.splice(t.pop())
}

// scanEntity recognises a named entity ("&amp;"), a decimal numeric
// entity ("&#160;"), or a hex numeric entity ("&#x00A0;") starting at the
// active '&'. On success it emits the entity's tokens into the active
// frame and advances head past the trailing ';'. On failure it leaves
// head and the active frame untouched; parseEntity is responsible for
// discarding the frame and restoring head.
func (t *tokenizer) scanEntity() bool {
	pos := 1

	if t.read(pos) == '#' {
		pos++
		hex := false
		if r := t.read(pos); r == 'x' || r == 'X' {
			hex = true
			pos++
		}
		digitsStart := pos
		for {
			r := t.read(pos)
			if hex && isHexDigit(r) || !hex && isDigit(r) {
				pos++
				continue
			}
			break
		}
		if pos == digitsStart || t.read(pos) != ';' {
			return false
		}

		t.emit(token.HTMLEntityStart())
		if hex {
			t.emit(token.HTMLEntityHex())
		} else {
			t.emit(token.HTMLEntityNumeric())
		}
		t.writeAll(t.runesBetween(t.head+digitsStart, t.head+pos))
		t.emit(token.HTMLEntityEnd())
		t.advanceBy(pos + 1)
		return true
	}

	nameStart := pos
	for isAlnum(t.read(pos)) {
		pos++
	}
	if pos == nameStart || t.read(pos) != ';' {
		return false
	}
	name := t.runesBetween(t.head+nameStart, t.head+pos)
	if !token.IsNamedEntity(name) {
		return false
	}

	t.emit(token.HTMLEntityStart())
	t.writeAll(name)
	t.emit(token.HTMLEntityEnd())
	t.advanceBy(pos + 1)
	return true
}
