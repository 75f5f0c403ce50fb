package jsmn

// parseString scans a quoted string starting at the opening '"' at
// p.pos. It validates escape sequences (it does not decode them) and
// classifies the result as a KEY or a VALUE depending on dialect and
// position, then advances the driver's expected set accordingly.
//
// On any failure pos is restored to the opening quote, so callers
// that accumulate a buffer across PART results can reuse the same
// offset for the retry.
func (p *Parser) parseString(data []byte, tokens []Token, counting bool, capacity int) error {
	start := p.pos
	i := p.pos + 1

	for i < len(data) {
		c := data[i]
		switch {
		case c == '"':
			return p.finishString(data, tokens, counting, capacity, start, i)
		case c == '\\':
			if i+1 >= len(data) {
				return p.partOrNoMem(counting, capacity, start)
			}
			switch data[i+1] {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				i += 2
			case 'u':
				if i+6 > len(data) {
					return p.partOrNoMem(counting, capacity, start)
				}
				for k := 0; k < 4; k++ {
					if !isHexDigit(data[i+2+k]) {
						p.pos = start
						return newParseError(ErrInval, start)
					}
				}
				i += 6
			default:
				p.pos = start
				return newParseError(ErrInval, start)
			}
		default:
			i++
		}
	}

	return p.partOrNoMem(counting, capacity, start)
}

// partOrNoMem reports NOMEM instead of PART when the token slot this
// string would need is already unavailable: NOMEM is certain no
// matter how a resumed call extends the buffer, so it takes priority
// over the weaker "maybe more bytes will complete this" signal PART
// carries.
func (p *Parser) partOrNoMem(counting bool, capacity, start int) error {
	if !counting && p.toknext >= capacity {
		return newParseError(ErrNoMem, start)
	}
	p.pos = start
	return newParseError(ErrPart, start)
}

func (p *Parser) finishString(data []byte, tokens []Token, counting bool, capacity int, start, closeQuote int) error {
	// Strict mode decides KEY vs VALUE immediately from position.
	// Permissive mode always defaults to VALUE; KEY is assigned
	// retroactively if a ':' follows (see parseColon), so a trailing
	// key with no colon is left tagged VALUE.
	role := Value
	if !p.opts.permissive && !p.toksuperIsKey && p.depth > 0 && p.stack[p.depth-1].kind == Object {
		role = Key
	}

	idx, err := p.allocToken(tokens, counting, capacity)
	if err != nil {
		p.pos = start
		return newParseError(err, start)
	}
	kind := String | role
	parent := p.toksuper
	if !counting {
		tokens[idx] = Token{Kind: kind, Start: start + 1, End: closeQuote, Size: 0, Parent: parent, NextSibling: None}
	}
	p.attachChild(tokens, counting)
	if p.opts.siblingLinks && !counting {
		p.linkSibling(tokens, parent, idx)
	}
	p.lastTokenKind = kind
	p.lastTokenIdx = idx

	switch {
	case p.opts.permissive:
		p.expected = AnyType | Delimiter | Close
	case role == Key:
		p.expected = Delimiter
	default:
		p.expected = Delimiter | Close
	}
	p.pos = closeQuote + 1
	return nil
}

func isHexDigit(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	}
	return false
}
