package jsmn

// parsePrimitive scans an unquoted run starting at p.pos: a number or
// true/false/null in strict mode, any unquoted run in permissive mode.
// The run ends at whitespace, ',', ']' or '}', and in permissive mode
// also at ':'. It does not validate number
// syntax or decode the literal — that is left to the caller, since
// the driver only needs to delimit the run.
func (p *Parser) parsePrimitive(data []byte, tokens []Token, counting bool, capacity int) error {
	start := p.pos
	i := start

	for i < len(data) {
		c := data[i]
		if isPrimitiveTerminator(c, p.opts.permissive) {
			break
		}
		if c < 0x20 || c >= 0x7f {
			p.pos = start
			return newParseError(ErrInval, start)
		}
		i++
	}

	if i == len(data) && !p.opts.permissive {
		return p.partOrNoMem(counting, capacity, start)
	}

	// Strict mode tags every primitive VALUE. Permissive mode only
	// does so where the position is unambiguous: following a ':',
	// at the top level, or as an array element. A primitive sitting
	// where an object key is expected stays untagged, pending a
	// retroactive KEY from a following ':' (see parseColon).
	role := Kind(0)
	switch {
	case !p.opts.permissive:
		role = Value
	case p.toksuperIsKey:
		role = Value
	case p.depth == 0:
		role = Value
	case p.stack[p.depth-1].kind == Array:
		role = Value
	}

	idx, err := p.allocToken(tokens, counting, capacity)
	if err != nil {
		p.pos = i
		return newParseError(err, start)
	}
	kind := Primitive | role
	parent := p.toksuper
	if !counting {
		tokens[idx] = Token{Kind: kind, Start: start, End: i, Size: 0, Parent: parent, NextSibling: None}
	}
	p.attachChild(tokens, counting)
	if p.opts.siblingLinks && !counting {
		p.linkSibling(tokens, parent, idx)
	}
	p.lastTokenKind = kind
	p.lastTokenIdx = idx

	p.expected = Delimiter | Close
	if p.opts.permissive {
		p.expected |= AnyType
	}
	p.pos = i
	return nil
}

func isPrimitiveTerminator(c byte, permissive bool) bool {
	switch c {
	case ' ', '\t', '\n', '\r', ',', ']', '}':
		return true
	case ':':
		return permissive
	}
	return false
}
