// Package jsmn is a minimal, allocation-free JSON tokenizer. Given a
// byte buffer holding a JSON document and a caller-provided token
// slice, Parser.Parse walks the input once and fills the slice with
// descriptors that locate each JSON element by byte offset, along
// with its parent and, optionally, its next sibling. It does not
// allocate, does not copy input bytes, and does not decode escapes or
// numbers — it only delimits and classifies.
package jsmn

import "io"

// ParseReader reads r fully and tokenizes it in one call, sizing the
// token slice with Count first. It is a convenience for callers who
// have an io.Reader rather than a []byte; it does not stream or
// chunk — the full document is buffered before parsing begins.
func ParseReader(r io.Reader, opts ...Option) ([]Token, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	n, err := NewParser(opts...).Count(data)
	if err != nil {
		return nil, err
	}

	tokens := make([]Token, n)
	if _, err := NewParser(opts...).Parse(data, tokens); err != nil {
		return nil, err
	}
	return tokens, nil
}

// maxDepth bounds the container-nesting side stack the driver uses
// to track which container is currently open without touching the
// token slice (needed so counting mode, which has no token slice at
// all, still validates bracket matching identically to a real parse).
// Fixed-size, so it costs nothing per Parse call; sized generously
// since legitimate JSON rarely nests this deep.
const maxDepth = 1024

// frame is one entry of the container stack: which kind of bracket
// opened it, the token index that will receive its Start/End/Size,
// and the running child count (duplicated from the token's Size field
// so it stays available in counting mode).
type frame struct {
	kind     Kind
	tokenIdx int
	size     int
}

// Parser is JSON tokenizer state: a byte offset, the next token index
// to allocate, the index currently receiving new children, and the
// bit-set of token kinds legal next. It is cheap to construct and
// reuse; the same Parser may be handed a growing buffer across
// multiple Parse calls to resume a truncated parse (see Parse).
type Parser struct {
	pos      int
	toknext  int
	toksuper int
	expected Kind
	opts     options

	stack [maxDepth]frame
	depth int

	toksuperIsKey bool
	keyTokenIdx   int

	lastTokenKind Kind
	lastTokenIdx  int

	rootDone bool
}

// NewParser constructs a Parser ready to tokenize. With no options the
// parser is strict-mode, with no sibling-link tracking, matching the
// upstream library's default build.
func NewParser(opts ...Option) *Parser {
	p := &Parser{}
	for _, o := range opts {
		o(&p.opts)
	}
	p.Init()
	return p
}

// Init resets the parser to start a fresh document. It does not
// touch any token slice a caller may reuse; callers doing a fresh
// parse into the same slice should also reset toknext by simply
// discarding previous contents (Parse always starts writing at index
// 0 after Init, since toknext is reset here too).
func (p *Parser) Init() {
	p.pos = 0
	p.toknext = 0
	p.toksuper = None
	p.depth = 0
	p.toksuperIsKey = false
	p.keyTokenIdx = None
	p.lastTokenKind = Undefined
	p.lastTokenIdx = None
	p.rootDone = false
	if p.opts.permissive {
		p.expected = AnyType
	} else {
		p.expected = Container
	}
}

// Count tokenizes data without writing any tokens, returning only
// the count a real Parse call would need. Grammar is fully validated
// so the two-pass (Count then Parse) sizing strategy produces an
// accurate, allocation-free upper bound.
func (p *Parser) Count(data []byte) (int, error) {
	return p.Parse(data, nil)
}

// Parse tokenizes data starting at the parser's current position,
// writing into tokens. A nil tokens enables counting mode: the full
// state machine and grammar validation still run, but no token is
// written and token capacity never runs out (NOMEM still occurs if
// containers nest deeper than maxDepth). Parse may be called again on the
// same Parser with an extended buffer (never a shortened one) after a
// PART result, continuing from where it left off; pos, toknext,
// toksuper and expected all persist across such calls. It returns the
// number of tokens emitted during this call (not the cumulative
// toknext).
func (p *Parser) Parse(data []byte, tokens []Token) (int, error) {
	counting := tokens == nil
	capacity := len(tokens)
	startCount := p.toknext

	for p.pos < len(data) {
		c := data[p.pos]
		switch c {
		case '{', '[':
			if err := p.openContainer(c, tokens, counting, capacity); err != nil {
				return 0, err
			}
		case '}', ']':
			if err := p.closeContainer(c, tokens, counting); err != nil {
				return 0, err
			}
		case '"':
			if !p.expected.Has(String) {
				return 0, newParseError(ErrInval, p.pos)
			}
			if err := p.parseString(data, tokens, counting, capacity); err != nil {
				return 0, err
			}
		case '\t', '\r', '\n', ' ':
			p.pos++
		case ':':
			if err := p.parseColon(tokens, counting); err != nil {
				return 0, err
			}
		case ',':
			if err := p.parseComma(tokens, counting); err != nil {
				return 0, err
			}
		default:
			if !p.opts.permissive && !isStrictPrimitiveLead(c) {
				return 0, newParseError(ErrInval, p.pos)
			}
			if !p.expected.Has(Primitive) {
				return 0, newParseError(ErrInval, p.pos)
			}
			if err := p.parsePrimitive(data, tokens, counting, capacity); err != nil {
				return 0, err
			}
		}
	}

	if p.depth > 0 {
		return 0, newParseError(ErrPart, p.pos)
	}
	return p.toknext - startCount, nil
}

func isStrictPrimitiveLead(c byte) bool {
	switch c {
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 't', 'f', 'n':
		return true
	}
	return false
}

func (p *Parser) allocToken(tokens []Token, counting bool, capacity int) (int, error) {
	if !counting && p.toknext >= capacity {
		return None, ErrNoMem
	}
	idx := p.toknext
	if !counting {
		tokens[idx] = newToken()
	}
	p.toknext++
	return idx, nil
}

// attachChild increments the size of the innermost open container,
// regardless of whether the new child's Parent field actually points
// at that container or (between a ':' and the following comma/close)
// at the preceding key token. An object's size counts both the key
// and the value of every pair, so size bookkeeping always targets the
// real container rather than whatever toksuper momentarily is.
func (p *Parser) attachChild(tokens []Token, counting bool) {
	if p.depth == 0 {
		return
	}
	top := &p.stack[p.depth-1]
	top.size++
	if !counting {
		tokens[top.tokenIdx].Size = top.size
	}
}

func (p *Parser) linkSibling(tokens []Token, parent, newIdx int) {
	if parent == None {
		return
	}
	first := parent + 1
	if first >= newIdx {
		return
	}
	if tokens[first].Parent != parent {
		return
	}
	cur := first
	for tokens[cur].NextSibling != None {
		cur = tokens[cur].NextSibling
	}
	if cur != newIdx {
		tokens[cur].NextSibling = newIdx
	}
}

func (p *Parser) openContainer(c byte, tokens []Token, counting bool, capacity int) error {
	kindBit := Object
	if c == '[' {
		kindBit = Array
	}
	if !p.expected.Has(kindBit) {
		return newParseError(ErrInval, p.pos)
	}
	if !p.opts.permissive && p.depth == 0 && p.rootDone {
		return newParseError(ErrInval, p.pos)
	}

	idx, err := p.allocToken(tokens, counting, capacity)
	if err != nil {
		return newParseError(err, p.pos)
	}
	parent := p.toksuper
	newKind := kindBit | Value
	if !counting {
		tokens[idx] = Token{Kind: newKind, Start: p.pos, End: None, Size: 0, Parent: parent, NextSibling: None}
	}
	p.attachChild(tokens, counting)
	if p.opts.siblingLinks && !counting {
		p.linkSibling(tokens, parent, idx)
	}

	if p.depth >= maxDepth {
		return newParseError(ErrNoMem, p.pos)
	}
	p.stack[p.depth] = frame{kind: kindBit, tokenIdx: idx, size: 0}
	p.depth++
	p.toksuper = idx
	p.toksuperIsKey = false
	p.lastTokenKind = newKind
	p.lastTokenIdx = idx

	switch {
	case p.opts.permissive:
		p.expected = AnyType | Close
	case kindBit == Object:
		p.expected = String | Close
	default:
		p.expected = AnyType | Close
	}
	p.pos++
	return nil
}

func (p *Parser) closeContainer(c byte, tokens []Token, counting bool) error {
	wantKind := Object
	if c == ']' {
		wantKind = Array
	}
	if !p.expected.Has(Close) {
		return newParseError(ErrInval, p.pos)
	}
	if p.depth == 0 {
		return newParseError(ErrInval, p.pos)
	}
	top := p.stack[p.depth-1]
	if top.kind != wantKind {
		return newParseError(ErrInval, p.pos)
	}
	p.depth--

	if !counting {
		tokens[top.tokenIdx].End = p.pos + 1
		tokens[top.tokenIdx].Size = top.size
	}
	p.lastTokenKind = top.kind | Value
	p.lastTokenIdx = top.tokenIdx

	if p.depth == 0 {
		p.toksuper = None
		p.toksuperIsKey = false
		if p.opts.permissive {
			p.expected = AnyType
		} else {
			p.expected = Container
			p.rootDone = true
		}
	} else {
		p.toksuper = p.stack[p.depth-1].tokenIdx
		p.toksuperIsKey = false
		p.expected = Delimiter | Close
	}
	p.pos++
	return nil
}

func (p *Parser) parseColon(tokens []Token, counting bool) error {
	if !p.expected.Has(Delimiter) {
		return newParseError(ErrInval, p.pos)
	}
	if !p.opts.permissive && !p.lastTokenKind.Has(Key) {
		return newParseError(ErrInval, p.pos)
	}
	prevIdx := p.lastTokenIdx
	if p.opts.permissive {
		newKind := (p.lastTokenKind &^ Value) | Key
		p.lastTokenKind = newKind
		if !counting {
			tokens[prevIdx].Kind = newKind
		}
	}
	p.toksuper = prevIdx
	p.toksuperIsKey = true
	p.keyTokenIdx = prevIdx
	p.expected = AnyType
	p.pos++
	return nil
}

func (p *Parser) parseComma(tokens []Token, counting bool) error {
	if !p.expected.Has(Delimiter) {
		return newParseError(ErrInval, p.pos)
	}
	if !p.opts.permissive && p.lastTokenKind.Has(Key) {
		return newParseError(ErrInval, p.pos)
	}
	if p.opts.permissive {
		newKind := p.lastTokenKind | Value
		p.lastTokenKind = newKind
		if !counting {
			tokens[p.lastTokenIdx].Kind = newKind
		}
	}
	if p.depth == 0 {
		return newParseError(ErrInval, p.pos)
	}
	top := p.stack[p.depth-1]
	switch {
	case p.opts.permissive:
		p.expected = AnyType
	case top.kind == Object:
		p.expected = String
	default:
		p.expected = AnyType
	}
	p.toksuper = top.tokenIdx
	p.toksuperIsKey = false
	p.pos++
	return nil
}
