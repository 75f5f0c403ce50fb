package jsmn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A bare top-level string is ungrammatical in strict mode (the root
// must be an OBJECT or ARRAY), so these escape-path tests wrap the
// payload in an array to reach parseString at all.

func TestParseStringEscapes(t *testing.T) {
	data := []byte(`["a\"b\\c\/d\be\ff\ng\rh\tiAj"]`)
	p := NewParser()
	tokens := make([]Token, 4)
	n, err := p.Parse(data, tokens)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	assert.Equal(t, String|Value, tokens[1].Kind)
	assert.Equal(t, 2, tokens[1].Start)
	assert.Equal(t, len(data)-2, tokens[1].End)
}

func TestParseStringInvalidEscape(t *testing.T) {
	data := []byte(`["a\qb"]`)
	p := NewParser()
	_, err := p.Parse(data, make([]Token, 4))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInval)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 1, perr.Pos) // position of the string's opening quote
}

func TestParseStringInvalidUnicodeEscape(t *testing.T) {
	data := []byte(`["a\u00zz"]`)
	p := NewParser()
	_, err := p.Parse(data, make([]Token, 4))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInval)
}

func TestParseStringUnterminatedReportsPart(t *testing.T) {
	data := []byte(`["abc`)
	p := NewParser()
	_, err := p.Parse(data, make([]Token, 4))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPart)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 1, perr.Pos)
	assert.Equal(t, 1, p.pos) // restored to the opening quote for a retry
}

func TestParseStringTrailingBackslashReportsPart(t *testing.T) {
	data := []byte(`["abc\`)
	p := NewParser()
	_, err := p.Parse(data, make([]Token, 4))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPart)
}

func TestParseStringTruncatedUnicodeEscapeReportsPart(t *testing.T) {
	data := []byte(`["abc\u12`)
	p := NewParser()
	_, err := p.Parse(data, make([]Token, 4))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPart)
}

func TestParseStringUnterminatedOutOfCapacityReportsNoMem(t *testing.T) {
	data := []byte(`{"a":"bc`)
	p := NewParser()
	_, err := p.Parse(data, make([]Token, 2))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoMem)
}

func TestParseStringKeyRoleStrict(t *testing.T) {
	data := []byte(`{"k":"v"}`)
	p := NewParser()
	tokens := make([]Token, 4)
	_, err := p.Parse(data, tokens)
	require.NoError(t, err)
	assert.Equal(t, String|Key, tokens[1].Kind)
	assert.Equal(t, String|Value, tokens[2].Kind)
}

func TestParseStringTrailingKeyNoColonStaysValuePermissive(t *testing.T) {
	// A bare string directly inside an object with no following ':'
	// never gets retagged KEY; permissive mode leaves it VALUE.
	data := []byte(`{"k"}`)
	p := NewParser(WithPermissive())
	tokens := make([]Token, 4)
	_, err := p.Parse(data, tokens)
	require.NoError(t, err)
	assert.Equal(t, String|Value, tokens[1].Kind)
}
