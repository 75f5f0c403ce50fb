package jsmn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindIs(t *testing.T) {
	assert.True(t, (String | Key).Is(String|Key))
	assert.False(t, (String | Key).Is(String))
	assert.False(t, Undefined.Is(String))
}

func TestKindHas(t *testing.T) {
	assert.True(t, (String | Key).Has(String))
	assert.True(t, (String | Key).Has(Key))
	assert.True(t, (Object | Value).Has(Container))
	assert.False(t, (Array | Value).Has(Object))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "undefined", Undefined.String())
	assert.Equal(t, "string|key", (String | Key).String())
	assert.Equal(t, "object", Object.String())
}
