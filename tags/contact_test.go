package tags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContactKindNamesRoundTrip(t *testing.T) {
	for _, k := range ContactKinds() {
		got, ok := ParseContactKind(k.String())
		assert.True(t, ok, k.String())
		assert.Equal(t, k, got)
	}
}

func TestUnknownContactKind(t *testing.T) {
	_, ok := ParseContactKind("Lava")
	assert.False(t, ok)
	assert.Equal(t, "Unknown", ContactKind(42).String())
	assert.False(t, ContactKind(-1).Valid())
}
