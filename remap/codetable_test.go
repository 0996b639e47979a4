package remap

import (
	"testing"

	"github.com/corvid-io/padstream"
	"github.com/stretchr/testify/assert"
)

func TestCodeTableRoundTrip(t *testing.T) {
	for _, kind := range orderedKinds {
		code, ok := codeForKind[kind]
		assert.True(t, ok, "kind %v missing a code", kind)
		assert.NotEqual(t, codeNone, code)

		back, ok := kindForCode[code]
		assert.True(t, ok)
		assert.Equal(t, kind, back)
	}
}

func TestCodeTableHasNoDuplicateCodes(t *testing.T) {
	assert.Equal(t, len(orderedKinds), len(kindForCode))
}

func TestCodeNoneUnassigned(t *testing.T) {
	_, ok := kindForCode[codeNone]
	assert.False(t, ok)
	assert.Equal(t, padstream.Kind(0), padstream.KindDisconnect)
}
