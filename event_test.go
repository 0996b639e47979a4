package padstream_test

import (
	"testing"

	"github.com/corvid-io/padstream"
	"github.com/stretchr/testify/assert"
)

func TestKindPayloadClassification(t *testing.T) {
	assert.Equal(t, padstream.PayloadTerminal, padstream.KindDisconnect.Payload())
	assert.Equal(t, padstream.PayloadIndexedBool, padstream.KindNumber.Payload())
	assert.Equal(t, padstream.PayloadUnitFloat, padstream.KindTriggerL.Payload())
	assert.Equal(t, padstream.PayloadSignedFloat, padstream.KindJoyX.Payload())
	assert.Equal(t, padstream.PayloadBool, padstream.KindActionA.Payload())
}

func TestNumberConstructor(t *testing.T) {
	ev := padstream.Number(11, true)
	assert.Equal(t, padstream.KindNumber, ev.Kind)
	assert.Equal(t, int8(11), ev.Index)
	assert.True(t, ev.Bool)
}

func TestHardwareIDRoundTrip(t *testing.T) {
	id := padstream.NewHardwareID(3, 0x46d, 0xc24f, 0x111)

	bus, vendor, product, version := id.Parts()
	assert.Equal(t, uint16(3), bus)
	assert.Equal(t, uint16(0x46d), vendor)
	assert.Equal(t, uint16(0xc24f), product)
	assert.Equal(t, uint16(0x111), version)
}

func TestFocusGateToggles(t *testing.T) {
	padstream.Focus()
	assert.True(t, padstream.Focused())

	padstream.Unfocus()
	assert.False(t, padstream.Focused())

	padstream.Focus()
	assert.True(t, padstream.Focused())
}
