package remap_test

import (
	"testing"

	"github.com/corvid-io/padstream"
	"github.com/corvid-io/padstream/remap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Round-trip invariant: the identity profile returns events unchanged.
func TestDatabaseIdentityRoundTrip(t *testing.T) {
	db := remap.NewDatabase()

	in := padstream.Bool(padstream.KindActionA, true)
	out, ok := db.Rewrite(42, in)

	require.True(t, ok)
	assert.Equal(t, in, out)
}

func TestDatabaseFallsBackToGenericProfile(t *testing.T) {
	db := remap.NewDatabase()

	profile := remap.NewProfile("known", remap.TypeXbox)
	profile.Set(padstream.KindActionA, remap.Tweak{Rename: true, Target: padstream.KindExit})
	db.Add(100, profile)

	out, ok := db.Rewrite(999, padstream.Bool(padstream.KindActionA, true))
	require.True(t, ok)
	assert.Equal(t, padstream.KindActionA, out.Kind)

	out, ok = db.Rewrite(100, padstream.Bool(padstream.KindActionA, true))
	require.True(t, ok)
	assert.Equal(t, padstream.KindExit, out.Kind)
}

// S7 — Remap with scale+invert.
func TestTweakScaleInvert(t *testing.T) {
	tweak := remap.Tweak{Invert: true, Scale: 0.5, HasScale: true}

	out, ok := tweak.Apply(padstream.Float(padstream.KindJoyY, 0.8))
	require.True(t, ok)
	assert.InDelta(t, -0.4, out.Float, 0.0001)
}

func TestTweakDropsEvent(t *testing.T) {
	tweak := remap.Tweak{Drop: true}

	_, ok := tweak.Apply(padstream.Bool(padstream.KindActionA, true))
	assert.False(t, ok)
}

func TestTweakDeadzoneSnapsToZero(t *testing.T) {
	tweak := remap.Tweak{Deadzone: 0.2}

	out, ok := tweak.Apply(padstream.Float(padstream.KindJoyX, 0.1))
	require.True(t, ok)
	assert.Equal(t, 0.0, out.Float)
}

func TestTweakClamp(t *testing.T) {
	tweak := remap.Tweak{HasClamp: true, Min: 0, Max: 1}

	out, ok := tweak.Apply(padstream.Float(padstream.KindThrottle, 1.5))
	require.True(t, ok)
	assert.Equal(t, 1.0, out.Float)
}
