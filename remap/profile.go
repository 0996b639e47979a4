package remap

import "github.com/corvid-io/padstream"

// DeviceType is the coarse controller family recorded alongside a profile's
// name, taken from the compact format's single type letter.
type DeviceType uint8

const (
	TypeUnknown DeviceType = iota
	TypeXbox
	TypePlayStation
	TypeNintendo
	TypeGamepad
	TypeFlight
	TypeW3C
)

var deviceTypeLetters = map[byte]DeviceType{
	'x': TypeXbox,
	'p': TypePlayStation,
	'n': TypeNintendo,
	'g': TypeGamepad,
	'f': TypeFlight,
	'w': TypeW3C,
}

// Tweak is one rewrite rule: the target Kind an abstract event is renamed
// to (Target is only used when Rename is set — rules carry explicit
// Rename and Drop flags instead of relying on the zero Kind, since 0 is
// itself a valid Kind), plus the optional axis adjustments applied in
// invert, scale, clamp, deadzone order.
type Tweak struct {
	Target padstream.Kind
	Drop   bool
	Rename bool

	Invert   bool
	Scale    float64
	HasScale bool
	Min, Max float64
	HasClamp bool
	Deadzone float64
}

// Apply rewrites one abstract event per the tweak's rules. ok is false when
// the tweak drops the event.
func (t Tweak) Apply(ev padstream.Event) (padstream.Event, bool) {
	if t.Drop {
		return padstream.Event{}, false
	}

	out := ev
	if t.Rename {
		out.Kind = t.Target
	}

	if ev.Kind.Payload() != padstream.PayloadUnitFloat && ev.Kind.Payload() != padstream.PayloadSignedFloat {
		return out, true
	}

	f := out.Float
	if t.Invert {
		f *= -1
	}

	if t.HasScale {
		f *= t.Scale
	}

	if t.HasClamp {
		if f < t.Min {
			f = t.Min
		}

		if f > t.Max {
			f = t.Max
		}
	}

	if t.Deadzone > 0 && f >= -t.Deadzone && f <= t.Deadzone {
		f = 0
	}

	out.Float = f

	return out, true
}

// Profile is one device model's set of rewrite rules, keyed by the
// abstract Kind they apply to. A Kind with no entry passes through
// unchanged (identity).
type Profile struct {
	Name string
	Type DeviceType

	rules map[padstream.Kind]Tweak
}

// NewProfile returns an empty (identity) profile.
func NewProfile(name string, typ DeviceType) *Profile {
	return &Profile{Name: name, Type: typ, rules: make(map[padstream.Kind]Tweak)}
}

// Set installs or overwrites the rule for kind. Per spec, the last call
// for a given Kind wins.
func (p *Profile) Set(kind padstream.Kind, tweak Tweak) {
	p.rules[kind] = tweak
}

// Rewrite applies the profile's rule for ev.Kind, if any. ok is false when
// a matching rule drops the event.
func (p *Profile) Rewrite(ev padstream.Event) (padstream.Event, bool) {
	tweak, found := p.rules[ev.Kind]
	if !found {
		return ev, true
	}

	return tweak.Apply(ev)
}
