package remap

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/corvid-io/padstream"
)

// rawCodeBit marks an entry's input code as a raw device code rather than
// an abstract-event code from [orderedKinds], per §6.3's "high bit set"
// convention. The remap engine built here only ever targets abstract
// codes: raw-code entries are skipped by the loader and not stored on
// [Profile], since [Database.Rewrite] operates on already-decoded
// [padstream.Event] values.
const rawCodeBit = 0x80

// Load parses the compact on-disk database format: one line per device
// model, `<16 hex HardwareId><name>\t<type letter><entries>`, entries
// semicolon-separated `<input_code><output_code>` hex byte pairs with
// optional tweak suffixes (a=max, i=min, s=scale, d=deadzone).
func Load(r io.Reader) (*Database, error) {
	var (
		db      = NewDatabase()
		scanner = bufio.NewScanner(r)
		lineNo  int
	)

	for scanner.Scan() {
		lineNo++

		line := scanner.Text()
		if line == "" {
			continue
		}

		id, profile, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("remap.Load: line %d: %w", lineNo, err)
		}

		db.Add(id, profile)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("remap.Load: %w", err)
	}

	return db, nil
}

func parseLine(line string) (padstream.HardwareID, *Profile, error) {
	if len(line) < 17 {
		return 0, nil, fmt.Errorf("line too short: %q", line)
	}

	rawID, err := strconv.ParseUint(line[:16], 16, 64)
	if err != nil {
		return 0, nil, fmt.Errorf("hardware id: %w", err)
	}

	rest := line[16:]

	tab := strings.IndexByte(rest, '\t')
	if tab < 0 {
		return 0, nil, fmt.Errorf("missing name/body separator: %q", line)
	}

	name := rest[:tab]
	body := rest[tab+1:]

	if body == "" {
		return 0, nil, fmt.Errorf("empty body: %q", line)
	}

	typ, ok := deviceTypeLetters[body[0]]
	if !ok {
		return 0, nil, fmt.Errorf("unknown type letter %q", body[0:1])
	}

	profile := NewProfile(name, typ)

	entries := body[1:]
	if entries != "" {
		for _, entry := range strings.Split(entries, ";") {
			if err := parseEntry(profile, entry); err != nil {
				return 0, nil, fmt.Errorf("entry %q: %w", entry, err)
			}
		}
	}

	return padstream.HardwareID(rawID), profile, nil
}

func parseEntry(profile *Profile, entry string) error {
	if len(entry) < 4 {
		return fmt.Errorf("entry too short")
	}

	inByte, err := strconv.ParseUint(entry[0:2], 16, 8)
	if err != nil {
		return fmt.Errorf("input code: %w", err)
	}

	outByte, err := strconv.ParseUint(entry[2:4], 16, 8)
	if err != nil {
		return fmt.Errorf("output code: %w", err)
	}

	if inByte&rawCodeBit != 0 {
		// Raw-code remap: not reachable through Database.Rewrite, which
		// only sees already-decoded abstract events. The entry is
		// discarded; the profile keeps no record of it.
		return nil
	}

	inKind, ok := kindForCode[uint8(inByte)]
	if !ok {
		return fmt.Errorf("unknown input code 0x%02x", inByte)
	}

	tweak := Tweak{}

	if outByte == uint64(codeNone) {
		tweak.Drop = true
	} else {
		outKind, ok := kindForCode[uint8(outByte)]
		if !ok {
			return fmt.Errorf("unknown output code 0x%02x", outByte)
		}

		tweak.Rename = true
		tweak.Target = outKind
	}

	if err := parseTweakSuffixes(&tweak, entry[4:]); err != nil {
		return err
	}

	profile.Set(inKind, tweak)

	return nil
}

func parseTweakSuffixes(tweak *Tweak, suffixes string) error {
	i := 0
	for i < len(suffixes) {
		letter := suffixes[i]
		j := i + 1

		for j < len(suffixes) && isTweakValueByte(suffixes[j]) {
			j++
		}

		value := suffixes[i+1 : j]

		switch letter {
		case 'a':
			n, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return fmt.Errorf("max suffix: %w", err)
			}

			tweak.Max = n
			tweak.HasClamp = true
		case 'i':
			n, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return fmt.Errorf("min suffix: %w", err)
			}

			tweak.Min = n
			tweak.HasClamp = true
		case 's':
			n, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return fmt.Errorf("scale suffix: %w", err)
			}

			tweak.Scale = n
			tweak.HasScale = true
		case 'd':
			n, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return fmt.Errorf("deadzone suffix: %w", err)
			}

			tweak.Deadzone = n
		default:
			return fmt.Errorf("unknown tweak suffix %q", letter)
		}

		i = j
	}

	return nil
}

func isTweakValueByte(b byte) bool {
	return (b >= '0' && b <= '9') || b == '.' || b == '-'
}
