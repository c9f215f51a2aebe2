package models

import "fmt"

// Body identifies one of the ten tracked celestial bodies. The set is closed:
// house placement and aspect rules are defined relative to exactly these ten.
type Body int

const (
	Sun Body = iota
	Moon
	Mercury
	Venus
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto
)

// BodyCount is the number of tracked bodies.
const BodyCount = 10

// Bodies returns the tracked bodies in canonical order (Sun first).
func Bodies() []Body {
	return []Body{Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn, Uranus, Neptune, Pluto}
}

var bodyNames = [BodyCount]string{
	"Sun", "Moon", "Mercury", "Venus", "Mars",
	"Jupiter", "Saturn", "Uranus", "Neptune", "Pluto",
}

func (b Body) String() string {
	if b < 0 || int(b) >= BodyCount {
		return fmt.Sprintf("Body(%d)", int(b))
	}
	return bodyNames[b]
}

// ParseBody maps a body name back to its identifier.
func ParseBody(name string) (Body, error) {
	for i, n := range bodyNames {
		if n == name {
			return Body(i), nil
		}
	}
	return 0, NewInvalidInput("planet", fmt.Sprintf("unknown body %q", name))
}

// MarshalText renders the body name for JSON output.
func (b Body) MarshalText() ([]byte, error) {
	if b < 0 || int(b) >= BodyCount {
		return nil, fmt.Errorf("invalid body %d", int(b))
	}
	return []byte(bodyNames[b]), nil
}

// UnmarshalText parses a body name.
func (b *Body) UnmarshalText(text []byte) error {
	parsed, err := ParseBody(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// Sign is a zodiac sign index 0 (Aries) through 11 (Pisces).
type Sign int

var signNames = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

func (s Sign) String() string {
	if s < 0 || s > 11 {
		return fmt.Sprintf("Sign(%d)", int(s))
	}
	return signNames[s]
}

// MarshalText renders the sign name for JSON output.
func (s Sign) MarshalText() ([]byte, error) {
	if s < 0 || s > 11 {
		return nil, fmt.Errorf("invalid sign %d", int(s))
	}
	return []byte(signNames[s]), nil
}

// UnmarshalText parses a sign name.
func (s *Sign) UnmarshalText(text []byte) error {
	for i, n := range signNames {
		if n == string(text) {
			*s = Sign(i)
			return nil
		}
	}
	return fmt.Errorf("unknown sign %q", string(text))
}

// HouseSystem selects the cusp computation strategy of the ephemeris engine.
// The assembler treats the value as an opaque parameter.
type HouseSystem string

const (
	Placidus      HouseSystem = "placidus"
	Koch          HouseSystem = "koch"
	Porphyrius    HouseSystem = "porphyrius"
	Regiomontanus HouseSystem = "regiomontanus"
	Campanus      HouseSystem = "campanus"
	Equal         HouseSystem = "equal"
	WholeSign     HouseSystem = "whole_sign"
)

// HouseSystems lists every supported system.
func HouseSystems() []HouseSystem {
	return []HouseSystem{Placidus, Koch, Porphyrius, Regiomontanus, Campanus, Equal, WholeSign}
}

// ParseHouseSystem validates a house system name from a request.
func ParseHouseSystem(name string) (HouseSystem, error) {
	for _, hs := range HouseSystems() {
		if string(hs) == name {
			return hs, nil
		}
	}
	return "", NewInvalidInput("house_system", fmt.Sprintf("unsupported house system %q", name))
}
