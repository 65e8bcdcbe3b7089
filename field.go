package routegpx

import (
	"regexp"
	"strconv"
	"strings"
)

// FieldStatus tags the outcome of parsing one raw field. Modelling this
// explicitly (rather than with sentinel values) keeps warning generation
// exhaustive and testable without any DOM access.
type FieldStatus int

const (
	// FieldAbsent means there was nothing to parse.
	FieldAbsent FieldStatus = iota
	// FieldValid means the field parsed and passed validation.
	FieldValid
	// FieldDowngraded means the field was present but malformed; callers
	// keep the raw text rather than dropping the record.
	FieldDowngraded
)

// codeShape matches the plus code alphabet with a '+' separator: 2-8 leading
// digits (zero-padded short area codes included), up to 8 trailing digits.
// This is a shape check only; real validation happens at decode time.
var codeShape = regexp.MustCompile(`^[23456789CFGHJMPQRVWX0]{2,8}\+[23456789CFGHJMPQRVWX]{0,8}$`)

// ParseCode validates raw text against the plus code shape. Valid codes are
// returned normalized to upper case. Malformed but non-empty text is
// FieldDowngraded so the caller can keep it as plain address text.
func ParseCode(raw string) (string, FieldStatus) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", FieldAbsent
	}
	code := strings.ToUpper(raw)
	if !codeShape.MatchString(code) {
		return raw, FieldDowngraded
	}
	return code, FieldValid
}

// ParseCoordinates parses a raw latitude/longitude text pair. Values that
// fail to parse as finite numbers, or that fall outside valid ranges, are
// FieldDowngraded and the caller treats the pair as absent.
func ParseCoordinates(latText, lngText string) (Coordinates, FieldStatus) {
	latText = strings.TrimSpace(latText)
	lngText = strings.TrimSpace(lngText)
	if latText == "" && lngText == "" {
		return Coordinates{}, FieldAbsent
	}
	lat, errLat := strconv.ParseFloat(latText, 64)
	lng, errLng := strconv.ParseFloat(lngText, 64)
	if errLat != nil || errLng != nil {
		return Coordinates{}, FieldDowngraded
	}
	c := Coordinates{Lat: lat, Lng: lng}
	if !c.InRange() {
		return Coordinates{}, FieldDowngraded
	}
	return c, FieldValid
}
