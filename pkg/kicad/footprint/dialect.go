package footprint

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mcuadros/go-version"
)

// Dialect selects the footprint file syntax
type Dialect int

const (
	// Legacy is the KiCad 5 (module ...) syntax with %f numbers
	Legacy Dialect = iota
	// V6 is the KiCad 6 (footprint ...) syntax with quoted strings
	V6
)

// V6FormatVersion is the (version ...) written by the V6 dialect (KiCad 6.0)
const V6FormatVersion = 20211014

// Generator is the (generator ...) token written by the V6 dialect
const Generator = "antgen"

// firstV6Release is the first KiCad release reading (footprint ...) files
const firstV6Release = "6.0"

var kicadVersionPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]+)*$`)

func (d Dialect) String() string {
	switch d {
	case Legacy:
		return "legacy"
	case V6:
		return "v6"
	default:
		return fmt.Sprintf("dialect(%d)", int(d))
	}
}

// RootToken returns the name of the top-level list
func (d Dialect) RootToken() string {
	if d == V6 {
		return "footprint"
	}
	return "module"
}

// DialectFor picks the dialect understood by the given KiCad release,
// e.g. "5.1" yields Legacy and "6.0.11" or "7" yields V6. An empty
// version selects Legacy.
func DialectFor(kicadVersion string) (Dialect, error) {
	v := strings.TrimSpace(kicadVersion)
	if v == "" {
		return Legacy, nil
	}

	if !kicadVersionPattern.MatchString(v) {
		return Legacy, fmt.Errorf("invalid KiCad version %q", kicadVersion)
	}

	if version.Compare(version.Normalize(v), version.Normalize(firstV6Release), ">=") {
		return V6, nil
	}
	return Legacy, nil
}

// dialectForRoot maps a top-level token back to its dialect
func dialectForRoot(token string) (Dialect, error) {
	for _, d := range []Dialect{Legacy, V6} {
		if token == d.RootToken() {
			return d, nil
		}
	}
	return Legacy, fmt.Errorf("not a KiCad footprint: expected '%s' or '%s', got '%s'",
		Legacy.RootToken(), V6.RootToken(), token)
}
