// Package header writes and reads the parameter banner placed in front of
// a generated footprint. The banner is a block of '#' comment lines that
// KiCad ignores; it records the values the footprint was generated from.
package header

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"

	"github.com/OpenTraceLab/nfcant/pkg/antenna"
)

// Generator is the name written into the banner
const Generator = "antgen"

const rule = "# ----------------------------------------------------"

// Parameter keys in banner order
const (
	KeyModuleName     = "modulename"
	KeyTurns          = "turns"
	KeyAntennaLength  = "antennaLength"
	KeyAntennaWidth   = "antennaWidth"
	KeyConductorWidth = "conductorWidth"
	KeyConductorSpace = "conductorSpace"
	KeyDrillSize      = "drillSize"
	KeyMinSlopeSpace  = "minimalConductorSpace"
	KeySilkMargin     = "silkMargin"
	KeyStyle          = "style"
)

// Keys lists the parameter keys in the order they are written
var Keys = []string{
	KeyModuleName,
	KeyTurns,
	KeyAntennaLength,
	KeyAntennaWidth,
	KeyConductorWidth,
	KeyConductorSpace,
	KeyDrillSize,
	KeyMinSlopeSpace,
	KeySilkMargin,
	KeyStyle,
}

// ErrNoHeader is returned when the input does not start with a banner
var ErrNoHeader = errors.New("no parameter header")

// Header is a parsed banner
type Header struct {
	Generator string
	Version   string
	Spec      antenna.Spec
}

// Write emits the banner for s. The values are written as requested, so
// an automatic drill size stays -1.
func Write(w io.Writer, s antenna.Spec, version string) error {
	values := map[string]string{
		KeyModuleName:     s.Name,
		KeyTurns:          strconv.Itoa(s.Turns),
		KeyAntennaLength:  formatFloat(s.Length),
		KeyAntennaWidth:   formatFloat(s.Width),
		KeyConductorWidth: formatFloat(s.ConductorWidth),
		KeyConductorSpace: formatFloat(s.ConductorSpace),
		KeyDrillSize:      formatFloat(s.DrillSize),
		KeyMinSlopeSpace:  formatFloat(s.MinSlopeSpace),
		KeySilkMargin:     formatFloat(s.SilkMargin),
		KeyStyle:          strconv.Itoa(int(s.Style)),
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, rule)
	fmt.Fprintf(bw, "# autogenerated by %s version %s\n", Generator, version)
	fmt.Fprintln(bw, rule)
	fmt.Fprintln(bw, "# used parameters:")
	for _, key := range Keys {
		fmt.Fprintf(bw, "#   %-21s = %s\n", key, values[key])
	}
	fmt.Fprintln(bw, rule)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	return nil
}

// formatFloat writes six decimals like other antenna generators do, and
// falls back to the shortest exact form when six decimals lose precision.
func formatFloat(v float64) string {
	s := fmt.Sprintf("%f", v)
	if back, err := strconv.ParseFloat(s, 64); err == nil && back == v {
		return s
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Format returns the banner for s as a string
func Format(s antenna.Spec, version string) string {
	var b strings.Builder
	_ = Write(&b, s, version)
	return b.String()
}

// Parser reads banners
type Parser struct {
	parser *participle.Parser[document]
}

// NewParser creates a banner parser
func NewParser() (*Parser, error) {
	parser, err := participle.Build[document](
		participle.Lexer(HeaderLexer),
		participle.Elide("Whitespace"),
		participle.UseLookahead(3),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}

	return &Parser{parser: parser}, nil
}

// Parse reads the banner at the start of r. Reading stops at the first
// line that is neither blank nor a comment, so r may be a whole
// footprint file.
func (p *Parser) Parse(r io.Reader) (*Header, error) {
	block, err := leadingComments(r)
	if err != nil {
		return nil, err
	}

	doc, err := p.parser.ParseString("", block)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return doc.header()
}

// ParseString parses a banner from a string
func (p *Parser) ParseString(input string) (*Header, error) {
	return p.Parse(strings.NewReader(input))
}

// Parse reads a banner with a fresh parser
func Parse(r io.Reader) (*Header, error) {
	p, err := NewParser()
	if err != nil {
		return nil, err
	}
	return p.Parse(r)
}

func leadingComments(r io.Reader) (string, error) {
	var b strings.Builder
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		// Trailing blanks belong to the value of a parameter line
		text := strings.TrimLeft(scanner.Text(), " \t")
		if strings.TrimSpace(text) == "" {
			continue
		}
		if !strings.HasPrefix(text, "#") {
			break
		}
		b.WriteString(text)
		b.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read header: %w", err)
	}
	if b.Len() == 0 {
		return "", ErrNoHeader
	}
	return b.String(), nil
}

func (d *document) header() (*Header, error) {
	h := &Header{}
	params := make(map[string]string)

	for _, l := range d.Lines {
		switch {
		case l.Param != nil:
			key := l.Param.Key
			if !slices.Contains(Keys, key) {
				return nil, fmt.Errorf("unknown parameter %q", key)
			}
			if _, dup := params[key]; dup {
				return nil, fmt.Errorf("duplicate parameter %q", key)
			}
			params[key] = l.Param.value()
		case l.Note != nil:
			if name, version, ok := l.Note.generator(); ok {
				h.Generator, h.Version = name, version
			}
		}
	}

	if len(params) == 0 {
		return nil, ErrNoHeader
	}
	for _, key := range Keys {
		if _, ok := params[key]; !ok {
			return nil, fmt.Errorf("missing parameter %q", key)
		}
	}

	s := &h.Spec
	s.Name = params[KeyModuleName]

	var err error
	if s.Turns, err = strconv.Atoi(strings.TrimSpace(params[KeyTurns])); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", KeyTurns, err)
	}

	style, err := strconv.Atoi(strings.TrimSpace(params[KeyStyle]))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", KeyStyle, err)
	}
	s.Style = antenna.Style(style)

	floats := []struct {
		key string
		dst *float64
	}{
		{KeyAntennaLength, &s.Length},
		{KeyAntennaWidth, &s.Width},
		{KeyConductorWidth, &s.ConductorWidth},
		{KeyConductorSpace, &s.ConductorSpace},
		{KeyDrillSize, &s.DrillSize},
		{KeyMinSlopeSpace, &s.MinSlopeSpace},
		{KeySilkMargin, &s.SilkMargin},
	}
	for _, f := range floats {
		if *f.dst, err = strconv.ParseFloat(strings.TrimSpace(params[f.key]), 64); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", f.key, err)
		}
	}

	return h, nil
}
