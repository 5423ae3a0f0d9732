package header

import (
	"errors"
	"strings"
	"testing"

	"github.com/OpenTraceLab/nfcant/pkg/antenna"
)

const legacyHeader = `# ----------------------------------------------------
# autogenerated by antGen.py version 1.1
# ----------------------------------------------------
# used parameters:
#   modulename            = nfc_ant
#   turns                 = 3
#   antennaLength         = 75.400000
#   antennaWidth          = 33.500000
#   conductorWidth        = 2.700000
#   conductorSpace        = 1.700000
#   drillSize             = -1.000000
#   minimalConductorSpace = -1.000000
#   silkMargin            = 1.000000
#   style                 = 3
# ----------------------------------------------------
(module nfc_ant (layer F.Cu) (tedit 5DCE6A1B)
)
`

func TestWrite(t *testing.T) {
	got := Format(antenna.DefaultSpec(), "1.0.0")

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != 15 {
		t.Fatalf("header has %d lines, want 15:\n%s", len(lines), got)
	}

	want := map[int]string{
		0:  rule,
		1:  "# autogenerated by antgen version 1.0.0",
		3:  "# used parameters:",
		4:  "#   modulename            = nfc_ant",
		5:  "#   turns                 = 3",
		6:  "#   antennaLength         = 75.400000",
		10: "#   drillSize             = -1.000000",
		11: "#   minimalConductorSpace = -1.000000",
		13: "#   style                 = 3",
		14: rule,
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d = %q, want %q", i, lines[i], w)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		spec antenna.Spec
	}{
		{"default", antenna.DefaultSpec()},
		{
			name: "explicit values",
			spec: antenna.Spec{
				Name:           "ntag_40x25",
				Turns:          5,
				Length:         40,
				Width:          25,
				ConductorWidth: 0.5,
				ConductorSpace: 0.3,
				DrillSize:      0,
				MinSlopeSpace:  0.25,
				SilkMargin:     -1,
				Style:          antenna.StyleFixedSlope,
			},
		},
		{"name with equals sign", named("ant=1")},
		{"name with hash", named("ant#1")},
		{"name with repeated blanks", named("a  b")},
		{"name with trailing blank", named("ant ")},
		{"name with dashes", named("--- ant")},
		{"empty name", named("")},
		{
			name: "high precision",
			spec: func() antenna.Spec {
				s := antenna.DefaultSpec()
				s.Length = 40.1234567
				s.ConductorWidth = 0.1 + 0.2
				s.MinSlopeSpace = 1.0 / 3
				return s
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := Parse(strings.NewReader(Format(tt.spec, "2.0")))
			if err != nil {
				t.Fatalf("Parse() unexpected error: %v", err)
			}
			if h.Spec != tt.spec {
				t.Errorf("Parse() spec = %+v, want %+v", h.Spec, tt.spec)
			}
			if h.Generator != Generator || h.Version != "2.0" {
				t.Errorf("Parse() generator = %q %q", h.Generator, h.Version)
			}
		})
	}
}

func named(name string) antenna.Spec {
	s := antenna.DefaultSpec()
	s.Name = name
	return s
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{75.4, "75.400000"},
		{-1, "-1.000000"},
		{0, "0.000000"},
		{40.1234567, "40.1234567"},
		{1e-7, "0.0000001"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := formatFloat(tt.in); got != tt.want {
				t.Errorf("formatFloat(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseLegacyGeneratorHeader(t *testing.T) {
	h, err := Parse(strings.NewReader(legacyHeader))
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}
	if h.Generator != "antGen.py" || h.Version != "1.1" {
		t.Errorf("generator = %q version %q", h.Generator, h.Version)
	}
	if h.Spec != antenna.DefaultSpec() {
		t.Errorf("spec = %+v, want defaults", h.Spec)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:    "no header",
			input:   "(module x (layer F.Cu))\n",
			wantErr: "no parameter header",
		},
		{
			name:    "banner without parameters",
			input:   rule + "\n# hello\n" + rule + "\n",
			wantErr: "no parameter header",
		},
		{
			name:    "unknown key",
			input:   strings.Replace(legacyHeader, "silkMargin ", "silkWidth  ", 1),
			wantErr: `unknown parameter "silkWidth"`,
		},
		{
			name:    "missing key",
			input:   strings.Replace(legacyHeader, "#   style                 = 3\n", "", 1),
			wantErr: `missing parameter "style"`,
		},
		{
			name:    "duplicate key",
			input:   strings.Replace(legacyHeader, "#   style ", "#   turns = 4\n#   style ", 1),
			wantErr: `duplicate parameter "turns"`,
		},
		{
			name:    "bad number",
			input:   strings.Replace(legacyHeader, "= 75.400000", "= long", 1),
			wantErr: "invalid antennaLength",
		},
		{
			name:    "bad turns",
			input:   strings.Replace(legacyHeader, "= 3\n", "= 3.5\n", 1),
			wantErr: "invalid turns",
		},
	}

	p, err := NewParser()
	if err != nil {
		t.Fatalf("NewParser() unexpected error: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.ParseString(tt.input)
			if err == nil {
				t.Fatal("ParseString() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("ParseString() error = %v, want %q", err, tt.wantErr)
			}
		})
	}

	if _, err := p.ParseString(""); !errors.Is(err, ErrNoHeader) {
		t.Errorf("empty input error = %v, want ErrNoHeader", err)
	}
}
