package footprint

import (
	"bytes"
	"math"
	"reflect"
	"strings"
	"testing"

	chewxy "github.com/chewxy/sexp"
)

func sampleFootprint() *Footprint {
	zone := 0
	return &Footprint{
		Name:  "nfc_ant",
		Layer: LayerFrontCopper,
		Tedit: 0x5DCE6A1B,
		Texts: []Text{
			{Kind: TextReference, Text: "REF**", Position: Position{X: 10, Y: 5}, Layer: LayerFrontSilk,
				Font: Font{Size: Size{Width: 1, Height: 1}, Thickness: 0.15}},
			{Kind: TextValue, Text: "nfc_ant", Position: Position{X: 10, Y: 7}, Layer: LayerFrontFab,
				Font: Font{Size: Size{Width: 1, Height: 1}, Thickness: 0.15}},
		},
		Lines: []Line{
			{Start: Position{X: -1, Y: -1}, End: Position{X: 21, Y: -1}, Layer: LayerFrontSilk, Width: 0.15},
		},
		Pads: []Pad{
			{Number: "1", Type: PadThroughHole, Shape: ShapeCircle, Position: Position{X: 1.35, Y: 8.65},
				Size: Size{Width: 2.7, Height: 2.7}, Drill: 1.3, Layers: LayerSet{LayerAllCopper, LayerAllMask}},
			{Number: "1", Type: PadSMD, Shape: ShapeCustom, Position: Position{X: 1.35, Y: 8.65},
				Size: Size{Width: 2.7, Height: 2.7}, Layers: LayerSet{LayerFrontCopper},
				ZoneConnect: &zone, Options: &PadOptions{Clearance: "outline", Anchor: "circle"},
				Primitives: []Primitive{
					{Start: Position{X: 0, Y: 0}, End: Position{X: 0, Y: -7.3}, Width: 2.7},
					{Start: Position{X: 0, Y: -7.3}, End: Position{X: 17.3, Y: -7.3}, Width: 2.7},
				}},
		},
	}
}

func TestWriteLegacy(t *testing.T) {
	out, err := NewWriter(Legacy).Format(sampleFootprint())
	if err != nil {
		t.Fatalf("Format() unexpected error: %v", err)
	}
	text := string(out)

	wantLines := []string{
		"(module nfc_ant (layer F.Cu) (tedit 5DCE6A1B)",
		"  (fp_text reference REF** (at 10.000000 5.000000) (layer F.SilkS)",
		"    (effects (font (size 1 1) (thickness 0.15)))",
		"  (fp_line (start -1.000000 -1.000000) (end 21.000000 -1.000000) (layer F.SilkS) (width 0.15))",
		"  (pad 1 thru_hole circle (at 1.350000 8.650000) (size 2.700000 2.700000) (drill 1.300000) (layers *.Cu *.Mask))",
		"  (pad 1 smd custom (at 1.350000 8.650000) (size 2.700000 2.700000) (layers F.Cu)",
		"    (zone_connect 0)",
		"    (options (clearance outline) (anchor circle))",
		"      (gr_line (start 0.000000 0.000000) (end 0.000000 -7.300000) (width 2.700000))",
		"    ))",
	}
	for _, want := range wantLines {
		if !strings.Contains(text, want+"\n") {
			t.Errorf("legacy output missing line %q\n%s", want, text)
		}
	}
	if !strings.HasSuffix(text, "\n)\n") {
		t.Errorf("legacy output should end with the closing paren, got %q", text[len(text)-10:])
	}
}

func TestWriteV6(t *testing.T) {
	out, err := NewWriter(V6).Format(sampleFootprint())
	if err != nil {
		t.Fatalf("Format() unexpected error: %v", err)
	}
	text := string(out)

	wantLines := []string{
		`(footprint "nfc_ant" (version 20211014) (generator antgen) (layer "F.Cu") (tedit 5DCE6A1B)`,
		`  (fp_text reference "REF**" (at 10 5) (layer "F.SilkS")`,
		`  (pad "1" thru_hole circle (at 1.35 8.65) (size 2.7 2.7) (drill 1.3) (layers "*.Cu" "*.Mask"))`,
		`      (gr_line (start 0 -7.3) (end 17.3 -7.3) (width 2.7))`,
	}
	for _, want := range wantLines {
		if !strings.Contains(text, want+"\n") {
			t.Errorf("v6 output missing line %q\n%s", want, text)
		}
	}
}

func TestWriteIsDeterministic(t *testing.T) {
	for _, d := range []Dialect{Legacy, V6} {
		a, err := NewWriter(d).Format(sampleFootprint())
		if err != nil {
			t.Fatalf("Format() unexpected error: %v", err)
		}
		b, err := NewWriter(d).Format(sampleFootprint())
		if err != nil {
			t.Fatalf("Format() unexpected error: %v", err)
		}
		if !bytes.Equal(a, b) {
			t.Errorf("%v: repeated writes differ", d)
		}
	}
}

func TestWriteNil(t *testing.T) {
	var buf bytes.Buffer
	if err := NewWriter(Legacy).Write(&buf, nil); err == nil {
		t.Error("Write(nil) expected error")
	}
}

func TestRoundTrip(t *testing.T) {
	for _, d := range []Dialect{Legacy, V6} {
		t.Run(d.String(), func(t *testing.T) {
			orig := sampleFootprint()
			out, err := NewWriter(d).Format(orig)
			if err != nil {
				t.Fatalf("Format() unexpected error: %v", err)
			}

			// Header comments must not disturb the reader
			input := "# ----\n#   turns = 3\n" + string(out)
			got, gotDialect, err := Parse(strings.NewReader(input))
			if err != nil {
				t.Fatalf("Parse() unexpected error: %v", err)
			}
			if gotDialect != d {
				t.Errorf("Parse() dialect = %v, want %v", gotDialect, d)
			}
			if !reflect.DeepEqual(got, orig) {
				t.Errorf("round trip mismatch\n got: %+v\nwant: %+v", got, orig)
			}
		})
	}
}

// The legacy output must also be readable by an independent S-expression
// parser, not just by our own reader.
func TestLegacyOutputIsWellFormed(t *testing.T) {
	out, err := NewWriter(Legacy).Format(sampleFootprint())
	if err != nil {
		t.Fatalf("Format() unexpected error: %v", err)
	}

	exprs, err := chewxy.Parse(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("chewxy/sexp rejected output: %v", err)
	}
	if len(exprs) != 1 {
		t.Fatalf("got %d top-level expressions, want 1", len(exprs))
	}
	if exprs[0].IsLeaf() {
		t.Fatal("top-level expression should be a list")
	}
	if exprs[0].LeafCount() == 0 {
		t.Error("top-level list is empty")
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"atom root", "module"},
		{"wrong root", "(kicad_pcb (version 20211014))"},
		{"missing layer", "(module x (tedit 0))"},
		{"bad tedit", "(module x (layer F.Cu) (tedit zz))"},
		{"pad without size", "(module x (layer F.Cu) (pad 1 smd rect (at 0 0) (layers F.Cu)))"},
		{"pad without layers", "(module x (layer F.Cu) (pad 1 smd rect (at 0 0) (size 1 1)))"},
		{"line without end", "(module x (layer F.Cu) (fp_line (start 0 0) (layer F.SilkS) (width 0.15)))"},
		{"unbalanced", "(module x (layer F.Cu)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := Parse(strings.NewReader(tt.input)); err == nil {
				t.Errorf("Parse(%q) expected error, got nil", tt.input)
			}
		})
	}
}

func TestParseKiCad7Stroke(t *testing.T) {
	input := `(footprint "x" (layer "F.Cu") (fp_line (start 0 0) (end 1 0) (stroke (width 0.12) (type solid)) (layer "F.SilkS")))`
	fp, _, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}
	if len(fp.Lines) != 1 || fp.Lines[0].Width != 0.12 {
		t.Errorf("stroke width not read: %+v", fp.Lines)
	}
}

func TestPadHelpers(t *testing.T) {
	fp := sampleFootprint()

	if n := len(fp.PadsByNumber("1")); n != 2 {
		t.Errorf("PadsByNumber(1) = %d pads, want 2", n)
	}
	if fp.CustomPad("2") != nil {
		t.Error("CustomPad(2) should be nil")
	}

	custom := fp.CustomPad("1")
	if custom == nil {
		t.Fatal("CustomPad(1) = nil")
	}
	abs := custom.AbsolutePrimitives()
	if len(abs) != 2 {
		t.Fatalf("AbsolutePrimitives() = %d lines, want 2", len(abs))
	}
	want := Position{X: 18.65, Y: 1.35}
	if end := abs[1].End; math.Abs(end.X-want.X) > 1e-9 || math.Abs(end.Y-want.Y) > 1e-9 {
		t.Errorf("AbsolutePrimitives()[1].End = %+v, want %+v", end, want)
	}
	if abs[0].Layer != LayerFrontCopper {
		t.Errorf("AbsolutePrimitives() layer = %q", abs[0].Layer)
	}

	if fp.PrimitiveCount() != 2 {
		t.Errorf("PrimitiveCount() = %d, want 2", fp.PrimitiveCount())
	}
	if len(fp.LinesOnLayer(LayerFrontSilk)) != 1 || len(fp.LinesOnLayer(LayerBackSilk)) != 0 {
		t.Error("LinesOnLayer() returned wrong lines")
	}
}

func TestBoundingBox(t *testing.T) {
	fp := sampleFootprint()

	bbox := fp.BoundingBox()
	if bbox.Min.X > -1.07 || bbox.Max.X < 21.07 {
		t.Errorf("BoundingBox() x range = [%v, %v]", bbox.Min.X, bbox.Max.X)
	}

	copper := fp.CopperBoundingBox()
	if copper.Min.X != 0 {
		t.Errorf("CopperBoundingBox().Min.X = %v, want 0", copper.Min.X)
	}
	if copper.Max.Y != 8.65+1.35 {
		t.Errorf("CopperBoundingBox().Max.Y = %v, want %v", copper.Max.Y, 8.65+1.35)
	}
}

func TestDialectFor(t *testing.T) {
	tests := []struct {
		version string
		want    Dialect
		wantErr bool
	}{
		{"", Legacy, false},
		{"5.0", Legacy, false},
		{"5.1.9", Legacy, false},
		{"6", V6, false},
		{"6.0", V6, false},
		{"7.0.1", V6, false},
		{"nightly", Legacy, true},
		{"6.0-rc1", Legacy, true},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			got, err := DialectFor(tt.version)
			if tt.wantErr {
				if err == nil {
					t.Errorf("DialectFor(%q) expected error", tt.version)
				}
				return
			}
			if err != nil {
				t.Fatalf("DialectFor(%q) unexpected error: %v", tt.version, err)
			}
			if got != tt.want {
				t.Errorf("DialectFor(%q) = %v, want %v", tt.version, got, tt.want)
			}
		})
	}
}

func TestDialectForRoot(t *testing.T) {
	for _, d := range []Dialect{Legacy, V6} {
		got, err := dialectForRoot(d.RootToken())
		if err != nil {
			t.Fatalf("dialectForRoot(%q) unexpected error: %v", d.RootToken(), err)
		}
		if got != d {
			t.Errorf("dialectForRoot(%q) = %v, want %v", d.RootToken(), got, d)
		}

		out, err := NewWriter(d).Format(sampleFootprint())
		if err != nil {
			t.Fatalf("Format() unexpected error: %v", err)
		}
		if !bytes.HasPrefix(out, []byte("("+d.RootToken()+" ")) {
			t.Errorf("%v output starts with %q", d, out[:20])
		}
	}

	if _, err := dialectForRoot("kicad_pcb"); err == nil {
		t.Error("dialectForRoot(kicad_pcb) expected error")
	}
}
