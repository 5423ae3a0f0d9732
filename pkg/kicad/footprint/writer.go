package footprint

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/OpenTraceLab/nfcant/pkg/kicad/sexp/kicadsexp"
)

// Writer serializes a Footprint in one dialect.
// Output depends only on the model, so equal footprints produce
// byte-identical text.
type Writer struct {
	Dialect Dialect
}

// NewWriter creates a writer for the given dialect
func NewWriter(d Dialect) *Writer {
	return &Writer{Dialect: d}
}

// Format returns the serialized footprint
func (w *Writer) Format(fp *Footprint) ([]byte, error) {
	var buf bytes.Buffer
	if err := w.Write(&buf, fp); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write serializes fp to out
func (w *Writer) Write(out io.Writer, fp *Footprint) error {
	if fp == nil {
		return fmt.Errorf("nil footprint")
	}

	bw := bufio.NewWriter(out)
	e := &emitter{w: bw, dialect: w.Dialect}

	e.header(fp)
	for _, text := range fp.Texts {
		e.text(text)
	}
	for _, line := range fp.Lines {
		e.line(line)
	}
	for i := range fp.Pads {
		e.pad(&fp.Pads[i])
	}
	e.printf(")\n")

	if e.err != nil {
		return fmt.Errorf("failed to write footprint %s: %w", fp.Name, e.err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write footprint %s: %w", fp.Name, err)
	}
	return nil
}

// emitter keeps the first write error so the element writers stay linear
type emitter struct {
	w       *bufio.Writer
	dialect Dialect
	err     error
}

func (e *emitter) printf(format string, args ...interface{}) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

// num formats a coordinate: six fixed decimals for Legacy (like %f),
// trimmed for V6. Negative zero is written as zero.
func (e *emitter) num(v float64) string {
	if v == 0 {
		v = 0
	}
	s := strconv.FormatFloat(v, 'f', 6, 64)
	if s == "-0.000000" {
		s = "0.000000"
	}
	if e.dialect == Legacy {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

func (e *emitter) xy(p Position) string {
	return e.num(p.X) + " " + e.num(p.Y)
}

// str writes names, layers and pad numbers; V6 always quotes them
func (e *emitter) str(s string) string {
	if e.dialect == V6 {
		return kicadsexp.AlwaysQuote(s)
	}
	return kicadsexp.Quote(s)
}

func (e *emitter) header(fp *Footprint) {
	layer := fp.Layer
	if layer == "" {
		layer = LayerFrontCopper
	}

	if e.dialect == V6 {
		e.printf("(%s %s (version %d) (generator %s) (layer %s) (tedit %X)\n",
			V6.RootToken(), e.str(fp.Name), V6FormatVersion, Generator, e.str(layer), fp.Tedit)
		return
	}
	e.printf("(%s %s (layer %s) (tedit %X)\n", Legacy.RootToken(), e.str(fp.Name), e.str(layer), fp.Tedit)
}

func (e *emitter) text(t Text) {
	e.printf("  (fp_text %s %s (at %s) (layer %s)\n", t.Kind, e.str(t.Text), e.xy(t.Position), e.str(t.Layer))
	e.printf("    (effects (font (size %s %s) (thickness %s)))\n",
		e.fontNum(t.Font.Size.Width), e.fontNum(t.Font.Size.Height), e.fontNum(t.Font.Thickness))
	e.printf("  )\n")
}

// fontNum writes font metrics the way KiCad does: trimmed in both dialects
func (e *emitter) fontNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (e *emitter) line(l Line) {
	e.printf("  (fp_line (start %s) (end %s) (layer %s) (width %s))\n",
		e.xy(l.Start), e.xy(l.End), e.str(l.Layer), e.fontNum(l.Width))
}

func (e *emitter) pad(p *Pad) {
	e.printf("  (pad %s %s %s (at %s) (size %s %s)",
		e.str(p.Number), p.Type, p.Shape, e.xy(p.Position), e.num(p.Size.Width), e.num(p.Size.Height))
	if p.Drill > 0 {
		e.printf(" (drill %s)", e.num(p.Drill))
	}
	e.printf(" (layers")
	for _, layer := range p.Layers {
		e.printf(" %s", e.str(layer))
	}
	e.printf(")")

	if !p.IsCustom() && p.ZoneConnect == nil && p.Options == nil {
		e.printf(")\n")
		return
	}
	e.printf("\n")

	if p.ZoneConnect != nil {
		e.printf("    (zone_connect %d)\n", *p.ZoneConnect)
	}
	if p.Options != nil {
		e.printf("    (options (clearance %s) (anchor %s))\n", p.Options.Clearance, p.Options.Anchor)
	}
	if p.IsCustom() {
		e.printf("    (primitives\n")
		for _, prim := range p.Primitives {
			e.printf("      (gr_line (start %s) (end %s) (width %s))\n",
				e.xy(prim.Start), e.xy(prim.End), e.num(prim.Width))
		}
		e.printf("    ))\n")
		return
	}
	e.printf("  )\n")
}
