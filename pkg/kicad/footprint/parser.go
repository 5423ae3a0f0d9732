package footprint

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/OpenTraceLab/nfcant/pkg/kicad/sexp"
	"github.com/OpenTraceLab/nfcant/pkg/kicad/sexp/kicadsexp"
)

// ParseFile reads and parses a footprint file
func ParseFile(filename string) (*Footprint, Dialect, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, Legacy, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

// Parse reads a footprint in either dialect. Comment lines (the parameter
// header) are skipped by the lexer.
func Parse(r io.Reader) (*Footprint, Dialect, error) {
	exprs, err := kicadsexp.Parse(r)
	if err != nil {
		return nil, Legacy, fmt.Errorf("failed to parse s-expression: %w", err)
	}

	if len(exprs) == 0 {
		return nil, Legacy, fmt.Errorf("empty file or no valid s-expressions found")
	}

	root, ok := sexp.AsList(exprs[0])
	if !ok {
		return nil, Legacy, fmt.Errorf("expected root list, got atom %s", exprs[0])
	}

	dialect, err := dialectForRoot(root.Name())
	if err != nil {
		return nil, Legacy, err
	}

	fp, err := parseFootprint(root)
	if err != nil {
		return nil, dialect, err
	}
	return fp, dialect, nil
}

// parseFootprint extracts the footprint definition
// Expected format: (module name (layer F.Cu) (tedit HEX) ...)
func parseFootprint(root kicadsexp.List) (*Footprint, error) {
	name, err := sexp.GetString(root, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to parse footprint name: %w", err)
	}

	fp := &Footprint{Name: name}

	layer, ok := sexp.GetChildString(root, "layer")
	if !ok {
		return nil, fmt.Errorf("missing required 'layer' field")
	}
	fp.Layer = layer

	if tedit, ok := sexp.GetChildString(root, "tedit"); ok {
		ts, err := strconv.ParseInt(tedit, 16, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse tedit %q: %w", tedit, err)
		}
		fp.Tedit = ts
	}

	for _, node := range sexp.FindAllNodes(root, "fp_text") {
		text, err := parseText(node)
		if err != nil {
			return nil, fmt.Errorf("failed to parse fp_text: %w", err)
		}
		fp.Texts = append(fp.Texts, *text)
	}

	for _, node := range sexp.FindAllNodes(root, "fp_line") {
		line, err := parseLine(node)
		if err != nil {
			return nil, fmt.Errorf("failed to parse fp_line: %w", err)
		}
		fp.Lines = append(fp.Lines, *line)
	}

	for _, node := range sexp.FindAllNodes(root, "pad") {
		pad, err := parsePad(node)
		if err != nil {
			return nil, fmt.Errorf("failed to parse pad: %w", err)
		}
		fp.Pads = append(fp.Pads, *pad)
	}

	return fp, nil
}

// parseText extracts a label
// Expected format: (fp_text kind text (at x y) (layer l) (effects (font ...)))
func parseText(node kicadsexp.List) (*Text, error) {
	kind, err := sexp.GetString(node, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to parse text kind: %w", err)
	}
	value, err := sexp.GetString(node, 2)
	if err != nil {
		return nil, fmt.Errorf("failed to parse text value: %w", err)
	}

	pos, err := sexp.GetChildPosition(node, "at")
	if err != nil {
		return nil, err
	}

	text := &Text{Kind: kind, Text: value, Position: pos}
	text.Layer, _ = sexp.GetChildString(node, "layer")

	if effects, ok := sexp.FindNode(node, "effects"); ok {
		text.Font = sexp.GetFont(effects)
	}

	return text, nil
}

// parseLine extracts a graphic line
// Expected format: (fp_line (start x y) (end x y) (layer l) (width w))
func parseLine(node kicadsexp.List) (*Line, error) {
	start, err := sexp.GetChildPosition(node, "start")
	if err != nil {
		return nil, err
	}
	end, err := sexp.GetChildPosition(node, "end")
	if err != nil {
		return nil, err
	}

	line := &Line{Start: start, End: end}
	line.Layer, _ = sexp.GetChildString(node, "layer")
	line.Width = strokeWidth(node)

	return line, nil
}

// strokeWidth reads (width w) or KiCad 7's (stroke (width w) ...)
func strokeWidth(node kicadsexp.List) float64 {
	if w, ok := sexp.GetChildFloat(node, "width"); ok {
		return w
	}
	if stroke, ok := sexp.FindNode(node, "stroke"); ok {
		if w, ok := sexp.GetChildFloat(stroke, "width"); ok {
			return w
		}
	}
	return 0
}

// parsePad extracts a pad definition
// Expected format: (pad number type shape (at x y) (size w h) [(drill d)] (layers ...) ...)
func parsePad(node kicadsexp.List) (*Pad, error) {
	number, err := sexp.GetString(node, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pad number: %w", err)
	}
	padType, err := sexp.GetString(node, 2)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pad type: %w", err)
	}
	shape, err := sexp.GetString(node, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pad shape: %w", err)
	}

	pad := &Pad{Number: number, Type: padType, Shape: shape}

	pad.Position, err = sexp.GetChildPosition(node, "at")
	if err != nil {
		return nil, err
	}

	sizeNode, ok := sexp.FindNode(node, "size")
	if !ok {
		return nil, fmt.Errorf("missing required 'size' field")
	}
	size, err := sexp.GetPositionXY(sizeNode)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pad size: %w", err)
	}
	pad.Size = Size{Width: size.X, Height: size.Y}

	if drill, ok := sexp.GetChildFloat(node, "drill"); ok {
		pad.Drill = drill
	}

	layersNode, ok := sexp.FindNode(node, "layers")
	if !ok {
		return nil, fmt.Errorf("missing required 'layers' field")
	}
	pad.Layers = LayerSet(sexp.GetListItems(layersNode))

	if zc, ok := sexp.FindNode(node, "zone_connect"); ok {
		mode, err := sexp.GetInt(zc, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to parse zone_connect: %w", err)
		}
		pad.ZoneConnect = &mode
	}

	if opts, ok := sexp.FindNode(node, "options"); ok {
		pad.Options = &PadOptions{}
		pad.Options.Clearance, _ = sexp.GetChildString(opts, "clearance")
		pad.Options.Anchor, _ = sexp.GetChildString(opts, "anchor")
	}

	if prims, ok := sexp.FindNode(node, "primitives"); ok {
		for _, lineNode := range sexp.FindAllNodes(prims, "gr_line") {
			line, err := parseLine(lineNode)
			if err != nil {
				return nil, fmt.Errorf("failed to parse primitive: %w", err)
			}
			pad.Primitives = append(pad.Primitives, Primitive{Start: line.Start, End: line.End, Width: line.Width})
		}
	}

	return pad, nil
}
