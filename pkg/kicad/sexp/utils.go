package sexp

import (
	"fmt"
	"strconv"

	"github.com/OpenTraceLab/nfcant/pkg/kicad/sexp/kicadsexp"
)

// S-expression navigation helpers

// AsList returns s as a list, or false for atoms
func AsList(s kicadsexp.Sexp) (kicadsexp.List, bool) {
	l, ok := s.(kicadsexp.List)
	return l, ok
}

// FindNode searches for a child list with the given key (first symbol)
// Example: FindNode(pad, "at") finds (at 100 50) in a pad
func FindNode(s kicadsexp.Sexp, key string) (kicadsexp.List, bool) {
	list, ok := AsList(s)
	if !ok {
		return nil, false
	}

	for _, item := range list {
		if sub, ok := AsList(item); ok && sub.Name() == key {
			return sub, true
		}
	}

	return nil, false
}

// FindAllNodes finds all child lists with the given key, in file order
func FindAllNodes(s kicadsexp.Sexp, key string) []kicadsexp.List {
	var results []kicadsexp.List

	list, ok := AsList(s)
	if !ok {
		return results
	}

	for _, item := range list {
		if sub, ok := AsList(item); ok && sub.Name() == key {
			results = append(results, sub)
		}
	}

	return results
}

// GetListItems returns all atoms of a list after the key, skipping
// nested lists.
// Example: GetListItems((layers *.Cu *.Mask)) returns ["*.Cu", "*.Mask"]
func GetListItems(s kicadsexp.Sexp) []string {
	list, ok := AsList(s)
	if !ok || len(list) <= 1 {
		return nil
	}

	var items []string
	for _, item := range list[1:] {
		if sym, ok := item.(kicadsexp.Symbol); ok {
			items = append(items, string(sym))
		}
	}
	return items
}

// Typed value extraction helpers

// GetString extracts an atom at the given index in a list
// Index 0 is the key, 1 is first value, etc.
func GetString(s kicadsexp.Sexp, index int) (string, error) {
	list, ok := AsList(s)
	if !ok {
		return "", fmt.Errorf("expected list, got leaf")
	}

	if index < 0 || index >= len(list) {
		return "", fmt.Errorf("index %d out of bounds (length %d)", index, len(list))
	}

	if sym, ok := list[index].(kicadsexp.Symbol); ok {
		return string(sym), nil
	}

	return "", fmt.Errorf("expected symbol at index %d, got list", index)
}

// GetFloat extracts a float64 value at the given index
func GetFloat(s kicadsexp.Sexp, index int) (float64, error) {
	str, err := GetString(s, index)
	if err != nil {
		return 0, err
	}

	val, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse float %q: %w", str, err)
	}

	return val, nil
}

// GetInt extracts an int value at the given index
func GetInt(s kicadsexp.Sexp, index int) (int, error) {
	str, err := GetString(s, index)
	if err != nil {
		return 0, err
	}

	val, err := strconv.Atoi(str)
	if err != nil {
		return 0, fmt.Errorf("failed to parse int %q: %w", str, err)
	}

	return val, nil
}

// GetPositionXY extracts X,Y coordinates from (at X Y), (start X Y),
// (end X Y) and similar nodes. Values are already in mm.
func GetPositionXY(s kicadsexp.Sexp) (Position, error) {
	x, err := GetFloat(s, 1)
	if err != nil {
		return Position{}, fmt.Errorf("failed to parse X: %w", err)
	}

	y, err := GetFloat(s, 2)
	if err != nil {
		return Position{}, fmt.Errorf("failed to parse Y: %w", err)
	}

	return Position{X: x, Y: y}, nil
}

// GetChildPosition finds the child node named key and extracts its X,Y
func GetChildPosition(s kicadsexp.Sexp, key string) (Position, error) {
	node, ok := FindNode(s, key)
	if !ok {
		return Position{}, fmt.Errorf("missing required '%s' field", key)
	}
	pos, err := GetPositionXY(node)
	if err != nil {
		return Position{}, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return pos, nil
}

// GetChildFloat finds the child node named key and extracts its first value
func GetChildFloat(s kicadsexp.Sexp, key string) (float64, bool) {
	node, ok := FindNode(s, key)
	if !ok {
		return 0, false
	}
	v, err := GetFloat(node, 1)
	if err != nil {
		return 0, false
	}
	return v, true
}

// GetChildString finds the child node named key and extracts its first value
func GetChildString(s kicadsexp.Sexp, key string) (string, bool) {
	node, ok := FindNode(s, key)
	if !ok {
		return "", false
	}
	v, err := GetString(node, 1)
	if err != nil {
		return "", false
	}
	return v, true
}

// GetFont extracts font properties from an (effects (font ...)) node
func GetFont(s kicadsexp.Sexp) Font {
	font := Font{}

	fontNode, ok := FindNode(s, "font")
	if !ok {
		return font
	}

	if sizeNode, ok := FindNode(fontNode, "size"); ok {
		w, _ := GetFloat(sizeNode, 1)
		h, _ := GetFloat(sizeNode, 2)
		font.Size = Size{Width: w, Height: h}
	}

	if t, ok := GetChildFloat(fontNode, "thickness"); ok {
		font.Thickness = t
	}

	return font
}
