package header

import "strings"

// document is the parsed comment block
type document struct {
	Lines []*line `parser:"@@*"`
}

// line is one header line: a banner rule, a key = value pair or free text
type line struct {
	Rule  bool       `parser:"  @Rule EOL"`
	Param *paramLine `parser:"| @@"`
	Note  *noteLine  `parser:"| @@"`
}

// paramLine represents: #   turns = 3
type paramLine struct {
	Key   string `parser:"Hash @Word Eq"`
	Value string `parser:"@Value? EOL"`
}

// noteLine represents free text such as: # autogenerated by antgen version 1.0
type noteLine struct {
	Words []string `parser:"Hash @Word* EOL"`
}

// value strips the single blank written after '='
func (p *paramLine) value() string {
	return strings.TrimPrefix(p.Value, " ")
}

// generator extracts "<name> version <v>" from an autogenerated note
func (n *noteLine) generator() (name, version string, ok bool) {
	w := n.Words
	if len(w) < 3 || w[0] != "autogenerated" || w[1] != "by" {
		return "", "", false
	}
	name = w[2]
	if len(w) >= 5 && w[3] == "version" {
		version = w[4]
	}
	return name, version, true
}
