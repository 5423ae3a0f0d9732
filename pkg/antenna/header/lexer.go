package header

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// HeaderLexer tokenizes the comment block at the top of a footprint file.
// Newlines are significant; every header line ends with EOL. Everything
// after '=' up to the end of the line is a single Value token, so values
// keep '=', '#' and repeated blanks.
var HeaderLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Banner rule: # -----
		{Name: "Rule", Pattern: `#[ \t]*-{3,}[ \t]*`},

		{Name: "Hash", Pattern: `#`},
		{Name: "EOL", Pattern: `\r?\n`},
		{Name: "Whitespace", Pattern: `[ \t]+`},
		{Name: "Eq", Pattern: `=`, Action: lexer.Push("Value")},

		// Keys and free text
		{Name: "Word", Pattern: `[^\s=#]+`},
	},
	"Value": {
		{Name: "Value", Pattern: `[^\r\n]+`},
		{Name: "EOL", Pattern: `\r?\n`, Action: lexer.Pop()},
	},
})
