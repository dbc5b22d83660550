// Package jslex lexes JavaScript source. It only needs to lex correct
// programs, not detect malformed ones, so the token grammar is a
// simplified reading of ECMA-262.
package jslex

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Token is a single lexeme with its byte offset in the source.
type Token struct {
	Name string
	Text string
	Pos  int
}

// tokenSpec pairs a token class with its pattern. next, when set, names
// the lexer state to switch to after the token is consumed.
type tokenSpec struct {
	name  string
	regex string
	next  string
}

// literals builds an alternation from a space-separated list of literal
// choices, each wrapped with prefix and suffix. Order is preserved:
// alternation is leftmost-first, so longer punctuators must come before
// their prefixes ('>>' before '>').
func literals(choices, prefix, suffix string) string {
	fields := strings.Fields(choices)
	parts := make([]string, len(fields))
	for i, c := range fields {
		parts[i] = prefix + regexp.QuoteMeta(c) + suffix
	}
	return strings.Join(parts, "|")
}

// Token classes shared by both lexer states. The two states differ only
// in what a leading slash means: division or a regex literal.
var bothBefore = []tokenSpec{
	{name: "comment", regex: `/\*(.|\n)*?\*/`},
	{name: "linecomment", regex: `//.*?$`},
	{name: "ws", regex: `\s+`},
	{name: "keyword", regex: literals(
		`async await break case catch class const continue debugger
		 default delete do else enum export extends
		 finally for function if import in instanceof
		 let new return static super switch this throw try typeof
		 var void while with yield`, "", `\b`), next: "reg"},
	{name: "reserved", regex: literals("null true false", "", `\b`), next: "div"},
	{name: "id", regex: `([a-zA-Z_$]|\\u[0-9a-fA-F]{4})([a-zA-Z_$0-9]|\\u[0-9a-fA-F]{4})*`, next: "div"},
	{name: "hbigint", regex: `0[xX][0-9a-fA-F]+(_[0-9a-fA-F]+)*n`, next: "div"},
	{name: "hnum", regex: `0[xX][0-9a-fA-F]+(_[0-9a-fA-F]+)*`, next: "div"},
	{name: "bbigint", regex: `0[bB][01]+(_[01]+)*n`, next: "div"},
	{name: "bnum", regex: `0[bB][01]+(_[01]+)*`, next: "div"},
	{name: "obigint", regex: `0[oO][0-7]+(_[0-7]+)*n`, next: "div"},
	{name: "onum", regex: `0[oO][0-7]+(_[0-7]+)*`, next: "div"},
	{name: "dbigint", regex: `(0|[1-9][0-9]*(_[0-9]+)*)n`, next: "div"},
	{name: "onum", regex: `0[0-7]+`},
	// decimal literal: integer.fraction, bare .fraction, or integer,
	// each with an optional exponent and numeric separators
	{name: "dnum", regex: `((0|[1-9][0-9]*(_[0-9]+)*)\.[0-9]*(_[0-9]+)*([eE][-+]?[0-9]+)?` +
		`|\.[0-9]+(_[0-9]+)*([eE][-+]?[0-9]+)?` +
		`|(0|[1-9][0-9]*(_[0-9]+)*)([eE][-+]?[0-9]+)?)`, next: "div"},
	{name: "punct", regex: literals(
		`>>>= === !== >>> <<= >>= <= >= == != << >> &&= && => ?. ??= ??
		 **= ** ||= || += -= *= %= &= |= ^=`, "", ""), next: "reg"},
	{name: "punct", regex: literals("++ -- ) ]", "", ""), next: "div"},
	{name: "punct", regex: literals("{ } ( [ . ; , < > + - * % & | ^ ! ~ ? : =", "", ""), next: "reg"},
	{name: "string", regex: `"([^"\\]|(\\(.|\n)))*?"`, next: "div"},
	{name: "string", regex: `'([^'\\]|(\\(.|\n)))*?'`, next: "div"},
	{name: "string", regex: "`([^`\\\\]|(\\\\(.|\\n))|\\$\\{[^}]*\\})*?`", next: "div"},
}

var bothAfter = []tokenSpec{
	{name: "other", regex: `.`},
}

// A regex literal: opening slash, a first character that is not *, \, /
// or [ (or an escape, or a character class), more of the same with *
// allowed, closing slash, trailing flags.
var regexLiteral = tokenSpec{
	name: "regex",
	regex: `/([^*\\/[]|\\.|\[([^\]\\]|\\.)*\])` +
		`([^\\/[]|\\.|\[([^\]\\]|\\.)*\])*` +
		`/[a-zA-Z0-9]*`,
	next: "div",
}

type compiledState struct {
	re    *regexp.Regexp
	specs []tokenSpec
	// groups maps subexpression index to spec index, -1 for the inner
	// groups of a token pattern
	groups []int
}

// compileState joins the token patterns into one alternation with a
// named group per token, so a match identifies its token class.
func compileState(specs []tokenSpec) *compiledState {
	parts := make([]string, len(specs))
	for i, s := range specs {
		parts[i] = fmt.Sprintf("(?P<t%d>%s)", i, s.regex)
	}
	re := regexp.MustCompile(`(?m)` + strings.Join(parts, "|"))

	names := re.SubexpNames()
	groups := make([]int, len(names))
	for gi, gname := range names {
		groups[gi] = -1
		if rest, ok := strings.CutPrefix(gname, "t"); ok {
			if n, err := strconv.Atoi(rest); err == nil {
				groups[gi] = n
			}
		}
	}
	return &compiledState{re: re, specs: specs, groups: groups}
}

func concat(lists ...[]tokenSpec) []tokenSpec {
	var out []tokenSpec
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

var jsStates = map[string]*compiledState{
	// slash means division
	"div": compileState(concat(bothBefore, []tokenSpec{
		{name: "punct", regex: literals("/= /", "", ""), next: "reg"},
	}, bothAfter)),
	// slash starts a regex literal
	"reg": compileState(concat(bothBefore, []tokenSpec{regexLiteral}, bothAfter)),
}

// Lexer is a multi-state JavaScript lexer. The active state persists
// across Lex calls, so source split over several calls lexes the same
// as one string.
type Lexer struct {
	state string
}

// New returns a JavaScript lexer. It starts in the regex state, where a
// leading slash begins a regular expression literal.
func New() *Lexer {
	return &Lexer{state: "reg"}
}

// Lex tokenizes src. Every byte of the input is covered by some token;
// whitespace and comments are reported as "ws", "comment" and
// "linecomment" tokens rather than dropped.
func (l *Lexer) Lex(src string) []Token {
	var tokens []Token
	start := 0
	for start < len(src) {
		st := jsStates[l.state]
		m := st.re.FindStringSubmatchIndex(src[start:])
		if m == nil || m[0] != 0 || m[1] == m[0] {
			start++
			continue
		}

		spec := st.specs[0]
		for gi := 1; gi*2 < len(m); gi++ {
			if m[2*gi] >= 0 && st.groups[gi] >= 0 {
				spec = st.specs[st.groups[gi]]
				break
			}
		}

		text := src[start:][m[0]:m[1]]
		tokens = append(tokens, Token{Name: spec.name, Text: text, Pos: start})
		start += len(text)

		if spec.next != "" {
			l.state = spec.next
		}
	}
	return tokens
}
