package engine

import (
	"regexp"
	"strings"
)

// LineKind identifies the statement form of a single source line
type LineKind int

const (
	KindBlank LineKind = iota
	KindCounterHeader
	KindIteratorHeader
	KindCStyleHeader
	KindTerminator
	KindPrint
	KindAssignment
	KindUnrecognized
)

// String returns the string representation of a line kind
func (k LineKind) String() string {
	switch k {
	case KindBlank:
		return "blank"
	case KindCounterHeader:
		return "counter-header"
	case KindIteratorHeader:
		return "iterator-header"
	case KindCStyleHeader:
		return "c-style-header"
	case KindTerminator:
		return "terminator"
	case KindPrint:
		return "print"
	case KindAssignment:
		return "assignment"
	default:
		return "unrecognized"
	}
}

// IsHeader reports whether the kind opens a loop block
func (k LineKind) IsHeader() bool {
	return k == KindCounterHeader || k == KindIteratorHeader || k == KindCStyleHeader
}

// Patterns for the three for-forms and the simple statements. Keywords are
// case-insensitive; identifiers are not.
var (
	rxForCounter  = regexp.MustCompile(`(?i)^\s*for\s+([A-Za-z_]\w*)\s*=\s*(.+?)\s+to\s+(.+?)(?:\s+by\s+(.+?))?\s+do\s*$`)
	rxForIterator = regexp.MustCompile(`(?i)^\s*for\s+([A-Za-z_]\w*)\s+in\s+(.+?)\s+do\s*$`)
	rxForCStyle   = regexp.MustCompile(`(?i)^\s*for\s*\(\s*(.*?)\s*;\s*(.*?)\s*;\s*(.*?)\s*\)\s+do\s*$`)
	rxTerminator  = regexp.MustCompile(`(?i)^\s*end\s*$`)
	rxPrint       = regexp.MustCompile(`(?i)^\s*print\s+(.+?)\s*$`)
	// The [^=] guard keeps comparison expressions such as `x == 1` from
	// classifying as assignments.
	rxAssign = regexp.MustCompile(`^\s*([A-Za-z_]\w*)\s*=\s*([^=].*?)\s*$`)
)

// CounterHeader is a parsed `for <var> = <start> to <end> [by <step>] do`
// header. Start, End and Step hold raw expression text; an empty Step means
// the default step of 1.
type CounterHeader struct {
	Var   string
	Start string
	End   string
	Step  string
}

// IteratorHeader is a parsed `for <var> in <expr> do` header
type IteratorHeader struct {
	Var    string
	Source string
}

// Clause is one of the three semicolon-separated parts of a C-style header.
// The zero value is an absent clause; a clause with an empty Name is a bare
// expression evaluated for side effect only.
type Clause struct {
	Name string
	Expr string
}

// IsEmpty reports whether the clause was omitted
func (c Clause) IsEmpty() bool {
	return c.Name == "" && c.Expr == ""
}

// IsAssignment reports whether the clause binds a name
func (c Clause) IsAssignment() bool {
	return c.Name != ""
}

// CStyleHeader is a parsed `for ( <init> ; <cond> ; <step> ) do` header.
// Cond holds raw expression text; empty means always true.
type CStyleHeader struct {
	Init Clause
	Cond string
	Step Clause
}

// ClassifiedLine is the result of classifying one source line. Exactly one
// of the header pointers is set for header kinds; Target/Expr are set for
// assignment and print kinds.
type ClassifiedLine struct {
	Kind     LineKind
	Counter  *CounterHeader
	Iterator *IteratorHeader
	CStyle   *CStyleHeader
	Target   string
	Expr     string
}

// Classify determines the statement kind of a single source line. The
// classification is purely syntactic: header forms are tried before plain
// assignment since both can start with an identifier followed by '='.
func Classify(line string) *ClassifiedLine {
	trimmed := strings.TrimSpace(line)

	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return &ClassifiedLine{Kind: KindBlank}
	}

	if m := rxForCounter.FindStringSubmatch(line); m != nil {
		return &ClassifiedLine{
			Kind:    KindCounterHeader,
			Counter: &CounterHeader{Var: m[1], Start: m[2], End: m[3], Step: m[4]},
		}
	}

	if m := rxForIterator.FindStringSubmatch(line); m != nil {
		return &ClassifiedLine{
			Kind:     KindIteratorHeader,
			Iterator: &IteratorHeader{Var: m[1], Source: m[2]},
		}
	}

	if m := rxForCStyle.FindStringSubmatch(line); m != nil {
		return &ClassifiedLine{
			Kind: KindCStyleHeader,
			CStyle: &CStyleHeader{
				Init: parseClause(m[1]),
				Cond: strings.TrimSpace(m[2]),
				Step: parseClause(m[3]),
			},
		}
	}

	if rxTerminator.MatchString(line) {
		return &ClassifiedLine{Kind: KindTerminator}
	}

	if m := rxPrint.FindStringSubmatch(line); m != nil {
		return &ClassifiedLine{Kind: KindPrint, Expr: m[1]}
	}

	if m := rxAssign.FindStringSubmatch(line); m != nil {
		return &ClassifiedLine{Kind: KindAssignment, Target: m[1], Expr: m[2]}
	}

	return &ClassifiedLine{Kind: KindUnrecognized}
}

// parseClause parses one C-style clause: empty, `<ident> = <expr>`, or a
// bare expression.
func parseClause(s string) Clause {
	s = strings.TrimSpace(s)
	if s == "" {
		return Clause{}
	}
	if m := rxAssign.FindStringSubmatch(s); m != nil {
		return Clause{Name: m[1], Expr: m[2]}
	}
	return Clause{Expr: s}
}
