package linkify

import "regexp"

// Rule is an option value that is either a constant or computed per match.
// The zero Rule is unset.
type Rule[T any] struct {
	fn func(Match) T
}

// Const returns a rule that yields v for every match.
func Const[T any](v T) Rule[T] {
	return Rule[T]{fn: func(Match) T { return v }}
}

// Func returns a rule computed from each match.
func Func[T any](fn func(Match) T) Rule[T] {
	return Rule[T]{fn: fn}
}

// IsSet reports whether the rule was configured.
func (r Rule[T]) IsSet() bool {
	return r.fn != nil
}

// Eval evaluates the rule for m. ok is false when the rule is unset.
func (r Rule[T]) Eval(m Match) (v T, ok bool) {
	if r.fn == nil {
		return v, false
	}
	return r.fn(m), true
}

// Attribute is an extra attribute written on the generated anchor.
// A Bare attribute is rendered as its name alone.
type Attribute struct {
	Name  string
	Value string
	Bare  bool
}

// SpecialTransform replaces the whole rendering of matches whose text
// matches Test.
type SpecialTransform struct {
	Test      *regexp.Regexp
	Transform func(Match) string
}

// Options configures Transform and Render. A nil *Options renders plain
// anchors.
type Options struct {
	// Exclude leaves matching text untouched when it evaluates to true.
	Exclude Rule[bool]

	// Protocol is prefixed to the href of matches that carry none. The
	// default depends on the kind: mailto:, file:/// or http://.
	Protocol Rule[string]

	// Truncate limits the visible text to this many characters. Zero or
	// less means unbounded.
	Truncate Rule[int]

	// MiddleTruncation keeps both ends of truncated text instead of the head.
	MiddleTruncation Rule[bool]

	Attributes Rule[[]Attribute]

	// SpecialTransforms are checked in order before anything else.
	SpecialTransforms []SpecialTransform
}

// Extension rewrites the input before it is scanned. Every non-overlapping
// match of Test is replaced by the result of Replace. When Replace is nil,
// Template is expanded instead, with $1 or ${name} standing for submatches
// as in regexp.Regexp.ReplaceAllString.
type Extension struct {
	Test     *regexp.Regexp
	Replace  func(string) string
	Template string
}

func (e Extension) apply(input string) string {
	switch {
	case e.Test == nil:
		return input
	case e.Replace != nil:
		return e.Test.ReplaceAllStringFunc(input, e.Replace)
	default:
		return e.Test.ReplaceAllString(input, e.Template)
	}
}
