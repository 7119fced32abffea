package syntax

// ErrorCode describes why a pattern failed to compile.
type ErrorCode string

// Compile error codes. Only ErrNestingDepth is reported without the Strict
// flag; every other code marks input that lenient compilation degrades into
// literal characters.
const (
	ErrMissingBracket        ErrorCode = "missing closing ]"
	ErrMissingParen          ErrorCode = "missing closing )"
	ErrUnexpectedParen       ErrorCode = "unexpected )"
	ErrTrailingBackslash     ErrorCode = "trailing backslash at end of expression"
	ErrMissingRepeatArgument ErrorCode = "missing argument to repetition operator"
	ErrInvalidNestedRepeat   ErrorCode = "invalid nested repetition operator"
	ErrInvalidBackref        ErrorCode = "invalid backreference"
	ErrNestingDepth          ErrorCode = "expression nests too deeply"
)

func (e ErrorCode) String() string {
	return string(e)
}

// Error describes a failure to compile a pattern and the offending fragment.
type Error struct {
	Code ErrorCode
	Expr string
}

func (e *Error) Error() string {
	return "error parsing pattern: " + e.Code.String() + ": `" + e.Expr + "`"
}

// Is reports whether target is an *Error with the same code, so callers can
// write errors.Is(err, &syntax.Error{Code: syntax.ErrMissingParen}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code && (t.Expr == "" || t.Expr == e.Expr)
}
