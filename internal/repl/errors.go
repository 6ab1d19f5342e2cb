// Package repl implements Cortado's interactive front end: a
// readline-driven, color-coded REPL plus the one-shot/script CLI paths.
package repl

import (
	"github.com/fatih/color"
	"github.com/leinonen/cortado/pkg/core"
)

// ErrorFormatter colors an error by its taxonomy Kind, the way the
// teacher's pkg/repl/errors.go colors by a category it has to re-derive
// from the message text via categorizeError. Cortado's EvalError/
// ParseError already carry a typed Kind, so the formatter maps directly
// from it instead of string-sniffing.
type ErrorFormatter struct {
	parseColor   *color.Color
	runtimeColor *color.Color
	undefColor   *color.Color
	typeColor    *color.Color
	fileColor    *color.Color
	nsColor      *color.Color
	generalColor *color.Color
	prefixColor  *color.Color
}

func NewErrorFormatter() *ErrorFormatter {
	return &ErrorFormatter{
		parseColor:   color.New(color.FgRed, color.Bold),
		runtimeColor: color.New(color.FgMagenta, color.Bold),
		undefColor:   color.New(color.FgYellow, color.Bold),
		typeColor:    color.New(color.FgCyan, color.Bold),
		fileColor:    color.New(color.FgBlue, color.Bold),
		nsColor:      color.New(color.FgGreen, color.Bold),
		generalColor: color.New(color.FgWhite, color.Bold),
		prefixColor:  color.New(color.FgRed, color.Bold),
	}
}

func (ef *ErrorFormatter) colorFor(err error) (*color.Color, string) {
	switch e := err.(type) {
	case *core.ParseError:
		return ef.parseColor, "ParseError"
	case *core.EvalError:
		switch e.Kind {
		case core.KindUndefinedSymbol:
			return ef.undefColor, e.Kind.String()
		case core.KindTypeError:
			return ef.typeColor, e.Kind.String()
		case core.KindIOFailure:
			return ef.fileColor, e.Kind.String()
		case core.KindNamespaceLoadFailure:
			return ef.nsColor, e.Kind.String()
		case core.KindArityError, core.KindDivideByZero, core.KindRecursionLimit, core.KindUninitializedAccess:
			return ef.runtimeColor, e.Kind.String()
		default:
			return ef.generalColor, e.Kind.String()
		}
	default:
		return ef.generalColor, "Error"
	}
}

// Format renders err with its category color and label prefix.
func (ef *ErrorFormatter) Format(err error) string {
	c, label := ef.colorFor(err)
	prefix := ef.prefixColor.Sprintf("[%s]", label)
	return prefix + " " + c.Sprint(err.Error())
}
