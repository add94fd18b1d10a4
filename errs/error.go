package errs

import (
	"github.com/tinywasm/fmt"
)

// errMessage is a plain error whose message is built from a list of parts.
// The first error part, if any, is kept so errors.Is can see through it.
type errMessage struct {
	message string
	wrapped error
}

func (e *errMessage) Error() string {
	return e.message
}

func (e *errMessage) Unwrap() error {
	return e.wrapped
}

// New joins args with single spaces. A ':' rune is glued to the previous
// part, empty strings are skipped.
func New(args ...any) error {
	e := &errMessage{}
	var space string

	for _, arg := range args {
		switch v := arg.(type) {
		case string:
			if v == "" {
				continue
			}
			e.message += space + v
		case []string:
			for _, s := range v {
				if s == "" {
					continue
				}
				e.message += space + s
				space = " "
			}
		case rune:
			if v == ':' {
				e.message += ":"
				continue
			}
			e.message += space + string(v)
		case error:
			if e.wrapped == nil {
				e.wrapped = v
			}
			e.message += space + v.Error()
		default:
			e.message += space + fmt.Sprintf("%v", v)
		}
		space = " "
	}

	return e
}

var ErrFontNotReady = New("font metrics not ready")

var ErrEmptyDataset = New("empty dataset")

var ErrLengthMismatch = New("categories and values differ in length")

var ErrInvalidConfig = New("invalid chart config")

var ErrFontFile = New("font file")
