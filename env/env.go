package env

// Logger writes a log line built from message parts.
type Logger func(message ...any)

// ReadFileFunc loads a resource such as a font file.
type ReadFileFunc func(path string) ([]byte, error)

var (
	// Log is the default logger for the current build target
	// (stdout on the backend, console.log in the browser).
	Log = SetupDefaultLogger()
	// ReadFile loads resources: a file path on the backend, a URL in the browser.
	// eg: ReadFile("fonts/roboto.ttf")
	ReadFile = SetupDefaultFileReader()
)

// Discard is a Logger that drops everything.
func Discard(message ...any) {}
