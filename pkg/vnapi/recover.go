package vnapi

import "fmt"

// guard recovers from a panic inside fn and turns it into an internal
// APIError instead of letting it escape the API boundary. Grounded on
// the teacher's pkg/engine/engine.go pattern of recovering at the
// sandbox call boundary rather than letting a script panic take down the
// host; here the "sandbox" is untrusted input (SVG path data, JSON) that
// reaches a hand-written recursive-descent parser.
func guard(fn func() Result) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = fail(internalError(fmt.Sprintf("panic: %v", r)))
		}
	}()
	return fn()
}
