package vnapi

// Result is the strict surface's uniform return value: on success OK is
// true and Value carries the operation's result (nil for operations with
// no meaningful return), on failure OK is false and Err describes what
// went wrong. Every strict operation validates its arguments fully
// before touching the store, aborting on the FIRST invalid argument and
// making no mutation at all — a deliberate departure from the teacher's
// bulk ValidateAll-then-report style, recorded in SPEC_FULL.md §7: the
// strict surface is a boundary contract for a single call's arguments,
// not a batch form to be filled in and resubmitted.
type Result struct {
	OK    bool
	Value any
	Err   *APIError
}

func ok(v any) Result         { return Result{OK: true, Value: v} }
func fail(e *APIError) Result { return Result{OK: false, Err: e} }
func okVoid() Result          { return Result{OK: true} }
