package validator

type entry struct {
	path    string
	message string
}

// Accumulator collects error messages by path for a single run.
// It is append-only and keeps the order in which messages were reported.
type Accumulator struct {
	entries []entry
	errs    Errors
}

// NewAccumulator returns an empty accumulator. Every top-level run gets its own.
func NewAccumulator() *Accumulator {
	return &Accumulator{errs: make(Errors)}
}

// Report appends message to the list kept for path. Empty messages are ignored.
func (a *Accumulator) Report(path, message string) {
	if message == "" {
		return
	}
	a.entries = append(a.entries, entry{path: path, message: message})
	a.errs[path] = append(a.errs[path], message)
}

// Errors returns a copy of the collected messages.
func (a *Accumulator) Errors() Errors {
	out := make(Errors, len(a.errs))
	for path, msgs := range a.errs {
		out[path] = append([]string(nil), msgs...)
	}
	return out
}

// Valid reports whether nothing has been collected.
func (a *Accumulator) Valid() bool {
	return len(a.errs) == 0
}

// Len returns the number of paths with at least one message.
func (a *Accumulator) Len() int {
	return len(a.errs)
}

// drainInto replays every entry into dst in insertion order and empties a.
func (a *Accumulator) drainInto(dst *Accumulator) {
	for _, e := range a.entries {
		dst.Report(e.path, e.message)
	}
	a.entries = nil
	a.errs = make(Errors)
}
