package hooks

// Event names used in outcomes and logs.
const (
	EventLoginSuccess  = "login.success"
	EventFilterAppData = "filter.app-data"
)

// Outcome is the result of one handler run.
type Outcome struct {
	Handler string
	Event   string
	Err     error
	// Changed reports whether the handler mutated event data.
	Changed bool
}

// OK reports whether the handler completed without error.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Done is a successful outcome that left event data untouched.
func Done() Outcome {
	return Outcome{}
}

// Changed is a successful outcome that mutated event data.
func Changed() Outcome {
	return Outcome{Changed: true}
}

// Failed wraps err into an outcome.
func Failed(err error) Outcome {
	return Outcome{Err: err}
}
