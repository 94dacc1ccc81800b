package gameplay

// Outcome is the result of submitting one line of input
type Outcome int

const (
	OutcomeIgnored   Outcome = iota // blank input, nothing happens
	OutcomeCorrect                  // new entity found
	OutcomeWon                      // new entity found and the catalog is complete
	OutcomeDuplicate                // entity was already found
	OutcomeInvalid                  // no entity by that name
	OutcomeQuit                     // "exit"
	OutcomeReveal                   // "show"
	OutcomeClosed                   // session already over
)

var outcomeNames = map[Outcome]string{
	OutcomeIgnored:   "ignored",
	OutcomeCorrect:   "correct",
	OutcomeWon:       "won",
	OutcomeDuplicate: "duplicate",
	OutcomeInvalid:   "invalid",
	OutcomeQuit:      "quit",
	OutcomeReveal:    "reveal",
	OutcomeClosed:    "closed",
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return "unknown"
}

// Ends reports whether the outcome moved the session to a terminal state
func (o Outcome) Ends() bool {
	return o == OutcomeWon || o == OutcomeQuit || o == OutcomeReveal
}
