package app

import (
	"errors"
	"fmt"
)

// Step identifies a stage of the linear run state machine. Each run moves
// START → LOAD_RECIPIENTS → LOAD_ENTITIES → MATCH_WINDOW → DISPATCH → DONE,
// with FAILED reachable from any step on an unrecoverable error.
type Step string

const (
	StepLoadRecipients Step = "LOAD_RECIPIENTS"
	StepLoadEntities   Step = "LOAD_ENTITIES"
	StepMatchWindow    Step = "MATCH_WINDOW"
	StepDispatch       Step = "DISPATCH"
)

// failureMarker is the fixed string logged on entry to FAILED, relied upon
// by downstream log scraping.
const failureMarker = "run failed"

// sendFailureMarker is the fixed string logged for contained per-delivery
// failures.
const sendFailureMarker = "send failed"

// ErrRunInProgress is returned when a scheduler tick arrives while the
// previous run of the same orchestrator is still in flight.
var ErrRunInProgress = errors.New("announcement run already in progress")

// RunError reports an unrecoverable failure that moved a run into FAILED,
// carrying the step that triggered it.
type RunError struct {
	Step Step
	Err  error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("%s at %s: %v", failureMarker, e.Step, e.Err)
}

func (e *RunError) Unwrap() error {
	return e.Err
}

// DeliveryFailure records one contained per-recipient delivery failure.
type DeliveryFailure struct {
	Recipient string
	Channel   string
	Err       error
}

// Report summarizes the dispatch phase of a run. Contained failures are
// counted and carried here so callers can assert on outcomes without
// parsing log output.
type Report struct {
	Attempted int
	Sent      int
	Failures  []DeliveryFailure
}

// Failed returns the number of contained delivery failures.
func (r Report) Failed() int {
	return len(r.Failures)
}
