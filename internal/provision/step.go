package provision

import (
	"fmt"

	"hebtex-setup/internal/logger"
)

// Status is the outcome of a single provisioning step.
type Status int

const (
	// StatusSatisfied means the step's existence predicate already held
	// and the action was skipped.
	StatusSatisfied Status = iota
	// StatusPerformed means the action ran and the predicate held on the
	// re-check afterwards.
	StatusPerformed
	// StatusSoftFailed means the step failed but the run continues; soft
	// failures are aggregated into the final warnings summary and never
	// change the process exit status.
	StatusSoftFailed
	// StatusHardFailed means the step failed and the run aborts.
	StatusHardFailed
)

// String returns a short human-readable label for log lines.
func (s Status) String() string {
	switch s {
	case StatusSatisfied:
		return "already satisfied"
	case StatusPerformed:
		return "performed"
	case StatusSoftFailed:
		return "failed (warning)"
	case StatusHardFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Step is one named, independently idempotent provisioning operation.
// Check is the existence predicate; when it reports true the action is
// skipped. Run performs the action; a nil Run makes the step a pure
// precondition whose failed Check is itself the failure.
type Step struct {
	Name  string
	Fatal bool // a failure aborts the run instead of becoming a warning
	Check func() (bool, string)
	Run   func() error
}

// Result records how a step ended.
type Result struct {
	Step    string
	Status  Status
	Message string
}

// Execute runs the steps strictly in order. Each step's predicate is
// evaluated first; an unsatisfied step runs its action and is then
// re-checked, so a "performed" result always means the predicate was
// verified to hold afterwards, not merely that the action returned no
// error.
//
// A hard failure stops execution immediately and is returned as the error;
// the results accumulated so far are still returned so the caller can
// report them. With a nil error, results holds one entry per step.
func Execute(steps []Step) ([]Result, error) {
	results := make([]Result, 0, len(steps))

	for _, s := range steps {
		res := runStep(s)
		results = append(results, res)

		switch res.Status {
		case StatusSatisfied:
			logger.Info("[INFO] %s: %s. Skipping.\n", s.Name, res.Message)
		case StatusPerformed:
			logger.Info("[INFO] %s: done.\n", s.Name)
		case StatusSoftFailed:
			logger.Warn("[WARN] %s: %s\n", s.Name, res.Message)
		case StatusHardFailed:
			logger.Error("[ERROR] %s: %s\n", s.Name, res.Message)
			return results, fmt.Errorf("%s: %s", s.Name, res.Message)
		}
	}
	return results, nil
}

// Warnings filters the soft failures out of a result list for the final
// summary.
func Warnings(results []Result) []Result {
	var warns []Result
	for _, r := range results {
		if r.Status == StatusSoftFailed {
			warns = append(warns, r)
		}
	}
	return warns
}

func runStep(s Step) Result {
	logger.Debug("[DEBUG] Checking step %q\n", s.Name)

	if ok, msg := s.Check(); ok {
		return Result{Step: s.Name, Status: StatusSatisfied, Message: msg}
	} else if s.Run == nil {
		// Pure precondition: nothing to perform, the failed check is final.
		return Result{Step: s.Name, Status: failStatus(s), Message: msg}
	}

	logger.Debug("[DEBUG] Running step %q\n", s.Name)
	if err := s.Run(); err != nil {
		return Result{Step: s.Name, Status: failStatus(s), Message: err.Error()}
	}

	// Re-derive the predicate after acting; the action succeeding is not
	// proof that the machine is in the desired state.
	if ok, msg := s.Check(); !ok {
		return Result{
			Step:    s.Name,
			Status:  failStatus(s),
			Message: fmt.Sprintf("action completed but check still fails: %s", msg),
		}
	}
	return Result{Step: s.Name, Status: StatusPerformed}
}

func failStatus(s Step) Status {
	if s.Fatal {
		return StatusHardFailed
	}
	return StatusSoftFailed
}
