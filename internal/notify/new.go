package notify

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"taskdeck/internal/model"
	pkgLog "taskdeck/pkg/log"
)

// DefaultPollInterval matches the five-minute due-task check period.
const DefaultPollInterval = 5 * time.Minute

// Poller drives the due-task notification feed: one immediate check
// when it starts, then one per interval. Poll failures are logged and
// swallowed; a broken feed never disrupts the rest of the UI.
type Poller struct {
	l        pkgLog.Logger
	repo     Repository
	interval time.Duration
	limiter  *rate.Limiter
	onChange func()
	gate     func() bool

	mu            sync.Mutex
	panelOpen     bool
	checking      bool
	notifications []model.Notification
}

// New creates a Poller. onChange, when non-nil, fires after every
// cache change so the owning view can re-render; it must be cheap.
func New(l pkgLog.Logger, repo Repository, interval time.Duration, onChange func()) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Poller{
		l:        l,
		repo:     repo,
		interval: interval,
		// Panel open/close churn retriggers checks; floor them so the
		// backend sees at most one due-task sweep per minute.
		limiter:  rate.NewLimiter(rate.Every(time.Minute), 1),
		onChange: onChange,
	}
}

// SetGate installs a predicate consulted before each sweep. When it
// returns false the sweep is skipped entirely, so an unauthenticated
// session never hits notification endpoints.
func (p *Poller) SetGate(gate func() bool) {
	p.gate = gate
}

func (p *Poller) notifyChanged() {
	if p.onChange != nil {
		p.onChange()
	}
}
