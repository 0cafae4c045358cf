package metrics

import (
	"wager-tracker/internal/core/domain"
	"wager-tracker/pkg/apperror"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeOK       = "ok"
	outcomeRejected = "rejected"
	outcomeError    = "error"
)

// Recorder implements ports.MetricsRecorder with Prometheus counters.
type Recorder struct {
	transitions *prometheus.CounterVec
	settlements *prometheus.CounterVec
}

// NewRecorder creates the counters and registers them with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wager",
			Name:      "transitions_total",
			Help:      "Lifecycle operations by action and outcome (ok, rejected, error).",
		}, []string{"action", "outcome"}),
		settlements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wager",
			Name:      "settlements_total",
			Help:      "Settlements by recorded result and kind (settle, resettle).",
		}, []string{"result", "kind"}),
	}
	reg.MustRegister(r.transitions, r.settlements)
	return r
}

// ObserveTransition counts one lifecycle operation. User rejections are
// counted apart from faults.
func (r *Recorder) ObserveTransition(action domain.WagerAction, err error) {
	outcome := outcomeOK
	switch {
	case err == nil:
	case apperror.IsUserRejection(err):
		outcome = outcomeRejected
	default:
		outcome = outcomeError
	}
	r.transitions.WithLabelValues(string(action), outcome).Inc()
}

// ObserveSettlement counts a committed settlement.
func (r *Recorder) ObserveSettlement(result domain.Result, resettle bool) {
	kind := "settle"
	if resettle {
		kind = "resettle"
	}
	r.settlements.WithLabelValues(string(result), kind).Inc()
}
