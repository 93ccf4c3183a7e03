package httperror

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Construction counters. They observe every finalized Error and every family
// redirection, labeled so dashboards can split warn/error traffic by code
// and spot callers that routinely construct against the wrong family. The
// collectors only surface when RegisterMetrics is called; counting into
// unregistered collectors is still safe and costs little.
var (
	constructedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "httperror",
		Name:      "constructed_total",
		Help:      "Errors constructed, by family and code.",
	}, []string{"family", "code"})

	redirectedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "httperror",
		Name:      "redirected_total",
		Help:      "Constructions re-dispatched to another family because of their status.",
	}, []string{"from", "to"})
)

// RegisterMetrics registers the package collectors with reg. Call it once at
// startup, typically with prometheus.DefaultRegisterer; leaving it uncalled
// keeps the package silent.
func RegisterMetrics(reg prometheus.Registerer) error {
	if err := reg.Register(constructedTotal); err != nil {
		return err
	}

	return reg.Register(redirectedTotal)
}

func countConstructed(e *Error) {
	constructedTotal.WithLabelValues(e.family.String(), e.code).Inc()
}

func countRedirect(from, to Family) {
	redirectedTotal.WithLabelValues(from.String(), to.String()).Inc()
}
