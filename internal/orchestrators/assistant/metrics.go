package assistant

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	decisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pokidex_decisions_total",
			Help: "Routing decisions by kind (action, final, unparseable).",
		},
		[]string{"kind"},
	)
	toolDispatchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pokidex_tool_dispatch_total",
			Help: "Tool runs by tool and outcome.",
		},
		[]string{"tool", "outcome"},
	)
	answersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pokidex_answers_total",
			Help: "Answered queries by mode.",
		},
		[]string{"mode"},
	)
)
