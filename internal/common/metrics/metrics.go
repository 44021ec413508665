// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TurnsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "concierge_turns_processed_total",
			Help: "Total number of conversational turns processed by intent",
		},
		[]string{"intent"},
	)

	ElicitationsIssued = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "concierge_elicitations_issued_total",
			Help: "Total number of slot elicitation responses by slot name",
		},
		[]string{"slot"},
	)

	SuggestionsServed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "concierge_suggestions_served_total",
			Help: "Total number of restaurant suggestions returned to users",
		},
	)

	StoreQueryFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "concierge_store_query_failures_total",
			Help: "Total number of failed restaurant store queries",
		},
	)

	PublishFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "concierge_publish_failures_total",
			Help: "Total number of failed suggestion notifications",
		},
	)

	RelayRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "concierge_relay_requests_total",
			Help: "Total number of front-door relay requests by status",
		},
		[]string{"status"},
	)

	IngestRecordsWritten = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "concierge_ingest_records_written_total",
			Help: "Total number of restaurant records written by cuisine",
		},
		[]string{"cuisine"},
	)
)
