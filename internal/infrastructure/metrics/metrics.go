package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Message metrics
	MessagesReceived *prometheus.CounterVec
	IntentsDetected  *prometheus.CounterVec
	ModelDuration    *prometheus.HistogramVec
	ModelErrors      *prometheus.CounterVec

	// Extraction metrics
	ExtractionFailures *prometheus.CounterVec
	CandidatesHeld     prometheus.Counter

	// Commit metrics
	CommitsConfirmed prometheus.Counter
	CommitsRejected  prometheus.Counter
	CommitsExpired   prometheus.Counter
	CommitFailures   *prometheus.CounterVec
	CommitDuration   prometheus.Histogram

	// Wallet metrics
	WalletsCreated prometheus.Counter
	Transfers      prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		MessagesReceived: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "duitbot_messages_received_total",
				Help: "Total inbound updates by kind",
			},
			[]string{"kind"},
		),
		IntentsDetected: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "duitbot_intents_detected_total",
				Help: "Total classified intents by type",
			},
			[]string{"intent"},
		),
		ModelDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "duitbot_model_duration_seconds",
				Help:    "Duration of model calls by operation",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		ModelErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "duitbot_model_errors_total",
				Help: "Total model call errors by operation",
			},
			[]string{"operation"},
		),

		ExtractionFailures: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "duitbot_extraction_failures_total",
				Help: "Total extraction failures by reason",
			},
			[]string{"reason"},
		),
		CandidatesHeld: promauto.NewCounter(prometheus.CounterOpts{
			Name: "duitbot_candidates_held_total",
			Help: "Total candidate batches parked for confirmation",
		}),

		CommitsConfirmed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "duitbot_commits_confirmed_total",
			Help: "Total confirmed ledger commits",
		}),
		CommitsRejected: promauto.NewCounter(prometheus.CounterOpts{
			Name: "duitbot_commits_rejected_total",
			Help: "Total rejected candidate batches",
		}),
		CommitsExpired: promauto.NewCounter(prometheus.CounterOpts{
			Name: "duitbot_commits_expired_total",
			Help: "Total confirmations that found no pending state",
		}),
		CommitFailures: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "duitbot_commit_failures_total",
				Help: "Total failed ledger commits by reason",
			},
			[]string{"reason"},
		),
		CommitDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "duitbot_commit_duration_seconds",
			Help:    "Duration of ledger commit transactions",
			Buckets: prometheus.DefBuckets,
		}),

		WalletsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "duitbot_wallets_created_total",
			Help: "Total wallets created",
		}),
		Transfers: promauto.NewCounter(prometheus.CounterOpts{
			Name: "duitbot_transfers_total",
			Help: "Total wallet-to-wallet transfers",
		}),
	}
}
