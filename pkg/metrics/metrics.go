package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ClassificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "router_classifications_total",
			Help: "Total number of classified queries by resulting route",
		},
		[]string{"route"},
	)

	ClassificationScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "router_classification_score",
			Help:    "Winning cosine similarity per classification",
			Buckets: prometheus.LinearBuckets(-0.2, 0.1, 13),
		},
	)

	EmbeddingCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "embedding_query_cache_lookups_total",
			Help: "Query embedding cache lookups by result",
		},
		[]string{"result"},
	)

	FaqIngestionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "faq_ingestions_total",
			Help: "FAQ ingestion runs by outcome",
		},
		[]string{"outcome"},
	)

	FaqRetrievedEntries = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "faq_retrieved_entries",
			Help:    "Number of FAQ entries returned per retrieval",
			Buckets: []float64{0, 1, 2, 3, 5, 10},
		},
	)

	AnswerGenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "faq_answer_generations_total",
			Help: "Answer generation attempts by outcome",
		},
		[]string{"outcome"},
	)

	AnswerDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "faq_answer_duration_seconds",
			Help: "End-to-end duration of the FAQ answer pipeline",
		},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "conversation_active_sessions",
			Help: "Number of conversation sessions currently held in memory",
		},
	)

	LLMRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "llm_requests_total",
			Help: "LLM provider calls after retries, by provider and outcome",
		},
		[]string{"provider", "outcome"},
	)

	LLMTokensTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "llm_tokens_total",
			Help: "Tokens reported by LLM providers, by direction",
		},
		[]string{"provider", "direction"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by method, route and status class",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by method and route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)
