package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being served",
		},
	)
)

// Game Metrics
var (
	TrainingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "game_trainings_total",
			Help: "Training sessions completed, by outcome",
		},
		[]string{"outcome"},
	)

	ChestsOpened = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "game_chests_opened_total",
			Help: "Loot chests opened, by rarity",
		},
		[]string{"rarity"},
	)

	ItemsSold = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "game_items_sold_total",
			Help: "Items sold back to the shop",
		},
	)

	MissionsClaimed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "game_missions_claimed_total",
			Help: "Daily missions claimed",
		},
	)

	BattlesFought = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "game_battles_total",
			Help: "Scripted combat encounters, by encounter and result",
		},
		[]string{"encounter", "result"},
	)
)
