package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ItemsScraped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "flyer_items_scraped_total",
			Help: "Total de itens extraídos dos flyers",
		},
	)
	CacheHits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "classification_cache_hits_total",
			Help: "Itens servidos do cache de classificação",
		},
	)
	CacheMisses = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "classification_cache_misses_total",
			Help: "Itens enviados ao classificador externo",
		},
	)
	ClassifyBatchFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "classify_batch_failures_total",
			Help: "Lotes de classificação que falharam",
		},
	)
	HistoryRows = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "history_rows",
			Help: "Linhas no histórico após o merge",
		},
	)
)

func Start(port string) {
	prometheus.MustRegister(ItemsScraped, CacheHits, CacheMisses, ClassifyBatchFailures, HistoryRows)
	http.Handle("/metrics", promhttp.Handler())
	go http.ListenAndServe(":"+port, nil)
}
