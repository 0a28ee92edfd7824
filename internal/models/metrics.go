package models

import "time"

// MetricsSnapshot summarises process instrumentation for the JSON metrics endpoint.
type MetricsSnapshot struct {
	RequestsTotal            uint64    `json:"requests_total"`
	AverageRequestDurationMs float64   `json:"average_request_duration_ms"`
	DBQueryCount             uint64    `json:"db_query_count"`
	AverageDBQueryDurationMs float64   `json:"average_db_query_duration_ms"`
	DocumentsRendered        uint64    `json:"documents_rendered"`
	PagesRendered            uint64    `json:"pages_rendered"`
	RenderFailures           uint64    `json:"render_failures"`
	AverageRenderDurationMs  float64   `json:"average_render_duration_ms"`
	Goroutines               int       `json:"goroutines"`
	GeneratedAt              time.Time `json:"generated_at"`
}
