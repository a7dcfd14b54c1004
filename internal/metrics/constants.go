package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameTournamentsCreated  = "tournaments_created_total"
	MetricNamePredictionsPlaced   = "predictions_placed_total"
	MetricNameTournamentsResolved = "tournaments_resolved_total"
	MetricNameWinningsClaimed     = "winnings_claimed_total"
	MetricNameWinningsPaid        = "winnings_paid_units_total"
	MetricNameFeesCollected       = "entry_fees_collected_units_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextTournamentsCreated  = "Total number of tournaments created"
	HelpTextPredictionsPlaced   = "Total number of predictions placed"
	HelpTextTournamentsResolved = "Total number of tournaments resolved"
	HelpTextWinningsClaimed     = "Total number of successful winnings claims"
	HelpTextWinningsPaid        = "Total currency units paid out as winnings"
	HelpTextFeesCollected       = "Total currency units collected as entry fees"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelCategory = "category"
)

// HTTPLatencyBuckets are the histogram buckets for request latency.
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}
