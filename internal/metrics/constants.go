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
	MetricNameCasesOpened     = "cases_opened_total"
	MetricNameItemsDropped    = "items_dropped_total"
	MetricNameStatTrakDropped = "stattrak_dropped_total"
	MetricNameTradeUps        = "tradeups_total"
	MetricNameItemsSold       = "items_sold_total"
	MetricNameItemsBought     = "items_bought_total"
	MetricNameMoneyEarned     = "money_earned_total"
	MetricNameMoneySpent      = "money_spent_total"
	MetricNameCooldownHits    = "cooldown_rejections_total"
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
	HelpTextCasesOpened     = "Total number of cases opened"
	HelpTextItemsDropped    = "Total number of items dropped from cases by rarity"
	HelpTextStatTrakDropped = "Total number of StatTrak items dropped"
	HelpTextTradeUps        = "Total number of completed trade-up contracts"
	HelpTextItemsSold       = "Total number of items sold"
	HelpTextItemsBought     = "Total number of items bought on the market"
	HelpTextMoneyEarned     = "Total money earned from selling items"
	HelpTextMoneySpent      = "Total money spent on cases and market items"
	HelpTextCooldownHits    = "Total number of case opens rejected by a cooldown"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelCase   = "case"
	LabelRarity = "rarity"
	LabelSource = "source"
	LabelResult = "result"
)

// unmatchedRoute labels requests that never reached a chi route.
const unmatchedRoute = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
