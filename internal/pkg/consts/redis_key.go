package consts

const (
	DailyMetricsKey = "analytics:daily:"
)
