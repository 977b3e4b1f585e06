package aggregation

import (
	"SocialPulse/internal/pkg/daterange"
	"time"
)

// DailyPoint 账户级每日指标
type DailyPoint struct {
	Date       string `json:"date"`
	Engagement int    `json:"engagement"`
	Reach      int    `json:"reach"`
}

// SumDailyPoints 合并多个账户同一天的记录
func SumDailyPoints(points []DailyPoint) map[string]*DailyPoint {
	res := make(map[string]*DailyPoint, len(points))
	for _, p := range points {
		if cur, ok := res[p.Date]; ok {
			cur.Engagement += p.Engagement
			cur.Reach += p.Reach
			continue
		}
		cp := p
		res[p.Date] = &cp
	}
	return res
}

// FillMissingPoints 与 FillMissingDates 规则一致
func FillMissingPoints(start, end time.Time, points map[string]*DailyPoint) []*DailyPoint {
	n := daterange.DaysBetween(start, end) + 1
	if n <= 0 {
		return make([]*DailyPoint, 0)
	}

	res := make([]*DailyPoint, 0, n)
	cur := daterange.Midnight(start)
	for i := 0; i < n; i++ {
		dateStr := daterange.DateOnly(cur)
		if p, ok := points[dateStr]; ok {
			res = append(res, p)
		} else {
			res = append(res, &DailyPoint{Date: dateStr})
		}
		cur = cur.AddDate(0, 0, 1)
	}
	return res
}
