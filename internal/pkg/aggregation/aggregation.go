package aggregation

import (
	"SocialPulse/internal/pkg/daterange"
	"SocialPulse/internal/pkg/engagement"
	"time"
)

// Record 可按天聚合的单条帖子数据
type Record interface {
	PostedTime() time.Time
	EngagementMetrics() engagement.Metrics
}

// DailyBucket 单个自然日的汇总
type DailyBucket struct {
	Date     string `json:"date"`
	Likes    int    `json:"likes"`
	Comments int    `json:"comments"`
	Shares   int    `json:"shares"`
	Saves    int    `json:"saves"`
	Total    int    `json:"total"`
}

// Totals 一段日期序列的合计
type Totals struct {
	Likes    int `json:"likes"`
	Comments int `json:"comments"`
	Shares   int `json:"shares"`
	Saves    int `json:"saves"`
	Total    int `json:"total"`
}

func (b *DailyBucket) add(m engagement.Metrics) {
	b.Likes += engagement.Value(m.Likes)
	b.Comments += engagement.Value(m.Comments)
	b.Shares += engagement.Value(m.Shares)
	b.Saves += engagement.Value(m.Saves)
	// total 始终由四项重新求和，不单独累加
	b.Total = b.Likes + b.Comments + b.Shares + b.Saves
}

// AggregateByDate 按发布时间的 UTC 日期汇总
func AggregateByDate[R Record](records []R) map[string]*DailyBucket {
	buckets := make(map[string]*DailyBucket)
	for _, r := range records {
		date := daterange.DateOnly(r.PostedTime())
		b, ok := buckets[date]
		if !ok {
			b = &DailyBucket{Date: date}
			buckets[date] = b
		}
		b.add(r.EngagementMetrics())
	}
	return buckets
}

// FillMissingDates 从 start 到 end（含）逐日输出，缺失的日期补零。
// 长度恰为 DaysBetween(start, end)+1，end 早于 start 时为空
func FillMissingDates(start, end time.Time, buckets map[string]*DailyBucket) []*DailyBucket {
	n := daterange.DaysBetween(start, end) + 1
	if n <= 0 {
		return make([]*DailyBucket, 0)
	}

	res := make([]*DailyBucket, 0, n)
	cur := daterange.Midnight(start)
	for i := 0; i < n; i++ {
		dateStr := daterange.DateOnly(cur)
		if b, ok := buckets[dateStr]; ok {
			res = append(res, b)
		} else {
			res = append(res, &DailyBucket{Date: dateStr})
		}
		cur = cur.AddDate(0, 0, 1)
	}
	return res
}

// CalculateTotals 逐项求和，空序列返回全零
func CalculateTotals(days []*DailyBucket) Totals {
	var t Totals
	for _, d := range days {
		t.Likes += d.Likes
		t.Comments += d.Comments
		t.Shares += d.Shares
		t.Saves += d.Saves
		t.Total += d.Total
	}
	return t
}
