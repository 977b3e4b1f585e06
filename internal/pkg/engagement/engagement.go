package engagement

import "math"

// Metrics 单条帖子或单日的四项互动计数，nil 视为 0
type Metrics struct {
	Likes    *int
	Comments *int
	Shares   *int
	Saves    *int
}

// TrendIndicator 两个周期之间的变化指标
type TrendIndicator struct {
	Value      float64 `json:"value"`
	IsPositive bool    `json:"isPositive"`
	RateChange float64 `json:"rateChange"`
}

// Calculate 计算总互动数 = 点赞 + 评论 + 分享 + 收藏
func Calculate(m Metrics) int {
	return Value(m.Likes) + Value(m.Comments) + Value(m.Shares) + Value(m.Saves)
}

// Change 计算百分比变化。基数为 0 时有增长记 100，无增长记 0，不会返回 Inf/NaN
func Change(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return (current - previous) / previous * 100
}

// Trend 比较两个标量：Value 为变化的绝对值（1 位小数），IsPositive 为变化是否非负
func Trend(current, previous float64) TrendIndicator {
	change := Change(current, previous)
	return TrendIndicator{
		Value:      Round(math.Abs(change), 1),
		IsPositive: change >= 0,
		RateChange: Round(change, 1),
	}
}

// Round 四舍五入到 places 位小数
func Round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}

// Value 解引用可空计数
func Value(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

// Float 解引用可空浮点值
func Float(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
