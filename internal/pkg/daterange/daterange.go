package daterange

import "time"

const day = 24 * time.Hour

// Window 时间窗口，两端均为闭区间
type Window struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// Periods 当前窗口与紧邻其前、等长且不重叠的对比窗口
type Periods struct {
	Current  Window `json:"current"`
	Previous Window `json:"previous"`
}

// IsLeapYear 判断公历闰年
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// MaxDaysInYear 返回 now 所在年份的天数，直接作为 days 参数的上限
func MaxDaysInYear(now time.Time) int {
	if IsLeapYear(now.UTC().Year()) {
		return 366
	}
	return 365
}

// MaxDaysInCurrentYear 当前年份的天数
func MaxDaysInCurrentYear() int {
	return MaxDaysInYear(time.Now())
}

// Range 计算长度为 days 的窗口。默认不包含今天，避免拿未结束的一天与完整的一天比较
func Range(now time.Time, days int, includeToday bool) Window {
	end := now.UTC()
	if !includeToday {
		end = end.Add(-day)
	}
	return Window{
		StartDate: end.AddDate(0, 0, -days),
		EndDate:   end,
	}
}

// Comparison 计算当前窗口和上一周期窗口。
// previous.EndDate 恰好比 current.StartDate 早一天，两者都覆盖 days+1 个自然日
func Comparison(now time.Time, days int) Periods {
	current := Range(now, days, false)
	prevEnd := current.StartDate.AddDate(0, 0, -1)
	return Periods{
		Current: current,
		Previous: Window{
			StartDate: prevEnd.AddDate(0, 0, -days),
			EndDate:   prevEnd,
		},
	}
}

// Midnight 截断到 UTC 零点
func Midnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DateOnly 格式化为 UTC 日期 2006-01-02
func DateOnly(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}

// DaysBetween 两个时间点所在 UTC 自然日之间相差的天数
func DaysBetween(start, end time.Time) int {
	return int(Midnight(end).Sub(Midnight(start)) / day)
}
