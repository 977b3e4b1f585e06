package logger

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

// SetupGin 注册访问日志与 panic 恢复中间件
func SetupGin(r *gin.Engine, index string) {
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Output:    LogWriter,
		Formatter: AccessFormatter(index),
		SkipPaths: []string{"/api/ping"},
	}))
	r.Use(gin.Recovery())
}

// AccessFormatter 输出与 slog JSON 行格式一致的访问日志
func AccessFormatter(index string) gin.LogFormatter {
	return func(p gin.LogFormatterParams) string {
		var traceID string
		if p.Keys != nil {
			if id, ok := p.Keys[TraceIDKey].(string); ok {
				traceID = id
			}
		}
		if traceID == "" && p.Request != nil {
			traceID = TraceID(p.Request.Context())
		}

		return fmt.Sprintf(
			`{"time":"%s","level":"INFO","msg":"GIN_ACCESS","trace_id":"%s","target_index":"%s","method":"%s","path":"%s","status":%d,"latency":"%v"}`+"\n",
			p.TimeStamp.Format(time.RFC3339),
			traceID,
			index,
			p.Method,
			p.Path,
			p.StatusCode,
			p.Latency,
		)
	}
}
