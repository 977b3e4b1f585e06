package logger

import (
	"SocialPulse/internal/api/config"
	"io"
	log "log/slog"
	"net"
	"os"
	"strings"
	"time"

	slogmulti "github.com/samber/slog-multi"
)

var LogWriter io.Writer = os.Stdout

// InitLogger 初始化全局 slog，Logstash 可连通时同时上报带 trace_id 的日志
func InitLogger(cfg config.LogConfig) {
	var remote io.Writer
	if cfg.Logstash.Address != "" {
		conn, err := net.DialTimeout("tcp", cfg.Logstash.Address, 3*time.Second)
		if err != nil {
			log.Warn("Failed to connect to Logstash, logging to stdout only", "err", err)
		} else {
			remote = conn
			LogWriter = conn
		}
	}

	log.SetDefault(log.New(NewHandler(cfg, os.Stdout, remote)))
}

// NewHandler 组装 stdout 与可选远端的 Handler 链
func NewHandler(cfg config.LogConfig, stdout io.Writer, remote io.Writer) log.Handler {
	opts := &log.HandlerOptions{Level: ParseLevel(cfg.Level)}
	hStdout := log.NewJSONHandler(stdout, opts)

	if remote == nil {
		return &ContextHandler{hStdout}
	}

	attrs := []log.Attr{log.String("target_index", cfg.Logstash.Index)}
	if cfg.Logstash.Token != "" {
		attrs = append(attrs, log.String("log_token", cfg.Logstash.Token))
	}
	hRemote := log.NewJSONHandler(remote, opts).WithAttrs(attrs)

	return &ContextHandler{slogmulti.Fanout(hStdout, &RemoteFilterHandler{next: hRemote})}
}

// ParseLevel 无法识别时回退到 info
func ParseLevel(level string) log.Level {
	var l log.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return log.LevelInfo
	}
	return l
}
