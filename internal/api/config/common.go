package config

// Config 配置主体
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	DB     DBConfig     `mapstructure:"database"`
	Redis  RedisConfig  `mapstructure:"redis"`
	Auth   AuthConfig   `mapstructure:"auth"`
	Log    LogConfig    `mapstructure:"log"`
	Cache  CacheConfig  `mapstructure:"cache"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port            int    `mapstructure:"port"`
	Mode            string `mapstructure:"mode"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN          string `mapstructure:"dsn"`
	MaxIdle      int    `mapstructure:"max_idle"`
	MaxOpen      int    `mapstructure:"max_open"`
	MaxLifetime  int    `mapstructure:"max_lifetime"`
	ConnectRetry int    `mapstructure:"connect_retry"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// AuthConfig 外部身份服务签发的 JWT 校验参数
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
	Issuer    string `mapstructure:"issuer"`
	Audience  string `mapstructure:"audience"`
}

// LogConfig 日志级别与 Logstash 远端
type LogConfig struct {
	Level    string         `mapstructure:"level"`
	Logstash LogstashConfig `mapstructure:"logstash"`
}

type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

type CacheConfig struct {
	Enabled bool `mapstructure:"enabled"`
}
