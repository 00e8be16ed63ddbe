package messaging

import (
	"time"
)

// Config 消息中间件配置
// Redis.Addr 为空时视为未启用，服务照常运行但不发布事件
type Config struct {
	// Redis 配置
	Redis RedisConfig `json:",optional"`

	// 服务名称（写入消息元数据）
	ServiceName string `json:",optional"`

	// 单个 stream 最大长度，0 表示不裁剪
	MaxLen int64 `json:",optional"`

	// 单次发布超时
	PublishTimeout time.Duration `json:",default=3s"`
}

// RedisConfig Redis 连接配置
type RedisConfig struct {
	Addr     string `json:",optional"`
	Password string `json:",optional"`
	DB       int    `json:",optional"`
}

// Enabled 是否配置了消息中间件
func (c Config) Enabled() bool {
	return c.Redis.Addr != ""
}

// DefaultConfig 返回默认配置（未启用）
func DefaultConfig() Config {
	return Config{
		ServiceName:    "activity-api",
		PublishTimeout: 3 * time.Second,
	}
}
