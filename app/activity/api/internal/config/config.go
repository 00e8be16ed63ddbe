package config

import (
	"mergington-activities/app/activity/model"
	"mergington-activities/common/messaging"

	"github.com/zeromicro/go-zero/rest"
)

// Config 活动服务 API 配置
type Config struct {
	rest.RestConf

	// 活动目录（种子数据 + 名额策略）
	Directory DirectoryConfig `json:",optional"`

	// CORS 跨域配置
	Cors CorsConfig `json:",optional"`

	// 限流配置（Rate 为 0 时关闭）
	RateLimit RateLimitConfig `json:",optional"`

	// 名单变更事件（Redis Streams）
	Messaging messaging.Config `json:",optional"`

	// 名单实时推送（WebSocket）
	Feed FeedConfig `json:",optional"`
}

// DirectoryConfig 活动目录配置
type DirectoryConfig struct {
	// EnforceCapacity 为 true 时报名超过 MaxParticipants 会被拒绝
	EnforceCapacity bool `json:",default=false"`
	// Activities 为空时使用内置的默认活动列表
	Activities []model.ActivitySeed `json:",optional"`
}

// Seeds 实际使用的种子数据
func (c DirectoryConfig) Seeds() []model.ActivitySeed {
	if len(c.Activities) == 0 {
		return model.DefaultSeeds()
	}
	return c.Activities
}

// CorsConfig CORS 跨域配置
type CorsConfig struct {
	AllowOrigins []string `json:",optional"`
	AllowMethods []string `json:",optional"`
	AllowHeaders []string `json:",optional"`
}

// RateLimitConfig 限流配置
type RateLimitConfig struct {
	Rate    int `json:",default=0"`  // 全局每秒请求数
	Burst   int `json:",default=0"`  // 全局突发
	IPRate  int `json:",default=10"` // 单 IP 每秒请求数
	IPBurst int `json:",default=20"` // 单 IP 突发
}

// Enabled 是否开启限流
func (c RateLimitConfig) Enabled() bool {
	return c.Rate > 0
}

// FeedConfig WebSocket 推送配置
type FeedConfig struct {
	Enabled    bool `json:",default=true"`
	BufferSize int  `json:",default=256"` // 广播队列长度
}
