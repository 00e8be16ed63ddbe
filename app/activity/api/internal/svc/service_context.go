package svc

import (
	"context"

	"mergington-activities/app/activity/api/internal/config"
	"mergington-activities/app/activity/api/internal/feed"
	"mergington-activities/app/activity/api/internal/metrics"
	"mergington-activities/app/activity/api/internal/middleware"
	"mergington-activities/app/activity/api/internal/mq"
	"mergington-activities/app/activity/model"
	"mergington-activities/common/messaging"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest"
)

type ServiceContext struct {
	Config config.Config

	// 活动目录（进程内存储）
	Directory *model.ActivityDirectory

	// 名单事件发布（未配置 Redis 时为 nil）
	Producer *mq.Producer

	// 名单实时推送（关闭时为 nil）
	Feed *feed.Hub

	// 中间件
	Cors      rest.Middleware
	RequestID rest.Middleware
	RateLimit rest.Middleware
}

func NewServiceContext(c config.Config) *ServiceContext {
	directory, err := model.NewActivityDirectory(c.Directory.Seeds(),
		model.WithCapacityEnforcement(c.Directory.EnforceCapacity))
	logx.Must(err)

	for _, record := range directory.List(context.Background()) {
		metrics.SetParticipants(record.Name, len(record.Participants))
	}

	svcCtx := &ServiceContext{
		Config:    c,
		Directory: directory,
		Producer:  newProducer(c.Messaging),
		Cors:      middleware.NewCorsMiddleware(c.Cors.AllowOrigins, c.Cors.AllowMethods, c.Cors.AllowHeaders).Handle,
		RequestID: middleware.NewRequestIDMiddleware().Handle,
	}

	if c.Feed.Enabled {
		svcCtx.Feed = feed.NewHub(c.Feed.BufferSize)
	}

	if c.RateLimit.Enabled() {
		svcCtx.RateLimit = middleware.NewRateLimitMiddleware(
			float64(c.RateLimit.Rate), c.RateLimit.Burst,
			float64(c.RateLimit.IPRate), c.RateLimit.IPBurst,
		).Handle
		logx.Infof("rate limit enabled: rate=%d burst=%d ipRate=%d ipBurst=%d",
			c.RateLimit.Rate, c.RateLimit.Burst, c.RateLimit.IPRate, c.RateLimit.IPBurst)
	}

	return svcCtx
}

// newProducer 连接 Redis Streams，失败时降级为不发布事件
func newProducer(c messaging.Config) *mq.Producer {
	if !c.Enabled() {
		logx.Info("messaging disabled: roster events will not be published")
		return nil
	}
	if c.ServiceName == "" {
		c.ServiceName = messaging.DefaultConfig().ServiceName
	}

	client, err := messaging.NewClient(c)
	if err != nil {
		logx.Errorf("messaging init failed, roster events disabled: addr=%s, err=%v", c.Redis.Addr, err)
		return nil
	}
	logx.Infof("messaging enabled: redis=%s", c.Redis.Addr)
	return mq.NewProducer(client)
}

// Close 释放外部资源
func (s *ServiceContext) Close() {
	if err := s.Producer.Close(); err != nil {
		logx.Errorf("close producer failed: %v", err)
	}
}
