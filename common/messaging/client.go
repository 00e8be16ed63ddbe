package messaging

import (
	"context"
	"fmt"

	"mergington-activities/common/ctxdata"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/redis/go-redis/v9"
	"github.com/zeromicro/go-zero/core/breaker"
)

// 消息元数据 key
const (
	MetadataRequestID = "request_id"
	MetadataTraceID   = "trace_id"
	MetadataService   = "service"
)

// Client Watermill 消息客户端（仅发布）
// Redis 持续不可用时熔断，发布直接返回 breaker.ErrServiceUnavailable
type Client struct {
	Publisher   message.Publisher
	config      Config
	redisClient *redis.Client
	brk         breaker.Breaker
}

// NewClient 创建基于 Redis Streams 的消息客户端
func NewClient(config Config) (*Client, error) {
	if !config.Enabled() {
		return nil, fmt.Errorf("messaging redis addr is empty")
	}

	// 创建 Redis 客户端
	redisClient := redis.NewClient(&redis.Options{
		Addr:     config.Redis.Addr,
		Password: config.Redis.Password,
		DB:       config.Redis.DB,
	})

	// 测试 Redis 连接
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		_ = redisClient.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	pubConfig := redisstream.PublisherConfig{
		Client: redisClient,
	}
	if config.MaxLen > 0 {
		pubConfig.Maxlens = map[string]int64{
			TopicActivityMemberJoined: config.MaxLen,
			TopicActivityMemberLeft:   config.MaxLen,
		}
	}

	publisher, err := redisstream.NewPublisher(pubConfig, newWatermillLogger(config.ServiceName))
	if err != nil {
		_ = redisClient.Close()
		return nil, fmt.Errorf("failed to create publisher: %w", err)
	}

	return &Client{
		Publisher:   publisher,
		config:      config,
		redisClient: redisClient,
		brk:         newBreaker(config),
	}, nil
}

// NewClientWithPublisher 使用已有的 Publisher 创建客户端（进程内 pubsub、测试）
func NewClientWithPublisher(publisher message.Publisher, config Config) *Client {
	return &Client{
		Publisher: publisher,
		config:    config,
		brk:       newBreaker(config),
	}
}

func newBreaker(config Config) breaker.Breaker {
	return breaker.NewBreaker(breaker.WithName("messaging:" + config.ServiceName))
}

// Config 客户端配置
func (c *Client) Config() Config {
	return c.config
}

// Publish 发布消息，附带请求链路信息
func (c *Client) Publish(ctx context.Context, topic string, payload []byte) error {
	msg := message.NewMessage(watermill.NewUUID(), payload)
	if reqID := ctxdata.GetRequestIDFromCtx(ctx); reqID != "" {
		msg.Metadata.Set(MetadataRequestID, reqID)
	}
	if traceID := ctxdata.GetTraceIDFromCtx(ctx); traceID != "" {
		msg.Metadata.Set(MetadataTraceID, traceID)
	}
	if c.config.ServiceName != "" {
		msg.Metadata.Set(MetadataService, c.config.ServiceName)
	}
	msg.SetContext(ctx)

	return c.brk.Do(func() error {
		return c.Publisher.Publish(topic, msg)
	})
}

// Close 关闭发布者与底层 Redis 连接
func (c *Client) Close() error {
	if err := c.Publisher.Close(); err != nil {
		return fmt.Errorf("failed to close publisher: %w", err)
	}
	if c.redisClient != nil {
		if err := c.redisClient.Close(); err != nil {
			return fmt.Errorf("failed to close redis client: %w", err)
		}
	}
	return nil
}
