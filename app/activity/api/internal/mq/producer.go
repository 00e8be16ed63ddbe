package mq

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"mergington-activities/app/activity/api/internal/metrics"
	"mergington-activities/app/activity/model"
	"mergington-activities/common/ctxdata"
	"mergington-activities/common/messaging"

	"github.com/zeromicro/go-zero/core/logx"
)

const defaultPublishTimeout = 3 * time.Second

// Producer 名单事件发布器
// nil 安全：Producer 或 Client 为 nil 时所有方法静默返回
type Producer struct {
	client  *messaging.Client
	timeout time.Duration
	wg      sync.WaitGroup
}

// NewProducer 创建消息发布器
func NewProducer(client *messaging.Client) *Producer {
	if client == nil {
		return nil
	}
	timeout := client.Config().PublishTimeout
	if timeout <= 0 {
		timeout = defaultPublishTimeout
	}
	return &Producer{client: client, timeout: timeout}
}

// publishAsync 异步发布事件（核心方法）
// - 开新 goroutine，不阻塞调用方
// - defer recover 防 panic 传播
// - 超时防 goroutine 泄漏
// - 发布失败只记日志，不影响主业务
func (p *Producer) publishAsync(ctx context.Context, topic string, payload interface{}) {
	if p == nil || p.client == nil {
		return
	}

	// 请求结束后 ctx 会被取消，只保留链路信息
	linkCtx := ctxdata.WithTraceID(
		ctxdata.WithRequestID(context.Background(), ctxdata.GetRequestIDFromCtx(ctx)),
		ctxdata.GetTraceIDFromCtx(ctx),
	)

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				logx.Errorf("[MQ-Producer] panic recovered: topic=%s, err=%v", topic, r)
			}
		}()

		data, err := json.Marshal(payload)
		if err != nil {
			logx.Errorf("[MQ-Producer] 序列化失败: topic=%s, err=%v", topic, err)
			return
		}

		pubCtx, cancel := context.WithTimeout(linkCtx, p.timeout)
		defer cancel()

		start := time.Now()
		err = p.client.Publish(pubCtx, topic, data)
		metrics.ObservePublish(topic, time.Since(start), err)
		if err != nil {
			logx.WithContext(linkCtx).Errorf("[MQ-Producer] 发布失败: topic=%s, err=%v", topic, err)
			return
		}

		logx.WithContext(linkCtx).Infof("[MQ-Producer] 发布成功: topic=%s, size=%d", topic, len(data))
	}()
}

// ==================== 名单事件 ====================

// PublishMemberJoined 发布报名事件
func (p *Producer) PublishMemberJoined(ctx context.Context, record model.ActivityRecord, email string) {
	p.publishAsync(ctx, messaging.TopicActivityMemberJoined,
		NewRosterEvent(messaging.TopicActivityMemberJoined, record, email))
}

// PublishMemberLeft 发布取消报名事件
func (p *Producer) PublishMemberLeft(ctx context.Context, record model.ActivityRecord, email string) {
	p.publishAsync(ctx, messaging.TopicActivityMemberLeft,
		NewRosterEvent(messaging.TopicActivityMemberLeft, record, email))
}

// NewRosterEvent 根据变更后的活动快照构造事件
func NewRosterEvent(eventType string, record model.ActivityRecord, email string) messaging.RosterEvent {
	return messaging.RosterEvent{
		Type:            eventType,
		Activity:        record.Name,
		Email:           email,
		Participants:    len(record.Participants),
		MaxParticipants: record.MaxParticipants,
		OccurredAt:      time.Now(),
	}
}

// Close 等待在途消息发布完成后关闭底层客户端
func (p *Producer) Close() error {
	if p == nil || p.client == nil {
		return nil
	}
	p.wg.Wait()
	return p.client.Close()
}
