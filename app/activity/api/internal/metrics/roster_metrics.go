package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ==================== 名单指标 ====================
//
// 对接：go-zero DevServer 的 /metrics（默认 Registry）

const namespace = "mergington"

// 操作类型
const (
	OpSignup     = "signup"
	OpUnregister = "unregister"
)

// 操作结果
const (
	ResultSuccess   = "success"
	ResultNotFound  = "not_found"
	ResultConflict  = "conflict"
	ResultFull      = "full"
	ResultBadParams = "bad_params"
	ResultError     = "error"
)

var (
	rosterOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "roster_operations_total",
			Help:      "Total number of signup/unregister requests by result",
		},
		[]string{"op", "result"},
	)

	activityParticipants = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "activity_participants",
			Help:      "Current number of participants per activity",
		},
		[]string{"activity"},
	)

	// 事件发布（Redis Streams）
	eventPublishTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "roster_events_published_total",
			Help:      "Total number of roster events handed to the broker by status",
		},
		[]string{"topic", "status"},
	)

	eventPublishDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "roster_event_publish_duration_seconds",
			Help:      "Roster event publish duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"topic"},
	)
)

// ObserveRosterOp 记录一次报名/取消报名
func ObserveRosterOp(op, result string) {
	rosterOperations.WithLabelValues(op, result).Inc()
}

// SetParticipants 更新活动当前人数
func SetParticipants(activity string, count int) {
	activityParticipants.WithLabelValues(activity).Set(float64(count))
}

// ObservePublish 记录一次事件发布
func ObservePublish(topic string, duration time.Duration, err error) {
	status := ResultSuccess
	if err != nil {
		status = ResultError
	}
	eventPublishTotal.WithLabelValues(topic, status).Inc()
	eventPublishDuration.WithLabelValues(topic).Observe(duration.Seconds())
}
