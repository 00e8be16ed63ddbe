package messaging

import "time"

// ==================== Topic 定义 ====================

const (
	TopicActivityMemberJoined = "activity.member.joined"
	TopicActivityMemberLeft   = "activity.member.left"
)

// ==================== 事件结构体 ====================

// RosterEvent 报名名单变更事件
// Type 取值与 Topic 相同；报名与取消报名共用一个结构，便于前端直接消费
type RosterEvent struct {
	Type            string    `json:"type"`
	Activity        string    `json:"activity"`
	Email           string    `json:"email"`
	Participants    int       `json:"participants"`
	MaxParticipants int       `json:"max_participants"`
	OccurredAt      time.Time `json:"occurred_at"`
}
