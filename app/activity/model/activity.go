package model

import (
	"errors"
	"fmt"
	"strings"
)

// ==================== 错误定义 ====================

var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrAlreadySignedUp  = errors.New("student already signed up for this activity")
	ErrNotSignedUp      = errors.New("student is not signed up for this activity")
	ErrActivityFull     = errors.New("activity is full")
)

// ==================== ActivityRecord 活动记录 ====================

// ActivityRecord 活动及其报名名单
//
// Participants 按报名先后排列，同一活动内邮箱互不重复。
// MaxParticipants 仅用于展示，默认不参与报名校验。
type ActivityRecord struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// SpotsLeft 剩余名额，超员时为负数
func (r ActivityRecord) SpotsLeft() int {
	return r.MaxParticipants - len(r.Participants)
}

// HasParticipant 判断邮箱是否已在名单中
func (r ActivityRecord) HasParticipant(email string) bool {
	return indexOf(r.Participants, email) >= 0
}

// clone 深拷贝，名单切片不与内部状态共享
func (r ActivityRecord) clone() ActivityRecord {
	out := r
	out.Participants = make([]string, len(r.Participants))
	copy(out.Participants, r.Participants)
	return out
}

// ==================== ActivitySeed 种子数据 ====================

// ActivitySeed 启动时加载的活动配置
type ActivitySeed struct {
	Name            string
	Description     string   `json:",optional"`
	Schedule        string   `json:",optional"`
	MaxParticipants int      `json:",optional"`
	Participants    []string `json:",optional"`
}

// toRecord 校验种子并转换为活动记录
func (s ActivitySeed) toRecord() (ActivityRecord, error) {
	name := strings.TrimSpace(s.Name)
	if name == "" {
		return ActivityRecord{}, errors.New("activity seed without name")
	}
	if s.MaxParticipants < 0 {
		return ActivityRecord{}, fmt.Errorf("activity %q: negative max participants %d", name, s.MaxParticipants)
	}

	participants := make([]string, 0, len(s.Participants))
	for _, email := range s.Participants {
		if indexOf(participants, email) >= 0 {
			return ActivityRecord{}, fmt.Errorf("activity %q: duplicate participant %q", name, email)
		}
		participants = append(participants, email)
	}

	return ActivityRecord{
		Name:            name,
		Description:     s.Description,
		Schedule:        s.Schedule,
		MaxParticipants: s.MaxParticipants,
		Participants:    participants,
	}, nil
}

func indexOf(list []string, email string) int {
	for i, v := range list {
		if v == email {
			return i
		}
	}
	return -1
}
