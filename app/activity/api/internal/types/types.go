package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ==================== 活动相关类型 ====================

// ActivityInfo 活动详情（列表中的单项）
type ActivityInfo struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// ListActivitiesResp 活动列表：活动名称 -> 活动详情
//
// 序列化为 JSON 对象，key 保持加入顺序（即目录种子顺序），前端按此顺序渲染卡片
type ListActivitiesResp struct {
	names []string
	items map[string]ActivityInfo
}

func NewListActivitiesResp(size int) ListActivitiesResp {
	return ListActivitiesResp{
		names: make([]string, 0, size),
		items: make(map[string]ActivityInfo, size),
	}
}

// Add 追加活动，重名时覆盖详情但保留原位置
func (r *ListActivitiesResp) Add(name string, info ActivityInfo) {
	if r.items == nil {
		r.items = make(map[string]ActivityInfo)
	}
	if _, ok := r.items[name]; !ok {
		r.names = append(r.names, name)
	}
	r.items[name] = info
}

func (r ListActivitiesResp) Get(name string) (ActivityInfo, bool) {
	info, ok := r.items[name]
	return info, ok
}

// Names 活动名称（有序）
func (r ListActivitiesResp) Names() []string {
	return append([]string(nil), r.names...)
}

func (r ListActivitiesResp) Len() int {
	return len(r.names)
}

func (r ListActivitiesResp) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range r.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(r.items[name])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (r *ListActivitiesResp) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("activities: expected object, got %v", tok)
	}

	*r = NewListActivitiesResp(0)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("activities: expected name, got %v", tok)
		}
		var info ActivityInfo
		if err := dec.Decode(&info); err != nil {
			return err
		}
		r.Add(name, info)
	}
	_, err = dec.Token()
	return err
}

// ==================== 报名相关类型 ====================

// SignupReq 报名请求
type SignupReq struct {
	ActivityName string `path:"activityName"`
	Email        string `form:"email,optional"`
}

// UnregisterReq 取消报名请求
type UnregisterReq struct {
	ActivityName string `path:"activityName"`
	Email        string `form:"email,optional"`
}

// MessageResp 操作结果
type MessageResp struct {
	Message string `json:"message"`
}

// ==================== 其他类型 ====================

// StaticReq 静态资源请求
type StaticReq struct {
	File string `path:"file"`
}

// HealthResp 健康检查
type HealthResp struct {
	Status          string `json:"status"`
	Timestamp       string `json:"timestamp"`
	Uptime          string `json:"uptime"`
	Activities      int    `json:"activities"`
	EnforceCapacity bool   `json:"enforce_capacity"`
	Messaging       bool   `json:"messaging"`
	FeedSubscribers int    `json:"feed_subscribers"`
}
