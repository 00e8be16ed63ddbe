package model

import (
	"context"
	"fmt"
	"sync"
)

// ==================== ActivityDirectory 活动目录 ====================
//
// 功能说明：
//   - 进程内保存全部活动及报名名单，生命周期与进程一致
//   - 活动集合在构造时确定，之后只有报名/取消报名会修改名单
//
// 并发模型：
//   - name -> entry 映射构造后只读，无需加锁
//   - 每个活动一把互斥锁，覆盖"检查-修改"全过程，避免丢失更新
//   - 读取返回深拷贝快照

type activityEntry struct {
	mu     sync.Mutex
	record ActivityRecord
}

// ActivityDirectory 活动目录（报名名单存储）
type ActivityDirectory struct {
	names           []string // 种子顺序
	entries         map[string]*activityEntry
	enforceCapacity bool
}

// DirectoryOption 目录构造选项
type DirectoryOption func(*ActivityDirectory)

// WithCapacityEnforcement 开启名额校验（默认关闭，MaxParticipants 仅作展示）
func WithCapacityEnforcement(enforce bool) DirectoryOption {
	return func(d *ActivityDirectory) {
		d.enforceCapacity = enforce
	}
}

// NewActivityDirectory 根据种子数据创建活动目录
func NewActivityDirectory(seeds []ActivitySeed, opts ...DirectoryOption) (*ActivityDirectory, error) {
	d := &ActivityDirectory{
		names:   make([]string, 0, len(seeds)),
		entries: make(map[string]*activityEntry, len(seeds)),
	}
	for _, opt := range opts {
		opt(d)
	}

	for _, seed := range seeds {
		record, err := seed.toRecord()
		if err != nil {
			return nil, err
		}
		if _, exists := d.entries[record.Name]; exists {
			return nil, fmt.Errorf("duplicate activity %q", record.Name)
		}
		d.entries[record.Name] = &activityEntry{record: record}
		d.names = append(d.names, record.Name)
	}

	return d, nil
}

// Names 活动名称列表（种子顺序）
func (d *ActivityDirectory) Names() []string {
	names := make([]string, len(d.names))
	copy(names, d.names)
	return names
}

// List 全部活动快照
func (d *ActivityDirectory) List(ctx context.Context) []ActivityRecord {
	records := make([]ActivityRecord, 0, len(d.names))
	for _, name := range d.names {
		entry := d.entries[name]
		entry.mu.Lock()
		records = append(records, entry.record.clone())
		entry.mu.Unlock()
	}
	return records
}

// Get 单个活动快照
func (d *ActivityDirectory) Get(ctx context.Context, name string) (ActivityRecord, error) {
	entry, ok := d.entries[name]
	if !ok {
		return ActivityRecord{}, ErrActivityNotFound
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	return entry.record.clone(), nil
}

// Signup 报名
//
// 校验顺序：活动存在 -> 未重复报名 -> （可选）名额未满
// 成功后返回更新后的活动快照
func (d *ActivityDirectory) Signup(ctx context.Context, name, email string) (ActivityRecord, error) {
	entry, ok := d.entries[name]
	if !ok {
		return ActivityRecord{}, ErrActivityNotFound
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.record.HasParticipant(email) {
		return ActivityRecord{}, ErrAlreadySignedUp
	}
	if d.enforceCapacity && entry.record.SpotsLeft() <= 0 {
		return ActivityRecord{}, ErrActivityFull
	}

	entry.record.Participants = append(entry.record.Participants, email)
	return entry.record.clone(), nil
}

// Unregister 取消报名
//
// 校验顺序：活动存在 -> 已报名
// 成功后返回更新后的活动快照
func (d *ActivityDirectory) Unregister(ctx context.Context, name, email string) (ActivityRecord, error) {
	entry, ok := d.entries[name]
	if !ok {
		return ActivityRecord{}, ErrActivityNotFound
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	idx := indexOf(entry.record.Participants, email)
	if idx < 0 {
		return ActivityRecord{}, ErrNotSignedUp
	}

	participants := entry.record.Participants
	entry.record.Participants = append(participants[:idx:idx], participants[idx+1:]...)
	return entry.record.clone(), nil
}
