// Package logic 提供目录记录与 HTTP 类型之间的转换函数
package logic

import (
	"errors"

	"mergington-activities/app/activity/api/internal/metrics"
	"mergington-activities/app/activity/api/internal/types"
	"mergington-activities/app/activity/model"
	"mergington-activities/common/errorx"
)

// ==================== 活动转换 ====================

// ConvertRecordToActivityInfo 将目录记录转换为 API 活动详情
func ConvertRecordToActivityInfo(record model.ActivityRecord) types.ActivityInfo {
	participants := record.Participants
	if participants == nil {
		participants = []string{}
	}
	return types.ActivityInfo{
		Description:     record.Description,
		Schedule:        record.Schedule,
		MaxParticipants: record.MaxParticipants,
		Participants:    participants,
	}
}

// ConvertRecordsToListResp 批量转换，活动名称作为 key，保持记录顺序
func ConvertRecordsToListResp(records []model.ActivityRecord) types.ListActivitiesResp {
	result := types.NewListActivitiesResp(len(records))
	for _, record := range records {
		result.Add(record.Name, ConvertRecordToActivityInfo(record))
	}
	return result
}

// ==================== 错误转换 ====================

// ConvertDirectoryError 目录错误 -> (业务错误, 指标结果标签)
func ConvertDirectoryError(err error) (*errorx.BizError, string) {
	switch {
	case errors.Is(err, model.ErrActivityNotFound):
		return errorx.ErrActivityNotFound(), metrics.ResultNotFound
	case errors.Is(err, model.ErrAlreadySignedUp):
		return errorx.ErrAlreadySignedUp(), metrics.ResultConflict
	case errors.Is(err, model.ErrNotSignedUp):
		return errorx.ErrNotSignedUp(), metrics.ResultConflict
	case errors.Is(err, model.ErrActivityFull):
		return errorx.ErrActivityFull(), metrics.ResultFull
	default:
		return errorx.ErrInternalError(), metrics.ResultError
	}
}
