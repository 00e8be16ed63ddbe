package signup

import (
	"context"

	"mergington-activities/app/activity/api/internal/logic"
	"mergington-activities/app/activity/api/internal/metrics"
	"mergington-activities/app/activity/api/internal/svc"
	"mergington-activities/common/errorx"
)

const errMsgEmailNotSet = `field "email" is not set`

// rejectMissingEmail 请求未携带 email 参数
//
// 活动不存在时优先返回 404，空串或空白 email 按普通值处理，不走这里
func rejectMissingEmail(ctx context.Context, svcCtx *svc.ServiceContext, op, activityName string) error {
	if _, err := svcCtx.Directory.Get(ctx, activityName); err != nil {
		bizErr, result := logic.ConvertDirectoryError(err)
		metrics.ObserveRosterOp(op, result)
		return bizErr
	}
	metrics.ObserveRosterOp(op, metrics.ResultBadParams)
	return errorx.ErrInvalidParams(errMsgEmailNotSet)
}
