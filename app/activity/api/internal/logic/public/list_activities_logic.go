package public

import (
	"context"

	"mergington-activities/app/activity/api/internal/logic"
	"mergington-activities/app/activity/api/internal/svc"
	"mergington-activities/app/activity/api/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type ListActivitiesLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 活动列表（公开接口）
func NewListActivitiesLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListActivitiesLogic {
	return &ListActivitiesLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ListActivitiesLogic) ListActivities() (resp types.ListActivitiesResp, err error) {
	records := l.svcCtx.Directory.List(l.ctx)
	l.Debugf("list activities: count=%d", len(records))
	return logic.ConvertRecordsToListResp(records), nil
}
