package signup

import (
	"context"
	"fmt"

	"mergington-activities/app/activity/api/internal/logic"
	"mergington-activities/app/activity/api/internal/metrics"
	"mergington-activities/app/activity/api/internal/mq"
	"mergington-activities/app/activity/api/internal/svc"
	"mergington-activities/app/activity/api/internal/types"
	"mergington-activities/common/messaging"

	"github.com/zeromicro/go-zero/core/logx"
)

type UnregisterLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 取消报名
func NewUnregisterLogic(ctx context.Context, svcCtx *svc.ServiceContext) *UnregisterLogic {
	return &UnregisterLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *UnregisterLogic) Unregister(req *types.UnregisterReq) (resp *types.MessageResp, err error) {
	record, err := l.svcCtx.Directory.Unregister(l.ctx, req.ActivityName, req.Email)
	if err != nil {
		bizErr, result := logic.ConvertDirectoryError(err)
		metrics.ObserveRosterOp(metrics.OpUnregister, result)
		l.Infow("unregister rejected",
			logx.Field("activity", req.ActivityName),
			logx.Field("email", req.Email),
			logx.Field("reason", err.Error()))
		return nil, bizErr
	}

	metrics.ObserveRosterOp(metrics.OpUnregister, metrics.ResultSuccess)
	metrics.SetParticipants(record.Name, len(record.Participants))
	l.Infow("unregister succeeded",
		logx.Field("activity", record.Name),
		logx.Field("email", req.Email),
		logx.Field("participants", len(record.Participants)))

	l.svcCtx.Producer.PublishMemberLeft(l.ctx, record, req.Email)
	l.svcCtx.Feed.Broadcast(mq.NewRosterEvent(messaging.TopicActivityMemberLeft, record, req.Email))

	return &types.MessageResp{
		Message: fmt.Sprintf("Unregistered %s from %s", req.Email, record.Name),
	}, nil
}

func (l *UnregisterLogic) RejectMissingEmail(activityName string) error {
	return rejectMissingEmail(l.ctx, l.svcCtx, metrics.OpUnregister, activityName)
}
