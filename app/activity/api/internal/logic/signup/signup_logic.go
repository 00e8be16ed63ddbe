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

type SignupLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 报名活动
func NewSignupLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SignupLogic {
	return &SignupLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *SignupLogic) Signup(req *types.SignupReq) (resp *types.MessageResp, err error) {
	// 1. 写入名单（活动不存在优先于一切 email 校验）
	record, err := l.svcCtx.Directory.Signup(l.ctx, req.ActivityName, req.Email)
	if err != nil {
		bizErr, result := logic.ConvertDirectoryError(err)
		metrics.ObserveRosterOp(metrics.OpSignup, result)
		l.Infow("signup rejected",
			logx.Field("activity", req.ActivityName),
			logx.Field("email", req.Email),
			logx.Field("reason", err.Error()))
		return nil, bizErr
	}

	metrics.ObserveRosterOp(metrics.OpSignup, metrics.ResultSuccess)
	metrics.SetParticipants(record.Name, len(record.Participants))
	l.Infow("signup succeeded",
		logx.Field("activity", record.Name),
		logx.Field("email", req.Email),
		logx.Field("participants", len(record.Participants)))

	// 2. 通知（失败不影响报名结果）
	l.svcCtx.Producer.PublishMemberJoined(l.ctx, record, req.Email)
	l.svcCtx.Feed.Broadcast(mq.NewRosterEvent(messaging.TopicActivityMemberJoined, record, req.Email))

	return &types.MessageResp{
		Message: fmt.Sprintf("Signed up %s for %s", req.Email, record.Name),
	}, nil
}

// RejectMissingEmail 未携带 email 参数时的错误：活动不存在返回 404，否则 400
func (l *SignupLogic) RejectMissingEmail(activityName string) error {
	return rejectMissingEmail(l.ctx, l.svcCtx, metrics.OpSignup, activityName)
}
