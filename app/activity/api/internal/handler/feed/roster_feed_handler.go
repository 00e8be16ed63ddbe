package feed

import (
	"net/http"

	"mergington-activities/app/activity/api/internal/svc"
	"mergington-activities/common/errorx"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/httpx"
)

// 名单实时推送（WebSocket）
func RosterFeedHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svcCtx.Feed == nil {
			httpx.ErrorCtx(r.Context(), w, errorx.ErrNotFound())
			return
		}

		// 升级失败时 upgrader 已写回 400
		if err := svcCtx.Feed.ServeWS(w, r); err != nil {
			logx.WithContext(r.Context()).Infof("[Feed] 升级连接失败: %v", err)
		}
	}
}
