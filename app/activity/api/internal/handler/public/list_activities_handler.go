package public

import (
	"net/http"

	"mergington-activities/app/activity/api/internal/logic/public"
	"mergington-activities/app/activity/api/internal/svc"

	"github.com/zeromicro/go-zero/rest/httpx"
)

// 活动列表
func ListActivitiesHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// 名单随时变化，禁止缓存
		w.Header().Set("Cache-Control", "no-store")

		l := public.NewListActivitiesLogic(r.Context(), svcCtx)
		resp, err := l.ListActivities()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
