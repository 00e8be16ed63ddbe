package signup

import (
	"net/http"

	"mergington-activities/app/activity/api/internal/logic/signup"
	"mergington-activities/app/activity/api/internal/svc"
	"mergington-activities/app/activity/api/internal/types"
	"mergington-activities/common/errorx"

	"github.com/zeromicro/go-zero/rest/httpx"
)

// 报名活动
func SignupHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.SignupReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, errorx.ErrInvalidParams(err.Error()))
			return
		}

		l := signup.NewSignupLogic(r.Context(), svcCtx)
		// email 为空串时按普通值处理，只有完全缺失才拒绝
		if !r.URL.Query().Has("email") {
			httpx.ErrorCtx(r.Context(), w, l.RejectMissingEmail(req.ActivityName))
			return
		}

		resp, err := l.Signup(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
