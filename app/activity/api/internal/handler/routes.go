// ============================================================================
// 路由注册
// ============================================================================
//
// 中间件执行顺序：
//   CORS -> RequestID -> [RateLimit] -> Handler
//
// ============================================================================

package handler

import (
	"net/http"

	feed "mergington-activities/app/activity/api/internal/handler/feed"
	public "mergington-activities/app/activity/api/internal/handler/public"
	signup "mergington-activities/app/activity/api/internal/handler/signup"
	"mergington-activities/app/activity/api/internal/svc"
	"mergington-activities/common/errorx"
	"mergington-activities/common/response"

	"github.com/zeromicro/go-zero/rest"
)

const (
	pathActivities = "/activities"
	pathSignup     = "/activities/:activityName/signup"
)

// RegisterHandlers 注册所有路由
func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	// ==================== 全局中间件 ====================
	server.Use(serverCtx.Cors)
	server.Use(serverCtx.RequestID)
	if serverCtx.RateLimit != nil {
		server.Use(serverCtx.RateLimit)
	}

	// ==================== 页面与运维 ====================
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/",
				Handler: RootRedirectHandler(),
			},
			{
				Method:  http.MethodGet,
				Path:    "/static/:file",
				Handler: StaticHandler(),
			},
			{
				Method:  http.MethodGet,
				Path:    "/health",
				Handler: HealthHandler(serverCtx),
			},
		},
	)

	// ==================== 活动与报名 ====================
	server.AddRoutes(
		[]rest.Route{
			{
				// 活动列表
				Method:  http.MethodGet,
				Path:    pathActivities,
				Handler: public.ListActivitiesHandler(serverCtx),
			},
			{
				// 报名活动
				Method:  http.MethodPost,
				Path:    pathSignup,
				Handler: signup.SignupHandler(serverCtx),
			},
			{
				// 取消报名
				Method:  http.MethodDelete,
				Path:    pathSignup,
				Handler: signup.UnregisterHandler(serverCtx),
			},
			// 预检请求由 CORS 中间件直接返回 204
			{
				Method:  http.MethodOptions,
				Path:    pathActivities,
				Handler: preflightHandler,
			},
			{
				Method:  http.MethodOptions,
				Path:    pathSignup,
				Handler: preflightHandler,
			},
		},
	)

	// ==================== 实时推送 ====================
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/ws/roster",
				Handler: feed.RosterFeedHandler(serverCtx),
			},
		},
	)
}

// NotFoundHandler 未匹配路由统一返回 {"detail":"Not Found"}
func NotFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response.Fail(w, errorx.ErrNotFound())
	})
}

func preflightHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
