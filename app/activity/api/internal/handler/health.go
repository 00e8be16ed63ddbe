// ============================================================================
// 健康检查与首页跳转
// ============================================================================

package handler

import (
	"net/http"
	"time"

	"mergington-activities/app/activity/api/internal/svc"
	"mergington-activities/app/activity/api/internal/types"
	"mergington-activities/common/response"
)

const indexPath = "/static/index.html"

var startTime = time.Now()

// HealthHandler 健康检查接口
// GET /health
func HealthHandler(ctx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, &types.HealthResp{
			Status:          "healthy",
			Timestamp:       time.Now().Format(time.RFC3339),
			Uptime:          time.Since(startTime).String(),
			Activities:      len(ctx.Directory.Names()),
			EnforceCapacity: ctx.Config.Directory.EnforceCapacity,
			Messaging:       ctx.Producer != nil,
			FeedSubscribers: ctx.Feed.ClientCount(),
		})
	}
}

// RootRedirectHandler 首页跳转到静态页面
// GET /
func RootRedirectHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, indexPath, http.StatusTemporaryRedirect)
	}
}
