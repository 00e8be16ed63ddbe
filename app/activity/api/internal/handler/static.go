package handler

import (
	"bytes"
	"io/fs"
	"net/http"
	"path"
	"time"

	"mergington-activities/app/activity/api/internal/types"
	"mergington-activities/app/activity/api/static"
	"mergington-activities/common/errorx"

	"github.com/zeromicro/go-zero/rest/httpx"
)

// 嵌入文件没有修改时间，统一使用进程启动时间
var assetsModTime = time.Now()

// StaticHandler 前端静态资源
// GET /static/:file
func StaticHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.StaticReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, errorx.ErrNotFound())
			return
		}

		name := path.Clean(req.File)
		if !fs.ValidPath(name) {
			httpx.ErrorCtx(r.Context(), w, errorx.ErrNotFound())
			return
		}
		data, err := fs.ReadFile(static.Assets, name)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, errorx.ErrNotFound())
			return
		}

		http.ServeContent(w, r, name, assetsModTime, bytes.NewReader(data))
	}
}
