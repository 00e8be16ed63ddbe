package middleware

import (
	"net/http"

	"mergington-activities/common/ctxdata"

	"github.com/google/uuid"
	"github.com/zeromicro/go-zero/core/logx"
)

const (
	HeaderRequestID = "X-Request-ID"
	HeaderTraceID   = "X-Trace-ID"
)

// RequestIDMiddleware 请求ID中间件
// 为每个请求生成唯一ID，用于链路追踪和日志关联
type RequestIDMiddleware struct{}

// NewRequestIDMiddleware 创建请求ID中间件
func NewRequestIDMiddleware() *RequestIDMiddleware {
	return &RequestIDMiddleware{}
}

// Handle 处理请求ID
func (m *RequestIDMiddleware) Handle(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// 优先从请求头获取，支持上游传递
		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		traceID := r.Header.Get(HeaderTraceID)
		if traceID == "" {
			traceID = requestID
		}

		ctx := ctxdata.WithRequestID(r.Context(), requestID)
		ctx = ctxdata.WithTraceID(ctx, traceID)
		// 之后 logx.WithContext 输出的日志都带上这两个字段
		ctx = logx.ContextWithFields(ctx,
			logx.Field("requestId", requestID),
			logx.Field("traceId", traceID),
		)

		w.Header().Set(HeaderRequestID, requestID)

		next(w, r.WithContext(ctx))
	}
}
