package middleware

import (
	"net/http"
	"strings"
)

var (
	defaultAllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}
	defaultAllowHeaders = []string{"Content-Type", "X-Request-ID", "X-Trace-ID"}
)

// CorsMiddleware CORS 跨域中间件
type CorsMiddleware struct {
	allowOrigins []string
	allowMethods string
	allowHeaders string
}

// NewCorsMiddleware 创建 CORS 中间件，未配置的项使用默认值（来源默认 *）
func NewCorsMiddleware(origins, methods, headers []string) *CorsMiddleware {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	if len(methods) == 0 {
		methods = defaultAllowMethods
	}
	if len(headers) == 0 {
		headers = defaultAllowHeaders
	}
	return &CorsMiddleware{
		allowOrigins: origins,
		allowMethods: strings.Join(methods, ", "),
		allowHeaders: strings.Join(headers, ", "),
	}
}

// Handle 处理 CORS
func (m *CorsMiddleware) Handle(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		// 检查是否允许该来源
		if allowed := m.allowedOrigin(origin); allowed != "" {
			w.Header().Set("Access-Control-Allow-Origin", allowed)
			w.Header().Add("Vary", "Origin")
		}

		w.Header().Set("Access-Control-Allow-Methods", m.allowMethods)
		w.Header().Set("Access-Control-Allow-Headers", m.allowHeaders)
		w.Header().Set("Access-Control-Max-Age", "3600")

		// 预检请求直接返回
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next(w, r)
	}
}

// allowedOrigin 返回应写入响应头的来源，空串表示不允许
func (m *CorsMiddleware) allowedOrigin(origin string) string {
	for _, allowed := range m.allowOrigins {
		if allowed == "*" {
			if origin == "" {
				return "*"
			}
			return origin
		}
		if origin != "" && allowed == origin {
			return origin
		}
	}
	return ""
}
