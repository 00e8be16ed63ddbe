package middleware

import (
	"net"
	"net/http"
	"sync"

	"mergington-activities/common/errorx"
	"mergington-activities/common/response"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/httpx"
	"golang.org/x/time/rate"
)

// IPRateLimiter 基于IP的令牌桶
type IPRateLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	rate     rate.Limit
	burst    int
}

// NewIPRateLimiter 创建IP限流器
func NewIPRateLimiter(r float64, burst int) *IPRateLimiter {
	return &IPRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(r),
		burst:    burst,
	}
}

// GetLimiter 获取指定IP的限流器
func (i *IPRateLimiter) GetLimiter(ip string) *rate.Limiter {
	i.mu.RLock()
	limiter, exists := i.limiters[ip]
	i.mu.RUnlock()

	if exists {
		return limiter
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	// 双重检查
	if limiter, exists = i.limiters[ip]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(i.rate, i.burst)
	i.limiters[ip] = limiter
	return limiter
}

// RateLimitMiddleware 限流中间件
type RateLimitMiddleware struct {
	globalLimiter *rate.Limiter
	// ipRate <= 0 时为 nil，不做单IP限流
	ipLimiter *IPRateLimiter
}

// NewRateLimitMiddleware 创建限流中间件
// globalRate: 全局每秒请求数，<= 0 时不限流
// ipRate: 单IP每秒请求数，<= 0 时不做单IP限流
func NewRateLimitMiddleware(globalRate float64, globalBurst int, ipRate float64, ipBurst int) *RateLimitMiddleware {
	m := &RateLimitMiddleware{}
	if globalRate > 0 {
		if globalBurst <= 0 {
			globalBurst = max(int(globalRate), 1)
		}
		m.globalLimiter = rate.NewLimiter(rate.Limit(globalRate), globalBurst)
	}
	if ipRate > 0 {
		if ipBurst <= 0 {
			ipBurst = max(int(ipRate), 1)
		}
		m.ipLimiter = NewIPRateLimiter(ipRate, ipBurst)
	}
	return m
}

// Handle 中间件处理函数
func (m *RateLimitMiddleware) Handle(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if m.globalLimiter != nil && !m.globalLimiter.Allow() {
			logx.WithContext(r.Context()).Infow("global rate limit hit", logx.Field("path", r.URL.Path))
			response.FailWithCode(w, errorx.CodeTooManyRequests)
			return
		}

		if m.ipLimiter != nil {
			ip := clientIP(r)
			if !m.ipLimiter.GetLimiter(ip).Allow() {
				logx.WithContext(r.Context()).Infow("ip rate limit hit",
					logx.Field("ip", ip), logx.Field("path", r.URL.Path))
				response.FailWithCode(w, errorx.CodeTooManyRequests)
				return
			}
		}

		next(w, r)
	}
}

// clientIP 获取客户端IP（X-Forwarded-For 优先），去掉端口
func clientIP(r *http.Request) string {
	addr := httpx.GetRemoteAddr(r)
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}
