package response

import (
	"context"
	"net/http"

	"mergington-activities/common/errorx"

	"github.com/zeromicro/go-zero/rest/httpx"
)

// Response 统一响应结构（健康检查等内部接口使用）
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorBody 错误响应结构
// 与前端约定：错误时读取 detail 字段
type ErrorBody struct {
	Detail string `json:"detail"`
}

// Success 成功响应
func Success(w http.ResponseWriter, data interface{}) {
	resp := &Response{
		Code:    errorx.CodeSuccess,
		Message: "success",
		Data:    data,
	}
	httpx.OkJson(w, resp)
}

// Fail 失败响应（使用 BizError）
func Fail(w http.ResponseWriter, err error) {
	status, body := errorResponse(err)
	httpx.WriteJson(w, status, body)
}

// FailWithCode 失败响应（指定错误码）
func FailWithCode(w http.ResponseWriter, code int) {
	Fail(w, errorx.New(code))
}

// SetupGlobalErrorHandler 设置 httpx 全局错误处理器
// 必须在 server.Start() 之前调用
func SetupGlobalErrorHandler() {
	httpx.SetErrorHandlerCtx(func(ctx context.Context, err error) (int, any) {
		return errorResponse(err)
	})
}

// errorResponse 错误 -> (HTTP 状态码, 响应体)
func errorResponse(err error) (int, *ErrorBody) {
	bizErr := errorx.FromError(err)
	return getHttpStatus(bizErr.Code), &ErrorBody{Detail: bizErr.Message}
}

// getHttpStatus 根据业务错误码映射 HTTP 状态码
func getHttpStatus(code int) int {
	switch code {
	case errorx.CodeSuccess:
		return http.StatusOK
	case errorx.CodeNotFound, errorx.CodeActivityMissing:
		return http.StatusNotFound
	case errorx.CodeInvalidParams,
		errorx.CodeAlreadySignedUp,
		errorx.CodeNotSignedUp,
		errorx.CodeActivityFull:
		return http.StatusBadRequest
	case errorx.CodeTooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
