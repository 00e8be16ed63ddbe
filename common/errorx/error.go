package errorx

import (
	"fmt"

	"github.com/pkg/errors"
)

// BizError 业务错误，实现 error 接口
type BizError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error 实现 error 接口
func (e *BizError) Error() string {
	return fmt.Sprintf("BizError: code=%d, message=%s", e.Code, e.Message)
}

// New 创建业务错误（使用默认消息）
func New(code int) *BizError {
	return &BizError{
		Code:    code,
		Message: GetMessage(code),
	}
}

// NewWithMessage 创建业务错误（自定义消息）
func NewWithMessage(code int, message string) *BizError {
	return &BizError{
		Code:    code,
		Message: message,
	}
}

// Is 判断是否为特定错误码
func Is(err error, code int) bool {
	if err == nil {
		return false
	}
	var bizErr *BizError
	if errors.As(err, &bizErr) {
		return bizErr.Code == code
	}
	return false
}

// FromError 从 error 转换为 BizError
// 支持以下错误类型：
//  1. *BizError（含 errors.Wrap / fmt.Errorf %w 包装）：直接返回
//  2. 其他错误：返回内部错误（隐藏细节）
func FromError(err error) *BizError {
	if err == nil {
		return nil
	}

	// errors.Wrap 包装的错误
	if bizErr, ok := errors.Cause(err).(*BizError); ok {
		return bizErr
	}

	// %w 包装的错误
	var bizErr *BizError
	if errors.As(err, &bizErr) {
		return bizErr
	}

	return New(CodeInternalError)
}

// ============ 常用错误快捷方法 ============

// ErrInternalError 内部错误
func ErrInternalError() *BizError {
	return New(CodeInternalError)
}

// ErrInvalidParams 参数错误
func ErrInvalidParams(msg string) *BizError {
	if msg == "" {
		return New(CodeInvalidParams)
	}
	return NewWithMessage(CodeInvalidParams, msg)
}

// ErrNotFound 资源不存在
func ErrNotFound() *BizError {
	return New(CodeNotFound)
}

// ErrTooManyRequests 请求过于频繁
func ErrTooManyRequests() *BizError {
	return New(CodeTooManyRequests)
}

// ============ 报名相关错误 ============

// ErrActivityNotFound 活动不存在
func ErrActivityNotFound() *BizError {
	return New(CodeActivityMissing)
}

// ErrAlreadySignedUp 重复报名
func ErrAlreadySignedUp() *BizError {
	return New(CodeAlreadySignedUp)
}

// ErrNotSignedUp 未报名却取消
func ErrNotSignedUp() *BizError {
	return New(CodeNotSignedUp)
}

// ErrActivityFull 名额已满
func ErrActivityFull() *BizError {
	return New(CodeActivityFull)
}
