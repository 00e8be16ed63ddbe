/**
 * @projectName: mergington-activities
 * @package: errorx
 * @className: codes
 * @description: 统一错误码定义
 * @version: 1.0
 */

package errorx

// 错误码规范：
// 0       - 成功
// 1xxx    - 通用错误
// 3xxx    - 活动服务错误

const (
	CodeSuccess         = 0    // 成功
	CodeInternalError   = 1000 // 内部服务器错误
	CodeInvalidParams   = 1001 // 参数校验失败
	CodeNotFound        = 1004 // 资源不存在
	CodeTooManyRequests = 1005 // 请求过于频繁

	// 活动服务 - 报名 3001-3020
	CodeAlreadySignedUp = 3001 // 重复报名
	CodeNotSignedUp     = 3002 // 未报名
	CodeActivityFull    = 3003 // 名额已满
	CodeActivityMissing = 3004 // 活动不存在
)

// codeMessages 错误码对应的默认消息（直接返回给前端，保持英文）
var codeMessages = map[int]string{
	CodeSuccess:         "success",
	CodeInternalError:   "Internal server error",
	CodeInvalidParams:   "Invalid parameters",
	CodeNotFound:        "Not Found",
	CodeTooManyRequests: "Too many requests, please try again later",
	CodeAlreadySignedUp: "Student already signed up for this activity",
	CodeNotSignedUp:     "Student is not signed up for this activity",
	CodeActivityFull:    "Activity is full",
	CodeActivityMissing: "Activity not found",
}

// GetMessage 根据错误码获取默认消息
func GetMessage(code int) string {
	if msg, ok := codeMessages[code]; ok {
		return msg
	}
	return "Unknown error"
}
