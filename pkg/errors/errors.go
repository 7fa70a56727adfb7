package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError 自定义应用错误
// 设计说明：
// 1. Code是业务错误码，客户端据此判断错误类型
// 2. Message是用户可见的提示信息（英文，直接进响应体的message字段）
// 3. Err是内部错误，仅记录到日志，不返回给客户端（防止泄露实现细节）
type AppError struct {
	Code    int    `json:"code"`    // 业务错误码
	Message string `json:"message"` // 用户可见的错误提示
	Err     error  `json:"-"`       // 内部错误（不序列化）
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// New 创建新的AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Newf 格式化创建AppError
func Newf(code int, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap 包装系统错误（如数据库错误、Redis错误）
// 用途：将底层错误转换为业务错误，隐藏实现细节
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// =========================================
// 错误码定义
// =========================================
// 规范：
// - 40xxx: 客户端错误（参数错误、资源不存在、业务规则冲突）
// - 50xxx: 服务端错误（数据库异常、缓存异常）

const (
	// 系统级错误码（50000-50099）
	ErrCodeInternal      = 50000 // 内部错误
	ErrCodeDatabaseError = 50001 // 数据库错误
	ErrCodeRedisError    = 50002 // Redis错误

	// 资源错误（40400-40499）
	ErrCodeNotFound             = 40400 // 资源不存在(通用)
	ErrCodeItemNotFound         = 40401 // 商品不存在
	ErrCodeAuthorNotFound       = 40402 // 作者不存在
	ErrCodeItemTypeNotFound     = 40403 // 商品类别不存在
	ErrCodeEventNotFound        = 40404 // 活动不存在
	ErrCodeRegistrationNotFound = 40405 // 活动报名记录不存在
	ErrCodeSubscriberNotFound   = 40406 // 订阅者不存在

	// 业务规则冲突（40000-40099）
	ErrCodeConflict          = 40000 // 业务冲突(通用)
	ErrCodeEventCancelled    = 40001 // 活动已取消
	ErrCodeEventPassed       = 40002 // 活动已结束
	ErrCodeAlreadyRegistered = 40003 // 重复报名
	ErrCodeEventFull         = 40004 // 活动已满员
	ErrCodeAlreadySubscribed = 40005 // 重复订阅

	// 参数错误（40900-40999）
	ErrCodeInvalidParams = 40900 // 参数错误
	ErrCodeBindError     = 40901 // 参数绑定失败
)

// HTTPStatus 业务错误码 → HTTP状态码
// 设计说明：对外接口直接返回裸的{message}结构，
// 错误类型通过HTTP状态码表达（404/409/400/500）
func (e *AppError) HTTPStatus() int {
	switch {
	case e.Code >= 40400 && e.Code < 40500:
		return http.StatusNotFound
	case e.Code >= 40000 && e.Code < 40100:
		return http.StatusConflict
	case e.Code >= 40900 && e.Code < 41000:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// =========================================
// 预定义错误
// =========================================

var (
	ErrInternal      = New(ErrCodeInternal, "Internal server error.")
	ErrDatabaseError = New(ErrCodeDatabaseError, "Database error.")
	ErrRedisError    = New(ErrCodeRedisError, "Cache service error.")
	ErrInvalidParams = New(ErrCodeInvalidParams, "Invalid parameters.")
)

// =========================================
// 辅助函数
// =========================================

// IsAppError 判断是否为AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// IsCode 判断错误是否携带指定业务错误码
// 用途：格式化消息的错误（如"Item with ID 3 not found."）无法用
// errors.Is与哨兵值比较，按Code判断错误类别
func IsCode(err error, code int) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// GetAppError 提取AppError（如果不是AppError则包装成Internal错误）
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "Internal server error.")
}
