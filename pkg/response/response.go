package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/bookhaven/bookhaven/pkg/errors"
	"github.com/bookhaven/bookhaven/pkg/logger"
)

// 设计说明：
// 对外契约是"裸结构"——成功时直接返回业务结构体，
// 失败时返回{message}并用HTTP状态码表达错误类型。
// 静态站点客户端直接消费这些字段，不做code信封解包。

// MessageBody 仅含message字段的响应体
type MessageBody struct {
	Message string `json:"message"`
}

// OK 200 + 业务数据
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 201 + 业务数据
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Message 200 + {message}
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageBody{Message: message})
}

// Error 错误响应（自动处理AppError）
// 用法：
//
//	item, err := uc.Execute(ctx, req)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)

	// 内部错误仅记录日志，不进响应体
	if appErr.Err != nil {
		logger.L().Error("request failed",
			zap.Int("code", appErr.Code),
			zap.String("path", c.FullPath()),
			zap.Error(appErr.Err),
		)
	}

	c.JSON(appErr.HTTPStatus(), MessageBody{Message: appErr.Message})
}

// BadRequest 400 + {message}
// 用于参数绑定失败等不经过AppError的场景
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, MessageBody{Message: message})
}
