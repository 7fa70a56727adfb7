// Package logger 提供基于zap的全局结构化日志
//
// 设计说明：
// 1. 开发环境使用console格式（彩色等级），生产环境使用JSON格式
// 2. 通过zap.ReplaceGlobals注册全局logger，包外用logger.L()获取
// 3. 进程退出前调用Sync()刷新缓冲
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.Logger

// Options 日志配置
type Options struct {
	Level        string // debug | info | warn | error
	Format       string // console | json
	EnableCaller bool
}

// Init 初始化全局logger
func Init(opts Options) error {
	level, err := zapcore.ParseLevel(opts.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", opts.Level, err)
	}

	var cfg zap.Config
	if opts.Format == "json" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.DisableCaller = !opts.EnableCaller

	log, err = cfg.Build()
	if err != nil {
		return err
	}

	zap.ReplaceGlobals(log)
	return nil
}

// L 获取全局logger
// 未初始化时退化为development logger，保证测试环境可用
func L() *zap.Logger {
	if log == nil {
		log, _ = zap.NewDevelopment()
	}
	return log
}

// Sync 刷新缓冲的日志
func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}
