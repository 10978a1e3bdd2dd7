// Package logger re-exports the module's logger for internal packages
// that must not import the module root (which would create an import
// cycle with internal/socket and friends).
package logger

import "github.com/warmsocket/rsocket/logger"

type (
	Func  = logger.Func
	Level = logger.Level
)

const (
	LevelDebug = logger.LevelDebug
	LevelInfo  = logger.LevelInfo
	LevelWarn  = logger.LevelWarn
	LevelError = logger.LevelError
)

func SetLevel(level Level)          { logger.SetLevel(level) }
func GetLevel() Level               { return logger.GetLevel() }
func DisablePrefix()                { logger.DisablePrefix() }
func SetFunc(level Level, fn Func)  { logger.SetFunc(level, fn) }
func IsDebugEnabled() bool          { return logger.IsDebugEnabled() }
func Debugf(format string, v ...interface{}) { logger.Debugf(format, v...) }
func Infof(format string, v ...interface{})  { logger.Infof(format, v...) }
func Warnf(format string, v ...interface{})  { logger.Warnf(format, v...) }
func Errorf(format string, v ...interface{}) { logger.Errorf(format, v...) }
