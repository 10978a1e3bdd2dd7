package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/warmsocket/rsocket/logger"
)

var (
	fakeFormat = "fake format: %v"
	fakeArgs   = []interface{}{"fake args"}
)

func TestSetLogger(t *testing.T) {
	logger.SetLevel(logger.LevelDebug)

	call := func() {
		logger.Debugf(fakeFormat, fakeArgs...)
		logger.Infof(fakeFormat, fakeArgs...)
		logger.Warnf(fakeFormat, fakeArgs...)
		logger.Errorf(fakeFormat, fakeArgs...)
	}

	call()

	var debugs, infos, warns, errs int
	logger.SetFunc(logger.LevelDebug, func(string, ...interface{}) { debugs++ })
	logger.SetFunc(logger.LevelInfo, func(string, ...interface{}) { infos++ })
	logger.SetFunc(logger.LevelWarn, func(string, ...interface{}) { warns++ })
	logger.SetFunc(logger.LevelError, func(string, ...interface{}) { errs++ })

	assert.Equal(t, logger.LevelDebug, logger.GetLevel(), "wrong logger level")
	assert.True(t, logger.IsDebugEnabled(), "should be enabled")

	call()
	assert.Equal(t, 1, debugs)
	assert.Equal(t, 1, infos)
	assert.Equal(t, 1, warns)
	assert.Equal(t, 1, errs)

	logger.SetLevel(logger.LevelInfo)
	call()
	assert.Equal(t, 1, debugs)
	assert.Equal(t, 2, infos)
	assert.Equal(t, 2, warns)
	assert.Equal(t, 2, errs)

	logger.SetLevel(logger.LevelDebug)
}
