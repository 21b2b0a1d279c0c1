package handlers

import (
	"doctorsportal/middleware"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger retrieves the request-scoped logger set by RequestLogger, or the
// global one.
func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get(middleware.ContextLogger); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return utils.GetLogger()
}

// internalError logs err and replies 500.
func internalError(c *gin.Context, msg string, err error) {
	getLogger(c).Error(msg, zap.Error(err))
	utils.JSONError(c, 500, msg, err.Error())
}
