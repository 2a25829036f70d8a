package common

import (
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/dongdio/OpenBlog/global"
)

// ErrorResp writes err with code and aborts the chain.
// Pass true as l to also log the error
func ErrorResp(c *gin.Context, err error, code int, l ...bool) {
	ErrorWithDataResp(c, err, code, nil, l...)
}

func ErrorWithDataResp(c *gin.Context, err error, code int, data any, l ...bool) {
	if len(l) > 0 && l[0] {
		if global.Debug || global.Dev {
			log.Errorf("%+v", err)
		} else {
			log.Errorf("%v", err)
		}
	}

	c.JSON(200, Resp[any]{
		Code:    code,
		Message: err.Error(),
		Data:    data,
	})
	c.Abort()
}

func ErrorStrResp(c *gin.Context, str string, code int, l ...bool) {
	if len(l) != 0 && l[0] {
		log.Error(str)
	}
	c.JSON(200, Resp[any]{
		Code:    code,
		Message: str,
		Data:    nil,
	})
	c.Abort()
}

func SuccessResp(c *gin.Context, data ...any) {
	SuccessWithMsgResp(c, "success", data...)
}

func SuccessWithMsgResp(c *gin.Context, msg string, data ...any) {
	var respData any
	if len(data) > 0 {
		respData = data[0]
	}

	c.JSON(200, Resp[any]{
		Code:    200,
		Message: msg,
		Data:    respData,
	})
}
