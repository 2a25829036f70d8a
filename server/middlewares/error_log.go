package middlewares

import (
	"bytes"
	"fmt"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"github.com/dongdio/OpenBlog/utility/utils"
)

// ErrorLogging logs responses whose body code is not 200 or whose status is >= 400
func ErrorLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		w := &responseBodyWriter{
			body:           &bytes.Buffer{},
			ResponseWriter: c.Writer,
		}
		c.Writer = w

		c.Next()

		var errorMsg string
		if w.body.Len() > 0 && gjson.ValidBytes(w.body.Bytes()) {
			code := utils.GetBytes(w.body.Bytes(), "code")
			if code.Exists() && code.Int() != 200 {
				errorMsg = fmt.Sprintf("error: code=%d, message=%s", code.Int(), utils.GetBytes(w.body.Bytes(), "message").String())
			}
		}

		switch {
		case len(c.Errors) > 0:
			errorMsg = c.Errors.String()
		case errorMsg == "" && c.Writer.Status() >= 400:
			errorMsg = fmt.Sprintf("status=%d, %s", c.Writer.Status(), truncate(w.body.String(), maxLoggedBody))
		}

		if errorMsg != "" {
			log.WithField("client", c.ClientIP()).Errorf("%s %s %s", c.Request.Method, c.Request.URL.Path, errorMsg)
		}
	}
}

const maxLoggedBody = 256

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// responseBodyWriter copies everything written to the client into body
type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r *responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}
