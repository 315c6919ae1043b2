package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func options(c *gin.Context, allow string) {
	c.Header("allow", allow)
	c.Status(http.StatusNoContent)
}

func OptionsGet(c *gin.Context) {
	options(c, "OPTIONS, GET")
}

func OptionsPost(c *gin.Context) {
	options(c, "OPTIONS, POST")
}

func OptionsPutDelete(c *gin.Context) {
	options(c, "OPTIONS, PUT, DELETE")
}

func OptionsGetPutDelete(c *gin.Context) {
	options(c, "OPTIONS, GET, PUT, DELETE")
}
