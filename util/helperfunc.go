package util

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIErrorParams struct {
	Msg string
	Err error
}

// CallUserError is for return error from user side
func CallUserError(c *gin.Context, params APIErrorParams) {
	c.JSON(http.StatusBadRequest, gin.H{"error": params.Msg})
}

// CallErrorNotFound is for return API response not found
func CallErrorNotFound(c *gin.Context, params APIErrorParams) {
	c.JSON(http.StatusNotFound, gin.H{"error": params.Msg})
}

// CallServerError is for return API response server error. The underlying
// cause is logged, never exposed in the response body.
func CallServerError(c *gin.Context, params APIErrorParams) {
	if params.Err != nil {
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, params.Err)
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": params.Msg})
}
