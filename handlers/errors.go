package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vit0-9/http_playground/models"
)

// respondBadRequest aborts the request with a 400 APIErrorResponse.
func respondBadRequest(c *gin.Context, code, message string, err error) {
	resp := models.APIErrorResponse{
		StatusCode: http.StatusBadRequest,
		ErrorCode:  code,
		Message:    message,
	}
	if err != nil {
		resp.Details = err.Error()
		_ = c.Error(err).SetType(gin.ErrorTypeBind)
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, resp)
}
