package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/elitedriving/institute-api/pkg/errors"
)

// errorBody is the wire contract for every failure: a human-readable message
// plus an optional stable code, field-level details or enum membership list.
type errorBody struct {
	Error         string   `json:"error"`
	Code          string   `json:"code,omitempty"`
	Details       []string `json:"details,omitempty"`
	ValidStatuses []string `json:"validStatuses,omitempty"`
}

// JSON sends a success response with the raw payload as the body.
func JSON(c *gin.Context, status int, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(status, data)
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, data interface{}) {
	JSON(c, http.StatusCreated, data)
}

// Error sends an error response converting the error to the common structure.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(appErr.Status, errorBody{
		Error:         appErr.Message,
		Code:          appErr.Code,
		Details:       appErr.Details,
		ValidStatuses: appErr.ValidValues,
	})
}

// Attachment streams rendered bytes as a file download.
func Attachment(c *gin.Context, contentType, filename string, data []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, data)
}
