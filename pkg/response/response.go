package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the wire shape for every API response. Success payloads carry
// status "success" plus data; failures carry a status label and statusCode.
type Envelope struct {
	Status     string      `json:"status"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	StatusCode int         `json:"statusCode,omitempty"`
	Errors     interface{} `json:"errors,omitempty"`
}

func statusLabel(code int) string {
	switch {
	case code == http.StatusNotFound:
		return "Not found"
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return "Unauthorized"
	case code >= http.StatusInternalServerError:
		return "error"
	default:
		return "Bad request"
	}
}

func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Envelope{Status: "success", Message: message, Data: data})
}

// Failure builds the error envelope without writing it, for callers that
// need to abort the handler chain themselves.
func Failure(code int, message string) Envelope {
	return Envelope{Status: statusLabel(code), Message: message, StatusCode: code}
}

func Fail(c *gin.Context, code int, message string) {
	c.JSON(code, Failure(code, message))
}

// FailWithDetails attaches a field-level error map to the failure envelope,
// used for validation errors.
func FailWithDetails(c *gin.Context, code int, message string, details interface{}) {
	env := Failure(code, message)
	env.Errors = details
	c.JSON(code, env)
}
