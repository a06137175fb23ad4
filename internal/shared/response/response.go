package response

import (
	"github.com/gin-gonic/gin"

	"go-hrm/internal/shared/apperror"
)

// Success writes the fixed external envelope: {"success": true, "<key>": data}.
// key names the resource (e.g. "employee", "employees") so clients address
// the payload by entity name.
func Success(c *gin.Context, status int, key string, data any) {
	body := gin.H{"success": true}
	if key != "" {
		body[key] = data
	}
	c.JSON(status, body)
}

// Message writes a success envelope with only a message, used by deletes.
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": true,
		"message": message,
	})
}

// Error writes a failure envelope with the taxonomy code and a readable
// message. details is optional field-level information.
func Error(c *gin.Context, status int, code, message string, details any) {
	body := gin.H{
		"success": false,
		"message": message,
		"error": gin.H{
			"code": code,
		},
	}
	if details != nil {
		body["error"].(gin.H)["details"] = details
	}
	c.JSON(status, body)
}

// FromError writes a failure envelope from a classified service error.
func FromError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}
