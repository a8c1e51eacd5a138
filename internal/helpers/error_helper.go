package helpers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// RespondWithError writes an error payload whose message doubles as the
// user-facing failure notice.
func RespondWithError(c *gin.Context, statusCode int, customMessage string) {
	c.JSON(statusCode, ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: customMessage,
	})
}

// RespondWithNotice writes a success payload carrying the flash-style
// notice line plus any extra fields.
func RespondWithNotice(c *gin.Context, statusCode int, notice string, payload gin.H) {
	body := gin.H{"message": notice}
	for key, value := range payload {
		body[key] = value
	}
	c.JSON(statusCode, body)
}
