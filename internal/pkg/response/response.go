package response

import "github.com/gin-gonic/gin"

// Error writes the flat {message} error body used across the API.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

// ErrorWithDetail additionally carries the underlying error text.
func ErrorWithDetail(c *gin.Context, statusCode int, message string, err error) {
	body := gin.H{"message": message}
	if err != nil {
		body["error"] = err.Error()
	}
	c.JSON(statusCode, body)
}
