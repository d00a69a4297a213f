package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error responses keep the {"detail": ...} wire shape the API has always
// had: a plain message for 400/500, a field-error list for 422.

func Write(c *gin.Context, status int, detail any) {
	c.JSON(status, gin.H{"detail": detail})
}

func BadRequest(c *gin.Context, message string) {
	Write(c, http.StatusBadRequest, message)
}

func Unprocessable(c *gin.Context, detail any) {
	Write(c, http.StatusUnprocessableEntity, detail)
}

func Internal(c *gin.Context, message string) {
	Write(c, http.StatusInternalServerError, message)
}
