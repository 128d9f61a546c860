package handlers

import (
	"errors"
	"net/http"

	"github.com/BlacAnon1/banqa-wallet-service/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// fail writes the structured error payload every remote function
// returns: {"success":false,"error":...} with HTTP 400. Clients surface
// the message verbatim, so services phrase errors for end users.
func fail(c *gin.Context, err error) {
	logrus.Warnf("%s %s failed: %s", c.Request.Method, c.FullPath(), err.Error())

	var missing *service.MissingFieldsError
	if errors.As(err, &missing) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":        false,
			"error":          "missing_fields",
			"missing_fields": missing.Fields,
		})
		return
	}

	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": message})
}
