package middleware

import (
	"github.com/gin-gonic/gin"
)

// NoStore keeps browsers and proxies from caching pages that show patient,
// doctor or staff records.
func NoStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store, private")
		c.Header("Pragma", "no-cache")
		c.Next()
	}
}
