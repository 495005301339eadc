package utils

import "github.com/gin-gonic/gin"

// CurrentUserID reads the user id the auth middleware stored in the
// context. The middleware always stores a typed uint from the parsed
// claims, so anything else means "not authenticated".
func CurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get("userId"); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get("role"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
