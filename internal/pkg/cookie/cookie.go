package cookie

import (
	"github.com/gin-gonic/gin"
)

// IDTokenCookieName is set by the storefront frontend after sign-in.
const IDTokenCookieName = "id_token"

func GetIDToken(c *gin.Context) string {
	token, _ := c.Cookie(IDTokenCookieName)
	return token
}
