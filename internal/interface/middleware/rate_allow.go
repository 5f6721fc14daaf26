package middleware

import (
	"net"

	"github.com/gin-gonic/gin"
)

// AllowPrivateIP returns a bypass function that lets requests from private
// or loopback addresses skip rate limiting.
func AllowPrivateIP() AllowFunc {
	return func(c *gin.Context) bool {
		parsed := net.ParseIP(ipFromCtx(c))
		if parsed == nil {
			return false
		}
		// 10.0.0.0/8, 172.16/12, 192.168/16, loopback
		return parsed.IsLoopback() || parsed.IsPrivate()
	}
}
