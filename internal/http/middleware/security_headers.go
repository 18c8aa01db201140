package middleware

import "github.com/gin-gonic/gin"

// SecurityHeaders sets the baseline browser protections for every response.
// form-action allows mailto: because the contact form answers with a redirect
// to the visitor's mail client.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Permissions-Policy", "camera=(), microphone=(), geolocation=(), payment=()")
		c.Header("Content-Security-Policy",
			"default-src 'self'; "+
				"img-src 'self' data:; "+
				"style-src 'self' 'unsafe-inline'; "+
				"frame-ancestors 'none'; "+
				"base-uri 'self'; "+
				"form-action 'self' mailto:")

		c.Next()
	}
}
