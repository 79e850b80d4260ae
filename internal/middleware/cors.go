package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS permissivo: o formulário público é servido de outro domínio.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set(
			"Access-Control-Allow-Headers",
			"Authorization, X-Client-Info, Apikey, Content-Type",
		)
		c.Writer.Header().Set(
			"Access-Control-Allow-Methods",
			"GET, POST, PUT, PATCH, DELETE, OPTIONS",
		)

		// PRE-FLIGHT: resposta vazia de sucesso
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
