package middleware

import (
	"time"

	"github.com/Sanjida-Parven-Alfe/Backend/internal/config"
	"github.com/gin-contrib/cors"
	"github.com/wb-go/wbf/ginext"
)

// CORS lets the web client call the API from another origin.
func CORS(cfg config.CORSConfig) ginext.HandlerFunc {
	cc := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", requestIDHeader},
		ExposeHeaders: []string{"Content-Length", requestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	if cfg.AllowAll() {
		cc.AllowAllOrigins = true
	} else {
		cc.AllowOrigins = cfg.Origins()
		cc.AllowCredentials = true
	}

	return cors.New(cc)
}
