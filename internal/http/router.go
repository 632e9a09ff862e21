package api

import (
	"log"
	stdhttp "net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	intconfig "github.com/Madhavikareddy/IRCTC-Redesign/internal/config"
	h "github.com/Madhavikareddy/IRCTC-Redesign/internal/http/handlers"
	"github.com/Madhavikareddy/IRCTC-Redesign/internal/http/middleware"
	"github.com/Madhavikareddy/IRCTC-Redesign/internal/session"
	"github.com/Madhavikareddy/IRCTC-Redesign/internal/trains"
)

// NewRouter wires the HTTP surface: session lifecycle, per-session
// booking flow, reference data, and the e-ticket download.
func NewRouter(env intconfig.Env, sessions *session.Manager, catalog *trains.StaticCatalog) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), corsMiddleware(env))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	sh := h.SessionHandler{Sessions: sessions}
	ref := h.ReferenceHandler{Catalog: catalog}

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/stations", ref.Stations)
		api.GET("/classes", ref.Classes)
		api.GET("/quotas", ref.Quotas)

		api.POST("/sessions", sh.Create)

		s := api.Group("/sessions/:id")
		s.GET("", sh.Get)
		s.DELETE("", sh.Close)
		s.POST("/search", sh.Search)
		s.POST("/select", sh.Select)
		s.POST("/passengers", sh.AddPassenger)
		s.PUT("/passengers/:pid", sh.UpdatePassenger)
		s.DELETE("/passengers/:pid", sh.RemovePassenger)
		s.PUT("/contact", sh.SetContact)
		s.POST("/review", sh.Review)
		s.POST("/payment", sh.ProceedToPayment)
		s.POST("/pay", sh.Pay)
		s.POST("/back", sh.Back)
		s.POST("/retry", sh.Retry)
		s.POST("/reset", sh.Reset)
		s.GET("/fare", sh.Fare)
		s.GET("/ticket", sh.Ticket)
	}

	return r
}

func corsMiddleware(env intconfig.Env) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID", "Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}
	allowAll := len(env.CORSAllowedOrigins) == 0
	for _, o := range env.CORSAllowedOrigins {
		if o == "*" {
			allowAll = true
		}
	}
	if allowAll {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = env.CORSAllowedOrigins
	}
	return cors.New(cfg)
}
