package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	intconfig "github.com/Madhavikareddy/IRCTC-Redesign/internal/config"
	"github.com/Madhavikareddy/IRCTC-Redesign/internal/flow"
	router "github.com/Madhavikareddy/IRCTC-Redesign/internal/http"
	"github.com/Madhavikareddy/IRCTC-Redesign/internal/payment"
	"github.com/Madhavikareddy/IRCTC-Redesign/internal/session"
	"github.com/Madhavikareddy/IRCTC-Redesign/internal/trains"
)

func main() {
	env, err := intconfig.LoadEnv()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	catalog := trains.NewStaticCatalog()
	gateway := payment.NewSimulator(env.PaymentDelay, env.PaymentSuccessRate, nil)

	sessions := session.NewManager(func(id string) *flow.Controller {
		return flow.New(catalog, gateway, flow.Options{
			PaymentTimeout: env.PaymentTimeout,
			RequestID:      id,
		})
	}, session.Options{TTL: env.SessionTTL})

	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go sessions.Start(sweepCtx)

	r := router.NewRouter(env, sessions, catalog)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      2 * env.PaymentTimeout,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("booking service listening on http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown failed: %v", err)
	}

	log.Println("server stopped cleanly.")
}
