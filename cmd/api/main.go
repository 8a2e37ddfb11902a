package main

import (
	"log"
	"net/http"
	"os"
	"time"

	_ "school-health-records/docs"
	"school-health-records/internal/platform/logger"
	"school-health-records/internal/router"
)

// @title School Health Records API
// @version 0.1
// @description API del portal de gestión médica escolar: eventos médicos, alumnos, campañas y feed de notificaciones.
// @BasePath /
func main() {
	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	appLog := logger.NewFromEnv()

	r := router.NewRouter(router.Options{
		AuthVerifier:     nil, // sin verifier para modo dev
		Logger:           appLog,
		SeedData:         os.Getenv("SEED") != "0",
		NotifyWebhookURL: os.Getenv("NOTIFY_WEBHOOK_URL"),
	})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	appLog.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
