package main

import (
	"context"
	"crypto/tls"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"gamesapi/handlers"
	"gamesapi/monitoring"
	"gamesapi/store"
	"gamesapi/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	utils.InitLogger()
	monitoring.InitMetrics()

	games := store.NewGameStore(store.DefaultGames()...)
	monitoring.GamesTotal.Set(float64(games.Count()))

	r := handlers.SetupRouter(handlers.NewGameHandler(games))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	useHTTPS := os.Getenv("USE_HTTPS") == "true"
	certFile := os.Getenv("TLS_CERT_FILE")
	keyFile := os.Getenv("TLS_KEY_FILE")

	go func() {
		var err error
		if useHTTPS && certFile != "" && keyFile != "" {
			utils.Log.Info("Starting server with HTTPS on port ", port)
			srv.TLSConfig = &tls.Config{
				MinVersion: tls.VersionTLS12,
			}
			err = srv.ListenAndServeTLS(certFile, keyFile)
		} else {
			utils.Log.Info("Starting server with HTTP on port ", port)
			err = srv.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Log.Fatal("Failed to start server: ", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.Log.Error("Shutdown error: ", err)
	}
	utils.Log.Info("Server stopped")
}
