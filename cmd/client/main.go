package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jrsteele09/go-stateless-auth-server/democlient"
	"github.com/jrsteele09/go-stateless-auth-server/internal/config"
	"github.com/jrsteele09/go-stateless-auth-server/internal/logging"
	"github.com/rs/zerolog/log"
)

func main() {
	c := config.New()
	logging.Setup(c.GetEnv(), c.GetLogLevel())

	client := democlient.New(democlient.Config{
		ClientID:      c.GetClientID(),
		RedirectURI:   c.GetRedirectURI(),
		AuthServerURL: c.GetAuthServerURL(),
	})

	httpServer := &http.Server{
		Addr:              c.GetClientPort(),
		Handler:           client,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("addr", httpServer.Addr).Str("auth_server", c.GetAuthServerURL()).Msg("demo client listening")
		fmt.Printf("open http://localhost%s/ to start the authorization flow\n", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("demo client stopped")
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("demo client shutdown")
	}
}
