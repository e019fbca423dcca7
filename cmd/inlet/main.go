package main

import (
	"flag"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/indigo-web/inlet"
	"github.com/indigo-web/inlet/http"
	"github.com/rs/zerolog"
)

func main() {
	addr := flag.String("addr", "0.0.0.0:8080", "address to listen on")
	level := flag.String("log", envOr("INLET_LOG", "info"), "log level (trace, debug, info, warn, error)")
	flag.Parse()

	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().
		Level(lvl)

	app := inlet.New(*addr).
		Logger(logger).
		OnRequest(func(request *http.Request, conn net.Conn) {
			logger.Info().
				Str("remote", conn.RemoteAddr().String()).
				Stringer("method", request.Method()).
				Str("target", request.Target()).
				Stringer("proto", request.Proto()).
				Int("headers", request.Headers().Len()).
				Msg("request")
		})

	go func() {
		signals := make(chan os.Signal, 1)
		signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
		<-signals
		logger.Info().Msg("shutting down")
		app.Stop()
	}()

	if err := app.Serve(); err != nil {
		logger.Fatal().Err(err).Msg("serve")
	}
}

func envOr(key, or string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return or
}
