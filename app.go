package inlet

import (
	"errors"
	"io"
	"net"
	"os"

	"github.com/dchest/uniuri"
	"github.com/indigo-web/inlet/config"
	"github.com/indigo-web/inlet/http"
	"github.com/indigo-web/inlet/http/status"
	"github.com/indigo-web/inlet/internal/dump"
	"github.com/indigo-web/inlet/internal/protocol/http1"
	"github.com/indigo-web/inlet/internal/stash"
	"github.com/indigo-web/inlet/transport"
	"github.com/rs/zerolog"
)

// Handler receives every successfully parsed request along with the connection it came
// from. The connection is closed as soon as the handler returns.
type Handler func(request *http.Request, conn net.Conn)

// ErrorHandler is called when a request couldn't be parsed.
type ErrorHandler func(conn net.Conn, err error)

// App accepts connections on a single address and parses one request per connection.
// A failure of any connection, including a panicking handler, affects that connection only.
type App struct {
	addr      string
	cfg       *config.Config
	log       zerolog.Logger
	hooks     hooks
	onRequest Handler
	onError   ErrorHandler
	tcp       *transport.TCP
}

// New returns a new App instance.
func New(addr string) *App {
	return &App{
		addr: addr,
		cfg:  config.Default(),
		log: zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			With().Timestamp().Logger().
			Level(zerolog.InfoLevel),
		onRequest: func(*http.Request, net.Conn) {},
		onError:   func(net.Conn, error) {},
		tcp:       transport.NewTCP(),
	}
}

// Tune replaces default config.
func (a *App) Tune(cfg *config.Config) *App {
	a.cfg = cfg
	return a
}

// Logger replaces the default logger, which writes human-readable lines to stderr at the
// info level.
func (a *App) Logger(logger zerolog.Logger) *App {
	a.log = logger
	return a
}

func (a *App) OnRequest(handler Handler) *App {
	a.onRequest = handler
	return a
}

func (a *App) OnError(handler ErrorHandler) *App {
	a.onError = handler
	return a
}

// NotifyOnStart calls the callback when the address is bound and the accept loop is
// about to start.
func (a *App) NotifyOnStart(cb func()) *App {
	a.hooks.OnStart = cb
	return a
}

// NotifyOnStop calls the callback when the accept loop is over and all the connections
// are served.
func (a *App) NotifyOnStop(cb func()) *App {
	a.hooks.OnStop = cb
	return a
}

// Addr returns the address the app is bound to. Must be called only after the app was
// started, e.g. from the NotifyOnStart callback.
func (a *App) Addr() net.Addr {
	return a.tcp.Addr()
}

// Serve binds the address and serves connections until Stop is called. The returned
// error is never caused by a single connection.
func (a *App) Serve() error {
	if err := a.tcp.Bind(a.addr); err != nil {
		return err
	}

	a.log.Info().Str("addr", a.tcp.Addr().String()).Msg("listening")
	callIfNotNil(a.hooks.OnStart)

	err := a.tcp.Listen(a.cfg.NET, a.serve)
	a.tcp.Wait()
	if cerr := a.tcp.Close(); err == nil && cerr != nil && !errors.Is(cerr, net.ErrClosed) {
		err = cerr
	}

	a.log.Info().Err(err).Msg("stopped")
	callIfNotNil(a.hooks.OnStop)

	return err
}

// Stop stops accepting new connections. Ones already accepted are served till the end.
//
// NOTE: the call isn't blocking, the app stops within config.NET.AcceptLoopInterruptPeriod.
func (a *App) Stop() {
	a.tcp.Stop()
}

func (a *App) serve(conn net.Conn) {
	client := transport.NewClient(conn, a.cfg.NET.ReadTimeout)
	log := a.log.With().
		Str("conn", uniuri.NewLen(8)).
		Str("remote", client.Remote()).
		Logger()

	log.Debug().Msg("accepted connection")

	reader := stash.New(client, a.cfg.NET.ReadBufferSize)
	request, err := http1.NewParser(a.cfg, reader).Parse()
	if err != nil {
		a.fail(log, conn, err)
		return
	}

	if event := log.Debug(); event.Enabled() {
		if raw, err := dump.JSON(request); err == nil {
			event.RawJSON("request", raw).Msg("parsed request")
		} else {
			event.Discard()
		}
	}

	a.dispatch(log, request, conn)
}

func (a *App) fail(log zerolog.Logger, conn net.Conn, err error) {
	kind := status.Kind(err)
	event := log.Warn()
	if errors.Is(err, io.ErrUnexpectedEOF) || kind == "timeout" {
		// the client went away, nothing to blame the server for
		event = log.Debug()
	}

	event.Err(err).Str("kind", kind).Uint16("status", uint16(status.CodeOf(err))).Msg("bad request")

	defer a.recover(log)
	a.onError(conn, err)
}

func (a *App) dispatch(log zerolog.Logger, request *http.Request, conn net.Conn) {
	defer a.recover(log)
	a.onRequest(request, conn)
}

func (a *App) recover(log zerolog.Logger) {
	if r := recover(); r != nil {
		log.Error().Interface("panic", r).Msg("handler panicked")
	}
}

type hooks struct {
	OnStart, OnStop func()
}

func callIfNotNil(f func()) {
	if f != nil {
		f()
	}
}
