package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"

	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/loop/client"
	loopconfig "github.com/tomz197/invaders/internal/loop/config"
	"github.com/tomz197/invaders/internal/loop/server"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = "/app/keys/host_key"
)

func main() {
	logger := config.NewLogger(os.Stderr, "ssh")
	addr := net.JoinHostPort(
		config.GetEnv("SSH_HOST", defaultHost),
		config.GetEnv("SSH_PORT", defaultPort),
	)
	hostKey := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)

	hub := server.NewHub()
	s, err := newServer(addr, hostKey, hub, logger)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	logger.Info("starting ssh server", "addr", addr, "host_key", hostKey)
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-stop
	logger.Info("shutting down", "sessions", hub.Count())

	// Players get a countdown before the listener goes away.
	if left := hub.Shutdown(loopconfig.ShutdownGracePeriod); left > 0 {
		logger.Warn("sessions still connected", "count", left)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		logger.Fatal("shutdown error", "err", err)
	}
}

func newServer(addr, hostKey string, hub *server.Hub, logger *log.Logger) (*ssh.Server, error) {
	opts := []ssh.Option{
		wish.WithAddress(addr),
		wish.WithMiddleware(
			playMiddleware(hub, logger),
			activeterm.Middleware(),
			logging.StructuredMiddlewareWithLogger(logger, log.InfoLevel),
		),
		// Keystrokes are tiny; don't let Nagle batch them.
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcp, ok := conn.(*net.TCPConn); ok {
				_ = tcp.SetNoDelay(true)
			}
			return conn
		}),
	}
	if hostKey != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKey))
	}
	return wish.NewServer(opts...)
}

// playMiddleware runs a private game for each session.
func playMiddleware(hub *server.Hub, logger *log.Logger) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			pty, winCh, ok := sess.Pty()
			if !ok {
				fmt.Fprintln(sess, "A terminal is required: ssh -t", sess.User()+"@host")
				return
			}

			sessLog := logger.With("user", sess.User())
			sessLog.Info("session started", "term", pty.Term,
				"width", pty.Window.Width, "height", pty.Window.Height)

			size := &windowSize{width: pty.Window.Width, height: pty.Window.Height}
			go size.follow(winCh)

			c := client.NewClient(bufio.NewReader(sess), sess, client.ClientOptions{
				TermSizeFunc: size.get,
				Username:     sess.User(),
				Hub:          hub,
				Inactivity:   true,
				Logger:       sessLog,
			})
			if err := c.Run(); err != nil {
				sessLog.Error("session failed", "err", err)
			}

			sessLog.Info("session ended")
			next(sess)
		}
	}
}

// windowSize holds the latest PTY size of a session.
type windowSize struct {
	mu            sync.Mutex
	width, height int
}

// follow applies window-change events until the channel closes.
func (w *windowSize) follow(changes <-chan ssh.Window) {
	for win := range changes {
		w.mu.Lock()
		w.width, w.height = win.Width, win.Height
		w.mu.Unlock()
	}
}

func (w *windowSize) get() (int, int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.width, w.height, nil
}
