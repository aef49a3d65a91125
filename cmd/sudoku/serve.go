package main

import (
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	httpadapter "github.com/dharm001-star/sudoku-mind-solver/internal/adapters/http"
	"github.com/dharm001-star/sudoku-mind-solver/internal/generator"
	"github.com/dharm001-star/sudoku-mind-solver/internal/hint"
	"github.com/dharm001-star/sudoku-mind-solver/internal/infrastructure/storage"
	"github.com/dharm001-star/sudoku-mind-solver/internal/solver"
	"github.com/dharm001-star/sudoku-mind-solver/internal/usecase"
	"github.com/dharm001-star/sudoku-mind-solver/internal/validator"
)

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration in a human-readable format.
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		dur := time.Since(start)
		logger.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", dur.Round(time.Millisecond),
		)
	})
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newServeCommand() *cobra.Command {
	var (
		addr     string
		persist  string
		levelStr string
		pprof    bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the puzzle JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if pprof {
				defer profile.Start(profile.ProfilePath(".")).Stop()
			}
			logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(levelStr)}))
			if err := os.MkdirAll(persist, 0o755); err != nil {
				return err
			}

			// Wire providers -> use cases -> HTTP adapter
			s := solver.NewBacktrackingSolver()
			uc := usecase.NewService(
				s,
				generator.NewUniqueGenerator(s),
				validator.New(),
				hint.NewSingles(),
				storage.NewFS(persist),
			)
			mux := http.NewServeMux()
			httpadapter.New(uc).Register(mux)

			srv := &http.Server{
				Addr:              addr,
				Handler:           requestLogger(logger, mux),
				ReadHeaderTimeout: 5 * time.Second,
			}
			logger.Info("listening", "addr", addr, "persist", persist)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&persist, "persist-path", "./data", "save directory")
	cmd.Flags().StringVar(&levelStr, "log-level", "info", "debug|info|warn|error")
	cmd.Flags().BoolVar(&pprof, "pprof", false, "write a CPU profile on exit")
	return cmd
}
