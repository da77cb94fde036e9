package api

import (
	"context"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"
	"unicode"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/matzehuels/chartpress/pkg/errors"
	"github.com/matzehuels/chartpress/pkg/observability"
	"github.com/matzehuels/chartpress/pkg/pipeline"
)

const (
	requestIDHeader = "X-Request-ID"
	maxRequestIDLen = 128
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	loggerKey
)

// requestID adopts a well-formed client X-Request-ID or assigns a new UUID,
// and echoes it on the response.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if !validRequestID(id) {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for _, c := range id {
		if c > unicode.MaxASCII || !unicode.IsPrint(c) || c == ' ' {
			return false
		}
	}
	return true
}

// requestIDFrom returns the request ID assigned by the requestID middleware.
func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// logRequests attaches a request-scoped logger and logs every completed
// request with its status, size and duration.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		l := s.logger.With("request_id", requestIDFrom(r.Context()), "method", r.Method, "path", r.URL.Path)
		ctx := context.WithValue(r.Context(), loggerKey, l)
		ctx = pipeline.WithLogger(ctx, l)

		hooks := observability.Server()
		hooks.OnRequest(ctx, r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r.WithContext(ctx))

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		d := time.Since(start)
		hooks.OnResponse(ctx, r.Method, r.URL.Path, status, ww.BytesWritten(), d)

		fields := []any{"status", status, "bytes", ww.BytesWritten(), "duration", d.Round(time.Microsecond), "remote", r.RemoteAddr}
		switch {
		case status >= http.StatusInternalServerError:
			l.Error("request", fields...)
		case status >= http.StatusBadRequest:
			l.Warn("request", fields...)
		default:
			l.Info("request", fields...)
		}
	})
}

// loggerFrom returns the request-scoped logger, or the server logger.
func (s *Server) loggerFrom(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return s.logger
}

// recoverer turns a handler panic into a JSON 500. Outside development the
// panic value is not exposed.
func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			stack := debug.Stack()
			observability.Server().OnPanic(r.Context(), r.Method, r.URL.Path, rec)
			s.loggerFrom(r.Context()).Error("panic", "panic", rec, "stack", string(stack))

			body := errorBody{
				Error:   "Erro interno do servidor",
				Code:    string(errors.ErrCodeInternal),
				Message: "Algo deu errado",
			}
			if s.cfg.IsDevelopment() {
				body.Message = fmt.Sprint(rec)
				body.Stack = string(stack)
			}
			writeJSON(w, http.StatusInternalServerError, body)
		}()
		next.ServeHTTP(w, r)
	})
}

// limitBody caps request bodies at the configured size.
func (s *Server) limitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxBodyBytes)
		next.ServeHTTP(w, r)
	})
}
