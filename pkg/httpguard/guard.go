package httpguard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"mime"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/bycontract/pkg/exception"
	"github.com/dmitrymomot/bycontract/pkg/is"
	"github.com/dmitrymomot/bycontract/pkg/logger"
)

// DefaultMaxBodySize is the default limit for JSON request bodies (1MB).
const DefaultMaxBodySize = 1 << 20

// Validator checks values against contracts. *bycontract.Engine implements it.
type Validator interface {
	Validate(values, contract any, callContext ...string) (any, error)
}

// ErrorHandler writes the response for a rejected request.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, status int, err error)

// Option configures a guard.
type Option func(*guard)

// WithMaxBodySize overrides DefaultMaxBodySize. Non-positive sizes are ignored;
// sizes are capped at math.MaxInt64-1 to leave room for the byte that detects overflow.
func WithMaxBodySize(n int64) Option {
	return func(g *guard) {
		if n > 0 {
			g.maxBody = min(n, math.MaxInt64-1)
		}
	}
}

// WithCallContext sets the label prefixed to failure messages.
func WithCallContext(label string) Option {
	return func(g *guard) { g.label = label }
}

// WithErrorHandler replaces the default JSON error writer.
func WithErrorHandler(h ErrorHandler) Option {
	return func(g *guard) {
		if h != nil {
			g.onError = h
		}
	}
}

// WithLogger logs rejected requests at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(g *guard) {
		if l != nil {
			g.log = l
		}
	}
}

type guard struct {
	v       Validator
	maxBody int64
	label   string
	onError ErrorHandler
	log     *slog.Logger
}

func newGuard(v Validator, opts []Option) *guard {
	g := &guard{
		v:       v,
		maxBody: DefaultMaxBodySize,
		onError: WriteError,
		log:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *guard) reject(w http.ResponseWriter, r *http.Request, status int, err error) {
	g.log.DebugContext(r.Context(), "request rejected",
		logger.Component("httpguard"),
		slog.String("path", r.URL.Path),
		slog.Int("status", status),
		logger.Code(exception.CodeOf(err)),
		logger.Error(err),
	)
	g.onError(w, r, status, err)
}

type decodedKey struct{}

// Decoded returns the body decoded by Body.
func Decoded(ctx context.Context) (any, bool) {
	v, ok := ctx.Value(decodedKey{}).(decodedBody)
	return v.value, ok
}

type decodedBody struct{ value any }

// Body validates the JSON request body against contract.
func Body(v Validator, contract any, opts ...Option) func(http.Handler) http.Handler {
	g := newGuard(v, opts)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
			if err != nil || mediaType != "application/json" {
				g.reject(w, r, http.StatusUnsupportedMediaType,
					fmt.Errorf("%w: expected application/json", ErrUnsupportedMediaType))
				return
			}

			body, err := io.ReadAll(io.LimitReader(r.Body, g.maxBody+1))
			if err != nil {
				g.reject(w, r, http.StatusBadRequest, errors.Join(ErrInvalidJSON, err))
				return
			}
			if int64(len(body)) > g.maxBody {
				g.reject(w, r, http.StatusRequestEntityTooLarge,
					fmt.Errorf("%w: max %d bytes", ErrBodyTooLarge, g.maxBody))
				return
			}

			value, err := decode(body)
			if err != nil {
				g.reject(w, r, http.StatusBadRequest, errors.Join(ErrInvalidJSON, err))
				return
			}

			if _, err := g.v.Validate(value, contract, g.labelOr("body")); err != nil {
				g.reject(w, r, statusFor(err, http.StatusUnprocessableEntity), err)
				return
			}

			r.Body = io.NopCloser(bytes.NewReader(body))
			ctx := context.WithValue(r.Context(), decodedKey{}, decodedBody{value: value})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Params validates chi URL parameters. Empty parameters are undefined, so
// optional contracts ("string=") accept them.
func Params(v Validator, contracts map[string]any, opts ...Option) func(http.Handler) http.Handler {
	g := newGuard(v, opts)
	names := make([]string, 0, len(contracts))
	for name := range contracts {
		names = append(names, name)
	}
	sort.Strings(names)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, name := range names {
				value := any(chi.URLParam(r, name))
				if value == "" {
					value = is.Undef
				}
				if _, err := g.v.Validate(value, contracts[name], g.labelOr("param "+name)); err != nil {
					g.reject(w, r, statusFor(err, http.StatusBadRequest), err)
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (g *guard) labelOr(fallback string) string {
	if g.label != "" {
		return g.label
	}
	return fallback
}

func decode(body []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty body")
		}
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("unexpected data after JSON value")
	}
	return value, nil
}

// statusFor maps API misuse to 500 and everything else to status.
func statusFor(err error, status int) int {
	switch exception.CodeOf(err) {
	case exception.CodeInvalidParam, exception.CodeInvalidContract:
		return http.StatusInternalServerError
	}
	return status
}
