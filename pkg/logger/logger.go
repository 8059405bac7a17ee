package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger wraps slog.Logger with additional functionality
type Logger struct {
	*slog.Logger
}

// New creates a new logger instance
func New() *Logger {
	// Text handler for development (more readable), JSON for production
	return NewWithWriter(os.Stdout, os.Getenv("LOG_LEVEL"), gin.Mode() != gin.DebugMode)
}

// NewWithWriter creates a logger writing to w at the given level
func NewWithWriter(w io.Writer, levelStr string, jsonOutput bool) *Logger {
	level := getLogLevel(levelStr)

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	var handler slog.Handler
	if jsonOutput {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// getLogLevel converts string to slog.Level
func getLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithRequestID adds request ID to logger context
func (l *Logger) WithRequestID(requestID string) *Logger {
	return &Logger{
		Logger: l.Logger.With(slog.String("request_id", requestID)),
	}
}

// WithUserID adds user ID to logger context
func (l *Logger) WithUserID(userID string) *Logger {
	return &Logger{
		Logger: l.Logger.With(slog.String("user_id", userID)),
	}
}

// HTTP logging methods

// LogHTTPRequest logs an HTTP request
func (l *Logger) LogHTTPRequest(c *gin.Context, duration time.Duration) {
	l.Logger.InfoContext(c.Request.Context(),
		"HTTP Request",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.String("query", c.Request.URL.RawQuery),
		slog.Int("status", c.Writer.Status()),
		slog.Duration("duration", duration),
		slog.String("ip", c.ClientIP()),
		slog.String("user_agent", c.Request.UserAgent()),
		slog.Int("size", c.Writer.Size()),
		slog.String("request_id", c.GetString("request_id")),
	)
}

// LogHTTPError logs an error a handler attached to the request.
// 4xx responses are logged at warn, everything else at error.
func (l *Logger) LogHTTPError(c *gin.Context, err error, statusCode int) {
	level := slog.LevelError
	if statusCode >= 400 && statusCode < 500 {
		level = slog.LevelWarn
	}
	l.Logger.Log(c.Request.Context(), level,
		"HTTP Error",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.Int("status", statusCode),
		slog.String("error", err.Error()),
		slog.String("ip", c.ClientIP()),
	)
}

// GraphQL logging methods

// LogGraphQLCall logs one round trip to the GraphQL endpoint
func (l *Logger) LogGraphQLCall(ctx context.Context, operation string, duration time.Duration, err error) {
	if err != nil {
		l.Logger.ErrorContext(ctx,
			"GraphQL Call Error",
			slog.String("operation", operation),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()),
		)
		return
	}
	l.Logger.DebugContext(ctx,
		"GraphQL Call",
		slog.String("operation", operation),
		slog.Duration("duration", duration),
	)
}

// Business logic logging methods

// LogSeatsProvisioned logs seats created for a bus or a trip bus
func (l *Logger) LogSeatsProvisioned(ctx context.Context, scope, id string, count int) {
	l.Logger.InfoContext(ctx,
		"Seats Provisioned",
		slog.String("scope", scope),
		slog.String("id", id),
		slog.Int("count", count),
	)
}

// LogTripHistoryCreated logs a trip history insert
func (l *Logger) LogTripHistoryCreated(ctx context.Context, busID, tripID, driverID string) {
	l.Logger.InfoContext(ctx,
		"Trip History Created",
		slog.String("bus_id", busID),
		slog.String("trip_id", tripID),
		slog.String("driver_id", driverID),
	)
}

// LogTicketIssued logs a ticket that completed all write steps
func (l *Logger) LogTicketIssued(ctx context.Context, ticketID, seatID, role, userID string) {
	l.Logger.InfoContext(ctx,
		"Ticket Issued",
		slog.String("ticket_id", ticketID),
		slog.String("seat_id", seatID),
		slog.String("role", role),
		slog.String("user_id", userID),
	)
}

// LogOrphanedTicket logs a ticket whose follow-up writes failed.
// Nothing rolls the ticket back, so this is the trail for manual repair.
func (l *Logger) LogOrphanedTicket(ctx context.Context, ticketID, seatID, step string, err error) {
	l.Logger.ErrorContext(ctx,
		"Orphaned Ticket",
		slog.String("ticket_id", ticketID),
		slog.String("seat_id", seatID),
		slog.String("failed_step", step),
		slog.String("error", err.Error()),
	)
}

// LogUngatedPayment logs a ticket request skipped because of its payment method
func (l *Logger) LogUngatedPayment(ctx context.Context, method, userID string) {
	l.Logger.WarnContext(ctx,
		"Payment Method Not Gated, No Ticket Created",
		slog.String("payment_method", method),
		slog.String("user_id", userID),
	)
}

// Security logging methods

// LogAuthFailure logs failed authentication
func (l *Logger) LogAuthFailure(ctx context.Context, reason, ip string) {
	l.Logger.WarnContext(ctx,
		"Authentication Failure",
		slog.String("reason", reason),
		slog.String("ip", ip),
	)
}

// LogRateLimitExceeded logs rate limit exceeded
func (l *Logger) LogRateLimitExceeded(ctx context.Context, ip, endpoint string) {
	l.Logger.WarnContext(ctx,
		"Rate Limit Exceeded",
		slog.String("ip", ip),
		slog.String("endpoint", endpoint),
	)
}

// ErrorWithContext logs an error message with context
func (l *Logger) ErrorWithContext(ctx context.Context, msg string, err error, fields map[string]interface{}) {
	args := make([]interface{}, 0, len(fields)*2+2)
	args = append(args, slog.String("error", err.Error()))
	for k, v := range fields {
		args = append(args, slog.Any(k, v))
	}
	l.Logger.ErrorContext(ctx, msg, args...)
}

// Global logger instance (can be replaced with dependency injection)
var defaultLogger = New()

// GetDefault returns the default logger instance
func GetDefault() *Logger {
	return defaultLogger
}

// SetDefault sets the default logger instance
func SetDefault(logger *Logger) {
	defaultLogger = logger
}
