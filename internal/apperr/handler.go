package apperr

import (
	"context"
	"log/slog"

	"github.com/getsentry/sentry-go"

	"github.com/baharkarakas/mindbank/internal/logger"
)

// Reporter logs errors and forwards the serious ones to Sentry.
type Reporter struct {
	log           *slog.Logger
	sentryEnabled bool
}

func NewReporter(log *slog.Logger, sentryEnabled bool) *Reporter {
	if log == nil {
		log = slog.Default()
	}
	return &Reporter{log: log, sentryEnabled: sentryEnabled}
}

// Report logs err and returns the HTTP status and user-facing message for it.
func (r *Reporter) Report(ctx context.Context, err error) (int, string) {
	if err == nil {
		return 200, ""
	}

	kind := KindOf(err)
	args := []any{"kind", string(kind), "error", err.Error()}
	if id := logger.RequestIDFromContext(ctx); id != "" {
		args = append(args, "request_id", id)
	}

	switch kind {
	case KindValidation:
		r.log.Info("request rejected", args...)
	case KindRateFetch:
		r.log.Warn("exchange rate error", args...)
	default:
		r.log.Error("request failed", args...)
		if r.sentryEnabled {
			r.sendToSentry(ctx, err, kind)
		}
	}

	return HTTPStatus(err), UserMessage(err)
}

func (r *Reporter) sendToSentry(ctx context.Context, err error, kind Kind) {
	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("kind", string(kind))
		if id := logger.RequestIDFromContext(ctx); id != "" {
			scope.SetTag("request_id", id)
		}
		hub.CaptureException(err)
	})
}
