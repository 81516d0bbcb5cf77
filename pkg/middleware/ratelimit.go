package middleware

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/middleware/stdlib"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RateLimit throttles by client IP using a rate string like "20-M" (twenty
// per minute). A bad rate string disables limiting instead of taking down
// the server.
func RateLimit(rateStr string, logger *zap.Logger) func(http.Handler) http.Handler {
	rate, err := limiter.NewRateFromFormatted(rateStr)
	if err != nil {
		logger.Error("Invalid rate limit format, limiting disabled",
			zap.String("rate", rateStr),
			zap.Error(err))
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	instance := limiter.New(memory.NewStore(), rate)
	mw := stdlib.NewMiddleware(instance)

	return func(next http.Handler) http.Handler {
		return mw.Handler(next)
	}
}
