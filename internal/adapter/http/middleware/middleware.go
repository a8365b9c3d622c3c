package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/reviewpulse/sentiment-api/internal/adapter/http/handler"
	"github.com/reviewpulse/sentiment-api/internal/usecase"
)

// RequestID attaches a request ID to every request, generating one when
// the client did not supply an X-Request-ID header
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Next()
	}
}

// Logger logs every request at a level matching its status class
func Logger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
			zap.String("request_id", c.GetString("request_id")),
			zap.String("client_ip", c.ClientIP()),
		}

		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			logger.Error("request completed", fields...)
		case c.Writer.Status() >= http.StatusBadRequest:
			logger.Warn("request completed", fields...)
		default:
			logger.Info("request completed", fields...)
		}
	}
}

// Recovery recovers from handler panics and responds with a 500
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("panic recovered",
					zap.Any("panic", rec),
					zap.String("path", c.Request.URL.Path),
					zap.String("request_id", c.GetString("request_id")),
				)
				abortWithError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}()
		c.Next()
	}
}

// CORS sets permissive cross-origin headers and short-circuits preflight
// requests
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// Auth gates a route group behind bearer-token authentication. On success
// the authenticated user is stored in the context under
// handler.CurrentUserKey; otherwise the request is rejected with 401
// before reaching the handler.
func Auth(authUC usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			errResp := handler.MapUsecaseError(usecase.ErrMissingToken)
			abortWithError(c, errResp.StatusCode, errResp.Code, errResp.Message)
			return
		}

		user, err := authUC.Authenticate(c.Request.Context(), raw)
		if err != nil {
			errResp := handler.MapUsecaseError(err)
			abortWithError(c, errResp.StatusCode, errResp.Code, errResp.Message)
			return
		}

		c.Set(handler.CurrentUserKey, user)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	if token == "" {
		return "", false
	}
	return token, true
}

func abortWithError(c *gin.Context, status int, code, message string) {
	requestID := c.GetString("request_id")
	if requestID == "" {
		requestID = uuid.New().String()
	}
	c.AbortWithStatusJSON(status, handler.Response{
		Success: false,
		Error: &handler.ErrorInfo{
			Code:    code,
			Message: message,
		},
		Meta: &handler.MetaInfo{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			RequestID: requestID,
		},
	})
}
