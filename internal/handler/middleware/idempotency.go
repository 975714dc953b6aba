package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"net/http"
	"time"

	"flight-booking/internal/handler/httperr"
	"flight-booking/internal/infra/idempotency"
	"flight-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var ErrIdempotencyKeyReused = errs.New("idempotency key reused with different parameters")

const (
	IdempotencyKeyHeader      = "Idempotency-Key"
	IdempotencyReplayedHeader = "X-Idempotency-Replayed"
)

// storeTimeout bounds the bookkeeping done after the handler has already answered.
const storeTimeout = 2 * time.Second

type bodyRecorder struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyRecorder) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Idempotency replays the first stored response for a repeated Idempotency-Key.
// Keys are scoped to method and path; a repeat whose query parameters differ
// from the stored request gets 422. Store failures fall through to the handler.
func Idempotency(store idempotency.Store, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}
		scoped := c.Request.Method + " " + c.Request.URL.Path + " " + key
		hash := requestHash(c)
		ctx := c.Request.Context()

		rec, err := store.Load(ctx, scoped)
		switch {
		case errs.Is(err, idempotency.ErrInFlight):
			httperr.AbortWithError(c, http.StatusConflict, err, "Request with this idempotency key is still being processed", nil)
			return
		case err != nil:
			logger.Warn("idempotency lookup failed, processing request", "error", err)
			c.Next()
			return
		case rec != nil && rec.RequestHash != hash:
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, ErrIdempotencyKeyReused,
				"Idempotency key was already used with different parameters", nil)
			return
		case rec != nil:
			c.Header(IdempotencyReplayedHeader, "true")
			c.Data(rec.Status, rec.ContentType, rec.Body)
			c.Abort()
			return
		}

		claimed, err := store.Claim(ctx, scoped)
		if err != nil {
			logger.Warn("idempotency claim failed, processing request", "error", err)
			c.Next()
			return
		}
		if !claimed {
			httperr.AbortWithError(c, http.StatusConflict, idempotency.ErrInFlight, "Request with this idempotency key is still being processed", nil)
			return
		}

		recorder := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = recorder
		c.Next()

		saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), storeTimeout)
		defer cancel()

		status := recorder.Status()
		if status >= http.StatusInternalServerError {
			if err := store.Release(saveCtx, scoped); err != nil {
				logger.Warn("failed to release idempotency key", "error", err)
			}
			return
		}
		err = store.Save(saveCtx, scoped, idempotency.Record{
			RequestHash: hash,
			Status:      status,
			ContentType: recorder.Header().Get("Content-Type"),
			Body:        recorder.body.Bytes(),
		})
		if err != nil {
			logger.Warn("failed to store idempotent response", "error", err)
		}
	}
}

// requestHash fingerprints the query parameters; Encode sorts them by key.
func requestHash(c *gin.Context) string {
	sum := sha256.Sum256([]byte(c.Request.URL.Query().Encode()))
	return hex.EncodeToString(sum[:])
}
