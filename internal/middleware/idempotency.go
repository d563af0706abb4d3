package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	internalRedis "fuelform/internal/redis"
	"fuelform/internal/webapp"
)

const (
	idempotencyHeader = "Idempotency-Key"
	idempotencyPrefix = "idempotency:"
	idempotencyTTL    = 24 * time.Hour

	idempotencyLockTTL = 30 * time.Second
)

// cachedResponse stores the response for a replayed submission.
type cachedResponse struct {
	StatusCode  int    `json:"status_code"`
	Body        []byte `json:"body"`
	ContentType string `json:"content_type"`
}

// responseWriter wraps gin.ResponseWriter to capture the response.
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the stored response for a POST carrying an
// Idempotency-Key already seen in the same session. While the first request
// with a key is in flight, repeats are refused with 409 so a double-tapped
// submit button reaches the host once.
func Idempotency(client *redis.Client) gin.HandlerFunc {
	var locks *internalRedis.LockStore
	if client != nil {
		locks = internalRedis.NewLockStore(client)
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		key := c.GetHeader(idempotencyHeader)
		if key == "" || client == nil {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		cacheKey := idempotencyPrefix + webapp.SessionFrom(ctx) + ":" + c.FullPath() + ":" + key

		cached, err := getCachedResponse(ctx, client, cacheKey)
		if err != nil && !errors.Is(err, redis.Nil) {
			// Redis error - proceed without idempotency.
			c.Next()
			return
		}
		if cached != nil {
			replay(c, cached)
			return
		}

		lock, err := locks.AcquireSubmitLock(ctx, cacheKey, idempotencyLockTTL)
		if err != nil {
			c.Next()
			return
		}
		if lock == nil {
			// Another request holds the key; it may have just finished.
			if cached, err := getCachedResponse(ctx, client, cacheKey); err == nil && cached != nil {
				replay(c, cached)
				return
			}
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "request with this idempotency key is in progress"})
			return
		}
		defer func() {
			_ = locks.ReleaseSubmitLock(context.WithoutCancel(ctx), lock)
		}()

		w := &responseWriter{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
		}
		c.Writer = w

		c.Next()

		// Server errors are not cached so the client may retry.
		if status := c.Writer.Status(); status >= 200 && status < 500 {
			_ = setCachedResponse(context.WithoutCancel(ctx), client, cacheKey, &cachedResponse{
				StatusCode:  status,
				Body:        w.body.Bytes(),
				ContentType: c.Writer.Header().Get("Content-Type"),
			})
		}
	}
}

func replay(c *gin.Context, cached *cachedResponse) {
	c.Header("Idempotent-Replayed", "true")
	c.Data(cached.StatusCode, cached.ContentType, cached.Body)
	c.Abort()
}

func getCachedResponse(ctx context.Context, client *redis.Client, key string) (*cachedResponse, error) {
	data, err := client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, err
	}

	var cached cachedResponse
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, err
	}
	return &cached, nil
}

func setCachedResponse(ctx context.Context, client *redis.Client, key string, response *cachedResponse) error {
	data, err := json.Marshal(response)
	if err != nil {
		return err
	}
	return client.Set(ctx, key, data, idempotencyTTL).Err()
}
