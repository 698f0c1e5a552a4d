package analytics

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/hinaltilavat/portfolio/internal/metrics"
)

// Hasher turns client addresses into stable, salted identifiers. The salt
// lives only in memory, so hashes cannot be linked across restarts.
type Hasher struct {
	salt string
}

// NewHasher creates a Hasher with a fresh random salt.
func NewHasher() (*Hasher, error) {
	salt, err := RandomToken()
	if err != nil {
		return nil, err
	}
	return &Hasher{salt: salt}, nil
}

// Hash returns the first 16 hex characters of sha256(ip + salt).
func (h *Hasher) Hash(ip string) string {
	sum := sha256.Sum256([]byte(ip + h.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// RandomToken returns 32 random bytes hex encoded.
func RandomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

var untrackedPrefixes = []string{
	"/static/",
	"/admin/",
	"/favicon",
	"/privacy",
	"/healthz",
	"/metrics",
}

// Tracker records page visits in the background.
type Tracker struct {
	store  *Store
	hasher *Hasher
	wg     sync.WaitGroup
}

// NewTracker records visits to store, hashing client addresses with hasher.
func NewTracker(store *Store, hasher *Hasher) *Tracker {
	return &Tracker{store: store, hasher: hasher}
}

// Tracked reports whether a request path is counted as a page visit.
func Tracked(path string) bool {
	for _, p := range untrackedPrefixes {
		if strings.HasPrefix(path, p) {
			return false
		}
	}
	return true
}

// Middleware records visits for page paths. Requests carrying DNT: 1 are
// never recorded.
func (t *Tracker) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if !Tracked(path) || c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		v := Visit{
			HashedIP:  t.hasher.Hash(c.ClientIP()),
			UserAgent: c.GetHeader("User-Agent"),
			Path:      path,
		}
		t.wg.Add(1)
		go func() {
			defer t.wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if _, err := t.store.Record(ctx, v); err != nil {
				log.Error().Err(err).Str("path", v.Path).Msg("error recording visitor")
				return
			}
			metrics.VisitorRecorded()
		}()
		c.Next()
	}
}

// Wait blocks until in-flight recordings finish.
func (t *Tracker) Wait() {
	t.wg.Wait()
}

// RunCleanup deletes expired visits now and then every interval until ctx is
// done.
func (t *Tracker) RunCleanup(ctx context.Context, retention, interval time.Duration) {
	tick := time.NewTicker(interval)
	defer tick.Stop()
	for {
		if _, err := t.store.Cleanup(ctx, retention); err != nil {
			log.Error().Err(err).Msg("error cleaning up old visitor data")
		}
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
		}
	}
}
