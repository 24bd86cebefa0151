package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/spec-kit/playlist-service/internal/config"
)

const (
	tokenRedisKey = "spotify:access_token"

	// expiryMargin is shaved off the upstream lifetime so a token is never
	// presented moments before it dies in flight.
	expiryMargin = 30 * time.Second
)

// TokenProvider supplies a bearer credential for catalog calls.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// TokenCache memoizes the client-credentials bearer token for the catalog.
// The in-process slot is mutex-guarded and refreshes are single-flighted so
// concurrent expiry triggers exactly one exchange. When a Redis client is
// supplied the token is also shared across replicas.
type TokenCache struct {
	clientID     string
	clientSecret string
	tokenURL     string
	httpClient   *http.Client
	redis        *redis.Client
	logger       *zap.Logger

	mu        sync.Mutex
	token     string
	expiresAt time.Time

	group singleflight.Group
	now   func() time.Time
}

// NewTokenCache builds the cache. redisClient may be nil.
func NewTokenCache(cfg config.SpotifyConfig, httpClient *http.Client, redisClient *redis.Client, logger *zap.Logger) *TokenCache {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout()}
	}
	return &TokenCache{
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		tokenURL:     cfg.TokenURL,
		httpClient:   httpClient,
		redis:        redisClient,
		logger:       logger,
		now:          time.Now,
	}
}

// Token returns a valid bearer token, refreshing only when the cached one has
// expired. A cache hit performs no I/O.
func (c *TokenCache) Token(ctx context.Context) (string, error) {
	if token, ok := c.cached(); ok {
		return token, nil
	}

	result, err, _ := c.group.Do(tokenRedisKey, func() (interface{}, error) {
		return c.refresh(ctx)
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

func (c *TokenCache) cached() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.token != "" && c.now().Before(c.expiresAt) {
		return c.token, true
	}
	return "", false
}

func (c *TokenCache) store(token string, lifetime time.Duration) {
	c.mu.Lock()
	c.token = token
	c.expiresAt = c.now().Add(lifetime)
	c.mu.Unlock()
}

func (c *TokenCache) refresh(ctx context.Context) (string, error) {
	// A waiter queued behind a completed refresh sees the fresh slot here.
	if token, ok := c.cached(); ok {
		return token, nil
	}

	if token, lifetime, ok := c.fromRedis(ctx); ok {
		c.store(token, lifetime)
		return token, nil
	}

	token, lifetime, err := c.exchange(ctx)
	if err != nil {
		return "", err
	}

	c.store(token, lifetime)
	c.toRedis(ctx, token, lifetime)
	return token, nil
}

func (c *TokenCache) fromRedis(ctx context.Context) (string, time.Duration, bool) {
	if c.redis == nil {
		return "", 0, false
	}

	token, err := c.redis.Get(ctx, tokenRedisKey).Result()
	if err != nil || token == "" {
		return "", 0, false
	}
	ttl, err := c.redis.TTL(ctx, tokenRedisKey).Result()
	if err != nil || ttl <= 0 {
		return "", 0, false
	}
	return token, ttl, true
}

func (c *TokenCache) toRedis(ctx context.Context, token string, lifetime time.Duration) {
	if c.redis == nil {
		return
	}
	if err := c.redis.Set(ctx, tokenRedisKey, token, lifetime).Err(); err != nil {
		c.logger.Warn("unable to share spotify token via redis", zap.Error(err))
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// exchange performs the client-credentials handshake against the identity
// endpoint using HTTP Basic auth of id:secret.
func (c *TokenCache) exchange(ctx context.Context) (string, time.Duration, error) {
	form := url.Values{"grant_type": {"client_credentials"}}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", 0, fmt.Errorf("build token request: %w", err)
	}
	req.SetBasicAuth(c.clientID, c.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("token exchange: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", 0, fmt.Errorf("token endpoint returned status %d", resp.StatusCode)
	}

	var payload tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", 0, fmt.Errorf("decode token response: %w", err)
	}
	if payload.AccessToken == "" {
		return "", 0, fmt.Errorf("token endpoint returned empty access token")
	}

	lifetime := time.Duration(payload.ExpiresIn) * time.Second
	if lifetime > expiryMargin {
		lifetime -= expiryMargin
	}

	c.logger.Debug("spotify token refreshed", zap.Duration("lifetime", lifetime))
	return payload.AccessToken, lifetime, nil
}
