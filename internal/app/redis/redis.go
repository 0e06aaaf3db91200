package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"lexforge/internal/app/config"
)

const jwtPrefix = "jwt."

// Client обертка над go-redis для черного списка токенов
type Client struct {
	cfg    config.RedisConfig
	client *redis.Client
}

func New(ctx context.Context, cfg config.RedisConfig) (*Client, error) {
	client := &Client{cfg: cfg}

	redisClient := redis.NewClient(&redis.Options{
		Password:    cfg.Password,
		Username:    cfg.User,
		Addr:        cfg.Host + ":" + strconv.Itoa(cfg.Port),
		DB:          0,
		DialTimeout: cfg.DialTimeout,
		ReadTimeout: cfg.ReadTimeout,
	})
	client.client = redisClient

	if _, err := redisClient.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("cant ping redis: %w", err)
	}
	return client, nil
}

// NewFromClient для уже созданного клиента
func NewFromClient(client *redis.Client) *Client {
	return &Client{client: client}
}

func getJWTKey(token string) string {
	return jwtPrefix + token
}

// WriteJWTToBlacklist помещает токен в черный список до истечения его срока
func (c *Client) WriteJWTToBlacklist(ctx context.Context, jwtStr string, jwtTTL time.Duration) error {
	return c.client.Set(ctx, getJWTKey(jwtStr), true, jwtTTL).Err()
}

// CheckJWTInBlacklist возвращает nil, если токен в черном списке, и redis.Nil, если нет
func (c *Client) CheckJWTInBlacklist(ctx context.Context, jwtStr string) error {
	return c.client.Get(ctx, getJWTKey(jwtStr)).Err()
}

// IsBlacklisted true, если токен отозван
func (c *Client) IsBlacklisted(ctx context.Context, jwtStr string) (bool, error) {
	err := c.CheckJWTInBlacklist(ctx, jwtStr)
	switch {
	case err == nil:
		return true, nil
	case err == redis.Nil:
		return false, nil
	}
	return false, err
}

func (c *Client) Close() error {
	return c.client.Close()
}
