package token

import (
	"fmt"
	"time"

	"github.com/go-redis/redis"
)

//goland:noinspection GoExportedFuncWithUnexportedType
func NewRepository(client *redis.Client) *redisRepository {
	return &redisRepository{client}
}

// redisRepository tracks live refresh-token ids per user so tokens can be
// revoked on sign-out and rotated on refresh.
type redisRepository struct {
	client *redis.Client
}

func (r redisRepository) SetRefreshToken(userId uint, tokenId string, expiresIn time.Duration) error {
	key := refreshTokenKey(userId, tokenId)
	if err := r.client.Set(key, "0", expiresIn).Err(); err != nil {
		return fmt.Errorf("failed to store refresh token: %v", err)
	}
	return nil
}

func (r redisRepository) DeleteRefreshToken(userId uint, previousTokenId string) error {
	key := refreshTokenKey(userId, previousTokenId)
	deleted, err := r.client.Del(key).Result()
	if err != nil {
		return fmt.Errorf("failed to delete refresh token: %v", err)
	}
	if deleted < 1 {
		return fmt.Errorf("refresh token not found for user %d", userId)
	}
	return nil
}

func (r redisRepository) DeleteRefreshTokens(userId uint) error {
	pattern := fmt.Sprintf("refreshToken:%d:*", userId)
	keys, err := r.client.Keys(pattern).Result()
	if err != nil {
		return fmt.Errorf("failed to list refresh tokens: %v", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := r.client.Del(keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete refresh tokens: %v", err)
	}
	return nil
}

func refreshTokenKey(userId uint, tokenId string) string {
	return fmt.Sprintf("refreshToken:%d:%s", userId, tokenId)
}
