package redis

import (
	"context"
	"fmt"
	"movieclub_api/configs"
	"time"

	"github.com/redis/go-redis/v9"
)

var redisClient *redis.Client

func ConnectRedis() {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     configs.GetConfigs().RedisUrl,
		Password: configs.GetConfigs().RedisPassword,
		DB:       0,
	})
	ctx := context.Background()
	pong, err := redisClient.Ping(ctx).Result()
	fmt.Println("====> [[MovieClub Redis Client:", pong, err, "]]")
}

func IsConnected() bool {
	return redisClient != nil
}

func GetRedis(ctx context.Context, key string) (string, error) {
	val, err := redisClient.Get(ctx, key).Result()
	return val, err
}

func SetRedis(ctx context.Context, key string, value interface{}, duration time.Duration) error {
	err := redisClient.Set(ctx, key, value, duration).Err()
	return err
}
