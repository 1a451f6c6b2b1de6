package db

import (
	"context"
	"log"

	redis_v9 "github.com/redis/go-redis/v9"
)

var RedisClient *redis_v9.Client

func InitRedis(addr, password string, database int) {
	RedisClient = redis_v9.NewClient(&redis_v9.Options{
		Addr:     addr,
		Password: password,
		DB:       database,
	})
	if err := RedisClient.Ping(context.Background()).Err(); err != nil {
		log.Printf("Warning: error connecting to Redis: %s", err)
	} else {
		log.Println("Connected to Redis")
	}
}
