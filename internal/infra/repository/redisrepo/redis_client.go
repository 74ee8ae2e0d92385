package redisrepo

import (
	"github.com/redis/go-redis/v9"
)

type Option func(*redis.Options)

func WithPassword(password string) Option {
	return func(o *redis.Options) {
		o.Password = password
	}
}

func WithDB(db int) Option {
	return func(o *redis.Options) {
		o.DB = db
	}
}

func NewRedisClient(address string, options ...Option) *redis.Client {
	opts := &redis.Options{
		Addr: address,
	}

	for _, option := range options {
		option(opts)
	}

	return redis.NewClient(opts)
}
