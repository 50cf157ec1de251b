package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis every repository is written against
type Client interface {
	redis.UniversalClient
}

// Nil is returned by GET-style commands for a missing key
const Nil = redis.Nil
