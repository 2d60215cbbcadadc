package basic

import (
	"time"
)

type Cache interface {
	Get(key string) (val interface{}, err error)
	Set(key string, val interface{}, ttl time.Duration) (err error)
	Del(keys ...string) (n int)
}
