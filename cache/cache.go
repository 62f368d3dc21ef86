// Package cache keeps parsed weight documents around so every game and
// autoplay worker shares one copy per file.
package cache

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/domino14/octi/config"
)

type cache struct {
	sync.Mutex
	objects map[string]any
}

type LoadFunc func(cfg *config.Config, key string) (any, error)

var global = &cache{objects: make(map[string]any)}

func (c *cache) get(cfg *config.Config, key string, fn LoadFunc) (any, error) {
	c.Lock()
	defer c.Unlock()
	if obj, ok := c.objects[key]; ok {
		log.Debug().Str("key", key).Msg("getting obj from cache")
		return obj, nil
	}
	log.Debug().Str("key", key).Msg("loading into cache")
	obj, err := fn(cfg, key)
	if err != nil {
		return nil, err
	}
	c.objects[key] = obj
	return obj, nil
}

// Load returns the object stored under key, calling fn to build it the
// first time. Failed loads are not cached.
func Load(cfg *config.Config, key string, fn LoadFunc) (any, error) {
	return global.get(cfg, key, fn)
}

// Reset drops every cached object.
func Reset() {
	global.Lock()
	defer global.Unlock()
	global.objects = make(map[string]any)
}
