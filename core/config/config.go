package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// cache maps a config struct type to its loaded value.
	cache sync.Map // reflect.Type -> pointer to loaded struct

	dotenvOnce sync.Once
)

// Load populates cfg from environment variables. The first load of a
// given type parses the environment; subsequent loads of the same type
// return the cached value. A .env file in the working directory, if
// any, is loaded once before the first parse.
func Load[T any](cfg *T) error {
	dotenvOnce.Do(func() {
		// Missing .env files are fine; real values come from the
		// process environment.
		_ = godotenv.Load()
	})

	t := reflect.TypeOf(cfg).Elem()
	if v, ok := cache.Load(t); ok {
		*cfg = *(v.(*T))
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", t, err)
	}

	loaded := *cfg
	v, _ := cache.LoadOrStore(t, &loaded)
	*cfg = *(v.(*T))
	return nil
}

// MustLoad is Load that panics on failure, useful at startup.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
