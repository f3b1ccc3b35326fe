package mock

import "github.com/fwojciec/scrape"

var _ scrape.Cache = (*Cache)(nil)

// Cache is a mock implementation of scrape.Cache.
type Cache struct {
	SaveFn func(kind string, v any) (string, error)
}

func (c *Cache) Save(kind string, v any) (string, error) {
	return c.SaveFn(kind, v)
}
