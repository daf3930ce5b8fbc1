package markov

import "sync"

// followCountCache memoises how often each token follows a context
//
// It is derived from the followers map and is never a source of truth: it is emptied whenever the
// model is retrained and filled lazily, one whole context at a time, by count. Contexts that were
// never seen in training are not stored.
type followCountCache struct {
	sync.RWMutex
	counts map[string]map[string]int
}

func newFollowCountCache() *followCountCache {
	return &followCountCache{counts: make(map[string]map[string]int)}
}

// reset drops every cached count
func (cache *followCountCache) reset() {
	cache.Lock()
	cache.counts = make(map[string]map[string]int)
	cache.Unlock()
}

// size returns the number of contexts currently cached
func (cache *followCountCache) size() int {
	cache.RLock()
	defer cache.RUnlock()
	return len(cache.counts)
}

// count returns how many times token followed the context, building the entry for the context on first use
func (cache *followCountCache) count(contextKey, token string, followers map[string][]string) int {
	cache.RLock()
	inner, ok := cache.counts[contextKey]
	cache.RUnlock()
	if ok {
		return inner[token]
	}

	follows := followers[contextKey]
	if len(follows) == 0 {
		return 0
	}
	cache.Lock()
	defer cache.Unlock()

	// another reader may have filled it in between the locks
	if inner, ok = cache.counts[contextKey]; !ok {
		inner = make(map[string]int)
		for _, follower := range follows {
			inner[follower]++
		}
		cache.counts[contextKey] = inner
	}
	return inner[token]
}
