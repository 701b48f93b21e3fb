package memory

import (
	"time"

	"agentic-ai-be/pkg/llm"

	"github.com/patrickmn/go-cache"
)

// ContextRepository keeps recent conversation histories in memory, keyed by
// conversation id, so a chat turn doesn't reread the whole session from the
// store. Entries expire on their own; a miss falls back to the store.
// Histories are copied on both Save and Get: concurrent turns on one session
// must never share a backing array with the cache or with each other.
type ContextRepository struct {
	cache *cache.Cache
}

func NewContextRepository() *ContextRepository {
	// Default expiration of 1 hour, purge of expired items every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &ContextRepository{cache: c}
}

func (r *ContextRepository) Save(contextId string, history []llm.Message) {
	r.cache.Set(contextId, append([]llm.Message(nil), history...), cache.DefaultExpiration)
}

func (r *ContextRepository) Get(contextId string) ([]llm.Message, bool) {
	if x, found := r.cache.Get(contextId); found {
		return append([]llm.Message(nil), x.([]llm.Message)...), true
	}
	return nil, false
}

func (r *ContextRepository) Delete(contextId string) {
	r.cache.Delete(contextId)
}
