package persistence

import "context"

// Scoped namespaces a shared backend so that each browser sees its own keys.
type Scoped struct {
	inner     Storage
	namespace string
}

// NewScoped prefixes every key of inner with namespace.
func NewScoped(inner Storage, namespace string) *Scoped {
	return &Scoped{inner: inner, namespace: namespace}
}

func (s *Scoped) key(k string) string {
	return s.namespace + ":" + k
}

func (s *Scoped) Get(ctx context.Context, key string) (string, bool, error) {
	return s.inner.Get(ctx, s.key(key))
}

func (s *Scoped) Set(ctx context.Context, key, value string) error {
	return s.inner.Set(ctx, s.key(key), value)
}

func (s *Scoped) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, s.key(key))
}
