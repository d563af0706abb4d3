package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"fuelform/internal/webapp"
)

const containerPrefix = "webapp:container:"

// ContainerStore keeps per-session append-only containers as Redis lists.
type ContainerStore struct {
	client *redis.Client
}

// NewContainerStore creates a new ContainerStore.
func NewContainerStore(client *redis.Client) *ContainerStore {
	return &ContainerStore{client: client}
}

// Container returns the container id of session.
func (s *ContainerStore) Container(session, id string) webapp.StoredContainer {
	return &Container{
		client: s.client,
		key:    fmt.Sprintf("%s%s:%s", containerPrefix, session, id),
	}
}

// Container is a webapp.Container stored in one Redis list.
type Container struct {
	client *redis.Client
	key    string
}

// Append pushes text to the tail of the list.
func (c *Container) Append(ctx context.Context, text string) error {
	return c.client.RPush(ctx, c.key, text).Err()
}

// Items returns the whole container, oldest entry first.
func (c *Container) Items(ctx context.Context) ([]string, error) {
	return c.client.LRange(ctx, c.key, 0, -1).Result()
}
