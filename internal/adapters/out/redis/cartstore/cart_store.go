// Package cartstore keeps in-progress carts in Redis, one JSON document per
// consumer. Carts have a TTL so abandoned ones expire on their own.
package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"localmarket/internal/core/domain/model/cart"
	"localmarket/internal/core/domain/model/kernel"

	"github.com/redis/go-redis/v9"
)

const (
	cartKeyPrefix = "cart:"
	cartTTL       = 7 * 24 * time.Hour
)

// cartDocument is the stored JSON shape of a cart.
type cartDocument struct {
	Items []itemDocument `json:"items"`
}

type itemDocument struct {
	ProductID string  `json:"product_id"`
	Quantity  float64 `json:"quantity"`
}

// RedisCartStore implements CartStore on a Redis client.
type RedisCartStore struct {
	client *redis.Client
}

// NewRedisCartStore creates a RedisCartStore.
func NewRedisCartStore(client *redis.Client) *RedisCartStore {
	return &RedisCartStore{client: client}
}

// Get retrieves the cart of the owner. An absent key yields an empty cart.
func (s *RedisCartStore) Get(ctx context.Context, ownerID kernel.UUID) (*cart.Cart, error) {
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}

	raw, err := s.client.Get(ctx, cartKeyPrefix+ownerID.String()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return cart.NewCart(ownerID)
		}
		return nil, err
	}

	var doc cartDocument
	if err = json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	items := make([]cart.CartItem, 0, len(doc.Items))
	for _, itemDoc := range doc.Items {
		productID, idErr := kernel.UUIDFromString(itemDoc.ProductID)
		if idErr != nil {
			return nil, idErr
		}
		item, itemErr := cart.NewCartItem(productID, itemDoc.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return cart.RestoreCart(ownerID, items)
}

// Put stores the cart under its owner key, replacing any previous content.
func (s *RedisCartStore) Put(ctx context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	items := aggregate.Items()
	doc := cartDocument{Items: make([]itemDocument, 0, len(items))}
	for _, item := range items {
		doc.Items = append(doc.Items, itemDocument{
			ProductID: item.ProductID().String(),
			Quantity:  item.Quantity(),
		})
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, cartKeyPrefix+aggregate.OwnerID().String(), raw, cartTTL).Err()
}

// Clear removes the cart of the owner. Clearing an absent cart is a no-op.
func (s *RedisCartStore) Clear(ctx context.Context, ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	return s.client.Del(ctx, cartKeyPrefix+ownerID.String()).Err()
}
