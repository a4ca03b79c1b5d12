package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"breadcrumbs_echo/internal/models"
)

// ErrNodeNotFound is returned when no published node matches
var ErrNodeNotFound = errors.New("node not found")

const (
	nodeCacheTTL     = 10 * time.Minute
	articlesCacheKey = "articles:list"
)

// NodeStore loads and saves content nodes
type NodeStore interface {
	FindNode(ctx context.Context, id uint) (*models.Node, error)
	ListArticles(ctx context.Context, limit int) ([]models.Node, error)
	CreateNode(ctx context.Context, node *models.Node) error
}

// GormNodeStore reads nodes from the database
type GormNodeStore struct {
	db *gorm.DB
}

// NewGormNodeStore creates a GormNodeStore
func NewGormNodeStore(db *gorm.DB) *GormNodeStore {
	return &GormNodeStore{db: db}
}

// FindNode returns a published node by ID
func (s *GormNodeStore) FindNode(ctx context.Context, id uint) (*models.Node, error) {
	var node models.Node
	err := s.db.WithContext(ctx).Where("published = ?", true).First(&node, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNodeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch node %d: %w", id, err)
	}
	return &node, nil
}

// ListArticles returns the newest published articles
func (s *GormNodeStore) ListArticles(ctx context.Context, limit int) ([]models.Node, error) {
	var nodes []models.Node
	err := s.db.WithContext(ctx).
		Where("type = ? AND published = ?", models.NodeTypeArticle, true).
		Order("created_at DESC").
		Limit(limit).
		Find(&nodes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	return nodes, nil
}

// CreateNode inserts a new node
func (s *GormNodeStore) CreateNode(ctx context.Context, node *models.Node) error {
	if err := s.db.WithContext(ctx).Create(node).Error; err != nil {
		return fmt.Errorf("failed to create node: %w", err)
	}
	return nil
}

// CachedNodeStore caches reads from another NodeStore in Redis
type CachedNodeStore struct {
	next  NodeStore
	cache *RedisCache
}

// NewCachedNodeStore wraps next with a Redis cache
func NewCachedNodeStore(next NodeStore, cache *RedisCache) *CachedNodeStore {
	return &CachedNodeStore{next: next, cache: cache}
}

func nodeCacheKey(id uint) string {
	return fmt.Sprintf("node:%d", id)
}

func articlesCacheKeyFor(limit int) string {
	return fmt.Sprintf("%s:%d", articlesCacheKey, limit)
}

// FindNode returns a node from the cache or the underlying store
func (s *CachedNodeStore) FindNode(ctx context.Context, id uint) (*models.Node, error) {
	return GetOrSet(s.cache, ctx, nodeCacheKey(id), nodeCacheTTL, func() (*models.Node, error) {
		return s.next.FindNode(ctx, id)
	})
}

// ListArticles returns the article list from the cache or the underlying store
func (s *CachedNodeStore) ListArticles(ctx context.Context, limit int) ([]models.Node, error) {
	return GetOrSet(s.cache, ctx, articlesCacheKeyFor(limit), nodeCacheTTL, func() ([]models.Node, error) {
		return s.next.ListArticles(ctx, limit)
	})
}

// CreateNode stores the node and drops cached article lists
func (s *CachedNodeStore) CreateNode(ctx context.Context, node *models.Node) error {
	if err := s.next.CreateNode(ctx, node); err != nil {
		return err
	}
	if node.Type == models.NodeTypeArticle {
		if err := s.invalidateArticles(ctx); err != nil {
			log.Printf("Failed to invalidate article cache: %v", err)
		}
	}
	return nil
}

func (s *CachedNodeStore) invalidateArticles(ctx context.Context) error {
	keys, err := s.cache.client.Keys(ctx, s.cache.prefix+articlesCacheKey+":*").Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return s.cache.client.Del(ctx, keys...).Err()
}
