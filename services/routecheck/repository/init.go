package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/phantomdigital/truckcheck-sub001/internal/pkg/database"
	"github.com/phantomdigital/truckcheck-sub001/internal/pkg/models"
)

// RouteCheckRepo persists calculation history and depots in postgres and
// recent searches in redis
type RouteCheckRepo struct {
	cfg   *models.Config
	db    *sqlx.DB
	redis *database.RedisClient
}

// NewRouteCheckRepo creates a new route compliance repository
func NewRouteCheckRepo(cfg *models.Config, db *sqlx.DB, redis *database.RedisClient) *RouteCheckRepo {
	return &RouteCheckRepo{
		cfg:   cfg,
		db:    db,
		redis: redis,
	}
}
