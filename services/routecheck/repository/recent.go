package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/phantomdigital/truckcheck-sub001/internal/pkg/constants"
	"github.com/phantomdigital/truckcheck-sub001/internal/pkg/logger"
	"github.com/phantomdigital/truckcheck-sub001/internal/pkg/models"
)

// SaveRecentSearch pushes a destination onto the user's recent list and
// trims it to the configured cap. A repeat of the most recent destination
// (same geohash cell) is not duplicated.
func (r *RouteCheckRepo) SaveRecentSearch(ctx context.Context, userID uuid.UUID, search *models.RecentSearch) error {
	key := fmt.Sprintf(constants.KeyRecentSearches, userID.String())

	head, err := r.redis.LRange(ctx, key, 0, 0)
	if err == nil && len(head) > 0 {
		var prev models.RecentSearch
		if jsonErr := json.Unmarshal([]byte(head[0]), &prev); jsonErr == nil && prev.Geohash == search.Geohash {
			return nil
		}
	}

	data, err := json.Marshal(search)
	if err != nil {
		return fmt.Errorf("failed to marshal recent search: %w", err)
	}

	if err := r.redis.LPush(ctx, key, data); err != nil {
		return fmt.Errorf("failed to push recent search: %w", err)
	}

	limit := int64(r.cfg.Compliance.RecentSearchLimit)
	if err := r.redis.LTrim(ctx, key, 0, limit-1); err != nil {
		return fmt.Errorf("failed to trim recent searches: %w", err)
	}

	return nil
}

// ListRecentSearches returns the user's recent destinations, newest first
func (r *RouteCheckRepo) ListRecentSearches(ctx context.Context, userID uuid.UUID, limit int) ([]models.RecentSearch, error) {
	key := fmt.Sprintf(constants.KeyRecentSearches, userID.String())

	items, err := r.redis.LRange(ctx, key, 0, int64(limit)-1)
	if err != nil {
		return nil, fmt.Errorf("failed to read recent searches: %w", err)
	}

	searches := make([]models.RecentSearch, 0, len(items))
	for _, item := range items {
		var search models.RecentSearch
		if err := json.Unmarshal([]byte(item), &search); err != nil {
			// Skip entries that no longer parse rather than failing the list
			logger.Warn("Skipping malformed recent search entry",
				logger.String("user_id", userID.String()),
				logger.Err(err))
			continue
		}
		searches = append(searches, search)
	}

	return searches, nil
}
