package services

import (
	"errors"

	"github.com/renohub/backend/internal/models"
	"github.com/renohub/backend/pkg/logger"
	"gorm.io/gorm"
)

// FetchProfiles loads user rows for a set of ids with a two-tier
// strategy: one batch query first, then per-item lookups only for ids the
// batch did not return. If the batch query itself fails, every id goes
// through the per-item path. A profile that does not exist is a normal
// miss and is simply absent from the result; any other per-item failure
// aborts the whole fetch.
func FetchProfiles(db *gorm.DB, ids []uint) (map[uint]models.User, error) {
	result := make(map[uint]models.User, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	remaining := ids

	var batch []models.User
	if err := db.Where("id IN ?", ids).Find(&batch).Error; err != nil {
		logger.Warn().Err(err).Int("ids", len(ids)).Msg("batch profile fetch failed, falling back to per-item lookups")
	} else {
		for _, u := range batch {
			result[u.ID] = u
		}
		remaining = make([]uint, 0, len(ids))
		for _, id := range ids {
			if _, ok := result[id]; !ok {
				remaining = append(remaining, id)
			}
		}
	}

	for _, id := range remaining {
		var u models.User
		if err := db.First(&u, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}
		result[u.ID] = u
	}

	return result, nil
}
