// awards.go
//
// A song, artist, genre and award catalog service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of songcatalog.
// songcatalog is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// songcatalog is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with songcatalog.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package services

import (
	"context"
	"errors"

	"github.com/localnerve/songcatalog/internal/models"
	"github.com/localnerve/songcatalog/internal/types"
	"gorm.io/gorm"
)

// AwardInput represents input for award creation
type AwardInput struct {
	Name   string   `json:"name" validate:"required,max=50"`
	Year   int      `json:"year" validate:"required,min=1980,max=2050"`
	SongID types.ID `json:"songId" validate:"required"`
}

// AwardUpdateInput represents input for award updates
type AwardUpdateInput struct {
	Name string `json:"name" validate:"required,max=50"`
	Year int    `json:"year" validate:"required,min=1980,max=2050"`
}

// ListAwards retrieves every award
func ListAwards(ctx context.Context, db *gorm.DB) ([]models.Award, error) {
	var awards []models.Award
	if err := quiet(ctx, db).Order("award_id").Find(&awards).Error; err != nil {
		return nil, err
	}
	return awards, nil
}

// GetAward retrieves a single award, or ErrNotFound
func GetAward(ctx context.Context, db *gorm.DB, awardID uint64) (*models.Award, error) {
	var award models.Award
	if err := quiet(ctx, db).Where("award_id = ?", awardID).Take(&award).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &award, nil
}

// ListAwardsBySong retrieves the awards of a song
func ListAwardsBySong(ctx context.Context, db *gorm.DB, songID uint64) ([]models.Award, error) {
	var awards []models.Award
	if err := quiet(ctx, db).Where("song_id = ?", songID).Order("award_id").Find(&awards).Error; err != nil {
		return nil, err
	}
	return awards, nil
}

// CreateAward inserts a new award for an existing song. It returns ErrNotFound if the song does not exist.
func CreateAward(ctx context.Context, db *gorm.DB, input AwardInput) (*models.Award, error) {
	songID := input.SongID.Uint64()

	_, found, err := GetSongScalarOnly(ctx, db, songID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}

	award := models.Award{
		AwardName: input.Name,
		AwardYear: input.Year,
		SongID:    songID,
	}
	if err := db.WithContext(ctx).Create(&award).Error; err != nil {
		return nil, err
	}
	return &award, nil
}

// UpdateAward changes an award's name and year. It reports false if no award has awardID.
func UpdateAward(ctx context.Context, db *gorm.DB, awardID uint64, input AwardUpdateInput) (bool, error) {
	result := db.WithContext(ctx).
		Model(&models.Award{}).
		Where("award_id = ?", awardID).
		Updates(map[string]interface{}{
			"award_name": input.Name,
			"award_year": input.Year,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// DeleteAward deletes an award. It reports false if no award has awardID.
func DeleteAward(ctx context.Context, db *gorm.DB, awardID uint64) (bool, error) {
	result := db.WithContext(ctx).Where("award_id = ?", awardID).Delete(&models.Award{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}
