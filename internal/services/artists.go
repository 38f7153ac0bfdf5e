// artists.go
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
	"gorm.io/gorm"
)

// ArtistInput represents input for artist creation
type ArtistInput struct {
	Name      string      `json:"name" validate:"required,max=50"`
	Gender    string      `json:"gender" validate:"required,max=20"`
	Birthdate models.Date `json:"birthdate"`
}

// ArtistUpdateInput represents input for artist updates; only the name can change
type ArtistUpdateInput struct {
	Name string `json:"name" validate:"required,max=50"`
}

// ListArtists retrieves every artist
func ListArtists(ctx context.Context, db *gorm.DB) ([]models.Artist, error) {
	var artists []models.Artist
	if err := quiet(ctx, db).Order("artist_id").Find(&artists).Error; err != nil {
		return nil, err
	}
	return artists, nil
}

// GetArtist retrieves a single artist, or ErrNotFound
func GetArtist(ctx context.Context, db *gorm.DB, artistID uint64) (*models.Artist, error) {
	var artist models.Artist
	if err := quiet(ctx, db).Where("artist_id = ?", artistID).Take(&artist).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &artist, nil
}

// ListArtistsBySong retrieves the artists linked to a song
func ListArtistsBySong(ctx context.Context, db *gorm.DB, songID uint64) ([]models.Artist, error) {
	var artists []models.Artist
	err := quiet(ctx, db).
		Joins("JOIN songs_artists sa ON sa.artist_id = artists.artist_id").
		Where("sa.song_id = ?", songID).
		Order("artists.artist_id").
		Find(&artists).Error
	if err != nil {
		return nil, err
	}
	return artists, nil
}

// CreateArtist inserts a new artist
func CreateArtist(ctx context.Context, db *gorm.DB, input ArtistInput) (*models.Artist, error) {
	artist := models.Artist{
		ArtistName:      input.Name,
		ArtistGender:    input.Gender,
		ArtistBirthdate: input.Birthdate,
	}
	if err := db.WithContext(ctx).Create(&artist).Error; err != nil {
		return nil, err
	}
	return &artist, nil
}

// UpdateArtistName renames an artist. It reports false if no artist has artistID.
func UpdateArtistName(ctx context.Context, db *gorm.DB, artistID uint64, name string) (bool, error) {
	result := db.WithContext(ctx).
		Model(&models.Artist{}).
		Where("artist_id = ?", artistID).
		Update("artist_name", name)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// DeleteArtist deletes an artist and its song links. It reports false if no artist has artistID.
func DeleteArtist(ctx context.Context, db *gorm.DB, artistID uint64) (bool, error) {
	var deleted bool

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("artist_id = ?", artistID).Delete(&models.SongArtist{}).Error; err != nil {
			return err
		}

		result := tx.Where("artist_id = ?", artistID).Delete(&models.Artist{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected == 1
		return nil
	})

	return deleted, err
}
