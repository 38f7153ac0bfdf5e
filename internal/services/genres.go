// genres.go
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

// GenreInput represents input for genre creation and renaming
type GenreInput struct {
	Name string `json:"name" validate:"required,max=50"`
}

// ListGenres retrieves every genre
func ListGenres(ctx context.Context, db *gorm.DB) ([]models.Genre, error) {
	var genres []models.Genre
	if err := quiet(ctx, db).Order("genre_id").Find(&genres).Error; err != nil {
		return nil, err
	}
	return genres, nil
}

// GetGenre retrieves a single genre, or ErrNotFound
func GetGenre(ctx context.Context, db *gorm.DB, genreID uint64) (*models.Genre, error) {
	return findGenre(ctx, db, "genre_id = ?", genreID)
}

// GetGenreByName retrieves a genre by its unique name, or ErrNotFound
func GetGenreByName(ctx context.Context, db *gorm.DB, name string) (*models.Genre, error) {
	return findGenre(ctx, db, "genre_name = ?", name)
}

func findGenre(ctx context.Context, db *gorm.DB, query string, arg interface{}) (*models.Genre, error) {
	var genre models.Genre
	if err := quiet(ctx, db).Where(query, arg).Take(&genre).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &genre, nil
}

// ListGenresBySong retrieves the genres linked to a song
func ListGenresBySong(ctx context.Context, db *gorm.DB, songID uint64) ([]models.Genre, error) {
	var genres []models.Genre
	err := quiet(ctx, db).
		Joins("JOIN songs_genres sg ON sg.genre_id = genres.genre_id").
		Where("sg.song_id = ?", songID).
		Order("genres.genre_id").
		Find(&genres).Error
	if err != nil {
		return nil, err
	}
	return genres, nil
}

// CreateGenres inserts one or more genres in a single transaction.
// Nothing is inserted if any name is already taken or repeated in inputs.
func CreateGenres(ctx context.Context, db *gorm.DB, inputs []GenreInput) ([]models.Genre, error) {
	genres := make([]models.Genre, 0, len(inputs))

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		names := make(map[string]struct{}, len(inputs))
		for _, input := range inputs {
			if _, ok := names[input.Name]; ok {
				return ErrDuplicateName
			}
			names[input.Name] = struct{}{}

			if _, err := GetGenreByName(ctx, tx, input.Name); err == nil {
				return ErrDuplicateName
			} else if !errors.Is(err, ErrNotFound) {
				return err
			}

			genre := models.Genre{GenreName: input.Name}
			if err := tx.Create(&genre).Error; err != nil {
				return duplicateName(err)
			}
			genres = append(genres, genre)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return genres, nil
}

// UpdateGenreName renames a genre. It reports false if no genre has genreID,
// and returns ErrDuplicateName if another genre already uses name.
func UpdateGenreName(ctx context.Context, db *gorm.DB, genreID uint64, name string) (bool, error) {
	existing, err := GetGenreByName(ctx, db, name)
	if err == nil && existing.GenreID != genreID {
		return false, ErrDuplicateName
	}
	if err != nil && !errors.Is(err, ErrNotFound) {
		return false, err
	}

	result := db.WithContext(ctx).
		Model(&models.Genre{}).
		Where("genre_id = ?", genreID).
		Update("genre_name", name)
	if result.Error != nil {
		return false, duplicateName(result.Error)
	}
	return result.RowsAffected == 1, nil
}

// DeleteGenre deletes a genre and its song links. It reports false if no genre has genreID.
func DeleteGenre(ctx context.Context, db *gorm.DB, genreID uint64) (bool, error) {
	var deleted bool

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("genre_id = ?", genreID).Delete(&models.SongGenre{}).Error; err != nil {
			return err
		}

		result := tx.Where("genre_id = ?", genreID).Delete(&models.Genre{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected == 1
		return nil
	})

	return deleted, err
}

// duplicateName maps a unique index violation on genre_name, from a write
// that raced past the name check, to ErrDuplicateName
func duplicateName(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateName
	}
	return err
}
