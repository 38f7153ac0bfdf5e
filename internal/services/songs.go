// songs.go
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

	"github.com/localnerve/songcatalog/internal/models"
	"gorm.io/gorm"
)

// SongInput represents input for song creation
type SongInput struct {
	Title       string      `json:"title" validate:"required,max=50"`
	Duration    int         `json:"duration" validate:"required,min=20,max=1000"`
	ReleaseDate models.Date `json:"releaseDate"`
}

// SongUpdateInput represents input for song updates; only the release date can change
type SongUpdateInput struct {
	ReleaseDate models.Date `json:"releaseDate"`
}

// ListSongs retrieves every song row
func ListSongs(ctx context.Context, db *gorm.DB) ([]models.Song, error) {
	var songs []models.Song
	if err := quiet(ctx, db).Order("song_id").Find(&songs).Error; err != nil {
		return nil, err
	}
	return songs, nil
}

// ListSongsByArtist retrieves the songs linked to an artist
func ListSongsByArtist(ctx context.Context, db *gorm.DB, artistID uint64) ([]models.Song, error) {
	var songs []models.Song
	err := quiet(ctx, db).
		Joins("JOIN songs_artists sa ON sa.song_id = songs.song_id").
		Where("sa.artist_id = ?", artistID).
		Order("songs.song_id").
		Find(&songs).Error
	if err != nil {
		return nil, err
	}
	return songs, nil
}

// ListSongsByGenre retrieves the songs linked to a genre
func ListSongsByGenre(ctx context.Context, db *gorm.DB, genreID uint64) ([]models.Song, error) {
	var songs []models.Song
	err := quiet(ctx, db).
		Joins("JOIN songs_genres sg ON sg.song_id = songs.song_id").
		Where("sg.genre_id = ?", genreID).
		Order("songs.song_id").
		Find(&songs).Error
	if err != nil {
		return nil, err
	}
	return songs, nil
}

// CreateSong inserts a new song
func CreateSong(ctx context.Context, db *gorm.DB, input SongInput) (*models.Song, error) {
	song := models.Song{
		SongTitle:       input.Title,
		SongDuration:    input.Duration,
		SongReleaseDate: input.ReleaseDate,
	}
	if err := db.WithContext(ctx).Create(&song).Error; err != nil {
		return nil, err
	}
	return &song, nil
}

// UpdateSongReleaseDate changes a song's release date. It reports false if no song has songID.
func UpdateSongReleaseDate(ctx context.Context, db *gorm.DB, songID uint64, releaseDate models.Date) (bool, error) {
	result := db.WithContext(ctx).
		Model(&models.Song{}).
		Where("song_id = ?", songID).
		Update("song_release_date", releaseDate)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// DeleteSong deletes a song along with its links and awards.
// It reports false if no song has songID.
func DeleteSong(ctx context.Context, db *gorm.DB, songID uint64) (bool, error) {
	var deleted bool

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("song_id = ?", songID).Delete(&models.SongArtist{}).Error; err != nil {
			return err
		}
		if err := tx.Where("song_id = ?", songID).Delete(&models.SongGenre{}).Error; err != nil {
			return err
		}
		if err := tx.Where("song_id = ?", songID).Delete(&models.Award{}).Error; err != nil {
			return err
		}

		result := tx.Where("song_id = ?", songID).Delete(&models.Song{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected == 1
		return nil
	})

	return deleted, err
}
