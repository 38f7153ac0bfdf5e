// associations.go
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

	"github.com/localnerve/songcatalog/internal/logger"
	"github.com/localnerve/songcatalog/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LinkManager checks, adds and removes the links of one song relation.
// Each operation is a single statement. Callers check Exists before Add or Remove,
// but the pair is not atomic; the join table's primary key keeps links unique,
// so a lost race shows up as Add or Remove reporting false.
type LinkManager[T models.SongLink] struct {
	db      *gorm.DB
	log     *logger.Logger
	newLink func(songID, relatedID uint64) T
}

// NewSongArtistLinks manages the songs_artists relation
func NewSongArtistLinks(db *gorm.DB, log *logger.Logger) *LinkManager[models.SongArtist] {
	return &LinkManager[models.SongArtist]{
		db:  db,
		log: log.With("relation", models.SongArtist{}.TableName()),
		newLink: func(songID, artistID uint64) models.SongArtist {
			return models.SongArtist{SongID: songID, ArtistID: artistID}
		},
	}
}

// NewSongGenreLinks manages the songs_genres relation
func NewSongGenreLinks(db *gorm.DB, log *logger.Logger) *LinkManager[models.SongGenre] {
	return &LinkManager[models.SongGenre]{
		db:  db,
		log: log.With("relation", models.SongGenre{}.TableName()),
		newLink: func(songID, genreID uint64) models.SongGenre {
			return models.SongGenre{SongID: songID, GenreID: genreID}
		},
	}
}

// pair is the where condition selecting exactly one link
func (m *LinkManager[T]) pair(songID, relatedID uint64) map[string]interface{} {
	var link T
	return map[string]interface{}{
		"song_id":            songID,
		link.RelatedColumn(): relatedID,
	}
}

// Exists reports whether songID is linked to relatedID
func (m *LinkManager[T]) Exists(ctx context.Context, songID, relatedID uint64) (bool, error) {
	var link T
	var count int64
	err := quiet(ctx, m.db).
		Table(link.TableName()).
		Where(m.pair(songID, relatedID)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Add links songID to relatedID. It reports true only if exactly one row was inserted;
// an insert that hits an existing link does nothing and reports false.
func (m *LinkManager[T]) Add(ctx context.Context, songID, relatedID uint64) (bool, error) {
	link := m.newLink(songID, relatedID)
	result := m.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&link)
	if result.Error != nil {
		return false, result.Error
	}

	if result.RowsAffected != 1 {
		m.log.Debug("link already present", "songID", songID, "relatedID", relatedID)
		return false, nil
	}

	m.log.Debug("link added", "songID", songID, "relatedID", relatedID)
	return true, nil
}

// Remove unlinks songID from relatedID. It reports true only if exactly one row was deleted.
func (m *LinkManager[T]) Remove(ctx context.Context, songID, relatedID uint64) (bool, error) {
	var link T
	result := m.db.WithContext(ctx).
		Where(m.pair(songID, relatedID)).
		Delete(&link)
	if result.Error != nil {
		return false, result.Error
	}

	if result.RowsAffected != 1 {
		m.log.Debug("no link to remove", "songID", songID, "relatedID", relatedID)
		return false, nil
	}

	m.log.Debug("link removed", "songID", songID, "relatedID", relatedID)
	return true, nil
}
