// song_details.go
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
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/hints"
)

// songDetailsColumns is the flattened select list of the song details join.
// Column names are prefixed per table, so no aliasing is needed to keep them apart.
const songDetailsColumns = "s.song_id, s.song_title, s.song_duration, s.song_release_date, " +
	"g.genre_id, g.genre_name, " +
	"a.artist_id, a.artist_name, a.artist_gender, a.artist_birthdate, " +
	"aw.award_id, aw.award_name, aw.award_year"

// quiet returns a session bound to ctx that does not log, for lookups where
// "record not found" is an expected outcome.
func quiet(ctx context.Context, db *gorm.DB) *gorm.DB {
	return db.WithContext(ctx).Session(&gorm.Session{Logger: db.Logger.LogMode(gormlogger.Silent)})
}

// GetFullSong retrieves a song with all of its genres, artists and awards in one join query.
// found is false if there is no song with songID. Storage errors are returned as is.
func GetFullSong(ctx context.Context, db *gorm.DB, songID uint64) (*models.Song, bool, error) {
	var rows []models.SongDetailsRow
	err := quiet(ctx, db).
		Clauses(hints.Comment("select", "song_details")).
		Table("songs AS s").
		Select(songDetailsColumns).
		Joins("LEFT JOIN songs_genres sg ON sg.song_id = s.song_id").
		Joins("LEFT JOIN genres g ON g.genre_id = sg.genre_id").
		Joins("LEFT JOIN songs_artists sa ON sa.song_id = s.song_id").
		Joins("LEFT JOIN artists a ON a.artist_id = sa.artist_id").
		Joins("LEFT JOIN awards aw ON aw.song_id = s.song_id").
		Where("s.song_id = ?", songID).
		Scan(&rows).Error
	if err != nil {
		return nil, false, err
	}

	song, found := reduceSongDetails(rows)
	return song, found, nil
}

// GetSongScalarOnly retrieves only the song row, without related entities.
func GetSongScalarOnly(ctx context.Context, db *gorm.DB, songID uint64) (*models.Song, bool, error) {
	var song models.Song
	err := quiet(ctx, db).Where("song_id = ?", songID).Take(&song).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return &song, true, nil
}

// reduceSongDetails folds the flattened join rows of one song into a single Song.
// Each related collection keeps the first occurrence of every id in row order.
// Empty slots contribute nothing, and a kind with no entries yields an empty slice.
func reduceSongDetails(rows []models.SongDetailsRow) (*models.Song, bool) {
	if len(rows) == 0 {
		return nil, false
	}

	genres := newUniqueList[models.Genre](len(rows))
	artists := newUniqueList[models.Artist](len(rows))
	awards := newUniqueList[models.Award](len(rows))

	for _, row := range rows {
		if genre, ok := row.Genre(); ok {
			genres.add(genre.GenreID, genre)
		}
		if artist, ok := row.Artist(); ok {
			artists.add(artist.ArtistID, artist)
		}
		if award, ok := row.Award(); ok {
			awards.add(award.AwardID, award)
		}
	}

	song := rows[0].Song()
	song.Genres = genres.items
	song.Artists = artists.items
	song.Awards = awards.items

	return &song, true
}

// uniqueList accumulates items keyed by id, first one wins
type uniqueList[T any] struct {
	seen  map[uint64]struct{}
	items []T
}

func newUniqueList[T any](sizeHint int) *uniqueList[T] {
	return &uniqueList[T]{
		seen:  make(map[uint64]struct{}, sizeHint),
		items: make([]T, 0),
	}
}

func (u *uniqueList[T]) add(id uint64, item T) {
	if _, ok := u.seen[id]; ok {
		return
	}
	u.seen[id] = struct{}{}
	u.items = append(u.items, item)
}
