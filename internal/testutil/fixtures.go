// fixtures.go
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

package testutil

import (
	"testing"

	"github.com/localnerve/songcatalog/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// MustDate parses a YYYY-MM-DD or M-D-YYYY date or fails the test
func MustDate(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	require.NoError(t, err)
	return d
}

// CreateSong inserts a song row
func CreateSong(t *testing.T, db *gorm.DB, title string, duration int, releaseDate string) models.Song {
	t.Helper()
	song := models.Song{
		SongTitle:       title,
		SongDuration:    duration,
		SongReleaseDate: MustDate(t, releaseDate),
	}
	require.NoError(t, db.Create(&song).Error, "failed to create song")
	return song
}

// CreateArtist inserts an artist row
func CreateArtist(t *testing.T, db *gorm.DB, name, gender, birthdate string) models.Artist {
	t.Helper()
	artist := models.Artist{
		ArtistName:      name,
		ArtistGender:    gender,
		ArtistBirthdate: MustDate(t, birthdate),
	}
	require.NoError(t, db.Create(&artist).Error, "failed to create artist")
	return artist
}

// CreateGenre inserts a genre row
func CreateGenre(t *testing.T, db *gorm.DB, name string) models.Genre {
	t.Helper()
	genre := models.Genre{GenreName: name}
	require.NoError(t, db.Create(&genre).Error, "failed to create genre")
	return genre
}

// CreateAward inserts an award row for songID
func CreateAward(t *testing.T, db *gorm.DB, songID uint64, name string, year int) models.Award {
	t.Helper()
	award := models.Award{AwardName: name, AwardYear: year, SongID: songID}
	require.NoError(t, db.Create(&award).Error, "failed to create award")
	return award
}

// LinkArtist inserts a songs_artists row directly
func LinkArtist(t *testing.T, db *gorm.DB, songID, artistID uint64) {
	t.Helper()
	require.NoError(t, db.Create(&models.SongArtist{SongID: songID, ArtistID: artistID}).Error)
}

// LinkGenre inserts a songs_genres row directly
func LinkGenre(t *testing.T, db *gorm.DB, songID, genreID uint64) {
	t.Helper()
	require.NoError(t, db.Create(&models.SongGenre{SongID: songID, GenreID: genreID}).Error)
}
