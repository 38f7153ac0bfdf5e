// song_details_test.go
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

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestSongDetailsRowSlots(t *testing.T) {
	row := SongDetailsRow{
		SongID:       7,
		SongTitle:    "Title",
		SongDuration: 200,
	}

	_, ok := row.Genre()
	assert.False(t, ok)
	_, ok = row.Artist()
	assert.False(t, ok)
	_, ok = row.Award()
	assert.False(t, ok)

	row.GenreID = ptr(uint64(1))
	row.GenreName = ptr("Pop")
	row.ArtistID = ptr(uint64(2))
	row.ArtistName = ptr("A")
	row.AwardID = ptr(uint64(3))
	row.AwardName = ptr("Best")
	row.AwardYear = ptr(2001)

	genre, ok := row.Genre()
	assert.True(t, ok)
	assert.Equal(t, Genre{GenreID: 1, GenreName: "Pop"}, genre)

	artist, ok := row.Artist()
	assert.True(t, ok)
	assert.Equal(t, uint64(2), artist.ArtistID)
	assert.Equal(t, "A", artist.ArtistName)
	assert.Empty(t, artist.ArtistGender)
	assert.True(t, artist.ArtistBirthdate.IsZero())

	award, ok := row.Award()
	assert.True(t, ok)
	assert.Equal(t, Award{AwardID: 3, AwardName: "Best", AwardYear: 2001, SongID: 7}, award)

	song := row.Song()
	assert.Equal(t, uint64(7), song.SongID)
	assert.Nil(t, song.Genres)
}

func TestSongDetailsRowPresenceIsKeyedOnID(t *testing.T) {
	// a name without an id is not a genre
	row := SongDetailsRow{SongID: 1, GenreName: ptr("Orphan")}
	_, ok := row.Genre()
	assert.False(t, ok)

	// an id with empty fields still is one
	row = SongDetailsRow{SongID: 1, ArtistID: ptr(uint64(9))}
	artist, ok := row.Artist()
	assert.True(t, ok)
	assert.Equal(t, uint64(9), artist.ArtistID)
}
