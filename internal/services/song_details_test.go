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

package services

import (
	"context"
	"math/rand"
	"testing"

	"github.com/localnerve/songcatalog/internal/models"
	"github.com/localnerve/songcatalog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

type detailsRow struct {
	genre, artist, award uint64
}

// makeRows builds join rows for song 1, with 0 meaning an empty slot
func makeRows(combos ...detailsRow) []models.SongDetailsRow {
	rows := make([]models.SongDetailsRow, 0, len(combos))
	for _, s := range combos {
		row := models.SongDetailsRow{SongID: 1, SongTitle: "T", SongDuration: 200}
		if s.genre != 0 {
			row.GenreID = ptr(s.genre)
			row.GenreName = ptr("genre")
		}
		if s.artist != 0 {
			row.ArtistID = ptr(s.artist)
			row.ArtistName = ptr("artist")
		}
		if s.award != 0 {
			row.AwardID = ptr(s.award)
			row.AwardName = ptr("award")
			row.AwardYear = ptr(2000)
		}
		rows = append(rows, row)
	}
	return rows
}

func genreIDs(s *models.Song) []uint64 {
	ids := make([]uint64, 0, len(s.Genres))
	for _, g := range s.Genres {
		ids = append(ids, g.GenreID)
	}
	return ids
}

func artistIDs(s *models.Song) []uint64 {
	ids := make([]uint64, 0, len(s.Artists))
	for _, a := range s.Artists {
		ids = append(ids, a.ArtistID)
	}
	return ids
}

func awardIDs(s *models.Song) []uint64 {
	ids := make([]uint64, 0, len(s.Awards))
	for _, a := range s.Awards {
		ids = append(ids, a.AwardID)
	}
	return ids
}

func TestReduceSongDetailsNoRows(t *testing.T) {
	song, found := reduceSongDetails(nil)
	assert.False(t, found)
	assert.Nil(t, song)
}

func TestReduceSongDetailsOnlyNullSlots(t *testing.T) {
	song, found := reduceSongDetails(makeRows(detailsRow{}))
	require.True(t, found)

	assert.Equal(t, uint64(1), song.SongID)
	assert.NotNil(t, song.Genres)
	assert.NotNil(t, song.Artists)
	assert.NotNil(t, song.Awards)
	assert.Empty(t, song.Genres)
	assert.Empty(t, song.Artists)
	assert.Empty(t, song.Awards)
}

func TestReduceSongDetailsTwoGenresOneArtist(t *testing.T) {
	rows := []models.SongDetailsRow{
		{SongID: 1, SongTitle: "T", SongDuration: 200, GenreID: ptr(uint64(1)), GenreName: ptr("Pop"), ArtistID: ptr(uint64(7)), ArtistName: ptr("A")},
		{SongID: 1, SongTitle: "T", SongDuration: 200, GenreID: ptr(uint64(2)), GenreName: ptr("Rock"), ArtistID: ptr(uint64(7)), ArtistName: ptr("A")},
	}

	song, found := reduceSongDetails(rows)
	require.True(t, found)

	assert.Equal(t, "T", song.SongTitle)
	assert.Equal(t, 200, song.SongDuration)
	require.Len(t, song.Genres, 2)
	assert.Equal(t, "Pop", song.Genres[0].GenreName)
	assert.Equal(t, "Rock", song.Genres[1].GenreName)
	require.Len(t, song.Artists, 1)
	assert.Equal(t, "A", song.Artists[0].ArtistName)
	assert.Empty(t, song.Awards)
}

func TestReduceSongDetailsCrossProductDedup(t *testing.T) {
	// 2 genres x 3 artists x 2 awards
	var combos []detailsRow
	for _, g := range []uint64{10, 11} {
		for _, a := range []uint64{20, 21, 22} {
			for _, w := range []uint64{30, 31} {
				combos = append(combos, detailsRow{g, a, w})
			}
		}
	}
	rows := makeRows(combos...)
	require.Len(t, rows, 12)

	song, found := reduceSongDetails(rows)
	require.True(t, found)

	assert.Equal(t, []uint64{10, 11}, genreIDs(song))
	assert.Equal(t, []uint64{20, 21, 22}, artistIDs(song))
	assert.Equal(t, []uint64{30, 31}, awardIDs(song))
	for _, award := range song.Awards {
		assert.Equal(t, uint64(1), award.SongID)
	}
}

func TestReduceSongDetailsFirstOccurrenceOrder(t *testing.T) {
	rows := makeRows(
		detailsRow{genre: 5, artist: 0, award: 0},
		detailsRow{genre: 3, artist: 9, award: 0},
		detailsRow{genre: 5, artist: 8, award: 0},
		detailsRow{genre: 0, artist: 9, award: 4},
	)

	song, _ := reduceSongDetails(rows)
	assert.Equal(t, []uint64{5, 3}, genreIDs(song))
	assert.Equal(t, []uint64{9, 8}, artistIDs(song))
	assert.Equal(t, []uint64{4}, awardIDs(song))
}

func TestReduceSongDetailsOrderIndependentContents(t *testing.T) {
	var combos []detailsRow
	for _, g := range []uint64{0, 1, 2} {
		for _, a := range []uint64{3, 4} {
			combos = append(combos, detailsRow{g, a, 0})
		}
	}
	rows := makeRows(combos...)
	want, _ := reduceSongDetails(rows)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		shuffled := append([]models.SongDetailsRow(nil), rows...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got, found := reduceSongDetails(shuffled)
		require.True(t, found)
		assert.ElementsMatch(t, genreIDs(want), genreIDs(got))
		assert.ElementsMatch(t, artistIDs(want), artistIDs(got))
		assert.Empty(t, got.Awards)
	}
}

func TestGetFullSong(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	song := testutil.CreateSong(t, db, "T", 200, "2017-01-06")
	pop := testutil.CreateGenre(t, db, "Pop")
	rock := testutil.CreateGenre(t, db, "Rock")
	artist := testutil.CreateArtist(t, db, "A", "female", "3-4-1990")
	testutil.LinkGenre(t, db, song.SongID, pop.GenreID)
	testutil.LinkGenre(t, db, song.SongID, rock.GenreID)
	testutil.LinkArtist(t, db, song.SongID, artist.ArtistID)

	// another song's links must not leak in
	other := testutil.CreateSong(t, db, "Other", 100, "2000-01-01")
	testutil.LinkGenre(t, db, other.SongID, pop.GenreID)
	testutil.CreateAward(t, db, other.SongID, "Elsewhere", 2001)

	full, found, err := GetFullSong(ctx, db, song.SongID)
	require.NoError(t, err)
	require.True(t, found)

	assert.Equal(t, song.SongID, full.SongID)
	assert.Equal(t, "T", full.SongTitle)
	assert.Equal(t, 200, full.SongDuration)
	assert.Equal(t, "2017-01-06", full.SongReleaseDate.String())
	assert.ElementsMatch(t, []string{"Pop", "Rock"}, []string{full.Genres[0].GenreName, full.Genres[1].GenreName})
	require.Len(t, full.Artists, 1)
	assert.Equal(t, "A", full.Artists[0].ArtistName)
	assert.Equal(t, "female", full.Artists[0].ArtistGender)
	assert.Equal(t, "1990-03-04", full.Artists[0].ArtistBirthdate.String())
	assert.NotNil(t, full.Awards)
	assert.Empty(t, full.Awards)

	scalar, found, err := GetSongScalarOnly(ctx, db, song.SongID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, full.SongTitle, scalar.SongTitle)
	assert.Equal(t, full.SongDuration, scalar.SongDuration)
	assert.Equal(t, full.SongReleaseDate.String(), scalar.SongReleaseDate.String())
	assert.Nil(t, scalar.Genres)
}

func TestGetFullSongDedupAcrossJoin(t *testing.T) {
	db := testutil.NewTestDB(t)

	song := testutil.CreateSong(t, db, "T", 200, "2017-01-06")
	for _, name := range []string{"G1", "G2"} {
		g := testutil.CreateGenre(t, db, name)
		testutil.LinkGenre(t, db, song.SongID, g.GenreID)
	}
	for _, name := range []string{"A1", "A2", "A3"} {
		a := testutil.CreateArtist(t, db, name, "male", "1980-01-01")
		testutil.LinkArtist(t, db, song.SongID, a.ArtistID)
	}
	testutil.CreateAward(t, db, song.SongID, "W1", 2001)
	testutil.CreateAward(t, db, song.SongID, "W2", 2002)

	full, found, err := GetFullSong(context.Background(), db, song.SongID)
	require.NoError(t, err)
	require.True(t, found)

	assert.Len(t, full.Genres, 2)
	assert.Len(t, full.Artists, 3)
	assert.Len(t, full.Awards, 2)
}

func TestGetFullSongNotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	song, found, err := GetFullSong(ctx, db, 999)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, song)

	song, found, err = GetSongScalarOnly(ctx, db, 999)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, song)
}

func TestGetFullSongStorageError(t *testing.T) {
	db := testutil.NewTestDB(t)
	require.NoError(t, db.Migrator().DropTable(&models.SongGenre{}))

	song, found, err := GetFullSong(context.Background(), db, 1)
	assert.Error(t, err)
	assert.False(t, found)
	assert.Nil(t, song)
}
