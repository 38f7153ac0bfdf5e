// integration_test.go
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

package services_test

import (
	"context"
	"sync"
	"testing"

	"github.com/localnerve/songcatalog/internal/database"
	"github.com/localnerve/songcatalog/internal/logger"
	"github.com/localnerve/songcatalog/internal/models"
	"github.com/localnerve/songcatalog/internal/services"
	"github.com/localnerve/songcatalog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestWithDatabaseContainer runs the reducer and both link managers against a real server
func TestWithDatabaseContainer(t *testing.T) {
	testutil.SkipWithoutContainers(t)

	ctx := context.Background()

	tc, err := testutil.StartDatabase(t)
	require.NoError(t, err, "failed to start database container")
	defer tc.Terminate(t)

	cfg, err := tc.DBConfig(ctx)
	require.NoError(t, err)

	db, err := database.Connect(cfg, logger.Nop())
	require.NoError(t, err, "failed to connect to database container")
	defer database.Close(db)
	require.NoError(t, database.AutoMigrate(db))

	t.Run("HealthCheck", func(t *testing.T) {
		result := services.HealthCheck(ctx, cfg, db, logger.Nop())
		assert.Equal(t, "healthy", result.Status, "%+v", result)
		assert.Equal(t, "ok", result.Database)
	})

	t.Run("GetFullSong", func(t *testing.T) {
		testFullSong(t, db)
	})

	t.Run("LinkManagers", func(t *testing.T) {
		testLinkManagers(t, db)
	})
}

func testFullSong(t *testing.T, db *gorm.DB) {
	ctx := context.Background()

	song := testutil.CreateSong(t, db, "Integration", 321, "2019-05-06")
	genres := []models.Genre{
		testutil.CreateGenre(t, db, "Integration Pop"),
		testutil.CreateGenre(t, db, "Integration Rock"),
	}
	artists := []models.Artist{
		testutil.CreateArtist(t, db, "First", "female", "1970-01-01"),
		testutil.CreateArtist(t, db, "Second", "male", "1971-02-02"),
		testutil.CreateArtist(t, db, "Third", "nonbinary", "1972-03-03"),
	}
	for _, g := range genres {
		testutil.LinkGenre(t, db, song.SongID, g.GenreID)
	}
	for _, a := range artists {
		testutil.LinkArtist(t, db, song.SongID, a.ArtistID)
	}
	testutil.CreateAward(t, db, song.SongID, "Gold", 2020)
	testutil.CreateAward(t, db, song.SongID, "Platinum", 2021)

	full, found, err := services.GetFullSong(ctx, db, song.SongID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Integration", full.SongTitle)
	assert.Equal(t, "2019-05-06", full.SongReleaseDate.String())
	assert.Len(t, full.Genres, 2)
	assert.Len(t, full.Artists, 3)
	assert.Len(t, full.Awards, 2)

	_, found, err = services.GetFullSong(ctx, db, song.SongID+1000)
	require.NoError(t, err)
	assert.False(t, found)
}

func testLinkManagers(t *testing.T, db *gorm.DB) {
	ctx := context.Background()

	song := testutil.CreateSong(t, db, "Links", 200, "2020-01-01")
	artist := testutil.CreateArtist(t, db, "Linked", "female", "1980-01-01")
	genre := testutil.CreateGenre(t, db, "Integration Links")

	artistLinks := services.NewSongArtistLinks(db, logger.Nop())
	genreLinks := services.NewSongGenreLinks(db, logger.Nop())

	added, err := genreLinks.Add(ctx, song.SongID, genre.GenreID)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = genreLinks.Add(ctx, song.SongID, genre.GenreID)
	require.NoError(t, err)
	assert.False(t, added, "duplicate add must affect no rows")

	var wg sync.WaitGroup
	results := make(chan bool, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := artistLinks.Add(ctx, song.SongID, artist.ArtistID)
			assert.NoError(t, err)
			results <- ok
		}()
	}
	wg.Wait()
	close(results)

	wins := 0
	for ok := range results {
		if ok {
			wins++
		}
	}
	assert.Equal(t, 1, wins)

	exists, err := artistLinks.Exists(ctx, song.SongID, artist.ArtistID)
	require.NoError(t, err)
	assert.True(t, exists)

	removed, err := artistLinks.Remove(ctx, song.SongID, artist.ArtistID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = artistLinks.Remove(ctx, song.SongID, artist.ArtistID)
	require.NoError(t, err)
	assert.False(t, removed)
}
