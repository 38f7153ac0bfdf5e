// associations_test.go
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
	"sync"
	"testing"

	"github.com/localnerve/songcatalog/internal/logger"
	"github.com/localnerve/songcatalog/internal/models"
	"github.com/localnerve/songcatalog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
)

func countLinks(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestSongArtistLinksLifecycle(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	links := NewSongArtistLinks(db, logger.Nop())

	song := testutil.CreateSong(t, db, "T", 200, "2017-01-06")
	artist := testutil.CreateArtist(t, db, "A", "female", "1990-03-04")

	steps := []struct {
		name string
		op   func(ctx context.Context, songID, relatedID uint64) (bool, error)
		want bool
	}{
		{"exists before add", links.Exists, false},
		{"add", links.Add, true},
		{"exists after add", links.Exists, true},
		{"duplicate add", links.Add, false},
		{"remove", links.Remove, true},
		{"exists after remove", links.Exists, false},
		{"remove absent", links.Remove, false},
	}

	for _, step := range steps {
		got, err := step.op(ctx, song.SongID, artist.ArtistID)
		require.NoError(t, err, step.name)
		assert.Equal(t, step.want, got, step.name)
	}

	assert.Zero(t, countLinks(t, db, &models.SongArtist{}))
}

func TestNoOpLinkChangesLogAtDebug(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	core, logs := observer.New(zapcore.DebugLevel)
	links := NewSongGenreLinks(db, &logger.Logger{SugaredLogger: zap.New(core).Sugar()})

	song := testutil.CreateSong(t, db, "T", 200, "2017-01-06")
	genre := testutil.CreateGenre(t, db, "Pop")

	_, err := links.Add(ctx, song.SongID, genre.GenreID)
	require.NoError(t, err)
	added, err := links.Add(ctx, song.SongID, genre.GenreID)
	require.NoError(t, err)
	assert.False(t, added)

	_, err = links.Remove(ctx, song.SongID, genre.GenreID)
	require.NoError(t, err)
	removed, err := links.Remove(ctx, song.SongID, genre.GenreID)
	require.NoError(t, err)
	assert.False(t, removed)

	assert.Equal(t, 1, logs.FilterMessage("link already present").Len())
	assert.Equal(t, 1, logs.FilterMessage("no link to remove").Len())
	assert.Zero(t, logs.Filter(func(e observer.LoggedEntry) bool {
		return e.Level > zapcore.DebugLevel
	}).Len())
}

func TestSongGenreLinksAreIndependentPerPair(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	genreLinks := NewSongGenreLinks(db, logger.Nop())
	artistLinks := NewSongArtistLinks(db, logger.Nop())

	song := testutil.CreateSong(t, db, "T", 200, "2017-01-06")
	pop := testutil.CreateGenre(t, db, "Pop")
	rock := testutil.CreateGenre(t, db, "Rock")

	added, err := genreLinks.Add(ctx, song.SongID, pop.GenreID)
	require.NoError(t, err)
	require.True(t, added)

	exists, err := genreLinks.Exists(ctx, song.SongID, rock.GenreID)
	require.NoError(t, err)
	assert.False(t, exists)

	// same ids in the other relation are a different link
	exists, err = artistLinks.Exists(ctx, song.SongID, pop.GenreID)
	require.NoError(t, err)
	assert.False(t, exists)

	removed, err := genreLinks.Remove(ctx, song.SongID, rock.GenreID)
	require.NoError(t, err)
	assert.False(t, removed)

	assert.Equal(t, int64(1), countLinks(t, db, &models.SongGenre{}))
}

func TestConcurrentAddCreatesOneLink(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	links := NewSongGenreLinks(db, logger.Nop())

	song := testutil.CreateSong(t, db, "T", 200, "2017-01-06")
	genre := testutil.CreateGenre(t, db, "Pop")

	const workers = 8
	results := make(chan bool, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			added, err := links.Add(ctx, song.SongID, genre.GenreID)
			assert.NoError(t, err)
			results <- added
		}()
	}
	wg.Wait()
	close(results)

	wins := 0
	for added := range results {
		if added {
			wins++
		}
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, int64(1), countLinks(t, db, &models.SongGenre{}))
}

func TestLinkManagerStorageError(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	links := NewSongArtistLinks(db, logger.Nop())
	require.NoError(t, db.Migrator().DropTable(&models.SongArtist{}))

	_, err := links.Exists(ctx, 1, 1)
	assert.Error(t, err)
	_, err = links.Add(ctx, 1, 1)
	assert.Error(t, err)
	_, err = links.Remove(ctx, 1, 1)
	assert.Error(t, err)
}
