// routes.go
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

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/songcatalog/internal/logger"
	"github.com/localnerve/songcatalog/internal/services"
	"gorm.io/gorm"
)

// Catalog groups the handlers of every catalog route
type Catalog struct {
	Songs   *SongHandler
	Artists *ArtistHandler
	Genres  *GenreHandler
	Awards  *AwardHandler
}

// NewCatalog builds the handlers, sharing one association manager per relation
func NewCatalog(db *gorm.DB, log *logger.Logger) *Catalog {
	artistLinks := services.NewSongArtistLinks(db, log)
	genreLinks := services.NewSongGenreLinks(db, log)

	return &Catalog{
		Songs:   &SongHandler{DB: db, Log: log, ArtistLinks: artistLinks, GenreLinks: genreLinks},
		Artists: &ArtistHandler{DB: db, Log: log, Links: artistLinks},
		Genres:  &GenreHandler{DB: db, Log: log, Links: genreLinks},
		Awards:  &AwardHandler{DB: db, Log: log},
	}
}

// Register mounts the catalog routes on api. Mutations run behind guard when it is not nil.
func (h *Catalog) Register(api fiber.Router, guard fiber.Handler) {
	mutate := func(handler fiber.Handler) []fiber.Handler {
		if guard == nil {
			return []fiber.Handler{handler}
		}
		return []fiber.Handler{guard, handler}
	}

	songs := api.Group("/songs")
	songs.Get("/", h.Songs.ListSongs)
	songs.Get("/:id", h.Songs.GetSong)
	songs.Get("/:id/genres", h.Songs.ListSongGenres)
	songs.Get("/:id/artists", h.Songs.ListSongArtists)
	songs.Get("/:id/awards", h.Songs.ListSongAwards)
	songs.Post("/", mutate(h.Songs.CreateSong)...)
	songs.Put("/:id", mutate(h.Songs.UpdateSong)...)
	songs.Delete("/:id", mutate(h.Songs.DeleteSong)...)
	songs.Put("/:id/artists/:artistId", mutate(h.Songs.LinkArtist)...)
	songs.Delete("/:id/artists/:artistId", mutate(h.Songs.UnlinkArtist)...)
	songs.Put("/:id/genres/:genreId", mutate(h.Songs.LinkGenre)...)
	songs.Delete("/:id/genres/:genreId", mutate(h.Songs.UnlinkGenre)...)

	artists := api.Group("/artists")
	artists.Get("/", h.Artists.ListArtists)
	artists.Get("/:id", h.Artists.GetArtist)
	artists.Get("/:id/songs", h.Artists.ListArtistSongs)
	artists.Post("/", mutate(h.Artists.CreateArtist)...)
	artists.Put("/:id", mutate(h.Artists.UpdateArtist)...)
	artists.Delete("/:id", mutate(h.Artists.DeleteArtist)...)
	artists.Put("/:id/songs/:songId", mutate(h.Artists.LinkSong)...)
	artists.Delete("/:id/songs/:songId", mutate(h.Artists.UnlinkSong)...)

	genres := api.Group("/genres")
	genres.Get("/", h.Genres.ListGenres)
	genres.Get("/:id", h.Genres.GetGenre)
	genres.Get("/:id/songs", h.Genres.ListGenreSongs)
	genres.Post("/", mutate(h.Genres.CreateGenres)...)
	genres.Put("/:id", mutate(h.Genres.UpdateGenre)...)
	genres.Delete("/:id", mutate(h.Genres.DeleteGenre)...)
	genres.Put("/:id/songs/:songId", mutate(h.Genres.LinkSong)...)
	genres.Delete("/:id/songs/:songId", mutate(h.Genres.UnlinkSong)...)

	awards := api.Group("/awards")
	awards.Get("/", h.Awards.ListAwards)
	awards.Get("/:id", h.Awards.GetAward)
	awards.Post("/", mutate(h.Awards.CreateAward)...)
	awards.Put("/:id", mutate(h.Awards.UpdateAward)...)
	awards.Delete("/:id", mutate(h.Awards.DeleteAward)...)
}
