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

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/songcatalog/internal/logger"
	"github.com/localnerve/songcatalog/internal/models"
	"github.com/localnerve/songcatalog/internal/services"
	"github.com/localnerve/songcatalog/internal/utils"
	"gorm.io/gorm"
)

// SongHandler handles song routes and the song side of both associations
type SongHandler struct {
	DB          *gorm.DB
	Log         *logger.Logger
	ArtistLinks *services.LinkManager[models.SongArtist]
	GenreLinks  *services.LinkManager[models.SongGenre]
}

// SongDetailsResponse is a song with its genres, artists and awards
type SongDetailsResponse struct {
	models.Song
	Genres  []models.Genre  `json:"genres"`
	Artists []models.Artist `json:"artists"`
	Awards  []models.Award  `json:"awards"`
}

// ListSongs handles GET /api/songs
// @Summary List songs
// @Tags Songs
// @Produce json
// @Success 200 {array} models.Song
// @Success 204
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /songs [get]
func (h *SongHandler) ListSongs(c *fiber.Ctx) error {
	songs, err := services.ListSongs(c.UserContext(), h.DB)
	if err != nil {
		return serverError(c, h.Log, err, "listSongs")
	}
	return utils.ListResponse(c, songs)
}

// GetSong handles GET /api/songs/:id
// @Summary Get a song with its genres, artists and awards
// @Tags Songs
// @Produce json
// @Param id path int true "Song ID"
// @Success 200 {object} SongDetailsResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /songs/{id} [get]
func (h *SongHandler) GetSong(c *fiber.Ctx) error {
	songID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	song, ok, err := services.GetFullSong(c.UserContext(), h.DB, songID)
	if err != nil {
		return serverError(c, h.Log, err, "getSong")
	}
	if !ok {
		return utils.NotFoundResponse(c, notFoundMessage("Song", songID))
	}

	return c.Status(fiber.StatusOK).JSON(SongDetailsResponse{
		Song:    *song,
		Genres:  song.Genres,
		Artists: song.Artists,
		Awards:  song.Awards,
	})
}

// songExists renders a 404 and reports false if songID is absent
func (h *SongHandler) songExists(c *fiber.Ctx, songID uint64, errorType string) (bool, error) {
	_, ok, err := services.GetSongScalarOnly(c.UserContext(), h.DB, songID)
	if err != nil {
		return false, serverError(c, h.Log, err, errorType)
	}
	if !ok {
		return false, utils.NotFoundResponse(c, notFoundMessage("Song", songID))
	}
	return true, nil
}

// ListSongGenres handles GET /api/songs/:id/genres
// @Summary List the genres of a song
// @Tags Songs
// @Produce json
// @Param id path int true "Song ID"
// @Success 200 {array} models.Genre
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /songs/{id}/genres [get]
func (h *SongHandler) ListSongGenres(c *fiber.Ctx) error {
	songID, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if ok, err := h.songExists(c, songID, "listSongGenres"); !ok {
		return err
	}

	genres, err := services.ListGenresBySong(c.UserContext(), h.DB, songID)
	if err != nil {
		return serverError(c, h.Log, err, "listSongGenres")
	}
	return utils.ListResponse(c, genres)
}

// ListSongArtists handles GET /api/songs/:id/artists
// @Summary List the artists of a song
// @Tags Songs
// @Produce json
// @Param id path int true "Song ID"
// @Success 200 {array} models.Artist
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /songs/{id}/artists [get]
func (h *SongHandler) ListSongArtists(c *fiber.Ctx) error {
	songID, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if ok, err := h.songExists(c, songID, "listSongArtists"); !ok {
		return err
	}

	artists, err := services.ListArtistsBySong(c.UserContext(), h.DB, songID)
	if err != nil {
		return serverError(c, h.Log, err, "listSongArtists")
	}
	return utils.ListResponse(c, artists)
}

// ListSongAwards handles GET /api/songs/:id/awards
// @Summary List the awards of a song
// @Tags Songs
// @Produce json
// @Param id path int true "Song ID"
// @Success 200 {array} models.Award
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /songs/{id}/awards [get]
func (h *SongHandler) ListSongAwards(c *fiber.Ctx) error {
	songID, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if ok, err := h.songExists(c, songID, "listSongAwards"); !ok {
		return err
	}

	awards, err := services.ListAwardsBySong(c.UserContext(), h.DB, songID)
	if err != nil {
		return serverError(c, h.Log, err, "listSongAwards")
	}
	return utils.ListResponse(c, awards)
}

// CreateSong handles POST /api/songs
// @Summary Create a song
// @Tags Songs
// @Accept json
// @Produce json
// @Param body body services.SongInput true "Song"
// @Success 201 {object} models.Song
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /songs [post]
func (h *SongHandler) CreateSong(c *fiber.Ctx) error {
	var input services.SongInput
	if err := parseBody(c, &input); err != nil {
		return err
	}
	if err := requireDate("releaseDate", input.ReleaseDate); err != nil {
		return err
	}

	song, err := services.CreateSong(c.UserContext(), h.DB, input)
	if err != nil {
		return serverError(c, h.Log, err, "createSong")
	}

	h.Log.Info("song created", "songID", song.SongID)
	return c.Status(fiber.StatusCreated).JSON(song)
}

// UpdateSong handles PUT /api/songs/:id
// @Summary Change a song's release date
// @Tags Songs
// @Accept json
// @Produce json
// @Param id path int true "Song ID"
// @Param body body services.SongUpdateInput true "Release date"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /songs/{id} [put]
func (h *SongHandler) UpdateSong(c *fiber.Ctx) error {
	songID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var input services.SongUpdateInput
	if err := parseBody(c, &input); err != nil {
		return err
	}
	if err := requireDate("releaseDate", input.ReleaseDate); err != nil {
		return err
	}

	updated, err := services.UpdateSongReleaseDate(c.UserContext(), h.DB, songID, input.ReleaseDate)
	if err != nil {
		return serverError(c, h.Log, err, "updateSong")
	}
	if !updated {
		return utils.NotFoundResponse(c, notFoundMessage("Song", songID))
	}

	return utils.MessageResponse(c, "Song updated")
}

// DeleteSong handles DELETE /api/songs/:id
// @Summary Delete a song, its awards and its associations
// @Tags Songs
// @Produce json
// @Param id path int true "Song ID"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /songs/{id} [delete]
func (h *SongHandler) DeleteSong(c *fiber.Ctx) error {
	songID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	deleted, err := services.DeleteSong(c.UserContext(), h.DB, songID)
	if err != nil {
		return serverError(c, h.Log, err, "deleteSong")
	}
	if !deleted {
		return utils.NotFoundResponse(c, notFoundMessage("Song", songID))
	}

	h.Log.Info("song deleted", "songID", songID)
	return utils.MessageResponse(c, "Song deleted")
}

// LinkArtist handles PUT /api/songs/:id/artists/:artistId
// @Summary Add an artist to a song
// @Tags Songs
// @Produce json
// @Param id path int true "Song ID"
// @Param artistId path int true "Artist ID"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /songs/{id}/artists/{artistId} [put]
func (h *SongHandler) LinkArtist(c *fiber.Ctx) error {
	songID, artistID, err := idParams(c, "id", "artistId")
	if err != nil {
		return err
	}
	return addLink(c, h.DB, h.Log, h.ArtistLinks, artistLink(songID, artistID))
}

// UnlinkArtist handles DELETE /api/songs/:id/artists/:artistId
// @Summary Remove an artist from a song
// @Tags Songs
// @Produce json
// @Param id path int true "Song ID"
// @Param artistId path int true "Artist ID"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /songs/{id}/artists/{artistId} [delete]
func (h *SongHandler) UnlinkArtist(c *fiber.Ctx) error {
	songID, artistID, err := idParams(c, "id", "artistId")
	if err != nil {
		return err
	}
	return removeLink(c, h.DB, h.Log, h.ArtistLinks, artistLink(songID, artistID))
}

// LinkGenre handles PUT /api/songs/:id/genres/:genreId
// @Summary Add a genre to a song
// @Tags Songs
// @Produce json
// @Param id path int true "Song ID"
// @Param genreId path int true "Genre ID"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /songs/{id}/genres/{genreId} [put]
func (h *SongHandler) LinkGenre(c *fiber.Ctx) error {
	songID, genreID, err := idParams(c, "id", "genreId")
	if err != nil {
		return err
	}
	return addLink(c, h.DB, h.Log, h.GenreLinks, genreLink(songID, genreID))
}

// UnlinkGenre handles DELETE /api/songs/:id/genres/:genreId
// @Summary Remove a genre from a song
// @Tags Songs
// @Produce json
// @Param id path int true "Song ID"
// @Param genreId path int true "Genre ID"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /songs/{id}/genres/{genreId} [delete]
func (h *SongHandler) UnlinkGenre(c *fiber.Ctx) error {
	songID, genreID, err := idParams(c, "id", "genreId")
	if err != nil {
		return err
	}
	return removeLink(c, h.DB, h.Log, h.GenreLinks, genreLink(songID, genreID))
}
