// artists.go
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

// ArtistHandler handles artist routes and the artist side of the song-artist association
type ArtistHandler struct {
	DB    *gorm.DB
	Log   *logger.Logger
	Links *services.LinkManager[models.SongArtist]
}

// ListArtists handles GET /api/artists
// @Summary List artists
// @Tags Artists
// @Produce json
// @Success 200 {array} models.Artist
// @Success 204
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /artists [get]
func (h *ArtistHandler) ListArtists(c *fiber.Ctx) error {
	artists, err := services.ListArtists(c.UserContext(), h.DB)
	if err != nil {
		return serverError(c, h.Log, err, "listArtists")
	}
	return utils.ListResponse(c, artists)
}

// GetArtist handles GET /api/artists/:id
// @Summary Get an artist
// @Tags Artists
// @Produce json
// @Param id path int true "Artist ID"
// @Success 200 {object} models.Artist
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /artists/{id} [get]
func (h *ArtistHandler) GetArtist(c *fiber.Ctx) error {
	artistID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	artist, err := services.GetArtist(c.UserContext(), h.DB, artistID)
	if ok, err := found(err); err != nil {
		return serverError(c, h.Log, err, "getArtist")
	} else if !ok {
		return utils.NotFoundResponse(c, notFoundMessage("Artist", artistID))
	}

	return c.Status(fiber.StatusOK).JSON(artist)
}

// ListArtistSongs handles GET /api/artists/:id/songs
// @Summary List the songs of an artist
// @Tags Artists
// @Produce json
// @Param id path int true "Artist ID"
// @Success 200 {array} models.Song
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /artists/{id}/songs [get]
func (h *ArtistHandler) ListArtistSongs(c *fiber.Ctx) error {
	artistID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	ctx := c.UserContext()
	_, err = services.GetArtist(ctx, h.DB, artistID)
	if ok, err := found(err); err != nil {
		return serverError(c, h.Log, err, "listArtistSongs")
	} else if !ok {
		return utils.NotFoundResponse(c, notFoundMessage("Artist", artistID))
	}

	songs, err := services.ListSongsByArtist(ctx, h.DB, artistID)
	if err != nil {
		return serverError(c, h.Log, err, "listArtistSongs")
	}
	return utils.ListResponse(c, songs)
}

// CreateArtist handles POST /api/artists
// @Summary Create an artist
// @Tags Artists
// @Accept json
// @Produce json
// @Param body body services.ArtistInput true "Artist"
// @Success 201 {object} models.Artist
// @Failure 400 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /artists [post]
func (h *ArtistHandler) CreateArtist(c *fiber.Ctx) error {
	var input services.ArtistInput
	if err := parseBody(c, &input); err != nil {
		return err
	}
	if err := requireDate("birthdate", input.Birthdate); err != nil {
		return err
	}

	artist, err := services.CreateArtist(c.UserContext(), h.DB, input)
	if err != nil {
		return serverError(c, h.Log, err, "createArtist")
	}

	h.Log.Info("artist created", "artistID", artist.ArtistID)
	return c.Status(fiber.StatusCreated).JSON(artist)
}

// UpdateArtist handles PUT /api/artists/:id
// @Summary Rename an artist
// @Tags Artists
// @Accept json
// @Produce json
// @Param id path int true "Artist ID"
// @Param body body services.ArtistUpdateInput true "Name"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /artists/{id} [put]
func (h *ArtistHandler) UpdateArtist(c *fiber.Ctx) error {
	artistID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var input services.ArtistUpdateInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	updated, err := services.UpdateArtistName(c.UserContext(), h.DB, artistID, input.Name)
	if err != nil {
		return serverError(c, h.Log, err, "updateArtist")
	}
	if !updated {
		return utils.NotFoundResponse(c, notFoundMessage("Artist", artistID))
	}

	return utils.MessageResponse(c, "Artist updated")
}

// DeleteArtist handles DELETE /api/artists/:id
// @Summary Delete an artist and its song links
// @Tags Artists
// @Produce json
// @Param id path int true "Artist ID"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /artists/{id} [delete]
func (h *ArtistHandler) DeleteArtist(c *fiber.Ctx) error {
	artistID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	deleted, err := services.DeleteArtist(c.UserContext(), h.DB, artistID)
	if err != nil {
		return serverError(c, h.Log, err, "deleteArtist")
	}
	if !deleted {
		return utils.NotFoundResponse(c, notFoundMessage("Artist", artistID))
	}

	h.Log.Info("artist deleted", "artistID", artistID)
	return utils.MessageResponse(c, "Artist deleted")
}

// LinkSong handles PUT /api/artists/:id/songs/:songId
// @Summary Add an artist to a song
// @Tags Artists
// @Produce json
// @Param id path int true "Artist ID"
// @Param songId path int true "Song ID"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /artists/{id}/songs/{songId} [put]
func (h *ArtistHandler) LinkSong(c *fiber.Ctx) error {
	artistID, songID, err := idParams(c, "id", "songId")
	if err != nil {
		return err
	}
	return addLink(c, h.DB, h.Log, h.Links, artistLink(songID, artistID))
}

// UnlinkSong handles DELETE /api/artists/:id/songs/:songId
// @Summary Remove an artist from a song
// @Tags Artists
// @Produce json
// @Param id path int true "Artist ID"
// @Param songId path int true "Song ID"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /artists/{id}/songs/{songId} [delete]
func (h *ArtistHandler) UnlinkSong(c *fiber.Ctx) error {
	artistID, songID, err := idParams(c, "id", "songId")
	if err != nil {
		return err
	}
	return removeLink(c, h.DB, h.Log, h.Links, artistLink(songID, artistID))
}
