// genres.go
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
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/songcatalog/internal/logger"
	"github.com/localnerve/songcatalog/internal/models"
	"github.com/localnerve/songcatalog/internal/services"
	"github.com/localnerve/songcatalog/internal/types"
	"github.com/localnerve/songcatalog/internal/utils"
	"gorm.io/gorm"
)

// GenreHandler handles genre routes and the genre side of the song-genre association
type GenreHandler struct {
	DB    *gorm.DB
	Log   *logger.Logger
	Links *services.LinkManager[models.SongGenre]
}

// ListGenres handles GET /api/genres?name=
// @Summary List genres, or find one genre by name
// @Tags Genres
// @Produce json
// @Param name query string false "Exact genre name"
// @Success 200 {array} models.Genre
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /genres [get]
func (h *GenreHandler) ListGenres(c *fiber.Ctx) error {
	ctx := c.UserContext()

	if name := c.Query("name"); name != "" {
		genre, err := services.GetGenreByName(ctx, h.DB, name)
		if ok, err := found(err); err != nil {
			return serverError(c, h.Log, err, "getGenreByName")
		} else if !ok {
			return utils.NotFoundResponse(c, fmt.Sprintf("Genre %q not found", name))
		}
		return c.Status(fiber.StatusOK).JSON(genre)
	}

	genres, err := services.ListGenres(ctx, h.DB)
	if err != nil {
		return serverError(c, h.Log, err, "listGenres")
	}
	return utils.ListResponse(c, genres)
}

// GetGenre handles GET /api/genres/:id
// @Summary Get a genre
// @Tags Genres
// @Produce json
// @Param id path int true "Genre ID"
// @Success 200 {object} models.Genre
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /genres/{id} [get]
func (h *GenreHandler) GetGenre(c *fiber.Ctx) error {
	genreID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	genre, err := services.GetGenre(c.UserContext(), h.DB, genreID)
	if ok, err := found(err); err != nil {
		return serverError(c, h.Log, err, "getGenre")
	} else if !ok {
		return utils.NotFoundResponse(c, notFoundMessage("Genre", genreID))
	}

	return c.Status(fiber.StatusOK).JSON(genre)
}

// ListGenreSongs handles GET /api/genres/:id/songs
// @Summary List the songs of a genre
// @Tags Genres
// @Produce json
// @Param id path int true "Genre ID"
// @Success 200 {array} models.Song
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /genres/{id}/songs [get]
func (h *GenreHandler) ListGenreSongs(c *fiber.Ctx) error {
	genreID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	ctx := c.UserContext()
	_, err = services.GetGenre(ctx, h.DB, genreID)
	if ok, err := found(err); err != nil {
		return serverError(c, h.Log, err, "listGenreSongs")
	} else if !ok {
		return utils.NotFoundResponse(c, notFoundMessage("Genre", genreID))
	}

	songs, err := services.ListSongsByGenre(ctx, h.DB, genreID)
	if err != nil {
		return serverError(c, h.Log, err, "listGenreSongs")
	}
	return utils.ListResponse(c, songs)
}

// CreateGenres handles POST /api/genres
// @Summary Create one genre, or several in one request
// @Description The body is either a single genre object or an array of them. Nothing is created if any name is taken.
// @Tags Genres
// @Accept json
// @Produce json
// @Param body body []services.GenreInput true "Genre or genres"
// @Success 201 {array} models.Genre
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /genres [post]
func (h *GenreHandler) CreateGenres(c *fiber.Ctx) error {
	var inputs types.OneOrMany[services.GenreInput]
	if err := c.BodyParser(&inputs); err != nil {
		return types.NewCustomError(fiber.StatusBadRequest, "validation", "Invalid input: %v", err)
	}
	if len(inputs) == 0 {
		return types.NewCustomError(fiber.StatusBadRequest, "validation", "At least one genre is required")
	}
	for i := range inputs {
		if err := validateStruct(&inputs[i]); err != nil {
			return err
		}
	}

	genres, err := services.CreateGenres(c.UserContext(), h.DB, inputs)
	if errors.Is(err, services.ErrDuplicateName) {
		return types.NewCustomError(fiber.StatusConflict, "conflict", "Genre name already exists")
	}
	if err != nil {
		return serverError(c, h.Log, err, "createGenres")
	}

	h.Log.Info("genres created", "count", len(genres))
	return c.Status(fiber.StatusCreated).JSON(genres)
}

// UpdateGenre handles PUT /api/genres/:id
// @Summary Rename a genre
// @Tags Genres
// @Accept json
// @Produce json
// @Param id path int true "Genre ID"
// @Param body body services.GenreInput true "Name"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /genres/{id} [put]
func (h *GenreHandler) UpdateGenre(c *fiber.Ctx) error {
	genreID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var input services.GenreInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	updated, err := services.UpdateGenreName(c.UserContext(), h.DB, genreID, input.Name)
	if errors.Is(err, services.ErrDuplicateName) {
		return types.NewCustomError(fiber.StatusConflict, "conflict", "Genre name %q already exists", input.Name)
	}
	if err != nil {
		return serverError(c, h.Log, err, "updateGenre")
	}
	if !updated {
		return utils.NotFoundResponse(c, notFoundMessage("Genre", genreID))
	}

	return utils.MessageResponse(c, "Genre updated")
}

// DeleteGenre handles DELETE /api/genres/:id
// @Summary Delete a genre and its song links
// @Tags Genres
// @Produce json
// @Param id path int true "Genre ID"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /genres/{id} [delete]
func (h *GenreHandler) DeleteGenre(c *fiber.Ctx) error {
	genreID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	deleted, err := services.DeleteGenre(c.UserContext(), h.DB, genreID)
	if err != nil {
		return serverError(c, h.Log, err, "deleteGenre")
	}
	if !deleted {
		return utils.NotFoundResponse(c, notFoundMessage("Genre", genreID))
	}

	h.Log.Info("genre deleted", "genreID", genreID)
	return utils.MessageResponse(c, "Genre deleted")
}

// LinkSong handles PUT /api/genres/:id/songs/:songId
// @Summary Add a genre to a song
// @Tags Genres
// @Produce json
// @Param id path int true "Genre ID"
// @Param songId path int true "Song ID"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /genres/{id}/songs/{songId} [put]
func (h *GenreHandler) LinkSong(c *fiber.Ctx) error {
	genreID, songID, err := idParams(c, "id", "songId")
	if err != nil {
		return err
	}
	return addLink(c, h.DB, h.Log, h.Links, genreLink(songID, genreID))
}

// UnlinkSong handles DELETE /api/genres/:id/songs/:songId
// @Summary Remove a genre from a song
// @Tags Genres
// @Produce json
// @Param id path int true "Genre ID"
// @Param songId path int true "Song ID"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /genres/{id}/songs/{songId} [delete]
func (h *GenreHandler) UnlinkSong(c *fiber.Ctx) error {
	genreID, songID, err := idParams(c, "id", "songId")
	if err != nil {
		return err
	}
	return removeLink(c, h.DB, h.Log, h.Links, genreLink(songID, genreID))
}
