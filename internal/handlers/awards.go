// awards.go
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

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/songcatalog/internal/logger"
	"github.com/localnerve/songcatalog/internal/services"
	"github.com/localnerve/songcatalog/internal/utils"
	"gorm.io/gorm"
)

// AwardHandler handles award routes
type AwardHandler struct {
	DB  *gorm.DB
	Log *logger.Logger
}

// ListAwards handles GET /api/awards
// @Summary List awards
// @Tags Awards
// @Produce json
// @Success 200 {array} models.Award
// @Success 204
// @Router /awards [get]
func (h *AwardHandler) ListAwards(c *fiber.Ctx) error {
	awards, err := services.ListAwards(c.UserContext(), h.DB)
	if err != nil {
		return serverError(c, h.Log, err, "listAwards")
	}
	return utils.ListResponse(c, awards)
}

// GetAward handles GET /api/awards/:id
// @Summary Get an award
// @Tags Awards
// @Produce json
// @Param id path int true "Award ID"
// @Success 200 {object} models.Award
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /awards/{id} [get]
func (h *AwardHandler) GetAward(c *fiber.Ctx) error {
	awardID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	award, err := services.GetAward(c.UserContext(), h.DB, awardID)
	if ok, err := found(err); err != nil {
		return serverError(c, h.Log, err, "getAward")
	} else if !ok {
		return utils.NotFoundResponse(c, notFoundMessage("Award", awardID))
	}

	return c.Status(fiber.StatusOK).JSON(award)
}

// CreateAward handles POST /api/awards
// @Summary Create an award for a song
// @Tags Awards
// @Accept json
// @Produce json
// @Param body body services.AwardInput true "Award"
// @Success 201 {object} models.Award
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /awards [post]
func (h *AwardHandler) CreateAward(c *fiber.Ctx) error {
	var input services.AwardInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	award, err := services.CreateAward(c.UserContext(), h.DB, input)
	if errors.Is(err, services.ErrNotFound) {
		return utils.NotFoundResponse(c, notFoundMessage("Song", input.SongID.Uint64()))
	}
	if err != nil {
		return serverError(c, h.Log, err, "createAward")
	}

	h.Log.Info("award created", "awardID", award.AwardID, "songID", award.SongID)
	return c.Status(fiber.StatusCreated).JSON(award)
}

// UpdateAward handles PUT /api/awards/:id
// @Summary Change an award's name and year
// @Tags Awards
// @Accept json
// @Produce json
// @Param id path int true "Award ID"
// @Param body body services.AwardUpdateInput true "Award"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /awards/{id} [put]
func (h *AwardHandler) UpdateAward(c *fiber.Ctx) error {
	awardID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var input services.AwardUpdateInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	updated, err := services.UpdateAward(c.UserContext(), h.DB, awardID, input)
	if err != nil {
		return serverError(c, h.Log, err, "updateAward")
	}
	if !updated {
		return utils.NotFoundResponse(c, notFoundMessage("Award", awardID))
	}

	return utils.MessageResponse(c, "Award updated")
}

// DeleteAward handles DELETE /api/awards/:id
// @Summary Delete an award
// @Tags Awards
// @Produce json
// @Param id path int true "Award ID"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /awards/{id} [delete]
func (h *AwardHandler) DeleteAward(c *fiber.Ctx) error {
	awardID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	deleted, err := services.DeleteAward(c.UserContext(), h.DB, awardID)
	if err != nil {
		return serverError(c, h.Log, err, "deleteAward")
	}
	if !deleted {
		return utils.NotFoundResponse(c, notFoundMessage("Award", awardID))
	}

	return utils.MessageResponse(c, "Award deleted")
}
