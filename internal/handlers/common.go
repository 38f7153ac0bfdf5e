// common.go
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
	"github.com/localnerve/songcatalog/internal/services"
	"github.com/localnerve/songcatalog/internal/types"
	"github.com/localnerve/songcatalog/internal/utils"
)

// idParam parses a positive numeric route parameter
func idParam(c *fiber.Ctx, name string) (uint64, error) {
	id, err := types.ParseID(c.Params(name))
	if err != nil {
		return 0, types.NewCustomError(fiber.StatusBadRequest, "validation", "Invalid %s: %v", name, err)
	}
	return id.Uint64(), nil
}

// idParams parses two route parameters, for association routes
func idParams(c *fiber.Ctx, first, second string) (uint64, uint64, error) {
	a, err := idParam(c, first)
	if err != nil {
		return 0, 0, err
	}
	b, err := idParam(c, second)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

// serverError logs a storage failure and renders it as a 500
func serverError(c *fiber.Ctx, log *logger.Logger, err error, errorType string) error {
	log.Error("request failed",
		"type", errorType,
		"method", c.Method(),
		"url", c.OriginalURL(),
		"requestid", c.Locals("requestid"),
		"error", err,
	)
	return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, errorType)
}

// found converts a CRUD lookup error into presence
func found(err error) (bool, error) {
	if errors.Is(err, services.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

func notFoundMessage(entity string, id uint64) string {
	return fmt.Sprintf("%s %d not found", entity, id)
}
