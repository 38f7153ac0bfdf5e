// links.go
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
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/songcatalog/internal/logger"
	"github.com/localnerve/songcatalog/internal/models"
	"github.com/localnerve/songcatalog/internal/services"
	"github.com/localnerve/songcatalog/internal/utils"
	"gorm.io/gorm"
)

// linkRequest identifies both ends of a song association request
type linkRequest struct {
	songID    uint64
	relatedID uint64
	related   string
	exists    func(ctx context.Context, db *gorm.DB, id uint64) (bool, error)
}

func artistLink(songID, artistID uint64) linkRequest {
	return linkRequest{
		songID:    songID,
		relatedID: artistID,
		related:   "Artist",
		exists: func(ctx context.Context, db *gorm.DB, id uint64) (bool, error) {
			_, err := services.GetArtist(ctx, db, id)
			return found(err)
		},
	}
}

func genreLink(songID, genreID uint64) linkRequest {
	return linkRequest{
		songID:    songID,
		relatedID: genreID,
		related:   "Genre",
		exists: func(ctx context.Context, db *gorm.DB, id uint64) (bool, error) {
			_, err := services.GetGenre(ctx, db, id)
			return found(err)
		},
	}
}

// missing returns the not found message for the first absent end, or ""
func (r linkRequest) missing(ctx context.Context, db *gorm.DB) (string, error) {
	_, ok, err := services.GetSongScalarOnly(ctx, db, r.songID)
	if err != nil {
		return "", err
	}
	if !ok {
		return notFoundMessage("Song", r.songID), nil
	}

	ok, err = r.exists(ctx, db, r.relatedID)
	if err != nil {
		return "", err
	}
	if !ok {
		return notFoundMessage(r.related, r.relatedID), nil
	}
	return "", nil
}

func (r linkRequest) describe(state string) string {
	return fmt.Sprintf("%s %d is %s song %d", r.related, r.relatedID, state, r.songID)
}

// addLink checks both ends exist and the link is absent, then adds it.
// A concurrent Add that wins between the check and ours is reported the same as an existing link.
func addLink[T models.SongLink](c *fiber.Ctx, db *gorm.DB, log *logger.Logger, links *services.LinkManager[T], r linkRequest) error {
	ctx := c.UserContext()

	msg, err := r.missing(ctx, db)
	if err != nil {
		return serverError(c, log, err, "addLink")
	}
	if msg != "" {
		return utils.NotFoundResponse(c, msg)
	}

	exists, err := links.Exists(ctx, r.songID, r.relatedID)
	if err != nil {
		return serverError(c, log, err, "addLink")
	}
	if exists {
		return utils.BadRequestResponse(c, r.describe("already linked to"))
	}

	added, err := links.Add(ctx, r.songID, r.relatedID)
	if err != nil {
		return serverError(c, log, err, "addLink")
	}
	if !added {
		return utils.BadRequestResponse(c, r.describe("already linked to"))
	}

	return utils.MessageResponse(c, r.describe("now linked to"))
}

// removeLink checks both ends exist and the link is present, then removes it
func removeLink[T models.SongLink](c *fiber.Ctx, db *gorm.DB, log *logger.Logger, links *services.LinkManager[T], r linkRequest) error {
	ctx := c.UserContext()

	msg, err := r.missing(ctx, db)
	if err != nil {
		return serverError(c, log, err, "removeLink")
	}
	if msg != "" {
		return utils.NotFoundResponse(c, msg)
	}

	exists, err := links.Exists(ctx, r.songID, r.relatedID)
	if err != nil {
		return serverError(c, log, err, "removeLink")
	}
	if !exists {
		return utils.BadRequestResponse(c, r.describe("not linked to"))
	}

	removed, err := links.Remove(ctx, r.songID, r.relatedID)
	if err != nil {
		return serverError(c, log, err, "removeLink")
	}
	if !removed {
		return utils.BadRequestResponse(c, r.describe("not linked to"))
	}

	return utils.MessageResponse(c, r.describe("no longer linked to"))
}
