// auth.go
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

package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/songcatalog/internal/types"
)

// SessionValidator checks a session cookie against a set of roles
type SessionValidator func(cookie string, roles []string) (map[string]interface{}, error)

// AuthAdmin validates that the request has admin role authorization
func AuthAdmin(validate SessionValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return authorize(c, validate, []string{"admin"}, "authorization.admin")
	}
}

func authorize(c *fiber.Ctx, validate SessionValidator, roles []string, errorType string) error {
	session := c.Cookies("cookie_session")
	if session == "" {
		return types.NewCustomError(fiber.StatusForbidden, errorType,
			"Authorizer cookie %q not found", "cookie_session")
	}

	data, err := validate(session, roles)
	if err != nil {
		return types.NewCustomError(fiber.StatusForbidden, errorType, "Invalid session: %v", err)
	}

	if user, ok := data["user"]; ok {
		c.Locals("user", user)
	}

	return c.Next()
}
