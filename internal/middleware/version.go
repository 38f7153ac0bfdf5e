// version.go
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
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/songcatalog/internal/types"
)

// APIVersion is the version of the catalog API this server implements
const APIVersion = "1.0.0"

// VersionMiddleware parses the X-Api-Version header, stores it in context as
// "apiVersion" and echoes the served version on the response.
// Requests for a major version other than ours are rejected.
func VersionMiddleware() fiber.Handler {
	major := strings.SplitN(APIVersion, ".", 2)[0]

	return func(c *fiber.Ctx) error {
		version := c.Get("X-Api-Version", APIVersion)

		switch version {
		case "1", "1.0":
			version = APIVersion
		}

		if strings.SplitN(version, ".", 2)[0] != major {
			return types.NewCustomError(fiber.StatusBadRequest, "version",
				"Unsupported API version %q, this server implements %s", version, APIVersion)
		}

		c.Locals("apiVersion", version)
		c.Set("X-Api-Version", APIVersion)

		return c.Next()
	}
}
