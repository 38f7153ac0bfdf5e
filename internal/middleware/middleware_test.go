// middleware_test.go
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
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/songcatalog/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(handlers ...fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var ce *types.CustomError
			if errors.As(err, &ce) {
				return c.Status(ce.Code).SendString(ce.Type)
			}
			return c.SendStatus(fiber.StatusInternalServerError)
		},
	})
	handlers = append(handlers, func(c *fiber.Ctx) error {
		if user := c.Locals("user"); user != nil {
			return c.SendString(user.(string))
		}
		if v := c.Locals("apiVersion"); v != nil {
			return c.SendString(v.(string))
		}
		return c.SendStatus(fiber.StatusOK)
	})
	app.Put("/", handlers...)
	return app
}

func TestAuthAdmin(t *testing.T) {
	var gotRoles []string
	validate := func(cookie string, roles []string) (map[string]interface{}, error) {
		gotRoles = roles
		if cookie != "good" {
			return nil, errors.New("session is not valid")
		}
		return map[string]interface{}{"is_valid": true, "user": "admin@example.com"}, nil
	}
	app := newTestApp(AuthAdmin(validate))

	t.Run("missing cookie", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("PUT", "/", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("invalid session", func(t *testing.T) {
		req := httptest.NewRequest("PUT", "/", nil)
		req.Header.Set("Cookie", "cookie_session=bad")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("valid admin session", func(t *testing.T) {
		req := httptest.NewRequest("PUT", "/", nil)
		req.Header.Set("Cookie", "cookie_session=good")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, []string{"admin"}, gotRoles)
	})
}

func TestVersionMiddleware(t *testing.T) {
	app := newTestApp(VersionMiddleware())

	tests := []struct {
		header string
		status int
	}{
		{"", fiber.StatusOK},
		{"1", fiber.StatusOK},
		{"1.0", fiber.StatusOK},
		{"1.2.0", fiber.StatusOK},
		{"2.0.0", fiber.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run("version "+tt.header, func(t *testing.T) {
			req := httptest.NewRequest("PUT", "/", nil)
			if tt.header != "" {
				req.Header.Set("X-Api-Version", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
			if tt.status == fiber.StatusOK {
				assert.Equal(t, APIVersion, resp.Header.Get("X-Api-Version"))
			}
		})
	}
}
