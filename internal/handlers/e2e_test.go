// e2e_test.go
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

package handlers_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/localnerve/songcatalog/internal/testutil"
	"github.com/localnerve/songcatalog/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestE2EWithFullStack runs against the service image, its database and the Authorizer
func TestE2EWithFullStack(t *testing.T) {
	testutil.SkipWithoutContainers(t)
	if os.Getenv("CATALOG_IMAGE") == "" {
		t.Skip("Skipping E2E test, CATALOG_IMAGE not set")
	}

	ctx := context.Background()

	tc, err := testutil.CreateAllTestContainers(t)
	require.NoError(t, err, "failed to start test containers")
	defer tc.Terminate(t)

	if tc.CatalogContainer == nil {
		t.Skip("Skipping E2E test, service image has not been built")
	}

	host, err := tc.CatalogContainer.Host(ctx)
	require.NoError(t, err)
	port, err := tc.CatalogContainer.MappedPort(ctx, nat.Port(os.Getenv("PORT")+"/tcp"))
	require.NoError(t, err)
	baseURL := fmt.Sprintf("http://%s:%s", host, port.Port())

	client := &http.Client{Timeout: 10 * time.Second}

	t.Run("Health", func(t *testing.T) {
		resp, err := client.Get(baseURL + "/health")
		require.NoError(t, err)
		testutil.AssertStatus(t, resp, http.StatusOK)
		resp.Body.Close()
	})

	t.Run("PrometheusMetrics", func(t *testing.T) {
		resp, err := client.Get(baseURL + "/metrics")
		require.NoError(t, err)
		defer resp.Body.Close()
		testutil.AssertStatus(t, resp, http.StatusOK)
		body, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(body), "go_goroutines")
	})

	t.Run("SwaggerUI", func(t *testing.T) {
		resp, err := client.Get(baseURL + "/swagger/index.html")
		require.NoError(t, err)
		testutil.AssertStatus(t, resp, http.StatusOK)
		resp.Body.Close()
	})

	t.Run("PublicRead", func(t *testing.T) {
		resp, err := client.Get(baseURL + "/api/songs")
		require.NoError(t, err)
		resp.Body.Close()
		assert.Contains(t, []int{http.StatusOK, http.StatusNoContent}, resp.StatusCode)
	})

	if tc.AuthorizerContainer == nil {
		return
	}

	t.Run("MutationWithoutSession", func(t *testing.T) {
		resp := postGenre(t, client, baseURL, "")
		assertForbidden(t, resp)
	})

	t.Run("MutationWithoutAdminRole", func(t *testing.T) {
		authzHost, err := tc.AuthorizerContainer.Host(ctx)
		require.NoError(t, err)
		authzPort, err := tc.AuthorizerContainer.MappedPort(ctx, nat.Port(os.Getenv("AUTHZ_PORT")+"/tcp"))
		require.NoError(t, err)
		authzURL := fmt.Sprintf("http://%s:%s", authzHost, authzPort.Port())

		token := testutil.AcquireAccount(t, authzURL, os.Getenv("AUTHZ_CLIENT_ID"),
			"e2e-user@songcatalog.test", testutil.GeneratePassword(), []string{"user"})

		resp := postGenre(t, client, baseURL, token)
		assertForbidden(t, resp)
	})
}

func postGenre(t *testing.T, client *http.Client, baseURL, session string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, baseURL+"/api/genres", strings.NewReader(`{"name":"E2E"}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if session != "" {
		req.AddCookie(&http.Cookie{Name: "cookie_session", Value: session})
	}
	resp, err := client.Do(req)
	require.NoError(t, err)
	return resp
}

func assertForbidden(t *testing.T, resp *http.Response) {
	t.Helper()
	testutil.AssertStatus(t, resp, http.StatusForbidden)
	var body utils.ErrorResponseStruct
	testutil.ParseJSON(t, resp, &body)
	assert.Equal(t, "authorization.admin", body.Type)
}
