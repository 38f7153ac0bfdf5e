// id_test.go
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

package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	id, err := ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, uint64(42), id.Uint64())

	for _, bad := range []string{"", "0", "-1", "abc", "1.5", "18446744073709551616"} {
		_, err := ParseID(bad)
		assert.Error(t, err, bad)
	}
}

func TestIDJSON(t *testing.T) {
	var body struct {
		SongID ID `json:"songId"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"songId":5}`), &body))
	assert.Equal(t, ID(5), body.SongID)

	require.NoError(t, json.Unmarshal([]byte(`{"songId":"6"}`), &body))
	assert.Equal(t, ID(6), body.SongID)

	assert.Error(t, json.Unmarshal([]byte(`{"songId":"x"}`), &body))
	assert.Error(t, json.Unmarshal([]byte(`{"songId":true}`), &body))

	out, err := json.Marshal(body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"songId":6}`, string(out))
}

func TestOneOrMany(t *testing.T) {
	type item struct {
		Name string `json:"name"`
	}

	var many OneOrMany[item]
	require.NoError(t, json.Unmarshal([]byte(` [{"name":"Pop"},{"name":"Rock"}]`), &many))
	assert.Equal(t, OneOrMany[item]{{"Pop"}, {"Rock"}}, many)

	var one OneOrMany[item]
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Jazz"}`), &one))
	assert.Equal(t, OneOrMany[item]{{"Jazz"}}, one)

	var none OneOrMany[item]
	require.NoError(t, json.Unmarshal([]byte(`null`), &none))
	assert.Empty(t, none)

	assert.Error(t, json.Unmarshal([]byte(`"Pop"`), &none))
}

func TestCustomError(t *testing.T) {
	err := NewCustomError(403, "authorization.admin", "Invalid session: %s", "expired")
	assert.Equal(t, "Invalid session: expired", err.Message)
	assert.Equal(t, "403: Invalid session: expired [type: authorization.admin]", err.Error())
}
