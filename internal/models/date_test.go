// date_test.go
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

package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "2017-01-06", want: "2017-01-06"},
		{in: "1-6-2017", want: "2017-01-06"},
		{in: "12-31-1999", want: "1999-12-31"},
		{in: " 2020-02-29 ", want: "2020-02-29"},
		{in: "2019-02-29", wantErr: true},
		{in: "06/01/2017", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, err := ParseDate(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.String())
		})
	}
}

func TestDateJSON(t *testing.T) {
	var body struct {
		ReleaseDate Date `json:"releaseDate"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"releaseDate":"3-4-2001"}`), &body))
	assert.Equal(t, "2001-03-04", body.ReleaseDate.String())

	out, err := json.Marshal(body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"releaseDate":"2001-03-04"}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"releaseDate":20010304}`), &body))
	assert.Error(t, json.Unmarshal([]byte(`{"releaseDate":"not a date"}`), &body))
}

func TestDateZeroAndTruncation(t *testing.T) {
	var d Date
	assert.True(t, d.IsZero())

	d = NewDate(time.Date(2010, 5, 6, 23, 59, 0, 0, time.FixedZone("x", 3600)))
	assert.False(t, d.IsZero())
	assert.Equal(t, "2010-05-06", d.String())
	assert.Equal(t, 0, d.Time().Hour())
}

func TestDateScanValue(t *testing.T) {
	d := NewDate(time.Date(2001, 3, 4, 0, 0, 0, 0, time.UTC))

	v, err := d.Value()
	require.NoError(t, err)

	var scanned Date
	require.NoError(t, scanned.Scan(v))
	assert.Equal(t, d.String(), scanned.String())
}
