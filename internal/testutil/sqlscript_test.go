// sqlscript_test.go
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

package testutil

import (
	"testing"

	"github.com/localnerve/songcatalog/data"
	"github.com/stretchr/testify/assert"
)

func TestSplitStatements(t *testing.T) {
	script := `-- leading comment
CREATE TABLE a (id INT); -- trailing comment
INSERT INTO a VALUES ('x;y'); INSERT INTO a VALUES ("--not a comment");
SELECT 1`

	assert.Equal(t, []string{
		"CREATE TABLE a (id INT)",
		"INSERT INTO a VALUES ('x;y')",
		`INSERT INTO a VALUES ("--not a comment")`,
		"SELECT 1",
	}, SplitStatements(script))
}

func TestSplitStatementsEmbeddedScripts(t *testing.T) {
	tables := SplitStatements(data.InitdbMariaDBTables)
	assert.Len(t, tables, 6)
	for _, stmt := range tables {
		assert.Contains(t, stmt, "CREATE TABLE IF NOT EXISTS")
	}

	privileges := SplitStatements(data.InitdbMariaDBPrivileges)
	assert.Len(t, privileges, 2)
	assert.Contains(t, privileges[0], "${DB_DATABASE}")
}
