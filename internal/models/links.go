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

package models

// SongLink is a join table row relating a song to one other entity.
// The (song_id, related id) pair is the primary key, so a link exists at most once.
type SongLink interface {
	TableName() string
	RelatedColumn() string
}

// SongArtist links a song to an artist
type SongArtist struct {
	SongID   uint64 `gorm:"primaryKey;autoIncrement:false"`
	ArtistID uint64 `gorm:"primaryKey;autoIncrement:false;index"`
}

// SongGenre links a song to a genre
type SongGenre struct {
	SongID  uint64 `gorm:"primaryKey;autoIncrement:false"`
	GenreID uint64 `gorm:"primaryKey;autoIncrement:false;index"`
}

// TableName overrides the table name for SongArtist
func (SongArtist) TableName() string {
	return "songs_artists"
}

// RelatedColumn is the artist side of the link
func (SongArtist) RelatedColumn() string {
	return "artist_id"
}

// TableName overrides the table name for SongGenre
func (SongGenre) TableName() string {
	return "songs_genres"
}

// RelatedColumn is the genre side of the link
func (SongGenre) RelatedColumn() string {
	return "genre_id"
}
