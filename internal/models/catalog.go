// catalog.go
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
	"time"
)

// Song is a single catalog song. Genres, Artists and Awards are derived by the
// song details query and are never written with the song row.
type Song struct {
	SongID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	SongTitle       string    `gorm:"size:50;not null" json:"title"`
	SongDuration    int       `gorm:"not null" json:"duration"`
	SongReleaseDate Date      `gorm:"not null" json:"releaseDate"`
	CreatedAt       time.Time `json:"-"`
	UpdatedAt       time.Time `json:"-"`
	Genres          []Genre   `gorm:"-" json:"-"`
	Artists         []Artist  `gorm:"-" json:"-"`
	Awards          []Award   `gorm:"-" json:"-"`
}

// Artist represents a performing artist
type Artist struct {
	ArtistID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	ArtistName      string    `gorm:"size:50;not null" json:"name"`
	ArtistGender    string    `gorm:"size:20" json:"gender"`
	ArtistBirthdate Date      `json:"birthdate"`
	CreatedAt       time.Time `json:"-"`
	UpdatedAt       time.Time `json:"-"`
}

// Genre names are unique across the catalog
type Genre struct {
	GenreID   uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	GenreName string    `gorm:"uniqueIndex;size:50;not null" json:"name"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// Award belongs to exactly one song
type Award struct {
	AwardID   uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	AwardName string    `gorm:"size:50;not null" json:"name"`
	AwardYear int       `gorm:"not null" json:"year"`
	SongID    uint64    `gorm:"not null;index" json:"songId"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName overrides the table name for Song
func (Song) TableName() string {
	return "songs"
}

// TableName overrides the table name for Artist
func (Artist) TableName() string {
	return "artists"
}

// TableName overrides the table name for Genre
func (Genre) TableName() string {
	return "genres"
}

// TableName overrides the table name for Award
func (Award) TableName() string {
	return "awards"
}
