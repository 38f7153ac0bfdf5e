// song_details.go
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

// SongDetailsRow is one row of the song details join: the song's own columns plus
// at most one genre, artist and award. A LEFT JOIN leaves a slot's columns NULL when
// the song has nothing of that kind, so every related column is a pointer and slot
// presence is decided by the related primary key alone.
type SongDetailsRow struct {
	SongID          uint64 `gorm:"column:song_id"`
	SongTitle       string `gorm:"column:song_title"`
	SongDuration    int    `gorm:"column:song_duration"`
	SongReleaseDate Date   `gorm:"column:song_release_date"`

	GenreID   *uint64 `gorm:"column:genre_id"`
	GenreName *string `gorm:"column:genre_name"`

	ArtistID        *uint64 `gorm:"column:artist_id"`
	ArtistName      *string `gorm:"column:artist_name"`
	ArtistGender    *string `gorm:"column:artist_gender"`
	ArtistBirthdate *Date   `gorm:"column:artist_birthdate"`

	AwardID   *uint64 `gorm:"column:award_id"`
	AwardName *string `gorm:"column:award_name"`
	AwardYear *int    `gorm:"column:award_year"`
}

// Song returns the scalar song carried by the row, with no related entities
func (r SongDetailsRow) Song() Song {
	return Song{
		SongID:          r.SongID,
		SongTitle:       r.SongTitle,
		SongDuration:    r.SongDuration,
		SongReleaseDate: r.SongReleaseDate,
	}
}

// Genre returns the row's genre slot, and false if the slot is empty
func (r SongDetailsRow) Genre() (Genre, bool) {
	if r.GenreID == nil {
		return Genre{}, false
	}
	return Genre{
		GenreID:   *r.GenreID,
		GenreName: deref(r.GenreName),
	}, true
}

// Artist returns the row's artist slot, and false if the slot is empty
func (r SongDetailsRow) Artist() (Artist, bool) {
	if r.ArtistID == nil {
		return Artist{}, false
	}
	artist := Artist{
		ArtistID:     *r.ArtistID,
		ArtistName:   deref(r.ArtistName),
		ArtistGender: deref(r.ArtistGender),
	}
	if r.ArtistBirthdate != nil {
		artist.ArtistBirthdate = *r.ArtistBirthdate
	}
	return artist, true
}

// Award returns the row's award slot, and false if the slot is empty
func (r SongDetailsRow) Award() (Award, bool) {
	if r.AwardID == nil {
		return Award{}, false
	}
	award := Award{
		AwardID:   *r.AwardID,
		AwardName: deref(r.AwardName),
		SongID:    r.SongID,
	}
	if r.AwardYear != nil {
		award.AwardYear = *r.AwardYear
	}
	return award, true
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
