package models

// explicit join model to match the migration (has its own id): one credit
// record linking a comic book, an artist, and the role the artist filled
type ComicBookArtist struct {
	ID          int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	ComicBookID int64 `json:"comic_book_id" gorm:"index;not null"`
	ArtistID    int64 `json:"artist_id" gorm:"index;not null"`
	RoleID      int64 `json:"role_id" gorm:"index;not null"`

	// associations
	Artist *Artist `json:"artist,omitempty" gorm:"foreignKey:ArtistID"`
	Role   *Role   `json:"role,omitempty" gorm:"foreignKey:RoleID"`
}

func (ComicBookArtist) TableName() string {
	return "comic_book_artists"
}
