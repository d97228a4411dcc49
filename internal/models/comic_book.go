package models

type ComicBook struct {
	ID          int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	IssueNumber int   `json:"issue_number" gorm:"not null"`
	SeriesID    int64 `json:"series_id" gorm:"index;not null"`

	// associations
	Series  *Series          `json:"series,omitempty" gorm:"foreignKey:SeriesID"`
	Credits []ComicBookArtist `json:"credits,omitempty" gorm:"foreignKey:ComicBookID;constraint:OnDelete:CASCADE;"`
}

func (ComicBook) TableName() string {
	return "comic_books"
}
