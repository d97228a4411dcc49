package models

type Series struct {
	ID    int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Title string `json:"title" gorm:"not null;size:200"`

	// association
	ComicBooks []ComicBook `json:"comic_books,omitempty" gorm:"foreignKey:SeriesID"`

	// persistence tag for write-path reconciliation, never stored
	State RecordState `json:"-" gorm:"-"`
}

func (Series) TableName() string {
	return "series"
}
