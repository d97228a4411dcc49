package models

type Artist struct {
	ID   int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"not null;size:200"`

	State RecordState `json:"-" gorm:"-"`
}

func (Artist) TableName() string {
	return "artists"
}
