package models

// Role is the capacity an artist worked in on an issue, e.g. "Writer" or
// "Penciller".
type Role struct {
	ID   int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"not null;size:100"`

	State RecordState `json:"-" gorm:"-"`
}

func (Role) TableName() string {
	return "roles"
}
