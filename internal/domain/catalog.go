package domain

type Brand struct {
	ID          int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string  `json:"name" gorm:"not null"`
	Description *string `json:"description" gorm:"type:text"`
}

type Category struct {
	ID          int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string  `json:"name" gorm:"not null"`
	Description *string `json:"description" gorm:"type:text"`
}
