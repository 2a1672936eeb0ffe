package gorm

import "time"

// Airport is a directory record with geographic coordinates
type Airport struct {
	ID        string    `gorm:"column:id;primaryKey;type:uuid"`
	Code      string    `gorm:"column:code;type:varchar(4);not null;uniqueIndex"`
	City      string    `gorm:"column:city;type:varchar(100);not null"`
	Country   string    `gorm:"column:country;type:varchar(100)"`
	Latitude  float64   `gorm:"column:latitude;type:numeric(10,6);not null"`
	Longitude float64   `gorm:"column:longitude;type:numeric(10,6);not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName specifies the table name for GORM
func (Airport) TableName() string {
	return "airports"
}
