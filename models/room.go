package models

import "time"

type Room struct {
	ID         uint      `gorm:"primaryKey"                   json:"id"`
	RoomNumber string    `gorm:"size:10;uniqueIndex;not null" json:"room_number"`
	Gender     string    `gorm:"size:10;not null"             json:"gender"`   // Male|Female - exclusive per room
	Category   string    `gorm:"size:5;not null"              json:"category"` // A+|A|B+|B|C
	BedCount   int       `gorm:"not null;default:4"           json:"bed_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
