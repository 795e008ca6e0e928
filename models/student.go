package models

import "time"

type Student struct {
	ID           uint      `gorm:"primaryKey"                   json:"id"`
	Name         string    `gorm:"size:100;not null"            json:"name"`
	RollNumber   string    `gorm:"size:30;uniqueIndex;not null" json:"roll_number"`
	Gender       string    `gorm:"size:10;not null"             json:"gender"` // Male|Female (canonical)
	Course       string    `gorm:"size:50;not null"             json:"course"`
	Branch       string    `gorm:"size:50;not null"             json:"branch"`
	Year         int       `gorm:"default:0"                    json:"year,omitempty"` // 0 = unset
	Category     string    `gorm:"size:5;not null"              json:"category"`       // A+|A|B+|B|C
	RoomNumber   string    `gorm:"size:10;not null"             json:"room_number"`
	BedNumber    string    `gorm:"size:5"                       json:"bed_number,omitempty"`
	LockerNumber string    `gorm:"size:5"                       json:"locker_number,omitempty"`
	StudentPhone string    `gorm:"size:15"                      json:"student_phone,omitempty"`
	ParentPhone  string    `gorm:"size:15;not null"             json:"parent_phone"`
	Email        string    `gorm:"size:100"                     json:"email,omitempty"`
	BatchStart   int       `gorm:"not null"                     json:"batch_start"`
	BatchEnd     int       `gorm:"default:0"                    json:"batch_end,omitempty"` // 0 = entered as bare year
	AcademicYear string    `gorm:"size:9;not null"              json:"academic_year"`       // "YYYY-YYYY"
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
