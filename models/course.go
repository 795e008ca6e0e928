package models

import "time"

type Course struct {
	ID            uint      `gorm:"primaryKey"                   json:"id"`
	Name          string    `gorm:"size:50;uniqueIndex;not null" json:"name"` // canonical, e.g. "B.Tech"
	Code          string    `gorm:"size:20;not null"             json:"code"`
	DurationYears int       `gorm:"not null;default:4"           json:"duration_years"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Branch struct {
	ID        uint      `gorm:"primaryKey"       json:"id"`
	Name      string    `gorm:"size:50;not null" json:"name"`
	Code      string    `gorm:"size:20;not null" json:"code"`
	CourseID  uint      `gorm:"not null"         json:"course_id"` // FK -> courses.id (linked in code, no DB constraint)
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
