package models

import "time"

// Activity is an append-only event in a user's history.
type Activity struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	UserID       uint      `gorm:"not null;index:idx_activities_user_time,priority:1" json:"-"`
	ActivityType string    `gorm:"size:50;not null" json:"activity_type"`
	Description  string    `gorm:"type:text" json:"description"`
	Timestamp    time.Time `gorm:"not null;index:idx_activities_user_time,priority:2" json:"timestamp"`
}
