package service

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pageza/ecocart/backend/internal/models"
)

// RecentActivityLimit caps how many activities ListActivities returns.
const RecentActivityLimit = 10

// ActivityService appends to and reads the per-user activity log.
type ActivityService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewActivityService creates a new ActivityService instance
func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{db: db, now: func() time.Time { return time.Now().UTC() }}
}

// ListActivities returns the user's most recent activities, newest first.
func (s *ActivityService) ListActivities(ctx context.Context, userID uint) ([]models.Activity, error) {
	var activities []models.Activity
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "timestamp"}, Desc: true}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: true}).
		Limit(RecentActivityLimit).
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

// AddActivity records an event. Only the type is required.
func (s *ActivityService) AddActivity(ctx context.Context, userID uint, activityType, description string) error {
	activityType = strings.TrimSpace(activityType)
	if activityType == "" {
		return newError(ErrValidation, "Activity type is required")
	}

	activity := models.Activity{
		UserID:       userID,
		ActivityType: activityType,
		Description:  description,
		Timestamp:    s.now(),
	}
	return s.db.WithContext(ctx).Create(&activity).Error
}
