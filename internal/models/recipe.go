package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// StringList is an ordered list of strings stored as a JSON array.
type StringList []string

// Value implements the driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface
func (l *StringList) Scan(value interface{}) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		*l = StringList{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for StringList", value)
	}
	return json.Unmarshal(raw, l)
}

// GormDBDataType stores the list as jsonb on postgres and text elsewhere.
func (StringList) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "jsonb"
	}
	return "text"
}

// Recipe is a read-only catalog recipe, seeded once.
type Recipe struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	Name        string     `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Description string     `gorm:"type:text;not null" json:"description"`
	Ingredients StringList `gorm:"not null" json:"ingredients"`
	CookingTime string     `gorm:"size:50;not null" json:"cooking_time"`
	Difficulty  string     `gorm:"size:20;not null" json:"difficulty"`
	ImageURL    string     `gorm:"size:200" json:"image_url"`
	CreatedAt   time.Time  `json:"created_at"`
}
