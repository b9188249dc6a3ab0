package engine

import (
	"database/sql"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// PlayerProfile stores the user's progression state.
type PlayerProfile struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time `gorm:"index"`

	Username string `gorm:"uniqueIndex"`
	Title    string `gorm:"default:'Novice Scribe'"`

	Level   int `gorm:"default:1"`
	TotalXP int `gorm:"default:0"`

	CurrentStreak  int `gorm:"default:0"`
	LongestStreak  int `gorm:"default:0"`
	LastActiveDate sql.NullTime
}

// loadOrCreateProfile fetches the profile for username, creating a fresh
// one on first use.
func loadOrCreateProfile(db *gorm.DB, username string) (*PlayerProfile, error) {
	profile := &PlayerProfile{}
	result := db.Where("username = ?", username).First(profile)
	if result.Error == gorm.ErrRecordNotFound {
		profile = &PlayerProfile{
			Username: username,
			Title:    TitleForLevel(1),
			Level:    1,
		}
		if err := db.Create(profile).Error; err != nil {
			return nil, fmt.Errorf("creating player profile: %w", err)
		}
		return profile, nil
	}
	if result.Error != nil {
		return nil, fmt.Errorf("loading player profile: %w", result.Error)
	}
	return profile, nil
}
