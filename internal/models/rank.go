package models

import "strings"

// Rank categories: F is the foundational track, E the expert track.
const (
	RankCategoryFoundational = "F"
	RankCategoryExpert       = "E"
)

// Rank is a career level within the F or E track.
type Rank struct {
	BaseModel

	Category    string `gorm:"not null;index" json:"category"`
	Level       string `gorm:"not null" json:"level"`
	Name        string `json:"name"`
	Years       string `json:"years"`
	Description string `json:"description"`
}

// ValidRankLevel reports whether a rank level code has the known shape:
// a track category letter followed by a single level digit (e.g. "F1", "E3").
func ValidRankLevel(level string) bool {
	level = strings.TrimSpace(level)
	if len(level) != 2 {
		return false
	}
	if level[0] != 'F' && level[0] != 'E' {
		return false
	}
	return level[1] >= '1' && level[1] <= '9'
}
