package models

import "gorm.io/datatypes"

// AbilityDimension is a named, scored skill axis tied to a position.
// Scores maps rank level codes (F1..F3, E1..E3) to 0-100 standards.
type AbilityDimension struct {
	BaseModel

	Code        string                             `gorm:"uniqueIndex;not null" json:"code"`
	Title       string                             `gorm:"not null" json:"title"`
	Description string                             `json:"description"`
	Scores      datatypes.JSONType[map[string]int] `json:"scores"`
	PositionID  string                             `gorm:"type:uuid;index;not null" json:"positionId"`
}
