package models

// Employee is a legacy table kept for data compatibility. No active flow
// reads or writes it; per-user scores live on User.AbilityScores instead.
type Employee struct {
	BaseModel

	Name       string         `gorm:"not null" json:"name"`
	PositionID string         `gorm:"type:uuid;index" json:"positionId"`
	Position   *Position      `json:"position,omitempty"`
	Rank       string         `json:"rank"`
	Scores     *AbilityScores `gorm:"serializer:json" json:"scores"`
}
