package models

// Position statuses.
const (
	PositionStatusActive   = "active"
	PositionStatusInactive = "inactive"
)

// Position is a job position with its ability-dimension standards.
// Dimensions is a declared display hint and may diverge from the actual
// number of AbilityDimension rows.
type Position struct {
	BaseModel

	Code       string `gorm:"uniqueIndex;not null" json:"code"`
	Name       string `gorm:"not null" json:"name"`
	Dimensions int    `json:"dimensions"`
	Ranks      string `json:"ranks"`
	Status     string `gorm:"default:active" json:"status"`

	AbilityDimensions []AbilityDimension `gorm:"foreignKey:PositionID" json:"abilityDimensions,omitempty"`
}
