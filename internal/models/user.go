package models

import "gorm.io/datatypes"

// AbilityScores is the five-axis self-service score record rendered as a radar
// chart by the frontend. A nil record reads as all zeroes.
type AbilityScores struct {
	Tech          int `json:"tech"`
	Engineering   int `json:"engineering"`
	UIUX          int `json:"uiux"`
	Communication int `json:"communication"`
	Problem       int `json:"problem"`
}

// User describes a platform account together with its HR profile fields.
type User struct {
	BaseModel

	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`
	Name     string `json:"name"`
	Email    string `json:"email"`

	RoleID string `gorm:"type:uuid;index" json:"roleId"`
	Role   *Role  `json:"role,omitempty"`

	// Permissions is a legacy denormalized copy written empty at creation and
	// never re-synced; the role's permission set is authoritative.
	Permissions datatypes.JSONSlice[string] `json:"permissions"`

	PositionID *string   `gorm:"type:uuid;index" json:"positionId"`
	Position   *Position `json:"position,omitempty"`

	DepartmentID *string     `gorm:"type:uuid;index" json:"departmentId"`
	Department   *Department `json:"department,omitempty"`

	Rank string `json:"rank"`

	AbilityScores *AbilityScores `gorm:"serializer:json" json:"abilityScores"`

	IsActive bool `gorm:"default:true" json:"isActive"`
}

// EffectivePermissions resolves permission names from the loaded role relation.
func (u *User) EffectivePermissions() []string {
	if u.Role == nil {
		return []string(u.Permissions)
	}

	names := make([]string, 0, len(u.Role.Permissions))
	for _, p := range u.Role.Permissions {
		names = append(names, p.Name)
	}
	return names
}

// RoleName returns the role display name with the source system's fallback.
func (u *User) RoleName() string {
	if u.Role == nil || u.Role.Name == "" {
		return "employee"
	}
	return u.Role.Name
}
