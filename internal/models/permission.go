package models

// Permission types distinguish view access from mutation access.
const (
	PermissionTypePage   = "page"
	PermissionTypeAction = "action"
)

// Permission is an atomic grant aggregated into roles. Names follow the
// resource:action convention (e.g. "user:create").
type Permission struct {
	BaseModel

	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Description string `json:"description"`
	Type        string `gorm:"not null;index" json:"type"`
	Path        string `json:"path"`

	Roles []Role `gorm:"many2many:role_permissions;" json:"roles,omitempty"`
}
