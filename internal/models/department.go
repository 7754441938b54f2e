package models

// Department groups users; membership lives on User.DepartmentID and must be
// cleared explicitly before a department row is removed.
type Department struct {
	BaseModel

	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	ManagerID   *string `gorm:"type:uuid" json:"managerId"`

	Members []User `gorm:"foreignKey:DepartmentID" json:"members,omitempty"`
}
