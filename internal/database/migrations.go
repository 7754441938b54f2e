package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/skillradar/skillradar/internal/models"
	"github.com/skillradar/skillradar/pkg/crypto"
)

// AutoMigrate creates or updates the database schema for all models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.Permission{},
		&models.Position{},
		&models.AbilityDimension{},
		&models.Rank{},
		&models.Department{},
		&models.Employee{},
		&models.AuditLog{},
	)
}

// SeedData populates the permission catalog, default roles, the F/E rank
// ladder and a bootstrap administrator account.
func SeedData(db *gorm.DB) error {
	if err := seedPermissions(db); err != nil {
		return err
	}
	if err := seedRoles(db); err != nil {
		return err
	}
	if err := seedRanks(db); err != nil {
		return err
	}
	return seedAdminUser(db)
}

func seedPermissions(db *gorm.DB) error {
	catalog := []models.Permission{
		{BaseModel: models.BaseModel{ID: "page-dashboard"}, Name: "dashboard:view", Type: models.PermissionTypePage, Path: "/dashboard", Description: "Dashboard page"},
		{BaseModel: models.BaseModel{ID: "page-position"}, Name: "position:view", Type: models.PermissionTypePage, Path: "/positions", Description: "Position management page"},
		{BaseModel: models.BaseModel{ID: "page-rank"}, Name: "rank:view", Type: models.PermissionTypePage, Path: "/ranks", Description: "Rank management page"},
		{BaseModel: models.BaseModel{ID: "page-user"}, Name: "user:view", Type: models.PermissionTypePage, Path: "/users", Description: "User management page"},
		{BaseModel: models.BaseModel{ID: "page-role"}, Name: "role:view", Type: models.PermissionTypePage, Path: "/roles", Description: "Role management page"},
		{BaseModel: models.BaseModel{ID: "page-department"}, Name: "department:view", Type: models.PermissionTypePage, Path: "/departments", Description: "Department management page"},
		{BaseModel: models.BaseModel{ID: "page-ability"}, Name: "ability:view", Type: models.PermissionTypePage, Path: "/ability", Description: "My ability profile page"},

		{BaseModel: models.BaseModel{ID: "act-position-create"}, Name: "position:create", Type: models.PermissionTypeAction, Description: "Create positions"},
		{BaseModel: models.BaseModel{ID: "act-position-update"}, Name: "position:update", Type: models.PermissionTypeAction, Description: "Update positions"},
		{BaseModel: models.BaseModel{ID: "act-position-delete"}, Name: "position:delete", Type: models.PermissionTypeAction, Description: "Delete positions"},
		{BaseModel: models.BaseModel{ID: "act-rank-manage"}, Name: "rank:manage", Type: models.PermissionTypeAction, Description: "Manage ranks"},
		{BaseModel: models.BaseModel{ID: "act-user-create"}, Name: "user:create", Type: models.PermissionTypeAction, Description: "Create users"},
		{BaseModel: models.BaseModel{ID: "act-user-update"}, Name: "user:update", Type: models.PermissionTypeAction, Description: "Update users"},
		{BaseModel: models.BaseModel{ID: "act-user-delete"}, Name: "user:delete", Type: models.PermissionTypeAction, Description: "Delete users"},
		{BaseModel: models.BaseModel{ID: "act-user-score"}, Name: "user:score", Type: models.PermissionTypeAction, Description: "Update user ability scores"},
		{BaseModel: models.BaseModel{ID: "act-role-manage"}, Name: "role:manage", Type: models.PermissionTypeAction, Description: "Manage roles and permissions"},
		{BaseModel: models.BaseModel{ID: "act-department-manage"}, Name: "department:manage", Type: models.PermissionTypeAction, Description: "Manage departments and membership"},
	}

	for _, perm := range catalog {
		if err := db.Where(models.Permission{Name: perm.Name}).Attrs(perm).FirstOrCreate(&models.Permission{}).Error; err != nil {
			return fmt.Errorf("seed permission %s: %w", perm.Name, err)
		}
	}
	return nil
}

func seedRoles(db *gorm.DB) error {
	roles := []models.Role{
		{BaseModel: models.BaseModel{ID: "admin"}, Name: "admin", Description: "Full system access"},
		{BaseModel: models.BaseModel{ID: "hr"}, Name: "hr", Description: "HR operations"},
		{BaseModel: models.BaseModel{ID: "employee"}, Name: "employee", Description: "Self-service access"},
	}

	for _, role := range roles {
		if err := db.Where(models.Role{Name: role.Name}).Attrs(role).FirstOrCreate(&models.Role{}).Error; err != nil {
			return fmt.Errorf("seed role %s: %w", role.Name, err)
		}
	}

	// admin carries the full catalog; employee only the self-service page
	var admin models.Role
	if err := db.First(&admin, "id = ?", "admin").Error; err != nil {
		return err
	}
	var all []models.Permission
	if err := db.Find(&all).Error; err != nil {
		return err
	}
	if err := db.Model(&admin).Association("Permissions").Replace(toPermissionRefs(all)...); err != nil {
		return fmt.Errorf("seed admin permissions: %w", err)
	}

	var employee models.Role
	if err := db.First(&employee, "id = ?", "employee").Error; err != nil {
		return err
	}
	var selfService []models.Permission
	if err := db.Where("name IN ?", []string{"dashboard:view", "ability:view"}).Find(&selfService).Error; err != nil {
		return err
	}
	if err := db.Model(&employee).Association("Permissions").Replace(toPermissionRefs(selfService)...); err != nil {
		return fmt.Errorf("seed employee permissions: %w", err)
	}

	return nil
}

func toPermissionRefs(perms []models.Permission) []any {
	refs := make([]any, len(perms))
	for i := range perms {
		refs[i] = &perms[i]
	}
	return refs
}

func seedRanks(db *gorm.DB) error {
	ranks := []models.Rank{
		{Category: models.RankCategoryFoundational, Level: "F1", Name: "初级工程师", Years: "0-2年"},
		{Category: models.RankCategoryFoundational, Level: "F2", Name: "中级工程师", Years: "2-5年"},
		{Category: models.RankCategoryFoundational, Level: "F3", Name: "高级工程师", Years: "5-8年"},
		{Category: models.RankCategoryExpert, Level: "E1", Name: "资深工程师", Years: "8-10年"},
		{Category: models.RankCategoryExpert, Level: "E2", Name: "专家工程师", Years: "10-12年"},
		{Category: models.RankCategoryExpert, Level: "E3", Name: "首席工程师", Years: "12年以上"},
	}

	for _, rank := range ranks {
		if err := db.Where(models.Rank{Category: rank.Category, Level: rank.Level}).
			Attrs(rank).FirstOrCreate(&models.Rank{}).Error; err != nil {
			return fmt.Errorf("seed rank %s: %w", rank.Level, err)
		}
	}
	return nil
}

func seedAdminUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Where("username = ?", "admin").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := crypto.HashPassword("admin123")
	if err != nil {
		return fmt.Errorf("hash bootstrap password: %w", err)
	}

	admin := models.User{
		Username: "admin",
		Password: hashed,
		Name:     "系统管理员",
		Email:    "admin@example.com",
		RoleID:   "admin",
		IsActive: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}
	return nil
}
