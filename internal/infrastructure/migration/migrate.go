// Package migration runs the idempotent schema migration and seed step. It is
// executed once at startup (and again on demand from the admin console); every
// part of it is safe to repeat.
package migration

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/agewithcare/policyhub/internal/domain/document"
	"github.com/agewithcare/policyhub/internal/domain/permission"
	"github.com/agewithcare/policyhub/internal/domain/user"
	"github.com/agewithcare/policyhub/internal/domain/user/valueobjects"
	"github.com/agewithcare/policyhub/internal/infrastructure/persistence/models"
	sharedConfig "github.com/agewithcare/policyhub/internal/shared/config"
	"github.com/agewithcare/policyhub/internal/shared/logger"
)

// AllModels lists every persistence model in automigrate order.
func AllModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.RoleModel{},
		&models.UserRoleModel{},
		&models.SessionModel{},
		&models.CategoryModel{},
		&models.TagModel{},
		&models.BusinessUnitModel{},
		&models.DocumentModel{},
		&models.DocumentVersionModel{},
		&models.DocumentTagModel{},
		&models.AuditLogModel{},
		&models.BookmarkModel{},
	}
}

var seededRoles = []struct {
	name        string
	slug        string
	description string
}{
	{"Reader", permission.RoleReader, "Read-only access to published documents"},
	{"Contributor", permission.RoleContributor, "Can create and edit draft documents"},
	{"Approver", permission.RoleApprover, "Can approve and publish documents"},
	{"Administrator", permission.RoleAdministrator, "Full document and user administration"},
	{"System Owner", permission.RoleSystemOwner, "Unrestricted access"},
}

var seededCategories = []string{
	"Clinical Care",
	"Governance",
	"Human Resources",
	"Work Health and Safety",
	"Quality and Compliance",
}

// Run migrates the schema and seeds roles, root categories and the bootstrap
// administrator account.
func Run(db *gorm.DB, bootstrap sharedConfig.BootstrapConfig, hasher user.PasswordHasher, log logger.Interface) error {
	if err := db.AutoMigrate(AllModels()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	if err := seedRoles(db); err != nil {
		return err
	}
	if err := seedCategories(db); err != nil {
		return err
	}
	if err := seedAdmin(db, bootstrap, hasher, log); err != nil {
		return err
	}

	log.Infow("migration completed")
	return nil
}

func seedRoles(db *gorm.DB) error {
	for _, seed := range seededRoles {
		var count int64
		if err := db.Model(&models.RoleModel{}).Where("slug = ?", seed.slug).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check role %s: %w", seed.slug, err)
		}
		if count > 0 {
			continue
		}

		perms, err := json.Marshal(permission.SeededRolePermissions[seed.slug])
		if err != nil {
			return fmt.Errorf("failed to encode permissions for role %s: %w", seed.slug, err)
		}
		model := &models.RoleModel{
			Name:        seed.name,
			Slug:        seed.slug,
			Description: seed.description,
			Permissions: datatypes.JSON(perms),
			IsSystem:    true,
		}
		if err := db.Create(model).Error; err != nil {
			return fmt.Errorf("failed to seed role %s: %w", seed.slug, err)
		}
	}
	return nil
}

func seedCategories(db *gorm.DB) error {
	for i, name := range seededCategories {
		slug := document.Slugify(name)

		var count int64
		if err := db.Model(&models.CategoryModel{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check category %s: %w", slug, err)
		}
		if count > 0 {
			continue
		}

		model := &models.CategoryModel{Name: name, Slug: slug, SortOrder: i}
		if err := db.Create(model).Error; err != nil {
			return fmt.Errorf("failed to seed category %s: %w", slug, err)
		}
	}
	return nil
}

func seedAdmin(db *gorm.DB, bootstrap sharedConfig.BootstrapConfig, hasher user.PasswordHasher, log logger.Interface) error {
	if bootstrap.AdminEmail == "" || bootstrap.AdminPassword == "" {
		log.Debugw("bootstrap admin seeding skipped", "reason", "no credentials configured")
		return nil
	}

	var count int64
	if err := db.Model(&models.UserModel{}).Where("email = ?", bootstrap.AdminEmail).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check bootstrap admin: %w", err)
	}
	if count > 0 {
		return nil
	}

	email, err := valueobjects.NewEmail(bootstrap.AdminEmail)
	if err != nil {
		return fmt.Errorf("invalid bootstrap admin email: %w", err)
	}
	admin, err := user.NewUser(email, bootstrap.AdminName)
	if err != nil {
		return fmt.Errorf("failed to build bootstrap admin: %w", err)
	}
	if err := admin.SetPassword(bootstrap.AdminPassword, hasher); err != nil {
		return fmt.Errorf("failed to set bootstrap admin password: %w", err)
	}

	model := &models.UserModel{
		Email:        admin.Email().String(),
		Name:         admin.Name(),
		PasswordHash: admin.PasswordHash(),
		Status:       admin.Status().String(),
		CreatedAt:    admin.CreatedAt(),
		UpdatedAt:    admin.UpdatedAt(),
	}
	if err := db.Create(model).Error; err != nil {
		return fmt.Errorf("failed to seed bootstrap admin: %w", err)
	}

	var role models.RoleModel
	if err := db.Where("slug = ?", permission.RoleSystemOwner).First(&role).Error; err != nil {
		return fmt.Errorf("failed to load system owner role: %w", err)
	}
	assignment := &models.UserRoleModel{
		UserID:     model.ID,
		RoleID:     role.ID,
		AssignedAt: model.CreatedAt,
		AssignedBy: model.ID,
	}
	if err := db.Create(assignment).Error; err != nil {
		return fmt.Errorf("failed to assign bootstrap admin role: %w", err)
	}

	log.Infow("bootstrap admin seeded", "email", bootstrap.AdminEmail)
	return nil
}
