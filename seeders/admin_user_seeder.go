package seeders

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Nduhiu17/treasure-shop-api/pkg/constants"
	"github.com/Nduhiu17/treasure-shop-api/pkg/utils"
)

// SeedSuperAdmin creates the bootstrap super admin account. Idempotent:
// an existing account with the same email is left untouched.
func SeedSuperAdmin(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - creating super admin user...")

	email := os.Getenv("SUPER_ADMIN_EMAIL")
	if email == "" {
		email = "admin@treasure-shop.local"
	}
	password := os.Getenv("SUPER_ADMIN_PASSWORD")
	if password == "" {
		password = "change-me-now"
	}

	var existingID uuid.UUID
	err := db.QueryRow(ctx, `SELECT id FROM users WHERE email = $1`, email).Scan(&existingID)
	if err == nil {
		log.Println("    - super admin already exists, skipping")
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("failed to check for existing super admin: %w", err)
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	userID := uuid.New()
	_, err = db.Exec(ctx,
		`INSERT INTO users (id, first_name, last_name, email, phone_number, password)
		 VALUES ($1, 'Super', 'Admin', $2, '', $3)`,
		userID, email, hashed)
	if err != nil {
		return fmt.Errorf("failed to insert super admin: %w", err)
	}

	for _, role := range []string{constants.RoleSuperAdmin, constants.RoleAdmin} {
		_, err = db.Exec(ctx,
			`INSERT INTO user_roles (user_id, role_id)
			 SELECT $1, id FROM roles WHERE code = $2
			 ON CONFLICT DO NOTHING`,
			userID, role)
		if err != nil {
			return fmt.Errorf("failed to grant role %q: %w", role, err)
		}
	}

	log.Printf("    - super admin created (%s)", email)
	return nil
}
