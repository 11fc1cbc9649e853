package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Nduhiu17/treasure-shop-api/internal/entities"
	"github.com/Nduhiu17/treasure-shop-api/internal/repositories"
	"github.com/Nduhiu17/treasure-shop-api/pkg/constants"
	apperrors "github.com/Nduhiu17/treasure-shop-api/pkg/errors"
)

// AssignmentCoordinator owns the writer-assignment handshake. Status and
// legality checks live in the transition engine; this component validates
// the writer side of an assign and mutates the order's writer reference.
type AssignmentCoordinator struct {
	userRepo repositories.UserRepositoryInterface
	logger   *zap.Logger
}

func NewAssignmentCoordinator(userRepo repositories.UserRepositoryInterface, logger *zap.Logger) *AssignmentCoordinator {
	return &AssignmentCoordinator{userRepo: userRepo, logger: logger}
}

// assign points the order at a writer pending their acceptance.
func (c *AssignmentCoordinator) assign(ctx context.Context, tx pgx.Tx, order *entities.Order, writerID *uuid.UUID) error {
	if writerID == nil {
		return apperrors.NewMissingPrerequisite("assign requires a writer id")
	}

	writer, err := c.userRepo.FindByID(ctx, *writerID)
	if err != nil {
		return apperrors.NewMissingPrerequisite("writer %s does not exist", writerID)
	}

	hasWriterRole := false
	for _, role := range writer.Roles {
		if role == constants.RoleWriter {
			hasWriterRole = true
			break
		}
	}
	if !hasWriterRole {
		return apperrors.NewMissingPrerequisite("user %s is not a writer", writerID)
	}

	order.WriterID = writerID
	return nil
}

// clearWriter drops the rejected writer so a re-assignment starts clean.
func (c *AssignmentCoordinator) clearWriter(order *entities.Order) {
	order.WriterID = nil
}
