package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nduhiu17/treasure-shop-api/internal/entities"
	"github.com/Nduhiu17/treasure-shop-api/pkg/constants"
	apperrors "github.com/Nduhiu17/treasure-shop-api/pkg/errors"
)

func newMockOrderRepo(t *testing.T) (OrderRepositoryInterface, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	return NewOrderRepository(mock), mock
}

func TestOrderRepository_Create(t *testing.T) {
	repo, mock := newMockOrderRepo(t)
	defer mock.Close()

	order := &entities.Order{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		Status:     constants.StatusPendingPayment,
		NoOfPages:  5,
		Price:      decimal.RequireFromString("90.00"),
	}

	now := time.Now()
	anyArgs := make([]interface{}, 24)
	for i := range anyArgs {
		anyArgs[i] = pgxmock.AnyArg()
	}
	mock.ExpectQuery(`INSERT INTO orders`).
		WithArgs(anyArgs...).
		WillReturnRows(pgxmock.NewRows([]string{"order_number", "version", "created_at", "updated_at"}).
			AddRow("TS-1001", 1, now, now))

	err := repo.Create(context.Background(), nil, order)
	require.NoError(t, err)
	assert.Equal(t, "TS-1001", order.OrderNumber)
	assert.Equal(t, 1, order.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_FindByID_NotFound(t *testing.T) {
	repo, mock := newMockOrderRepo(t)
	defer mock.Close()

	id := uuid.New()
	mock.ExpectQuery(`SELECT .+ FROM orders WHERE id`).
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.FindByID(context.Background(), nil, id)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_Save_BumpsVersion(t *testing.T) {
	repo, mock := newMockOrderRepo(t)
	defer mock.Close()

	writerID := uuid.New()
	order := &entities.Order{
		ID:       uuid.New(),
		WriterID: &writerID,
		Status:   constants.StatusAssigned,
		Version:  3,
	}

	mock.ExpectExec(`UPDATE orders SET`).
		WithArgs(order.WriterID, order.Status, order.ID, 3).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.Save(context.Background(), nil, order)
	require.NoError(t, err)
	assert.Equal(t, 4, order.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A zero-row versioned update means someone else transitioned the order
// first; the caller must see a conflict, not silent success.
func TestOrderRepository_Save_StaleVersionConflict(t *testing.T) {
	repo, mock := newMockOrderRepo(t)
	defer mock.Close()

	order := &entities.Order{
		ID:      uuid.New(),
		Status:  constants.StatusPaid,
		Version: 2,
	}

	mock.ExpectExec(`UPDATE orders SET`).
		WithArgs(pgxmock.AnyArg(), order.Status, order.ID, 2).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Save(context.Background(), nil, order)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Equal(t, 2, order.Version, "a failed save must not advance the version")
	assert.NoError(t, mock.ExpectationsWereMet())
}
