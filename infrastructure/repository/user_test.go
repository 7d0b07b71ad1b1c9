package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/company-intel-api/internal/domain"
)

func TestUserRepository_UpsertSubscription(t *testing.T) {
	tests := []struct {
		name     string
		update   domain.SubscriptionUpdate
		args     []driver.Value
		execErr  error
		hasError bool
	}{
		{
			name: "Insere ou atualiza pelo customer id",
			update: domain.SubscriptionUpdate{
				StripeCustomerID: "cus_1",
				SubscriptionID:   "sub_1",
				PlanID:           "pro",
				Status:           domain.SubscriptionStatusActive,
			},
			args: []driver.Value{"cus_1", "sub_1", "pro", "active"},
		},
		{
			name: "Plano vazio vira NULL",
			update: domain.SubscriptionUpdate{
				StripeCustomerID: "cus_2",
				SubscriptionID:   "sub_2",
				Status:           domain.SubscriptionStatusActive,
			},
			args: []driver.Value{"cus_2", "sub_2", nil, "active"},
		},
		{
			name: "Erro do banco é propagado",
			update: domain.SubscriptionUpdate{
				StripeCustomerID: "cus_3",
				SubscriptionID:   "sub_3",
				PlanID:           "basic",
				Status:           domain.SubscriptionStatusActive,
			},
			args:     []driver.Value{"cus_3", "sub_3", "basic", "active"},
			execErr:  errors.New("deadlock detected"),
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			expectation := mock.ExpectExec(`INSERT INTO users \(stripe_customer_id,subscription_id,plan_id,status\) VALUES \(\$1,\$2,\$3,\$4\) ON CONFLICT \(stripe_customer_id\) DO UPDATE`).
				WithArgs(tt.args...)
			if tt.execErr != nil {
				expectation.WillReturnError(tt.execErr)
			} else {
				expectation.WillReturnResult(sqlmock.NewResult(1, 1))
			}

			repo := NewUserRepository(db)
			err = repo.UpsertSubscription(context.Background(), tt.update)

			if tt.hasError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_CancelSubscription(t *testing.T) {
	t.Run("Cancela a assinatura existente", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`UPDATE users SET status = \$1, updated_at = CURRENT_TIMESTAMP WHERE subscription_id = \$2`).
			WithArgs("cancelled", "sub_1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewUserRepository(db)
		affected, err := repo.CancelSubscription(context.Background(), "sub_1")

		assert.NoError(t, err)
		assert.Equal(t, int64(1), affected)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Assinatura desconhecida não é erro", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`UPDATE users SET status = \$1`).
			WithArgs("cancelled", "sub_unknown").
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewUserRepository(db)
		affected, err := repo.CancelSubscription(context.Background(), "sub_unknown")

		assert.NoError(t, err)
		assert.Zero(t, affected)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
