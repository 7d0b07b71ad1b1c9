package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/company-intel-api/infrastructure/database/postgres"
	"github.com/vfg2006/company-intel-api/internal/domain"
)

const (
	usersTable = "users"
)

type UserRepository interface {
	UpsertSubscription(ctx context.Context, update domain.SubscriptionUpdate) error
	CancelSubscription(ctx context.Context, subscriptionID string) (int64, error)
}

type userRepository struct {
	conn postgres.Queryer
}

func NewUserRepository(conn postgres.Queryer) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

// UpsertSubscription cria ou atualiza o usuário identificado pelo customer id
func (r *userRepository) UpsertSubscription(ctx context.Context, update domain.SubscriptionUpdate) error {
	query := squirrel.
		Insert(usersTable).
		Columns("stripe_customer_id", "subscription_id", "plan_id", "status").
		Values(update.StripeCustomerID, nullIfEmpty(update.SubscriptionID), nullIfEmpty(update.PlanID), string(update.Status)).
		Suffix(`ON CONFLICT (stripe_customer_id) DO UPDATE SET
			subscription_id = EXCLUDED.subscription_id,
			plan_id = EXCLUDED.plan_id,
			status = EXCLUDED.status,
			updated_at = CURRENT_TIMESTAMP`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao salvar assinatura: %w", err)
	}

	return nil
}

// CancelSubscription marca como cancelado o usuário da assinatura. Nenhuma
// linha afetada não é erro.
func (r *userRepository) CancelSubscription(ctx context.Context, subscriptionID string) (int64, error) {
	query := squirrel.
		Update(usersTable).
		Set("status", string(domain.SubscriptionStatusCancelled)).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"subscription_id": subscriptionID}).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao cancelar assinatura: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter linhas afetadas: %w", err)
	}

	return affected, nil
}

// nullIfEmpty grava NULL no lugar de string vazia
func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}
