package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"payment-tracker/internal/domain/models"
	"payment-tracker/internal/repository"
)

type Storage struct {
	db *pgxpool.Pool
}

func NewPostgres(ctx context.Context, conn string) (*Storage, error) {
	const op = "storage.postgres.New"

	db, err := pgxpool.New(ctx, conn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{db: db}, nil
}

func (s *Storage) SaveUser(ctx context.Context, username string, passHash []byte) error {
	const op = "storage.Postgres.SaveUser"

	sql, args, err := squirrel.Insert("users").
		Columns("username", "password").
		Values(username, passHash).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	_, err = s.db.Exec(ctx, sql, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%s: %w", op, repository.ErrUserAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) LoginUser(ctx context.Context, inputType, input string) (models.User, error) {
	const op = "storage.Postgres.LoginUser"

	sql, args, err := squirrel.Select("id", "username", "password", "created_at").
		From("users").
		Where(squirrel.Eq{inputType: input}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	var user models.User
	err = s.db.QueryRow(ctx, sql, args...).Scan(&user.ID, &user.Username, &user.Password, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, fmt.Errorf("%s: %w", op, repository.ErrUserNotFound)
		}

		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

func (s *Storage) SaveItem(ctx context.Context, item models.Item) (uuid.UUID, error) {
	const op = "storage.Postgres.SaveItem"

	sql, args, err := squirrel.Insert("items").
		Columns("identifier", "name", "description", "value", "currency", "created_at").
		Values(item.Identifier, item.Name, item.Description, item.Value.String(), item.Currency, time.Now()).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	var id uuid.UUID
	err = s.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Storage) GetItemByID(ctx context.Context, itemID uuid.UUID) (models.Item, error) {
	const op = "storage.Postgres.GetItemByID"

	sql, args, err := squirrel.Select("id", "identifier", "name", "description", "value", "currency", "created_at").
		From("items").
		Where(squirrel.Eq{"id": itemID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return models.Item{}, fmt.Errorf("%s: %w", op, err)
	}

	var item models.Item
	var value string
	err = s.db.QueryRow(ctx, sql, args...).
		Scan(&item.ID, &item.Identifier, &item.Name, &item.Description, &value, &item.Currency, &item.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Item{}, fmt.Errorf("%s: %w", op, repository.ErrItemNotFound)
		}
		return models.Item{}, fmt.Errorf("%s: %w", op, err)
	}

	item.Value, err = decimal.NewFromString(value)
	if err != nil {
		return models.Item{}, fmt.Errorf("%s: %w", op, err)
	}

	return item, nil
}

func (s *Storage) ListItems(ctx context.Context) ([]models.Item, error) {
	const op = "storage.Postgres.ListItems"

	sql, args, err := squirrel.Select("id", "identifier", "name", "description", "value", "currency", "created_at").
		From("items").
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		var item models.Item
		var value string
		if err := rows.Scan(&item.ID, &item.Identifier, &item.Name, &item.Description, &value, &item.Currency, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		item.Value, err = decimal.NewFromString(value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		items = append(items, item)
	}

	return items, nil
}

func (s *Storage) UpdateItem(ctx context.Context, item models.Item) error {
	const op = "storage.Postgres.UpdateItem"

	sql, args, err := squirrel.Update("items").
		Set("identifier", item.Identifier).
		Set("name", item.Name).
		Set("description", item.Description).
		Set("value", item.Value.String()).
		Set("currency", item.Currency).
		Where(squirrel.Eq{"id": item.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	cmdTag, err := s.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrItemNotFound)
	}

	return nil
}

func (s *Storage) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	const op = "storage.Postgres.DeleteItem"

	sql, args, err := squirrel.Delete("items").
		Where(squirrel.Eq{"id": itemID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	cmdTag, err := s.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrItemNotFound)
	}

	return nil
}

// CreateCheckout inserts the transaction and its purchased items in one
// database transaction, so a failed item insert never leaves a dangling
// checkout row.
func (s *Storage) CreateCheckout(ctx context.Context, trx models.PaymentTransaction, items []models.PurchasedItem) (uuid.UUID, error) {
	const op = "storage.Postgres.CreateCheckout"

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	var relatedKind *string
	var relatedID *int64
	if trx.Related != nil {
		relatedKind = &trx.Related.Kind
		relatedID = &trx.Related.ID
	}

	now := time.Now()
	insertTrx, trxArgs, err := squirrel.Insert("payment_transactions").
		Columns("user_id", "related_kind", "related_id", "creation_date", "date", "transaction_id", "value", "status").
		Values(trx.UserID, relatedKind, relatedID, now, now, trx.TransactionID, trx.Value.String(), trx.Status).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	var trxID uuid.UUID
	err = tx.QueryRow(ctx, insertTrx, trxArgs...).Scan(&trxID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	for _, item := range items {
		var itemKind *string
		var itemRelID *int64
		if item.Related != nil {
			itemKind = &item.Related.Kind
			itemRelID = &item.Related.ID
		}

		var insertItem string
		var itemArgs []interface{}
		insertItem, itemArgs, err = squirrel.Insert("purchased_items").
			Columns("user_id", "identifier", "transaction_id", "item_id", "related_kind", "related_id", "price", "quantity").
			Values(trx.UserID, item.Identifier, trxID, item.ItemID, itemKind, itemRelID, item.Price, item.Quantity).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return uuid.Nil, fmt.Errorf("%s: %w", op, err)
		}

		_, err = tx.Exec(ctx, insertItem, itemArgs...)
		if err != nil {
			return uuid.Nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return trxID, nil
}

func (s *Storage) GetTransactionByID(ctx context.Context, userID, trxID uuid.UUID) (models.PaymentTransaction, error) {
	const op = "storage.Postgres.GetTransactionByID"

	sql, args, err := squirrel.Select("id", "user_id", "related_kind", "related_id", "creation_date", "date", "transaction_id", "value", "status").
		From("payment_transactions").
		Where(squirrel.Eq{"id": trxID, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return models.PaymentTransaction{}, fmt.Errorf("%s: %w", op, err)
	}

	trx, err := scanTransaction(s.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.PaymentTransaction{}, fmt.Errorf("%s: %w", op, repository.ErrTransactionNotFound)
		}
		return models.PaymentTransaction{}, fmt.Errorf("%s: %w", op, err)
	}

	return trx, nil
}

// ListUserTransactions returns the user's transactions newest first, ties
// broken by the gateway transaction id.
func (s *Storage) ListUserTransactions(ctx context.Context, userID uuid.UUID) ([]models.PaymentTransaction, error) {
	const op = "storage.Postgres.ListUserTransactions"

	sql, args, err := squirrel.Select("id", "user_id", "related_kind", "related_id", "creation_date", "date", "transaction_id", "value", "status").
		From("payment_transactions").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("creation_date DESC", "transaction_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var trxs []models.PaymentTransaction
	for rows.Next() {
		trx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		trxs = append(trxs, trx)
	}

	return trxs, nil
}

// ApplyGatewayUpdate records the gateway-issued transaction id and status
// on the user's own transaction. creation_date is deliberately not in the
// SET list; only date moves.
func (s *Storage) ApplyGatewayUpdate(ctx context.Context, userID, trxID uuid.UUID, transactionID string, status models.PaymentStatus) error {
	const op = "storage.Postgres.ApplyGatewayUpdate"

	sql, args, err := squirrel.Update("payment_transactions").
		Set("transaction_id", transactionID).
		Set("status", status).
		Set("date", time.Now()).
		Where(squirrel.Eq{"id": trxID, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	cmdTag, err := s.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrTransactionNotFound)
	}

	return nil
}

func (s *Storage) DeleteTransaction(ctx context.Context, userID, trxID uuid.UUID) error {
	const op = "storage.Postgres.DeleteTransaction"

	sql, args, err := squirrel.Delete("payment_transactions").
		Where(squirrel.Eq{"id": trxID, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	cmdTag, err := s.db.Exec(ctx, sql, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("%s: %w", op, repository.ErrTransactionHasPurchases)
		}

		return fmt.Errorf("%s: %w", op, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrTransactionNotFound)
	}

	return nil
}

// ListUserPurchases orders by the parent transaction's date and gateway id,
// matching the transaction listing order.
func (s *Storage) ListUserPurchases(ctx context.Context, userID uuid.UUID) ([]models.PurchasedItem, error) {
	const op = "storage.Postgres.ListUserPurchases"

	sql, args, err := squirrel.Select("p.id", "p.user_id", "p.identifier", "p.transaction_id", "p.item_id", "p.related_kind", "p.related_id", "p.price", "p.quantity").
		From("purchased_items p").
		Join("payment_transactions t ON p.transaction_id = t.id").
		Where(squirrel.Eq{"p.user_id": userID}).
		OrderBy("t.date DESC", "t.transaction_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var purchases []models.PurchasedItem
	for rows.Next() {
		var p models.PurchasedItem
		var kind *string
		var relID *int64
		if err := rows.Scan(&p.ID, &p.UserID, &p.Identifier, &p.TransactionID, &p.ItemID, &kind, &relID, &p.Price, &p.Quantity); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if kind != nil && relID != nil {
			p.Related = &models.RelatedRef{Kind: *kind, ID: *relID}
		}
		purchases = append(purchases, p)
	}

	return purchases, nil
}

func (s *Storage) SaveTransactionError(ctx context.Context, trxErr models.PaymentTransactionError) (uuid.UUID, error) {
	const op = "storage.Postgres.SaveTransactionError"

	sql, args, err := squirrel.Insert("payment_transaction_errors").
		Columns("date", "user_id", "api_url", "request_data", "response", "transaction_id").
		Values(time.Now(), trxErr.UserID, trxErr.APIURL, trxErr.RequestData, trxErr.Response, trxErr.TransactionID).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	var id uuid.UUID
	err = s.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Storage) ListUserTransactionErrors(ctx context.Context, userID uuid.UUID) ([]models.PaymentTransactionError, error) {
	const op = "storage.Postgres.ListUserTransactionErrors"

	sql, args, err := squirrel.Select("id", "date", "user_id", "api_url", "request_data", "response", "transaction_id").
		From("payment_transaction_errors").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("date DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var trxErrs []models.PaymentTransactionError
	for rows.Next() {
		var e models.PaymentTransactionError
		if err := rows.Scan(&e.ID, &e.Date, &e.UserID, &e.APIURL, &e.RequestData, &e.Response, &e.TransactionID); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		trxErrs = append(trxErrs, e)
	}

	return trxErrs, nil
}

func scanTransaction(row pgx.Row) (models.PaymentTransaction, error) {
	var trx models.PaymentTransaction
	var kind *string
	var relID *int64
	var value string

	err := row.Scan(&trx.ID, &trx.UserID, &kind, &relID, &trx.CreationDate, &trx.Date, &trx.TransactionID, &value, &trx.Status)
	if err != nil {
		return models.PaymentTransaction{}, err
	}

	if kind != nil && relID != nil {
		trx.Related = &models.RelatedRef{Kind: *kind, ID: *relID}
	}

	trx.Value, err = decimal.NewFromString(value)
	if err != nil {
		return models.PaymentTransaction{}, err
	}

	return trx, nil
}

func (s *Storage) Close() error {
	s.db.Close()
	return nil
}
