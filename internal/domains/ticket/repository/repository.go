package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"rimbest/infras/otel"
	"rimbest/infras/postgres"
	"rimbest/internal/domains/ticket/model"
	"rimbest/shared/constant"
	"rimbest/shared/failure"
	"rimbest/shared/logger"
	"strings"
)

var (
	receiptColumns = []string{
		model.FieldID,
		model.FieldBookingID,
		model.FieldBookingNumber,
		model.FieldFileName,
		model.FieldObjectURL,
		model.FieldCreatedAt,
	}

	queryInsertReceipt = fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (:%s)",
		model.TableName,
		strings.Join(receiptColumns, ", "),
		strings.Join(receiptColumns, ", :"),
	)

	queryLatestReceipt = fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = $1 ORDER BY %s DESC LIMIT 1",
		strings.Join(receiptColumns, ", "),
		model.TableName,
		model.FieldBookingID,
		model.FieldCreatedAt,
	)
)

// Receipt is the ledger of archived tickets.
type Receipt interface {
	Insert(ctx context.Context, receipt model.Receipt) error
	GetLatest(ctx context.Context, bookingID int64) (model.Receipt, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Receipt {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, receipt model.Receipt) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".receipt.Insert")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryInsertReceipt)

	if !r.db.Enabled() {
		return failure.Unimplemented("receipt ledger is disabled")
	}

	if _, err = r.db.Write.NamedExecContext(ctx, queryInsertReceipt, receipt); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to insert data (%s): %w", model.EntityName, err)
	}

	return nil
}

func (r *repositoryImpl) GetLatest(ctx context.Context, bookingID int64) (res model.Receipt, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".receipt.GetLatest")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryLatestReceipt)

	if !r.db.Enabled() {
		return res, failure.Unimplemented("receipt ledger is disabled")
	}

	if err = r.db.Read.GetContext(ctx, &res, queryLatestReceipt, bookingID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return res, failure.NotFound(model.EntityName + " not found")
		}

		logger.ErrorWithStack(err)

		return res, fmt.Errorf("failed to get data (%s): %w", model.EntityName, err)
	}

	return res, nil
}
