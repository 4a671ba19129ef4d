package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/SumitSharma2000/Car-Wash-APP/internal/domain/account"
)

type GormTransactionManager struct {
	db *gorm.DB
}

func NewGormTransactionManager(db *gorm.DB) *GormTransactionManager {
	return &GormTransactionManager{db: db}
}

// gormStores binds the credential and reset-token repositories to one *gorm.DB
// transaction.
type gormStores struct {
	tx *gorm.DB
}

func (s gormStores) Accounts() domain.Directory {
	return NewAccountGormRepository(s.tx)
}

func (s gormStores) ResetTokens() domain.ResetTokenRepository {
	return NewResetTokenGormRepository(s.tx)
}

func (m *GormTransactionManager) Execute(
	ctx context.Context,
	fn func(s domain.Stores) error,
) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(gormStores{tx: tx})
	})
}

// Compile-time check
var _ domain.TransactionManager = (*GormTransactionManager)(nil)
