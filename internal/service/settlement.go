package service

import (
	"errors"
	"fmt"

	"coinadmin/internal/domain"
	"coinadmin/internal/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrNotFound means the deposit/withdrawal id resolved to nothing.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyProcessed means the entity left PENDING before this
	// decision landed.
	ErrAlreadyProcessed = errors.New("already processed")
)

// SettlementService commits a terminal admin decision on a pending deposit
// or withdrawal together with its balance and ledger side effects as one
// database transaction.
//
// The status transition is a conditional UPDATE on status = PENDING, so two
// concurrent decisions on the same entity can never both apply: the loser
// matches zero rows and surfaces ErrAlreadyProcessed.
type SettlementService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewSettlementService(db *gorm.DB) *SettlementService {
	return &SettlementService{db: db, log: zap.L().Named("settlement")}
}

// ApproveDeposit marks a pending deposit COMPLETED, credits the owning
// user's balance by the deposit amount, and completes the linked ledger row.
func (s *SettlementService) ApproveDeposit(id string) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		dep, err := loadDeposit(tx, id, domain.StatusCompleted)
		if err != nil {
			return err
		}
		if err := transitionDeposit(tx, id, domain.StatusCompleted, ""); err != nil {
			return err
		}
		if err := creditBalance(tx, dep.UserID, dep.Amount); err != nil {
			return err
		}
		return settleLedger(tx, "deposit_id", id, domain.StatusCompleted)
	})
	if err == nil {
		s.log.Info("deposit approved", zap.String("deposit_id", id))
	}
	return err
}

// RejectDeposit marks a pending deposit CANCELLED with the given reason and
// cancels the linked ledger row. The balance is untouched: nothing was
// credited for a deposit that never completed.
func (s *SettlementService) RejectDeposit(id, reason string) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := loadDeposit(tx, id, domain.StatusCancelled); err != nil {
			return err
		}
		if err := transitionDeposit(tx, id, domain.StatusCancelled, reason); err != nil {
			return err
		}
		return settleLedger(tx, "deposit_id", id, domain.StatusCancelled)
	})
	if err == nil {
		s.log.Info("deposit rejected", zap.String("deposit_id", id), zap.String("reason", reason))
	}
	return err
}

// ApproveWithdrawal marks a pending withdrawal COMPLETED and completes the
// linked ledger row. The balance was already debited when the user filed
// the request, so no balance mutation happens here.
func (s *SettlementService) ApproveWithdrawal(id string) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := loadWithdrawal(tx, id, domain.StatusCompleted); err != nil {
			return err
		}
		if err := transitionWithdrawal(tx, id, domain.StatusCompleted, ""); err != nil {
			return err
		}
		return settleLedger(tx, "withdrawal_id", id, domain.StatusCompleted)
	})
	if err == nil {
		s.log.Info("withdrawal approved", zap.String("withdrawal_id", id))
	}
	return err
}

// RejectWithdrawal marks a pending withdrawal CANCELLED with the given
// reason, refunds the reserved amount to the user's balance, and cancels
// the linked ledger row.
func (s *SettlementService) RejectWithdrawal(id, reason string) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		w, err := loadWithdrawal(tx, id, domain.StatusCancelled)
		if err != nil {
			return err
		}
		if err := transitionWithdrawal(tx, id, domain.StatusCancelled, reason); err != nil {
			return err
		}
		if err := creditBalance(tx, w.UserID, w.Amount); err != nil {
			return err
		}
		return settleLedger(tx, "withdrawal_id", id, domain.StatusCancelled)
	})
	if err == nil {
		s.log.Info("withdrawal rejected", zap.String("withdrawal_id", id), zap.String("reason", reason))
	}
	return err
}

func loadDeposit(tx *gorm.DB, id string, target domain.Status) (*models.Deposit, error) {
	var d models.Deposit
	if err := tx.Where("id = ?", id).First(&d).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := d.Status.Transition(target); err != nil {
		return nil, ErrAlreadyProcessed
	}
	return &d, nil
}

func loadWithdrawal(tx *gorm.DB, id string, target domain.Status) (*models.Withdrawal, error) {
	var w models.Withdrawal
	if err := tx.Where("id = ?", id).First(&w).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := w.Status.Transition(target); err != nil {
		return nil, ErrAlreadyProcessed
	}
	return &w, nil
}

// transitionDeposit applies the status change conditioned on the row still
// being PENDING. Zero rows affected means a concurrent decision won.
func transitionDeposit(tx *gorm.DB, id string, target domain.Status, note string) error {
	updates := map[string]interface{}{"status": target}
	if note != "" {
		updates["admin_note"] = note
	}
	res := tx.Model(&models.Deposit{}).
		Where("id = ? AND status = ?", id, domain.StatusPending).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAlreadyProcessed
	}
	return nil
}

func transitionWithdrawal(tx *gorm.DB, id string, target domain.Status, note string) error {
	updates := map[string]interface{}{"status": target}
	if note != "" {
		updates["admin_note"] = note
	}
	res := tx.Model(&models.Withdrawal{}).
		Where("id = ? AND status = ?", id, domain.StatusPending).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAlreadyProcessed
	}
	return nil
}

// creditBalance increments an existing balance row in place. The row is
// created at user registration, so a missing row is a data fault that must
// abort the whole settlement.
func creditBalance(tx *gorm.DB, userID string, amount decimal.Decimal) error {
	res := tx.Model(&models.Balance{}).
		Where("user_id = ?", userID).
		Update("amount", gorm.Expr("amount + ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("balance row missing for user %s", userID)
	}
	return nil
}

// settleLedger moves the pending ledger row linked to the settled entity to
// its terminal status. column is deposit_id or withdrawal_id.
func settleLedger(tx *gorm.DB, column, id string, target domain.Status) error {
	return tx.Model(&models.Transaction{}).
		Where(column+" = ? AND status = ?", id, domain.StatusPending).
		Update("status", target).Error
}
