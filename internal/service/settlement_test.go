package service

import (
	"errors"
	"fmt"
	"testing"

	"coinadmin/internal/database"
	"coinadmin/internal/domain"
	"coinadmin/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	// One connection so every session sees the same in-memory database.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, telegramID int64, balance string) *models.User {
	t.Helper()
	u := &models.User{
		TelegramID:   telegramID,
		Username:     "user",
		FirstName:    "Test",
		ReferralCode: fmt.Sprintf("ref%d", telegramID),
		Status:       domain.UserActive,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	b := &models.Balance{UserID: u.ID, Amount: decimal.RequireFromString(balance)}
	if err := db.Create(b).Error; err != nil {
		t.Fatalf("create balance: %v", err)
	}
	return u
}

func seedDeposit(t *testing.T, db *gorm.DB, userID, amount string, status domain.Status) *models.Deposit {
	t.Helper()
	d := &models.Deposit{
		UserID:        userID,
		Amount:        decimal.RequireFromString(amount),
		PaymentMethod: "BCA",
		Status:        status,
	}
	if err := db.Create(d).Error; err != nil {
		t.Fatalf("create deposit: %v", err)
	}
	ledger := &models.Transaction{
		UserID:      userID,
		Type:        domain.TxTypeTopup,
		Amount:      d.Amount,
		Status:      status,
		Description: "Deposit via BCA",
		DepositID:   &d.ID,
	}
	if err := db.Create(ledger).Error; err != nil {
		t.Fatalf("create ledger row: %v", err)
	}
	return d
}

func seedWithdrawal(t *testing.T, db *gorm.DB, userID, amount string, status domain.Status) *models.Withdrawal {
	t.Helper()
	w := &models.Withdrawal{
		UserID:   userID,
		Amount:   decimal.RequireFromString(amount),
		BankName: "BCA",
		Status:   status,
	}
	if err := db.Create(w).Error; err != nil {
		t.Fatalf("create withdrawal: %v", err)
	}
	ledger := &models.Transaction{
		UserID:       userID,
		Type:         domain.TxTypeWithdraw,
		Amount:       w.Amount,
		Status:       status,
		Description:  "Withdraw to BCA",
		WithdrawalID: &w.ID,
	}
	if err := db.Create(ledger).Error; err != nil {
		t.Fatalf("create ledger row: %v", err)
	}
	return w
}

func balanceOf(t *testing.T, db *gorm.DB, userID string) decimal.Decimal {
	t.Helper()
	var b models.Balance
	if err := db.Where("user_id = ?", userID).First(&b).Error; err != nil {
		t.Fatalf("load balance: %v", err)
	}
	return b.Amount
}

func TestApproveDepositCreditsBalance(t *testing.T) {
	db := newTestDB(t)
	svc := NewSettlementService(db)
	u := seedUser(t, db, 1001, "100000")
	d := seedDeposit(t, db, u.ID, "50000", domain.StatusPending)

	if err := svc.ApproveDeposit(d.ID); err != nil {
		t.Fatalf("ApproveDeposit: %v", err)
	}

	var got models.Deposit
	if err := db.First(&got, "id = ?", d.ID).Error; err != nil {
		t.Fatalf("reload deposit: %v", err)
	}
	if got.Status != domain.StatusCompleted {
		t.Errorf("deposit status = %s, want COMPLETED", got.Status)
	}
	if bal := balanceOf(t, db, u.ID); !bal.Equal(decimal.RequireFromString("150000")) {
		t.Errorf("balance = %s, want 150000", bal)
	}
	var ledger models.Transaction
	if err := db.First(&ledger, "deposit_id = ?", d.ID).Error; err != nil {
		t.Fatalf("reload ledger: %v", err)
	}
	if ledger.Status != domain.StatusCompleted {
		t.Errorf("ledger status = %s, want COMPLETED", ledger.Status)
	}
}

func TestApproveDepositTwiceCreditsOnce(t *testing.T) {
	db := newTestDB(t)
	svc := NewSettlementService(db)
	u := seedUser(t, db, 1002, "100000")
	d := seedDeposit(t, db, u.ID, "50000", domain.StatusPending)

	if err := svc.ApproveDeposit(d.ID); err != nil {
		t.Fatalf("first approve: %v", err)
	}
	err := svc.ApproveDeposit(d.ID)
	if !errors.Is(err, ErrAlreadyProcessed) {
		t.Fatalf("second approve error = %v, want ErrAlreadyProcessed", err)
	}
	if bal := balanceOf(t, db, u.ID); !bal.Equal(decimal.RequireFromString("150000")) {
		t.Errorf("balance = %s, want 150000 (credited exactly once)", bal)
	}
}

func TestApproveDepositNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewSettlementService(db)

	if err := svc.ApproveDeposit("no-such-id"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestApproveDepositNonPendingHasNoSideEffects(t *testing.T) {
	db := newTestDB(t)
	svc := NewSettlementService(db)
	u := seedUser(t, db, 1003, "100000")

	for _, status := range []domain.Status{domain.StatusCompleted, domain.StatusFailed, domain.StatusCancelled} {
		d := seedDeposit(t, db, u.ID, "50000", status)
		if err := svc.ApproveDeposit(d.ID); !errors.Is(err, ErrAlreadyProcessed) {
			t.Errorf("approve %s deposit: error = %v, want ErrAlreadyProcessed", status, err)
		}
		if err := svc.RejectDeposit(d.ID, "late"); !errors.Is(err, ErrAlreadyProcessed) {
			t.Errorf("reject %s deposit: error = %v, want ErrAlreadyProcessed", status, err)
		}
		var got models.Deposit
		db.First(&got, "id = ?", d.ID)
		if got.Status != status {
			t.Errorf("deposit status mutated: %s -> %s", status, got.Status)
		}
	}
	if bal := balanceOf(t, db, u.ID); !bal.Equal(decimal.RequireFromString("100000")) {
		t.Errorf("balance = %s, want unchanged 100000", bal)
	}
}

func TestApproveDepositMissingBalanceRollsBack(t *testing.T) {
	db := newTestDB(t)
	svc := NewSettlementService(db)
	u := &models.User{TelegramID: 1004, ReferralCode: "nobal001", Status: domain.UserActive}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	d := seedDeposit(t, db, u.ID, "50000", domain.StatusPending)

	err := svc.ApproveDeposit(d.ID)
	if err == nil || errors.Is(err, ErrNotFound) || errors.Is(err, ErrAlreadyProcessed) {
		t.Fatalf("error = %v, want generic storage failure", err)
	}
	// Rollback must leave the deposit untouched.
	var got models.Deposit
	db.First(&got, "id = ?", d.ID)
	if got.Status != domain.StatusPending {
		t.Errorf("deposit status = %s, want PENDING after rollback", got.Status)
	}
	var ledger models.Transaction
	db.First(&ledger, "deposit_id = ?", d.ID)
	if ledger.Status != domain.StatusPending {
		t.Errorf("ledger status = %s, want PENDING after rollback", ledger.Status)
	}
}

func TestRejectDepositStoresReason(t *testing.T) {
	db := newTestDB(t)
	svc := NewSettlementService(db)
	u := seedUser(t, db, 1005, "100000")
	d := seedDeposit(t, db, u.ID, "50000", domain.StatusPending)

	if err := svc.RejectDeposit(d.ID, "fake transfer slip"); err != nil {
		t.Fatalf("RejectDeposit: %v", err)
	}
	var got models.Deposit
	db.First(&got, "id = ?", d.ID)
	if got.Status != domain.StatusCancelled {
		t.Errorf("deposit status = %s, want CANCELLED", got.Status)
	}
	if got.AdminNote != "fake transfer slip" {
		t.Errorf("admin note = %q, want reason stored", got.AdminNote)
	}
	if bal := balanceOf(t, db, u.ID); !bal.Equal(decimal.RequireFromString("100000")) {
		t.Errorf("balance = %s, want unchanged 100000", bal)
	}
	var ledger models.Transaction
	db.First(&ledger, "deposit_id = ?", d.ID)
	if ledger.Status != domain.StatusCancelled {
		t.Errorf("ledger status = %s, want CANCELLED", ledger.Status)
	}
}

func TestApproveWithdrawalLeavesBalanceAlone(t *testing.T) {
	db := newTestDB(t)
	svc := NewSettlementService(db)
	u := seedUser(t, db, 1006, "30000")
	w := seedWithdrawal(t, db, u.ID, "20000", domain.StatusPending)

	if err := svc.ApproveWithdrawal(w.ID); err != nil {
		t.Fatalf("ApproveWithdrawal: %v", err)
	}
	var got models.Withdrawal
	db.First(&got, "id = ?", w.ID)
	if got.Status != domain.StatusCompleted {
		t.Errorf("withdrawal status = %s, want COMPLETED", got.Status)
	}
	if bal := balanceOf(t, db, u.ID); !bal.Equal(decimal.RequireFromString("30000")) {
		t.Errorf("balance = %s, want unchanged 30000 (debited at request time)", bal)
	}
}

func TestRejectWithdrawalRefunds(t *testing.T) {
	db := newTestDB(t)
	svc := NewSettlementService(db)
	u := seedUser(t, db, 1007, "30000")
	w := seedWithdrawal(t, db, u.ID, "20000", domain.StatusPending)

	if err := svc.RejectWithdrawal(w.ID, "duplicate request"); err != nil {
		t.Fatalf("RejectWithdrawal: %v", err)
	}
	var got models.Withdrawal
	db.First(&got, "id = ?", w.ID)
	if got.Status != domain.StatusCancelled {
		t.Errorf("withdrawal status = %s, want CANCELLED", got.Status)
	}
	if got.AdminNote != "duplicate request" {
		t.Errorf("admin note = %q, want reason stored", got.AdminNote)
	}
	if bal := balanceOf(t, db, u.ID); !bal.Equal(decimal.RequireFromString("50000")) {
		t.Errorf("balance = %s, want 50000 after refund", bal)
	}
	var ledger models.Transaction
	db.First(&ledger, "withdrawal_id = ?", w.ID)
	if ledger.Status != domain.StatusCancelled {
		t.Errorf("ledger status = %s, want CANCELLED", ledger.Status)
	}
}

func TestSettlementOnlyTouchesLinkedLedgerRow(t *testing.T) {
	db := newTestDB(t)
	svc := NewSettlementService(db)
	u := seedUser(t, db, 1008, "0")
	d1 := seedDeposit(t, db, u.ID, "10000", domain.StatusPending)
	d2 := seedDeposit(t, db, u.ID, "20000", domain.StatusPending)

	if err := svc.ApproveDeposit(d1.ID); err != nil {
		t.Fatalf("ApproveDeposit: %v", err)
	}
	var l1, l2 models.Transaction
	db.First(&l1, "deposit_id = ?", d1.ID)
	db.First(&l2, "deposit_id = ?", d2.ID)
	if l1.Status != domain.StatusCompleted {
		t.Errorf("linked ledger status = %s, want COMPLETED", l1.Status)
	}
	if l2.Status != domain.StatusPending {
		t.Errorf("unrelated ledger status = %s, want still PENDING", l2.Status)
	}
	if bal := balanceOf(t, db, u.ID); !bal.Equal(decimal.RequireFromString("10000")) {
		t.Errorf("balance = %s, want 10000 (only first deposit credited)", bal)
	}
}
