package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "coopvault-backend/internal/domain/repayment"
	"coopvault-backend/pkg/id"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openRepaymentTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&repaymentSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func TestRepaymentCreateAndGet(t *testing.T) {
	db := openRepaymentTestDB(t)
	repo := NewRepaymentRepository(db)
	ctx := context.Background()

	repaymentID := id.NewID32()
	rp := &domain.Repayment{
		RepaymentID: repaymentID,
		LoanID:      9,
		LoanRef:     "11111111111111111111111111111111",
		Amount:      9_166.67,
		ProofURL:    "https://example.com/proof.jpg",
		Status:      domain.StatusPendingReview,
		SubmittedAt: time.Now().UTC(),
	}
	if err := repo.Create(ctx, rp); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByRepaymentID(ctx, repaymentID)
	if err != nil {
		t.Fatalf("GetByRepaymentID: %v", err)
	}
	if got.Status != domain.StatusPendingReview || got.Amount != 9_166.67 {
		t.Errorf("unexpected repayment: %+v", got)
	}

	_, err = repo.GetByRepaymentID(ctx, "eeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestRepaymentSaveReview(t *testing.T) {
	db := openRepaymentTestDB(t)
	repo := NewRepaymentRepository(db)
	ctx := context.Background()

	rp := &domain.Repayment{
		RepaymentID: id.NewID32(),
		LoanID:      9,
		Amount:      9_166.67,
		Status:      domain.StatusPendingReview,
		SubmittedAt: time.Now().UTC(),
	}
	if err := repo.Create(ctx, rp); err != nil {
		t.Fatalf("Create: %v", err)
	}

	now := time.Now().UTC()
	rp.Status = domain.StatusApproved
	rp.ReviewedAt = &now
	rp.ReviewedBy = "admin-1"
	if err := repo.Save(ctx, rp); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByRepaymentID(ctx, rp.RepaymentID)
	if err != nil {
		t.Fatalf("GetByRepaymentID: %v", err)
	}
	if got.Status != domain.StatusApproved || got.ReviewedBy != "admin-1" || got.ReviewedAt == nil {
		t.Fatalf("review not persisted: %+v", got)
	}
}

func TestRepaymentListByLoanID(t *testing.T) {
	db := openRepaymentTestDB(t)
	repo := NewRepaymentRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	seed := []repaymentSQLite{
		{RepaymentID: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", LoanID: 9, Amount: 100, Status: "approved", SubmittedAt: now.Add(-2 * time.Hour)},
		{RepaymentID: "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb", LoanID: 9, Amount: 200, Status: "pending_review", SubmittedAt: now.Add(-1 * time.Hour)},
		{RepaymentID: "cccccccccccccccccccccccccccccccc", LoanID: 10, Amount: 300, Status: "pending_review", SubmittedAt: now},
	}
	for i := range seed {
		if err := db.Create(&seed[i]).Error; err != nil {
			t.Fatal(err)
		}
	}

	got, err := repo.ListByLoanID(ctx, 9)
	if err != nil {
		t.Fatalf("ListByLoanID: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 repayments, got %d", len(got))
	}
	// oldest first
	if got[0].RepaymentID != "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa" {
		t.Fatalf("unexpected order: %s first", got[0].RepaymentID)
	}
}
