package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/msarvarov/vendor-market/models"
)

func newTestFirmRepo(t *testing.T) (*firmRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	wrapped, mock, db := newTestDB(t)
	repo := &firmRepository{
		db:     wrapped,
		logger: wrapped.logger,
	}
	return repo, mock, db
}

func firmColumns() []string {
	return []string{"firm_id", "vendor_id", "firm_name", "area", "category", "region", "offer", "image", "created_at"}
}

func TestCreateFirm_Success(t *testing.T) {
	repo, mock, db := newTestFirmRepo(t)
	defer db.Close()

	firm := models.Firm{
		VendorID: 1,
		FirmName: "Pizza Planet",
		Area:     "Downtown",
		Category: []string{"veg", "non-veg"},
		Region:   []string{"south-indian"},
		Offer:    "20% off",
		Image:    "pizza.png",
	}

	now := time.Now()
	rows := sqlmock.
		NewRows(firmColumns()).
		AddRow(10, firm.VendorID, firm.FirmName, firm.Area,
			[]byte(`["veg","non-veg"]`), []byte(`["south-indian"]`), firm.Offer, firm.Image, now)

	mock.ExpectQuery("INSERT INTO firms").
		WithArgs(firm.VendorID, firm.FirmName, firm.Area,
			[]byte(`["veg","non-veg"]`), []byte(`["south-indian"]`), firm.Offer, firm.Image).
		WillReturnRows(rows)

	saved, err := repo.CreateFirm(context.Background(), firm)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.FirmID != 10 {
		t.Errorf("expected FirmID=10, got %d", saved.FirmID)
	}
	if len(saved.Category) != 2 || saved.Category[0] != "veg" {
		t.Errorf("unexpected category: %v", saved.Category)
	}
	if len(saved.Region) != 1 || saved.Region[0] != "south-indian" {
		t.Errorf("unexpected region: %v", saved.Region)
	}
}

func TestCreateFirm_EmptyListsStoredAsEmptyArrays(t *testing.T) {
	repo, mock, db := newTestFirmRepo(t)
	defer db.Close()

	firm := models.Firm{VendorID: 1, FirmName: "Bare"}

	now := time.Now()
	rows := sqlmock.
		NewRows(firmColumns()).
		AddRow(11, firm.VendorID, firm.FirmName, "", []byte(`[]`), []byte(`[]`), "", "", now)

	mock.ExpectQuery("INSERT INTO firms").
		WithArgs(firm.VendorID, firm.FirmName, "", []byte(`[]`), []byte(`[]`), "", "").
		WillReturnRows(rows)

	saved, err := repo.CreateFirm(context.Background(), firm)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.Category == nil || len(saved.Category) != 0 {
		t.Errorf("expected empty non-nil category, got %v", saved.Category)
	}
}

func TestCreateFirm_NameTaken(t *testing.T) {
	repo, mock, db := newTestFirmRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO firms").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateFirm(context.Background(), models.Firm{VendorID: 1, FirmName: "Pizza Planet"})
	if !errors.Is(err, ErrFirmAlreadyExists) {
		t.Errorf("expected ErrFirmAlreadyExists, got: %v", err)
	}
}

func TestGetFirmByID_Success(t *testing.T) {
	repo, mock, db := newTestFirmRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows(firmColumns()).
		AddRow(5, 2, "Burger Barn", "Uptown", []byte(`["non-veg"]`), []byte(`["punjabi"]`), "", "barn.png", now)

	mock.ExpectQuery("SELECT (.+) FROM firms").
		WithArgs(int64(5)).
		WillReturnRows(rows)

	firm, err := repo.GetFirmByID(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if firm.FirmName != "Burger Barn" {
		t.Errorf("expected firm name Burger Barn, got %s", firm.FirmName)
	}
	if firm.VendorID != 2 {
		t.Errorf("expected VendorID=2, got %d", firm.VendorID)
	}
}

func TestGetFirmByID_NotFound(t *testing.T) {
	repo, mock, db := newTestFirmRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM firms").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetFirmByID(context.Background(), 404)
	if !errors.Is(err, ErrNoFirmWasFound) {
		t.Errorf("expected ErrNoFirmWasFound, got: %v", err)
	}
}

func TestDeleteFirm_Success(t *testing.T) {
	repo, mock, db := newTestFirmRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM firms").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteFirm(context.Background(), 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteFirm_NotFound(t *testing.T) {
	repo, mock, db := newTestFirmRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM firms").
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteFirm(context.Background(), 404)
	if !errors.Is(err, ErrNoFirmWasFound) {
		t.Errorf("expected ErrNoFirmWasFound, got: %v", err)
	}
}
