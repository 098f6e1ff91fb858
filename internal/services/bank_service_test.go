package services

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bank-service/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "banks_test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open test database")

	require.NoError(t, db.AutoMigrate(&models.Bank{}))
	return db
}

func TestCreateBank(t *testing.T) {
	svc := NewBankService(setupTestDB(t))

	bank, err := svc.Create(CreateBankDTO{Name: "Test Bank", Location: "Test City"})
	require.NoError(t, err)

	assert.NotZero(t, bank.ID)
	assert.Equal(t, "Test Bank", bank.Name)
	assert.Equal(t, "Test City", bank.Location)

	// Fresh id must be resolvable right away.
	got, err := svc.Get(bank.ID)
	require.NoError(t, err)
	assert.Equal(t, bank, got)
}

func TestCreateBankValidation(t *testing.T) {
	svc := NewBankService(setupTestDB(t))

	_, err := svc.Create(CreateBankDTO{Name: "", Location: "Test City"})
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = svc.Create(CreateBankDTO{Name: "Test Bank", Location: ""})
	assert.ErrorIs(t, err, ErrLocationRequired)

	// Failed creates must not leave rows behind.
	banks, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, banks, 0)
}

func TestListBanks(t *testing.T) {
	svc := NewBankService(setupTestDB(t))

	banks, err := svc.List()
	require.NoError(t, err)
	assert.NotNil(t, banks)
	assert.Len(t, banks, 0)

	_, err = svc.Create(CreateBankDTO{Name: "Bank A", Location: "City A"})
	require.NoError(t, err)
	_, err = svc.Create(CreateBankDTO{Name: "Bank B", Location: "City B"})
	require.NoError(t, err)

	banks, err = svc.List()
	require.NoError(t, err)
	require.Len(t, banks, 2)
	assert.Equal(t, "Bank A", banks[0].Name)
	assert.Equal(t, "Bank B", banks[1].Name)
}

func TestGetBankNotFound(t *testing.T) {
	svc := NewBankService(setupTestDB(t))

	_, err := svc.Get(9999)
	assert.ErrorIs(t, err, ErrBankNotFound)
}

func TestUpdateBankPartial(t *testing.T) {
	svc := NewBankService(setupTestDB(t))

	bank, err := svc.Create(CreateBankDTO{Name: "Old Name", Location: "Old City"})
	require.NoError(t, err)

	newLocation := "New City"
	updated, err := svc.Update(bank.ID, BankPatch{Location: &newLocation})
	require.NoError(t, err)

	assert.Equal(t, "Old Name", updated.Name, "omitted field must keep its value")
	assert.Equal(t, "New City", updated.Location)

	// The change must be persisted, not just echoed.
	got, err := svc.Get(bank.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestUpdateBankNotFound(t *testing.T) {
	svc := NewBankService(setupTestDB(t))

	name := "Ghost Bank"
	_, err := svc.Update(404, BankPatch{Name: &name})
	assert.ErrorIs(t, err, ErrBankNotFound)
}

func TestUpdateBankEmptyField(t *testing.T) {
	svc := NewBankService(setupTestDB(t))

	bank, err := svc.Create(CreateBankDTO{Name: "Test Bank", Location: "Test City"})
	require.NoError(t, err)

	empty := ""
	_, err = svc.Update(bank.ID, BankPatch{Name: &empty})
	assert.ErrorIs(t, err, ErrNameRequired)

	// Rejected patch must not write anything.
	got, err := svc.Get(bank.ID)
	require.NoError(t, err)
	assert.Equal(t, "Test Bank", got.Name)
}

func TestDeleteBank(t *testing.T) {
	svc := NewBankService(setupTestDB(t))

	bank, err := svc.Create(CreateBankDTO{Name: "Test Bank", Location: "Test City"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(bank.ID))

	_, err = svc.Get(bank.ID)
	assert.ErrorIs(t, err, ErrBankNotFound)

	// Deleting again reports not-found; it never succeeds twice.
	assert.ErrorIs(t, svc.Delete(bank.ID), ErrBankNotFound)
}

func TestBankPatchApply(t *testing.T) {
	bank := models.Bank{ID: 1, Name: "Old Name", Location: "Old City"}

	name := "New Name"
	patched := BankPatch{Name: &name}.Apply(bank)
	assert.Equal(t, "New Name", patched.Name)
	assert.Equal(t, "Old City", patched.Location)

	// Apply must not mutate its input.
	assert.Equal(t, "Old Name", bank.Name)
}
