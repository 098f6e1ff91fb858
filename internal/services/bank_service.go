package services

import (
	"errors"

	"gorm.io/gorm"

	"bank-service/internal/models"
)

var (
	// ErrBankNotFound indicates that no bank exists with the given id.
	ErrBankNotFound = errors.New("bank not found")
	// ErrNameRequired indicates a missing or empty name.
	ErrNameRequired = errors.New("name is required")
	// ErrLocationRequired indicates a missing or empty location.
	ErrLocationRequired = errors.New("location is required")
)

// BankService owns all reads and writes of bank records. Both the JSON API
// and the HTML form flow go through it, so validation lives here once.
type BankService struct {
	DB *gorm.DB
}

func NewBankService(db *gorm.DB) *BankService {
	return &BankService{DB: db}
}

type CreateBankDTO struct {
	Name     string
	Location string
}

// BankPatch is a partial update: nil fields keep their stored values.
type BankPatch struct {
	Name     *string
	Location *string
}

// Apply merges the patch into an existing record and returns the result.
func (p BankPatch) Apply(bank models.Bank) models.Bank {
	if p.Name != nil {
		bank.Name = *p.Name
	}
	if p.Location != nil {
		bank.Location = *p.Location
	}
	return bank
}

// Validate rejects supplied-but-empty fields. Same policy as create: a
// field may be omitted, but never blanked.
func (p BankPatch) Validate() error {
	if p.Name != nil && *p.Name == "" {
		return ErrNameRequired
	}
	if p.Location != nil && *p.Location == "" {
		return ErrLocationRequired
	}
	return nil
}

func (s *BankService) Create(data CreateBankDTO) (models.Bank, error) {
	if data.Name == "" {
		return models.Bank{}, ErrNameRequired
	}
	if data.Location == "" {
		return models.Bank{}, ErrLocationRequired
	}

	bank := models.Bank{
		Name:     data.Name,
		Location: data.Location,
	}
	if err := s.DB.Create(&bank).Error; err != nil {
		return models.Bank{}, err
	}
	return bank, nil
}

func (s *BankService) Get(id int) (models.Bank, error) {
	var bank models.Bank
	if err := s.DB.First(&bank, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Bank{}, ErrBankNotFound
		}
		return models.Bank{}, err
	}
	return bank, nil
}

func (s *BankService) List() ([]models.Bank, error) {
	banks := make([]models.Bank, 0)
	if err := s.DB.Order("id").Find(&banks).Error; err != nil {
		return nil, err
	}
	return banks, nil
}

func (s *BankService) Update(id int, patch BankPatch) (models.Bank, error) {
	bank, err := s.Get(id)
	if err != nil {
		return models.Bank{}, err
	}
	if err := patch.Validate(); err != nil {
		return models.Bank{}, err
	}

	bank = patch.Apply(bank)
	if err := s.DB.Save(&bank).Error; err != nil {
		return models.Bank{}, err
	}
	return bank, nil
}

func (s *BankService) Delete(id int) error {
	tx := s.DB.Delete(&models.Bank{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrBankNotFound
	}
	return nil
}
