package service

import (
	"errors"

	"github.com/hcanhquan/royalvietnam-backend/internal/app/model"
	"github.com/hcanhquan/royalvietnam-backend/internal/app/repository"
	apperrors "github.com/hcanhquan/royalvietnam-backend/internal/errors"
	"github.com/hcanhquan/royalvietnam-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrBusinessNotFound    = errors.New("không tìm thấy doanh nghiệp")
	ErrTaxIDExists         = errors.New("mã số thuế đã tồn tại")
	ErrWrongDeletePassword = errors.New("mật khẩu xóa không đúng")
)

// BusinessMutation carries a partial update. Nil fields are left untouched.
type BusinessMutation struct {
	Name              *string
	TaxID             *string
	Address           *string
	Phone             *string
	Email             *string
	Website           *string
	Industry          *string
	ContactPerson     *string
	EstablishmentDate *string
	CharterCapital    *string
	AuditWebsite      *string
	Account           *string
	Password          *string
	BankAccount       *string
	BankName          *string
	AccessCode        *string
	CustomFields      model.JSONMap
	Notes             *string
}

type BusinessService interface {
	CreateBusiness(business *model.Business, account *model.BusinessAccount) (*model.Business, error)
	GetBusinessByID(id uint) (*model.Business, error)
	GetBusinessByTaxID(taxID string) (*model.Business, error)
	ListBusinesses(opts repository.BusinessListOptions) (*repository.BusinessListResult, error)
	ListAllForAutocomplete() ([]model.Business, error)
	UpdateBusiness(id uint, input BusinessMutation) (*model.Business, error)
	DeleteBusiness(id uint, password string) error
	SearchBusinesses(field, value string) ([]model.Business, error)
	UpdateAccessCode(id uint, accessCode string) (*model.Business, error)
}

type businessService struct {
	businessRepo   repository.BusinessRepository
	accountRepo    repository.AccountRepository
	deletePassword string
}

func NewBusinessService(businessRepo repository.BusinessRepository, accountRepo repository.AccountRepository, deletePassword string) BusinessService {
	return &businessService{
		businessRepo:   businessRepo,
		accountRepo:    accountRepo,
		deletePassword: deletePassword,
	}
}

func (s *businessService) CreateBusiness(business *model.Business, account *model.BusinessAccount) (*model.Business, error) {
	logger.Debug("Creating business", map[string]interface{}{
		"name":   business.Name,
		"tax_id": business.TaxID,
	})

	if business.CustomFields == nil {
		business.CustomFields = model.JSONMap{}
	}

	if err := s.businessRepo.Create(business); err != nil {
		if apperrors.IsDuplicateKey(err) {
			return nil, ErrTaxIDExists
		}
		return nil, err
	}

	// Bản ghi tài khoản đi kèm chỉ được tạo khi có thông tin đăng nhập. Tạo
	// hỏng thì bỏ qua, người dùng vẫn bổ sung được qua upsert sau này.
	if account != nil && account.HasCredentials() {
		account.BusinessID = business.ID
		if err := s.accountRepo.Create(account); err != nil {
			logger.Warn("Failed to create initial account for business", map[string]interface{}{
				"business_id": business.ID,
				"error":       err.Error(),
			})
		}
	}

	logger.Info("Business created", map[string]interface{}{
		"business_id": business.ID,
		"tax_id":      business.TaxID,
	})
	return business, nil
}

func (s *businessService) GetBusinessByID(id uint) (*model.Business, error) {
	business, err := s.businessRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBusinessNotFound
		}
		return nil, err
	}
	return business, nil
}

func (s *businessService) GetBusinessByTaxID(taxID string) (*model.Business, error) {
	business, err := s.businessRepo.FindByTaxID(taxID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBusinessNotFound
		}
		return nil, err
	}
	return business, nil
}

func (s *businessService) ListBusinesses(opts repository.BusinessListOptions) (*repository.BusinessListResult, error) {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit < 1 {
		opts.Limit = 10
	}
	if opts.Limit > 100 {
		opts.Limit = 100
	}
	if opts.SortOrder != "desc" {
		opts.SortOrder = "asc"
	}
	return s.businessRepo.FindAll(opts)
}

func (s *businessService) ListAllForAutocomplete() ([]model.Business, error) {
	return s.businessRepo.FindAllByName()
}

func (s *businessService) UpdateBusiness(id uint, input BusinessMutation) (*model.Business, error) {
	if _, err := s.GetBusinessByID(id); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.TaxID != nil {
		fields["tax_id"] = *input.TaxID
	}
	if input.Address != nil {
		fields["address"] = *input.Address
	}
	if input.Phone != nil {
		fields["phone"] = *input.Phone
	}
	if input.Email != nil {
		fields["email"] = *input.Email
	}
	if input.Website != nil {
		fields["website"] = *input.Website
	}
	if input.Industry != nil {
		fields["industry"] = *input.Industry
	}
	if input.ContactPerson != nil {
		fields["contact_person"] = *input.ContactPerson
	}
	if input.EstablishmentDate != nil {
		fields["establishment_date"] = *input.EstablishmentDate
	}
	if input.CharterCapital != nil {
		fields["charter_capital"] = *input.CharterCapital
	}
	if input.AuditWebsite != nil {
		fields["audit_website"] = *input.AuditWebsite
	}
	if input.Account != nil {
		fields["account"] = *input.Account
	}
	if input.Password != nil {
		fields["password"] = *input.Password
	}
	if input.BankAccount != nil {
		fields["bank_account"] = *input.BankAccount
	}
	if input.BankName != nil {
		fields["bank_name"] = *input.BankName
	}
	if input.AccessCode != nil {
		fields["access_code"] = *input.AccessCode
	}
	if input.CustomFields != nil {
		fields["custom_fields"] = input.CustomFields
	}
	if input.Notes != nil {
		fields["notes"] = *input.Notes
	}

	if len(fields) > 0 {
		if err := s.businessRepo.UpdateFields(id, fields); err != nil {
			if apperrors.IsDuplicateKey(err) {
				return nil, ErrTaxIDExists
			}
			return nil, err
		}
	}

	return s.businessRepo.FindByID(id)
}

// DeleteBusiness removes a business and its dependent rows after verifying the
// shared delete password.
func (s *businessService) DeleteBusiness(id uint, password string) error {
	if password != s.deletePassword {
		logger.Warn("Business delete rejected, wrong password", map[string]interface{}{
			"business_id": id,
		})
		return ErrWrongDeletePassword
	}

	rows, err := s.businessRepo.Delete(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrBusinessNotFound
	}

	logger.Info("Business deleted", map[string]interface{}{
		"business_id": id,
	})
	return nil
}

func (s *businessService) SearchBusinesses(field, value string) ([]model.Business, error) {
	return s.businessRepo.Search(field, value)
}

func (s *businessService) UpdateAccessCode(id uint, accessCode string) (*model.Business, error) {
	if _, err := s.GetBusinessByID(id); err != nil {
		return nil, err
	}

	if err := s.businessRepo.UpdateFields(id, map[string]interface{}{"access_code": accessCode}); err != nil {
		return nil, err
	}
	return s.businessRepo.FindByID(id)
}
