package service

import (
	"errors"

	"github.com/hcanhquan/royalvietnam-backend/internal/app/model"
	"github.com/hcanhquan/royalvietnam-backend/internal/app/repository"
	"github.com/hcanhquan/royalvietnam-backend/pkg/logger"
	"gorm.io/gorm"
)

var ErrAccountNotFound = errors.New("không tìm thấy tài khoản doanh nghiệp")

// AccountMutation carries credential updates. Nil fields are left untouched.
type AccountMutation struct {
	InvoiceLookupID              *string
	InvoiceLookupPass            *string
	WebInvoiceWebsite            *string
	WebInvoiceID                 *string
	WebInvoicePass               *string
	SocialInsuranceCode          *string
	SocialInsuranceID            *string
	SocialInsuranceMainPass      *string
	SocialInsuranceSecondaryPass *string
	SocialInsuranceContact       *string
	StatisticsID                 *string
	StatisticsPass               *string
	TokenID                      *string
	TokenPass                    *string
	TokenProvider                *string
	TokenRegistrationDate        *string
	TokenExpirationDate          *string
	TaxAccountID                 *string
	TaxAccountPass               *string
}

type AccountService interface {
	GetAccountByBusinessID(businessID uint) (*model.BusinessAccount, error)
	UpsertAccount(businessID uint, input AccountMutation) (*model.BusinessAccount, error)
}

type accountService struct {
	accountRepo  repository.AccountRepository
	businessRepo repository.BusinessRepository
}

func NewAccountService(accountRepo repository.AccountRepository, businessRepo repository.BusinessRepository) AccountService {
	return &accountService{
		accountRepo:  accountRepo,
		businessRepo: businessRepo,
	}
}

func (s *accountService) GetAccountByBusinessID(businessID uint) (*model.BusinessAccount, error) {
	account, err := s.accountRepo.FindByBusinessID(businessID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return account, nil
}

// UpsertAccount updates the business's credential record in place, creating it
// when none exists yet.
func (s *accountService) UpsertAccount(businessID uint, input AccountMutation) (*model.BusinessAccount, error) {
	if _, err := s.businessRepo.FindByID(businessID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBusinessNotFound
		}
		return nil, err
	}

	account, err := s.accountRepo.FindByBusinessID(businessID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		account = &model.BusinessAccount{BusinessID: businessID}
		applyAccountMutation(account, input)

		logger.Debug("No existing account, creating", map[string]interface{}{
			"business_id": businessID,
		})
		if err := s.accountRepo.Create(account); err != nil {
			return nil, err
		}
		return account, nil
	}

	applyAccountMutation(account, input)
	if err := s.accountRepo.Update(account); err != nil {
		return nil, err
	}
	return account, nil
}

func applyAccountMutation(account *model.BusinessAccount, input AccountMutation) {
	if input.InvoiceLookupID != nil {
		account.InvoiceLookupID = *input.InvoiceLookupID
	}
	if input.InvoiceLookupPass != nil {
		account.InvoiceLookupPass = *input.InvoiceLookupPass
	}
	if input.WebInvoiceWebsite != nil {
		account.WebInvoiceWebsite = *input.WebInvoiceWebsite
	}
	if input.WebInvoiceID != nil {
		account.WebInvoiceID = *input.WebInvoiceID
	}
	if input.WebInvoicePass != nil {
		account.WebInvoicePass = *input.WebInvoicePass
	}
	if input.SocialInsuranceCode != nil {
		account.SocialInsuranceCode = *input.SocialInsuranceCode
	}
	if input.SocialInsuranceID != nil {
		account.SocialInsuranceID = *input.SocialInsuranceID
	}
	if input.SocialInsuranceMainPass != nil {
		account.SocialInsuranceMainPass = *input.SocialInsuranceMainPass
	}
	if input.SocialInsuranceSecondaryPass != nil {
		account.SocialInsuranceSecondaryPass = *input.SocialInsuranceSecondaryPass
	}
	if input.SocialInsuranceContact != nil {
		account.SocialInsuranceContact = *input.SocialInsuranceContact
	}
	if input.StatisticsID != nil {
		account.StatisticsID = *input.StatisticsID
	}
	if input.StatisticsPass != nil {
		account.StatisticsPass = *input.StatisticsPass
	}
	if input.TokenID != nil {
		account.TokenID = *input.TokenID
	}
	if input.TokenPass != nil {
		account.TokenPass = *input.TokenPass
	}
	if input.TokenProvider != nil {
		account.TokenProvider = *input.TokenProvider
	}
	if input.TokenRegistrationDate != nil {
		account.TokenRegistrationDate = *input.TokenRegistrationDate
	}
	if input.TokenExpirationDate != nil {
		account.TokenExpirationDate = *input.TokenExpirationDate
	}
	if input.TaxAccountID != nil {
		account.TaxAccountID = *input.TaxAccountID
	}
	if input.TaxAccountPass != nil {
		account.TaxAccountPass = *input.TaxAccountPass
	}
}
