package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hcanhquan/royalvietnam-backend/internal/app/model"
	"github.com/hcanhquan/royalvietnam-backend/internal/app/service"
	"github.com/hcanhquan/royalvietnam-backend/internal/errors"
	"github.com/hcanhquan/royalvietnam-backend/internal/middleware"
)

type AccountController struct {
	accountService service.AccountService
}

func NewAccountController(accountService service.AccountService) *AccountController {
	return &AccountController{accountService: accountService}
}

// AccountRequest mirrors the credential fields; absent fields stay untouched
// on update.
type AccountRequest struct {
	InvoiceLookupID              *string `json:"invoiceLookupId"`
	InvoiceLookupPass            *string `json:"invoiceLookupPass"`
	WebInvoiceWebsite            *string `json:"webInvoiceWebsite"`
	WebInvoiceID                 *string `json:"webInvoiceId"`
	WebInvoicePass               *string `json:"webInvoicePass"`
	SocialInsuranceCode          *string `json:"socialInsuranceCode"`
	SocialInsuranceID            *string `json:"socialInsuranceId"`
	SocialInsuranceMainPass      *string `json:"socialInsuranceMainPass"`
	SocialInsuranceSecondaryPass *string `json:"socialInsuranceSecondaryPass"`
	SocialInsuranceContact       *string `json:"socialInsuranceContact"`
	StatisticsID                 *string `json:"statisticsId"`
	StatisticsPass               *string `json:"statisticsPass"`
	TokenID                      *string `json:"tokenId"`
	TokenPass                    *string `json:"tokenPass"`
	TokenProvider                *string `json:"tokenProvider"`
	TokenRegistrationDate        *string `json:"tokenRegistrationDate"`
	TokenExpirationDate          *string `json:"tokenExpirationDate"`
	TaxAccountID                 *string `json:"taxAccountId"`
	TaxAccountPass               *string `json:"taxAccountPass"`
}

func (req *AccountRequest) toMutation() service.AccountMutation {
	return service.AccountMutation{
		InvoiceLookupID:              req.InvoiceLookupID,
		InvoiceLookupPass:            req.InvoiceLookupPass,
		WebInvoiceWebsite:            req.WebInvoiceWebsite,
		WebInvoiceID:                 req.WebInvoiceID,
		WebInvoicePass:               req.WebInvoicePass,
		SocialInsuranceCode:          req.SocialInsuranceCode,
		SocialInsuranceID:            req.SocialInsuranceID,
		SocialInsuranceMainPass:      req.SocialInsuranceMainPass,
		SocialInsuranceSecondaryPass: req.SocialInsuranceSecondaryPass,
		SocialInsuranceContact:       req.SocialInsuranceContact,
		StatisticsID:                 req.StatisticsID,
		StatisticsPass:               req.StatisticsPass,
		TokenID:                      req.TokenID,
		TokenPass:                    req.TokenPass,
		TokenProvider:                req.TokenProvider,
		TokenRegistrationDate:        req.TokenRegistrationDate,
		TokenExpirationDate:          req.TokenExpirationDate,
		TaxAccountID:                 req.TaxAccountID,
		TaxAccountPass:               req.TaxAccountPass,
	}
}

func (req *AccountRequest) toModel() *model.BusinessAccount {
	account := &model.BusinessAccount{}
	applyStr := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	applyStr(&account.InvoiceLookupID, req.InvoiceLookupID)
	applyStr(&account.InvoiceLookupPass, req.InvoiceLookupPass)
	applyStr(&account.WebInvoiceWebsite, req.WebInvoiceWebsite)
	applyStr(&account.WebInvoiceID, req.WebInvoiceID)
	applyStr(&account.WebInvoicePass, req.WebInvoicePass)
	applyStr(&account.SocialInsuranceCode, req.SocialInsuranceCode)
	applyStr(&account.SocialInsuranceID, req.SocialInsuranceID)
	applyStr(&account.SocialInsuranceMainPass, req.SocialInsuranceMainPass)
	applyStr(&account.SocialInsuranceSecondaryPass, req.SocialInsuranceSecondaryPass)
	applyStr(&account.SocialInsuranceContact, req.SocialInsuranceContact)
	applyStr(&account.StatisticsID, req.StatisticsID)
	applyStr(&account.StatisticsPass, req.StatisticsPass)
	applyStr(&account.TokenID, req.TokenID)
	applyStr(&account.TokenPass, req.TokenPass)
	applyStr(&account.TokenProvider, req.TokenProvider)
	applyStr(&account.TokenRegistrationDate, req.TokenRegistrationDate)
	applyStr(&account.TokenExpirationDate, req.TokenExpirationDate)
	applyStr(&account.TaxAccountID, req.TaxAccountID)
	applyStr(&account.TaxAccountPass, req.TaxAccountPass)
	return account
}

// GetAccount returns the credential record, or null when none exists yet
// GET /api/businesses/:id/accounts
func (ctrl *AccountController) GetAccount(c *gin.Context) {
	businessID, err := parseIDParam(c, "id")
	if err != nil {
		errors.BadRequest(c, errors.ValidationInvalidID, "ID doanh nghiệp không hợp lệ")
		return
	}

	account, err := ctrl.accountService.GetAccountByBusinessID(businessID)
	if err != nil {
		if err == service.ErrAccountNotFound {
			// Chưa có tài khoản không phải là lỗi.
			c.JSON(http.StatusOK, nil)
			return
		}
		middleware.GetLoggerFromContext(c).Error("Failed to fetch business account", err, map[string]interface{}{
			"business_id": businessID,
		})
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, account)
}

// CreateAccount inserts a credential record for the business
// POST /api/businesses/:id/accounts
func (ctrl *AccountController) CreateAccount(c *gin.Context) {
	ctrl.upsert(c, http.StatusCreated)
}

// UpsertAccount updates the credential record, creating it when missing
// PUT /api/businesses/:id/accounts
func (ctrl *AccountController) UpsertAccount(c *gin.Context) {
	ctrl.upsert(c, http.StatusOK)
}

func (ctrl *AccountController) upsert(c *gin.Context, successStatus int) {
	log := middleware.GetLoggerFromContext(c)

	businessID, err := parseIDParam(c, "id")
	if err != nil {
		errors.BadRequest(c, errors.ValidationInvalidID, "ID doanh nghiệp không hợp lệ")
		return
	}

	var req AccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, errors.ValidationInvalidInput, "Dữ liệu tài khoản không hợp lệ")
		return
	}

	account, err := ctrl.accountService.UpsertAccount(businessID, req.toMutation())
	if err != nil {
		if err == service.ErrBusinessNotFound {
			errors.NotFound(c, errors.BusinessNotFound, "Không tìm thấy doanh nghiệp")
			return
		}
		log.Error("Failed to upsert business account", err, map[string]interface{}{
			"business_id": businessID,
		})
		errors.InternalError(c, "")
		return
	}

	c.JSON(successStatus, account)
}
