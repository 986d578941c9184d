package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hcanhquan/royalvietnam-backend/internal/app/model"
	"github.com/hcanhquan/royalvietnam-backend/internal/app/repository"
	"github.com/hcanhquan/royalvietnam-backend/internal/app/service"
	"github.com/hcanhquan/royalvietnam-backend/internal/errors"
	"github.com/hcanhquan/royalvietnam-backend/internal/middleware"
)

type BusinessController struct {
	businessService service.BusinessService
	exportService   service.ExportService
}

func NewBusinessController(businessService service.BusinessService, exportService service.ExportService) *BusinessController {
	return &BusinessController{
		businessService: businessService,
		exportService:   exportService,
	}
}

type BusinessRequest struct {
	Name              string        `json:"name" binding:"required"`
	TaxID             string        `json:"taxId" binding:"required"`
	Address           string        `json:"address"`
	Phone             string        `json:"phone"`
	Email             string        `json:"email"`
	Website           string        `json:"website"`
	Industry          string        `json:"industry"`
	ContactPerson     string        `json:"contactPerson"`
	EstablishmentDate string        `json:"establishmentDate"`
	CharterCapital    string        `json:"charterCapital"`
	AuditWebsite      string        `json:"auditWebsite"`
	Account           string        `json:"account"`
	Password          string        `json:"password"`
	BankAccount       string        `json:"bankAccount"`
	BankName          string        `json:"bankName"`
	AccessCode        string        `json:"accessCode"`
	CustomFields      model.JSONMap `json:"customFields"`
	Notes             string        `json:"notes"`

	// Thông tin đăng nhập kèm theo, tạo luôn bản ghi tài khoản nếu có.
	BusinessAccount *AccountRequest `json:"businessAccount"`
}

type DeleteRequest struct {
	Password string `json:"password" binding:"required"`
}

type SearchRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value" binding:"required"`
}

type AccessCodeRequest struct {
	AccessCode string `json:"accessCode" binding:"required"`
}

// ListBusinesses returns one page of the directory
// GET /api/businesses
func (ctrl *BusinessController) ListBusinesses(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	result, err := ctrl.businessService.ListBusinesses(repository.BusinessListOptions{
		Page:      page,
		Limit:     limit,
		SortBy:    c.DefaultQuery("sortBy", "createdAt"),
		SortOrder: c.DefaultQuery("sortOrder", "asc"),
	})
	if err != nil {
		log.Error("Failed to list businesses", err, nil)
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"businesses": result.Businesses,
		"total":      result.Total,
	})
}

// ListAllBusinesses returns the whole directory for autocomplete
// GET /api/businesses/all
func (ctrl *BusinessController) ListAllBusinesses(c *gin.Context) {
	businesses, err := ctrl.businessService.ListAllForAutocomplete()
	if err != nil {
		middleware.GetLoggerFromContext(c).Error("Failed to list businesses for autocomplete", err, nil)
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, businesses)
}

// GetBusinessByID fetches one business
// GET /api/businesses/:id
func (ctrl *BusinessController) GetBusinessByID(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := parseIDParam(c, "id")
	if err != nil {
		errors.BadRequest(c, errors.ValidationInvalidID, "ID doanh nghiệp không hợp lệ")
		return
	}

	business, err := ctrl.businessService.GetBusinessByID(id)
	if err != nil {
		if err == service.ErrBusinessNotFound {
			errors.NotFound(c, errors.BusinessNotFound, "Không tìm thấy doanh nghiệp")
			return
		}
		log.Error("Failed to fetch business", err, map[string]interface{}{
			"business_id": id,
		})
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, business)
}

// CreateBusiness registers a new business
// POST /api/businesses
func (ctrl *BusinessController) CreateBusiness(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req BusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid business creation request", map[string]interface{}{
			"error": err.Error(),
		})
		errors.BadRequest(c, errors.ValidationRequired, "Tên và mã số thuế là bắt buộc")
		return
	}

	business := &model.Business{
		Name:              req.Name,
		TaxID:             req.TaxID,
		Address:           req.Address,
		Phone:             req.Phone,
		Email:             req.Email,
		Website:           req.Website,
		Industry:          req.Industry,
		ContactPerson:     req.ContactPerson,
		EstablishmentDate: req.EstablishmentDate,
		CharterCapital:    req.CharterCapital,
		AuditWebsite:      req.AuditWebsite,
		Account:           req.Account,
		Password:          req.Password,
		BankAccount:       req.BankAccount,
		BankName:          req.BankName,
		AccessCode:        req.AccessCode,
		CustomFields:      req.CustomFields,
		Notes:             req.Notes,
	}

	var account *model.BusinessAccount
	if req.BusinessAccount != nil {
		account = req.BusinessAccount.toModel()
	}

	created, err := ctrl.businessService.CreateBusiness(business, account)
	if err != nil {
		if err == service.ErrTaxIDExists {
			errors.BadRequest(c, errors.BusinessTaxIDExists, "Mã số thuế đã tồn tại")
			return
		}
		log.Error("Failed to create business", err, map[string]interface{}{
			"tax_id": req.TaxID,
		})
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdateBusiness partially updates a business
// PUT /api/businesses/:id
func (ctrl *BusinessController) UpdateBusiness(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := parseIDParam(c, "id")
	if err != nil {
		errors.BadRequest(c, errors.ValidationInvalidID, "ID doanh nghiệp không hợp lệ")
		return
	}

	var input service.BusinessMutation
	if err := bindBusinessMutation(c, &input); err != nil {
		errors.BadRequest(c, errors.ValidationInvalidInput, "Dữ liệu cập nhật không hợp lệ")
		return
	}

	business, err := ctrl.businessService.UpdateBusiness(id, input)
	if err != nil {
		switch err {
		case service.ErrBusinessNotFound:
			errors.NotFound(c, errors.BusinessNotFound, "Không tìm thấy doanh nghiệp")
		case service.ErrTaxIDExists:
			errors.BadRequest(c, errors.BusinessTaxIDExists, "Mã số thuế đã tồn tại")
		default:
			log.Error("Failed to update business", err, map[string]interface{}{
				"business_id": id,
			})
			errors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, business)
}

// DeleteBusiness removes a business after checking the shared delete password
// DELETE /api/businesses/:id
func (ctrl *BusinessController) DeleteBusiness(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := parseIDParam(c, "id")
	if err != nil {
		errors.BadRequest(c, errors.ValidationInvalidID, "ID doanh nghiệp không hợp lệ")
		return
	}

	var req DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, errors.ValidationRequired, "Thiếu mật khẩu xóa")
		return
	}

	if err := ctrl.businessService.DeleteBusiness(id, req.Password); err != nil {
		switch err {
		case service.ErrWrongDeletePassword:
			errors.RespondWithError(c, http.StatusForbidden, errors.BusinessWrongDeletePassword, "Mật khẩu xóa không đúng")
		case service.ErrBusinessNotFound:
			errors.NotFound(c, errors.BusinessNotFound, "Không tìm thấy doanh nghiệp")
		default:
			log.Error("Failed to delete business", err, map[string]interface{}{
				"business_id": id,
			})
			errors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Đã xóa doanh nghiệp",
	})
}

// SearchBusinesses searches by one whitelisted field
// POST /api/businesses/search
func (ctrl *BusinessController) SearchBusinesses(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, errors.ValidationRequired, "Thiếu trường tìm kiếm hoặc giá trị")
		return
	}

	businesses, err := ctrl.businessService.SearchBusinesses(req.Field, req.Value)
	if err != nil {
		middleware.GetLoggerFromContext(c).Error("Failed to search businesses", err, map[string]interface{}{
			"field": req.Field,
		})
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, businesses)
}

// UpdateAccessCode sets the business portal access code (admin only)
// PUT /api/businesses/:id/access-code
func (ctrl *BusinessController) UpdateAccessCode(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := parseIDParam(c, "id")
	if err != nil {
		errors.BadRequest(c, errors.ValidationInvalidID, "ID doanh nghiệp không hợp lệ")
		return
	}

	var req AccessCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, errors.ValidationRequired, "Thiếu mã truy cập")
		return
	}

	business, err := ctrl.businessService.UpdateAccessCode(id, req.AccessCode)
	if err != nil {
		if err == service.ErrBusinessNotFound {
			errors.NotFound(c, errors.BusinessNotFound, "Không tìm thấy doanh nghiệp")
			return
		}
		log.Error("Failed to update access code", err, map[string]interface{}{
			"business_id": id,
		})
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, business)
}

// ExportBusinesses streams the directory as an xlsx workbook
// GET /api/businesses/export
func (ctrl *BusinessController) ExportBusinesses(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	workbook, err := ctrl.exportService.BuildBusinessWorkbook()
	if err != nil {
		log.Error("Failed to build business workbook", err, nil)
		errors.InternalError(c, "")
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="doanh-nghiep.xlsx"`)
	if err := workbook.Write(c.Writer); err != nil {
		log.Error("Failed to stream business workbook", err, nil)
	}
}

func parseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func bindBusinessMutation(c *gin.Context, input *service.BusinessMutation) error {
	var req struct {
		Name              *string       `json:"name"`
		TaxID             *string       `json:"taxId"`
		Address           *string       `json:"address"`
		Phone             *string       `json:"phone"`
		Email             *string       `json:"email"`
		Website           *string       `json:"website"`
		Industry          *string       `json:"industry"`
		ContactPerson     *string       `json:"contactPerson"`
		EstablishmentDate *string       `json:"establishmentDate"`
		CharterCapital    *string       `json:"charterCapital"`
		AuditWebsite      *string       `json:"auditWebsite"`
		Account           *string       `json:"account"`
		Password          *string       `json:"password"`
		BankAccount       *string       `json:"bankAccount"`
		BankName          *string       `json:"bankName"`
		AccessCode        *string       `json:"accessCode"`
		CustomFields      model.JSONMap `json:"customFields"`
		Notes             *string       `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return err
	}

	input.Name = req.Name
	input.TaxID = req.TaxID
	input.Address = req.Address
	input.Phone = req.Phone
	input.Email = req.Email
	input.Website = req.Website
	input.Industry = req.Industry
	input.ContactPerson = req.ContactPerson
	input.EstablishmentDate = req.EstablishmentDate
	input.CharterCapital = req.CharterCapital
	input.AuditWebsite = req.AuditWebsite
	input.Account = req.Account
	input.Password = req.Password
	input.BankAccount = req.BankAccount
	input.BankName = req.BankName
	input.AccessCode = req.AccessCode
	input.CustomFields = req.CustomFields
	input.Notes = req.Notes
	return nil
}
