package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hcanhquan/royalvietnam-backend/internal/app/model"
	"github.com/hcanhquan/royalvietnam-backend/internal/app/service"
	"github.com/hcanhquan/royalvietnam-backend/internal/errors"
	"github.com/hcanhquan/royalvietnam-backend/internal/middleware"
)

type DocumentController struct {
	documentService service.DocumentService
}

func NewDocumentController(documentService service.DocumentService) *DocumentController {
	return &DocumentController{documentService: documentService}
}

type DocumentRequest struct {
	DocumentNumber   string     `json:"documentNumber"`
	DocumentType     string     `json:"documentType"`
	DeliveryCompany  string     `json:"deliveryCompany"`
	ReceivingCompany string     `json:"receivingCompany"`
	DeliveryPerson   string     `json:"deliveryPerson"`
	ReceivingPerson  string     `json:"receivingPerson"`
	DeliveryDate     *time.Time `json:"deliveryDate"`
	ReceivingDate    *time.Time `json:"receivingDate"`
	HandledBy        string     `json:"handledBy"`
	Notes            string     `json:"notes"`
}

type DocumentNumberRequest struct {
	DocumentNumber string `json:"documentNumber" binding:"required"`
}

type PdfPathRequest struct {
	PdfPath string `json:"pdfPath" binding:"required"`
}

// CreateTransaction records a document handover for a business
// POST /api/businesses/:id/documents
func (ctrl *DocumentController) CreateTransaction(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	businessID, err := parseIDParam(c, "id")
	if err != nil {
		errors.BadRequest(c, errors.ValidationInvalidID, "ID doanh nghiệp không hợp lệ")
		return
	}

	var req DocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, errors.ValidationInvalidInput, "Dữ liệu giao dịch không hợp lệ")
		return
	}

	transaction := &model.DocumentTransaction{
		BusinessID:       businessID,
		DocumentNumber:   req.DocumentNumber,
		DocumentType:     req.DocumentType,
		DeliveryCompany:  req.DeliveryCompany,
		ReceivingCompany: req.ReceivingCompany,
		DeliveryPerson:   req.DeliveryPerson,
		ReceivingPerson:  req.ReceivingPerson,
		HandledBy:        req.HandledBy,
		Notes:            req.Notes,
	}
	if req.DeliveryDate != nil {
		transaction.DeliveryDate = *req.DeliveryDate
	}
	transaction.ReceivingDate = req.ReceivingDate

	created, err := ctrl.documentService.CreateTransaction(transaction)
	if err != nil {
		log.Error("Failed to create document transaction", err, map[string]interface{}{
			"business_id": businessID,
		})
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListByBusiness lists transactions for one business, oldest first
// GET /api/businesses/:id/documents
func (ctrl *DocumentController) ListByBusiness(c *gin.Context) {
	businessID, err := parseIDParam(c, "id")
	if err != nil {
		errors.BadRequest(c, errors.ValidationInvalidID, "ID doanh nghiệp không hợp lệ")
		return
	}

	transactions, err := ctrl.documentService.ListTransactionsByBusinessID(businessID)
	if err != nil {
		middleware.GetLoggerFromContext(c).Error("Failed to list document transactions", err, map[string]interface{}{
			"business_id": businessID,
		})
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// ListAll lists every transaction across all businesses
// GET /api/documents
func (ctrl *DocumentController) ListAll(c *gin.Context) {
	transactions, err := ctrl.documentService.ListTransactions()
	if err != nil {
		middleware.GetLoggerFromContext(c).Error("Failed to list document transactions", err, nil)
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// ListByCompany matches the company name on either side of the handover
// GET /api/documents/company/:companyName
func (ctrl *DocumentController) ListByCompany(c *gin.Context) {
	name := c.Param("companyName")

	transactions, err := ctrl.documentService.ListTransactionsByCompanyName(name)
	if err != nil {
		middleware.GetLoggerFromContext(c).Error("Failed to list document transactions by company", err, map[string]interface{}{
			"company": name,
		})
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// ListByTaxID resolves a tax code to a business name and matches on that
// GET /api/documents/tax-id/:taxId
func (ctrl *DocumentController) ListByTaxID(c *gin.Context) {
	taxID := c.Param("taxId")

	transactions, err := ctrl.documentService.ListTransactionsByTaxID(taxID)
	if err != nil {
		middleware.GetLoggerFromContext(c).Error("Failed to list document transactions by tax id", err, map[string]interface{}{
			"tax_id": taxID,
		})
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// UpdateDocumentNumber renames a transaction's document number
// PUT /api/documents/:id/number
func (ctrl *DocumentController) UpdateDocumentNumber(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := parseIDParam(c, "id")
	if err != nil {
		errors.BadRequest(c, errors.ValidationInvalidID, "ID giao dịch không hợp lệ")
		return
	}

	var req DocumentNumberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, errors.ValidationRequired, "Thiếu số hồ sơ")
		return
	}

	transaction, err := ctrl.documentService.UpdateTransaction(id, service.DocumentMutation{
		DocumentNumber: &req.DocumentNumber,
	})
	if err != nil {
		if err == service.ErrTransactionNotFound {
			errors.NotFound(c, errors.DocumentNotFound, "Không tìm thấy giao dịch hồ sơ")
			return
		}
		log.Error("Failed to update document number", err, map[string]interface{}{
			"transaction_id": id,
		})
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, transaction)
}

// AttachPdf stores the signed PDF path on the transaction
// PUT /api/documents/:id/upload-pdf
func (ctrl *DocumentController) AttachPdf(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := parseIDParam(c, "id")
	if err != nil {
		errors.BadRequest(c, errors.ValidationInvalidID, "ID giao dịch không hợp lệ")
		return
	}

	var req PdfPathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, errors.ValidationRequired, "Thiếu đường dẫn tệp PDF")
		return
	}

	transaction, err := ctrl.documentService.AttachSignedFile(id, req.PdfPath)
	if err != nil {
		if err == service.ErrTransactionNotFound {
			errors.NotFound(c, errors.DocumentNotFound, "Không tìm thấy giao dịch hồ sơ")
			return
		}
		log.Error("Failed to attach signed PDF", err, map[string]interface{}{
			"transaction_id": id,
		})
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"pdfPath":     transaction.SignedFilePath,
		"transaction": transaction,
	})
}

// DeleteTransaction removes a transaction after checking the shared password
// DELETE /api/documents/:id
func (ctrl *DocumentController) DeleteTransaction(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := parseIDParam(c, "id")
	if err != nil {
		errors.BadRequest(c, errors.ValidationInvalidID, "ID giao dịch không hợp lệ")
		return
	}

	var req DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, errors.ValidationRequired, "Thiếu mật khẩu xóa")
		return
	}

	if err := ctrl.documentService.DeleteTransaction(id, req.Password); err != nil {
		switch err {
		case service.ErrWrongDeletePassword:
			errors.RespondWithError(c, http.StatusForbidden, errors.BusinessWrongDeletePassword, "Mật khẩu xóa không đúng")
		case service.ErrTransactionNotFound:
			errors.NotFound(c, errors.DocumentNotFound, "Không tìm thấy giao dịch hồ sơ")
		default:
			log.Error("Failed to delete document transaction", err, map[string]interface{}{
				"transaction_id": id,
			})
			errors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Đã xóa giao dịch hồ sơ",
	})
}
