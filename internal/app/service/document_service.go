package service

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/hcanhquan/royalvietnam-backend/internal/app/model"
	"github.com/hcanhquan/royalvietnam-backend/internal/app/repository"
	"github.com/hcanhquan/royalvietnam-backend/pkg/logger"
	"gorm.io/gorm"
)

var ErrTransactionNotFound = errors.New("không tìm thấy giao dịch hồ sơ")

// DocumentMutation carries a partial update to a transaction.
type DocumentMutation struct {
	DocumentNumber   *string
	DocumentType     *string
	DeliveryCompany  *string
	ReceivingCompany *string
	DeliveryPerson   *string
	ReceivingPerson  *string
	DeliveryDate     *time.Time
	ReceivingDate    *time.Time
	HandledBy        *string
	Notes            *string
	Status           *string
	IsHidden         *bool
}

type DocumentService interface {
	CreateTransaction(transaction *model.DocumentTransaction) (*model.DocumentTransaction, error)
	GetTransactionByID(id uint) (*model.DocumentTransaction, error)
	ListTransactions() ([]model.DocumentTransaction, error)
	ListTransactionsByBusinessID(businessID uint) ([]model.DocumentTransaction, error)
	ListTransactionsByCompanyName(name string) ([]model.DocumentTransaction, error)
	ListTransactionsByTaxID(taxID string) ([]model.DocumentTransaction, error)
	UpdateTransaction(id uint, input DocumentMutation) (*model.DocumentTransaction, error)
	AttachSignedFile(id uint, rawPath string) (*model.DocumentTransaction, error)
	DeleteTransaction(id uint, password string) error
}

type documentService struct {
	documentRepo   repository.DocumentRepository
	businessRepo   repository.BusinessRepository
	deletePassword string
}

func NewDocumentService(documentRepo repository.DocumentRepository, businessRepo repository.BusinessRepository, deletePassword string) DocumentService {
	return &documentService{
		documentRepo:   documentRepo,
		businessRepo:   businessRepo,
		deletePassword: deletePassword,
	}
}

// CreateTransaction fills defaults and inserts. The business id is not
// checked here; a dangling reference surfaces as a storage error.
func (s *documentService) CreateTransaction(transaction *model.DocumentTransaction) (*model.DocumentTransaction, error) {
	// Loại hồ sơ ngoài danh sách rơi về "Hồ sơ khác".
	if !model.IsValidDocumentType(transaction.DocumentType) {
		transaction.DocumentType = model.DocumentTypeOther
	}
	if transaction.DeliveryDate.IsZero() {
		transaction.DeliveryDate = time.Now()
	}
	if transaction.ReceivingDate == nil {
		now := time.Now()
		transaction.ReceivingDate = &now
	}
	if transaction.Status == "" {
		transaction.Status = model.TransactionStatusPending
	}

	if err := s.documentRepo.Create(transaction); err != nil {
		return nil, err
	}

	logger.Info("Document transaction created", map[string]interface{}{
		"transaction_id": transaction.ID,
		"business_id":    transaction.BusinessID,
		"document_type":  transaction.DocumentType,
	})
	return transaction, nil
}

func (s *documentService) GetTransactionByID(id uint) (*model.DocumentTransaction, error) {
	transaction, err := s.documentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return transaction, nil
}

func (s *documentService) ListTransactions() ([]model.DocumentTransaction, error) {
	return s.documentRepo.FindAll()
}

func (s *documentService) ListTransactionsByBusinessID(businessID uint) ([]model.DocumentTransaction, error) {
	return s.documentRepo.FindByBusinessID(businessID)
}

func (s *documentService) ListTransactionsByCompanyName(name string) ([]model.DocumentTransaction, error) {
	return s.documentRepo.FindByCompanyName(name)
}

// ListTransactionsByTaxID resolves the tax code to a business and matches
// transactions by that business's name on either side of the handover. An
// unknown tax code yields an empty list, not an error.
func (s *documentService) ListTransactionsByTaxID(taxID string) ([]model.DocumentTransaction, error) {
	business, err := s.businessRepo.FindByTaxID(taxID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []model.DocumentTransaction{}, nil
		}
		return nil, err
	}
	return s.documentRepo.FindByCompanyName(business.Name)
}

func (s *documentService) UpdateTransaction(id uint, input DocumentMutation) (*model.DocumentTransaction, error) {
	if _, err := s.GetTransactionByID(id); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if input.DocumentNumber != nil {
		fields["document_number"] = *input.DocumentNumber
	}
	if input.DocumentType != nil {
		documentType := *input.DocumentType
		if !model.IsValidDocumentType(documentType) {
			documentType = model.DocumentTypeOther
		}
		fields["document_type"] = documentType
	}
	if input.DeliveryCompany != nil {
		fields["delivery_company"] = *input.DeliveryCompany
	}
	if input.ReceivingCompany != nil {
		fields["receiving_company"] = *input.ReceivingCompany
	}
	if input.DeliveryPerson != nil {
		fields["delivery_person"] = *input.DeliveryPerson
	}
	if input.ReceivingPerson != nil {
		fields["receiving_person"] = *input.ReceivingPerson
	}
	if input.DeliveryDate != nil {
		fields["delivery_date"] = *input.DeliveryDate
	}
	if input.ReceivingDate != nil {
		fields["receiving_date"] = *input.ReceivingDate
	}
	if input.HandledBy != nil {
		fields["handled_by"] = *input.HandledBy
	}
	if input.Notes != nil {
		fields["notes"] = *input.Notes
	}
	if input.Status != nil {
		fields["status"] = *input.Status
	}
	if input.IsHidden != nil {
		fields["is_hidden"] = *input.IsHidden
	}

	if len(fields) > 0 {
		if err := s.documentRepo.UpdateFields(id, fields); err != nil {
			return nil, err
		}
	}
	return s.documentRepo.FindByID(id)
}

// AttachSignedFile stores the signed PDF's path on the transaction. Full URLs
// are reduced to their path and everything is forced under /documents/.
func (s *documentService) AttachSignedFile(id uint, rawPath string) (*model.DocumentTransaction, error) {
	if _, err := s.GetTransactionByID(id); err != nil {
		return nil, err
	}

	path := NormalizeDocumentPath(rawPath)
	if err := s.documentRepo.UpdateFields(id, map[string]interface{}{
		"signed_file_path": path,
	}); err != nil {
		return nil, err
	}

	logger.Info("Signed file attached to transaction", map[string]interface{}{
		"transaction_id": id,
		"path":           path,
	})
	return s.documentRepo.FindByID(id)
}

func (s *documentService) DeleteTransaction(id uint, password string) error {
	if password != s.deletePassword {
		return ErrWrongDeletePassword
	}

	rows, err := s.documentRepo.Delete(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// NormalizeDocumentPath reduces a URL or loose path to a /documents/ path.
func NormalizeDocumentPath(raw string) string {
	path := raw
	if u, err := url.Parse(raw); err == nil && u.Host != "" {
		path = u.Path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if !strings.HasPrefix(path, "/documents/") {
		path = "/documents" + path
	}
	return path
}
