package model

import "time"

// Loại hồ sơ cố định; giá trị ngoài danh sách rơi về DocumentTypeOther.
const (
	DocumentTypeEstablishment   = "Hồ sơ thành lập doanh nghiệp"
	DocumentTypeRegistration    = "Hồ sơ thay đổi đăng ký kinh doanh"
	DocumentTypeDissolution     = "Hồ sơ giải thể doanh nghiệp"
	DocumentTypeTax             = "Hồ sơ thuế"
	DocumentTypeSocialInsurance = "Hồ sơ BHXH"
	DocumentTypeLabor           = "Hồ sơ lao động"
	DocumentTypeOther           = "Hồ sơ khác"
)

// DocumentTypes lists the fixed vocabulary in display order.
var DocumentTypes = []string{
	DocumentTypeEstablishment,
	DocumentTypeRegistration,
	DocumentTypeDissolution,
	DocumentTypeTax,
	DocumentTypeSocialInsurance,
	DocumentTypeLabor,
	DocumentTypeOther,
}

// IsValidDocumentType reports whether t belongs to the fixed vocabulary.
func IsValidDocumentType(t string) bool {
	for _, v := range DocumentTypes {
		if v == t {
			return true
		}
	}
	return false
}

const (
	TransactionStatusPending   = "pending"
	TransactionStatusCompleted = "completed"
)

// DocumentTransaction là một lượt giao nhận hồ sơ giữa hai bên.
// Only DocumentNumber and SignedFilePath are mutable after creation, each via
// its own endpoint.
type DocumentTransaction struct {
	ID               uint       `gorm:"primarykey" json:"id"`
	BusinessID       uint       `gorm:"index;not null" json:"businessId"`
	Business         Business   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	DocumentNumber   string     `json:"documentNumber"`                               // số văn bản (human-assigned, optional)
	DocumentType     string     `gorm:"not null" json:"documentType"`                 // loại hồ sơ
	DeliveryCompany  string     `json:"deliveryCompany"`                              // bên giao
	ReceivingCompany string     `json:"receivingCompany"`                             // bên nhận
	DeliveryPerson   string     `json:"deliveryPerson"`                               // người giao
	ReceivingPerson  string     `json:"receivingPerson"`                              // người nhận
	DeliveryDate     time.Time  `json:"deliveryDate"`                                 // ngày giao (defaults to now)
	ReceivingDate    *time.Time `json:"receivingDate"`                                // ngày nhận (defaults to now)
	HandledBy        string     `json:"handledBy"`                                    // người xử lý
	Notes            string     `gorm:"type:text" json:"notes"`                       // ghi chú
	Status           string     `gorm:"type:varchar(50);default:'pending'" json:"status"`
	SignedFilePath   string     `gorm:"type:varchar(500)" json:"signedFilePath"` // đường dẫn PDF đã ký (storage-relative)
	IsHidden         bool       `gorm:"default:false" json:"isHidden"`
	CreatedAt        time.Time  `json:"createdAt"`
}

func (DocumentTransaction) TableName() string {
	return "document_transactions"
}
