package model

import "time"

// BusinessAccount giữ thông tin đăng nhập các hệ thống bên ngoài của đúng một
// doanh nghiệp. Logically keyed by BusinessID (at most one row per business);
// create inserts unconditionally, update behaves as upsert at the service
// layer, so no DB-level unique index is declared.
type BusinessAccount struct {
	ID         uint     `gorm:"primarykey" json:"id"`
	BusinessID uint     `gorm:"index;not null" json:"businessId"`
	Business   Business `gorm:"constraint:OnDelete:CASCADE" json:"-"` // xóa doanh nghiệp sẽ xóa kèm theo

	// Tra cứu hóa đơn điện tử
	InvoiceLookupID   string `json:"invoiceLookupId"`
	InvoiceLookupPass string `json:"invoiceLookupPass"`

	// Hóa đơn điện tử (web)
	WebInvoiceWebsite string `json:"webInvoiceWebsite"`
	WebInvoiceID      string `json:"webInvoiceId"`
	WebInvoicePass    string `json:"webInvoicePass"`

	// Bảo hiểm xã hội
	SocialInsuranceCode          string `json:"socialInsuranceCode"`
	SocialInsuranceID            string `json:"socialInsuranceId"`
	SocialInsuranceMainPass      string `json:"socialInsuranceMainPass"`
	SocialInsuranceSecondaryPass string `json:"socialInsuranceSecondaryPass"`
	SocialInsuranceContact       string `json:"socialInsuranceContact"`

	// Cổng thống kê
	StatisticsID   string `json:"statisticsId"`
	StatisticsPass string `json:"statisticsPass"`

	// Chữ ký số (token)
	TokenID               string `json:"tokenId"`
	TokenPass             string `json:"tokenPass"`
	TokenProvider         string `json:"tokenProvider"`
	TokenRegistrationDate string `json:"tokenRegistrationDate"` // yyyy-mm-dd
	TokenExpirationDate   string `json:"tokenExpirationDate"`   // yyyy-mm-dd

	// Khai thuế điện tử
	TaxAccountID   string `json:"taxAccountId"`
	TaxAccountPass string `json:"taxAccountPass"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (BusinessAccount) TableName() string {
	return "business_accounts"
}

// HasCredentials reports whether any credential field carries a value.
// Business creation only writes an account row when this is true.
func (a *BusinessAccount) HasCredentials() bool {
	fields := []string{
		a.InvoiceLookupID, a.InvoiceLookupPass,
		a.WebInvoiceWebsite, a.WebInvoiceID, a.WebInvoicePass,
		a.SocialInsuranceCode, a.SocialInsuranceID, a.SocialInsuranceMainPass,
		a.SocialInsuranceSecondaryPass, a.SocialInsuranceContact,
		a.StatisticsID, a.StatisticsPass,
		a.TokenID, a.TokenPass, a.TokenProvider,
		a.TokenRegistrationDate, a.TokenExpirationDate,
		a.TaxAccountID, a.TaxAccountPass,
	}
	for _, f := range fields {
		if f != "" {
			return true
		}
	}
	return false
}
