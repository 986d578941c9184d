package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// JSONMap lưu các trường tùy chỉnh (tên trường -> giá trị) dưới dạng JSON.
// Keys are unique within one business; the encoded form never leaves the
// persistence boundary.
type JSONMap map[string]string

// Value implements database/sql/driver.Valuer
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// UnmarshalJSON accepts either an object or a pre-encoded JSON string.
// Malformed string payloads decode to an empty map.
func (m *JSONMap) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*m = nil
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var encoded string
		if err := json.Unmarshal(data, &encoded); err != nil {
			return err
		}
		var parsed map[string]string
		if err := json.Unmarshal([]byte(encoded), &parsed); err != nil {
			*m = JSONMap{}
			return nil
		}
		*m = parsed
		return nil
	}

	var parsed map[string]string
	if err := json.Unmarshal(data, &parsed); err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Scan implements database/sql.Scanner
func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("failed to scan JSONMap")
	}

	if len(data) == 0 {
		*m = JSONMap{}
		return nil
	}
	return json.Unmarshal(data, m)
}

// Business là một doanh nghiệp đã đăng ký trong hệ thống.
type Business struct {
	ID                uint    `gorm:"primarykey" json:"id"`
	Name              string  `gorm:"not null" json:"name"`                    // tên doanh nghiệp
	TaxID             string  `gorm:"uniqueIndex;not null" json:"taxId"`       // mã số thuế (globally unique)
	Address           string  `gorm:"type:text" json:"address"`                // địa chỉ
	Phone             string  `gorm:"type:varchar(50)" json:"phone"`           // số điện thoại
	Email             string  `json:"email"`                                   // email
	Website           string  `json:"website"`                                 // website
	Industry          string  `json:"industry"`                                // ngành nghề
	ContactPerson     string  `json:"contactPerson"`                           // người đại diện
	EstablishmentDate string  `json:"establishmentDate"`                       // ngày thành lập
	CharterCapital    string  `json:"charterCapital"`                          // vốn điều lệ
	AuditWebsite      string  `json:"auditWebsite"`                            // website phần mềm kiểm toán
	Account           string  `json:"account"`                                 // tài khoản đăng nhập cổng ngoài
	Password          string  `json:"password"`                                // mật khẩu (plaintext by product decision)
	BankAccount       string  `json:"bankAccount"`                             // số tài khoản ngân hàng
	BankName          string  `json:"bankName"`                                // tên ngân hàng
	AccessCode        string  `json:"accessCode"`                              // mã truy cập (admin-managed)
	CustomFields      JSONMap `gorm:"type:jsonb;default:'{}'" json:"customFields"`
	Notes             string  `gorm:"type:text" json:"notes"` // ghi chú

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Business) TableName() string {
	return "businesses"
}
