package service

import (
	"fmt"

	"github.com/hcanhquan/royalvietnam-backend/internal/app/repository"
	"github.com/hcanhquan/royalvietnam-backend/pkg/logger"
	"github.com/xuri/excelize/v2"
)

type ExportService interface {
	BuildBusinessWorkbook() (*excelize.File, error)
}

type exportService struct {
	businessRepo repository.BusinessRepository
}

func NewExportService(businessRepo repository.BusinessRepository) ExportService {
	return &exportService{businessRepo: businessRepo}
}

var exportHeaders = []string{
	"Tên doanh nghiệp",
	"Mã số thuế",
	"Địa chỉ",
	"Điện thoại",
	"Email",
	"Website",
	"Ngành nghề",
	"Người liên hệ",
	"Ngày thành lập",
	"Vốn điều lệ",
	"Ghi chú",
}

// BuildBusinessWorkbook renders the full directory as an xlsx workbook,
// ordered by name.
func (s *exportService) BuildBusinessWorkbook() (*excelize.File, error) {
	businesses, err := s.businessRepo.FindAllByName()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "DoanhNghiep"
	f.SetSheetName("Sheet1", sheet)

	for col, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for i, business := range businesses {
		values := []interface{}{
			business.Name,
			business.TaxID,
			business.Address,
			business.Phone,
			business.Email,
			business.Website,
			business.Industry,
			business.ContactPerson,
			business.EstablishmentDate,
			business.CharterCapital,
			business.Notes,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
			}
		}
	}

	logger.Info("Business workbook built", map[string]interface{}{
		"count": len(businesses),
	})
	return f, nil
}
