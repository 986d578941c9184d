package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/hcanhquan/royalvietnam-backend/config"
	"github.com/hcanhquan/royalvietnam-backend/internal/app/model"
	"github.com/hcanhquan/royalvietnam-backend/internal/app/repository"
	"github.com/hcanhquan/royalvietnam-backend/internal/db"
	"github.com/xuri/excelize/v2"
)

// Cột trong file xlsx theo thứ tự xuất của /api/businesses/export:
// Tên, Mã số thuế, Địa chỉ, Điện thoại, Email, Website, Ngành nghề,
// Người liên hệ, Ngày thành lập, Vốn điều lệ, Ghi chú.
const expectedColumns = 11

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/seed/main.go <xlsx_file_path>")
	}

	filePath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(cfg.Auth.SeedAdminUsername, cfg.Auth.SeedAdminPassword); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	businessRepo := repository.NewBusinessRepository(db.GetDB())

	fmt.Printf("Reading XLSX file: %s\n", filePath)
	businesses, err := readBusinessesFromXLSX(filePath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	fmt.Printf("Total businesses to import: %d\n", len(businesses))

	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	batchSize := 500
	fmt.Printf("Starting bulk import with batch size: %d\n", batchSize)
	if err := businessRepo.BulkCreate(businesses, batchSize); err != nil {
		log.Fatal("Failed to bulk create businesses:", err)
	}

	fmt.Println("Import completed successfully!")
	fmt.Printf("Total businesses imported: %d\n", len(businesses))
}

func readBusinessesFromXLSX(filePath string) ([]model.Business, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in XLSX file")
	}

	fmt.Printf("Reading sheet: %s\n", sheetName)

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("no data found in XLSX file")
	}

	var businesses []model.Business
	seenTaxIDs := make(map[string]bool) // bỏ qua mã số thuế trùng trong file
	skippedCount := 0

	// Hàng đầu tiên là header nên bỏ qua
	for i, row := range rows {
		if i == 0 {
			fmt.Printf("Headers: %v\n", row)
			continue
		}

		// Đệm các ô cuối bị trống
		for len(row) < expectedColumns {
			row = append(row, "")
		}

		name := strings.TrimSpace(row[0])
		taxID := strings.TrimSpace(row[1])

		// Tên và mã số thuế là bắt buộc
		if name == "" || taxID == "" {
			skippedCount++
			continue
		}
		if seenTaxIDs[taxID] {
			skippedCount++
			continue
		}
		seenTaxIDs[taxID] = true

		businesses = append(businesses, model.Business{
			Name:              name,
			TaxID:             taxID,
			Address:           strings.TrimSpace(row[2]),
			Phone:             strings.TrimSpace(row[3]),
			Email:             strings.TrimSpace(row[4]),
			Website:           strings.TrimSpace(row[5]),
			Industry:          strings.TrimSpace(row[6]),
			ContactPerson:     strings.TrimSpace(row[7]),
			EstablishmentDate: strings.TrimSpace(row[8]),
			CharterCapital:    strings.TrimSpace(row[9]),
			Notes:             strings.TrimSpace(row[10]),
		})
	}

	fmt.Printf("Skipped rows (missing data or duplicate tax ID): %d\n", skippedCount)
	return businesses, nil
}
