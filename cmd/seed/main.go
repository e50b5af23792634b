package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/chocolog/chocolog-backend/config"
	"github.com/chocolog/chocolog-backend/internal/app/model"
	"github.com/chocolog/chocolog-backend/internal/db"
	"github.com/chocolog/chocolog-backend/pkg/util"
	"github.com/lib/pq"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// Imports a chocolate catalogue from an XLSX sheet. Expected columns:
//
//	0 brand name, 1 brand country, 2 chocolate name, 3 category name,
//	4 cacao percent, 5 price, 6 has mint (yes/no), 7 flavor notes
//	(comma separated), 8 description
//
// Brands are deduplicated by name; imported rows are attributed to a
// dedicated seed admin account.
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

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	gdb := db.GetDB()

	seedUser, err := ensureSeedUser(gdb)
	if err != nil {
		log.Fatal("Failed to ensure seed user:", err)
	}

	fmt.Printf("Reading XLSX file: %s\n", filePath)
	rows, err := readCatalogueRows(filePath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	fmt.Printf("Total rows to import: %d\n", len(rows))

	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	categories, err := loadCategoriesByName(gdb)
	if err != nil {
		log.Fatal("Failed to load categories:", err)
	}

	imported := 0
	skipped := 0
	brandCache := make(map[string]uint)

	for _, row := range rows {
		brandName := strings.TrimSpace(row[0])
		chocolateName := strings.TrimSpace(row[2])
		if brandName == "" || chocolateName == "" {
			skipped++
			continue
		}

		brandID, ok := brandCache[brandName]
		if !ok {
			brand := model.Brand{Name: brandName, UserID: seedUser.ID}
			if country := strings.TrimSpace(row[1]); country != "" {
				brand.Country = &country
			}
			if err := gdb.Where(model.Brand{Name: brandName}).FirstOrCreate(&brand).Error; err != nil {
				log.Fatal("Failed to upsert brand:", err)
			}
			brandID = brand.ID
			brandCache[brandName] = brandID
		}

		chocolate := model.Chocolate{
			Name:        chocolateName,
			Description: strings.TrimSpace(row[8]),
			Status:      model.StatusPublished,
			BrandID:     brandID,
			UserID:      seedUser.ID,
		}

		if pct, err := strconv.Atoi(strings.TrimSpace(row[4])); err == nil && pct >= 0 && pct <= 100 {
			chocolate.CacaoPercent = &pct
		}
		if price, err := strconv.Atoi(strings.TrimSpace(row[5])); err == nil && price >= 0 {
			chocolate.Price = &price
		}
		chocolate.HasMint = parseYesNo(row[6])

		if notes := splitNotes(row[7]); len(notes) > 0 {
			chocolate.FlavorNotes = pq.StringArray(notes)
		}

		if categoryName := strings.TrimSpace(row[3]); categoryName != "" {
			if categoryID, ok := categories[strings.ToLower(categoryName)]; ok {
				chocolate.CategoryID = &categoryID
			}
		}

		if err := gdb.Create(&chocolate).Error; err != nil {
			log.Fatal("Failed to create chocolate:", err)
		}
		imported++

		if imported%100 == 0 {
			fmt.Printf("Processed %d chocolates...\n", imported)
		}
	}

	fmt.Printf("\nSummary:\n")
	fmt.Printf("  Imported chocolates: %d\n", imported)
	fmt.Printf("  Imported brands: %d\n", len(brandCache))
	fmt.Printf("  Skipped rows: %d\n", skipped)
}

func readCatalogueRows(filePath string) ([][]string, error) {
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

	if len(rows) < 2 {
		return nil, fmt.Errorf("no data found in XLSX file")
	}

	var out [][]string
	for i, row := range rows {
		if i == 0 {
			fmt.Printf("Headers: %v\n", row)
			continue
		}
		// Pad short rows so column access is safe
		for len(row) < 9 {
			row = append(row, "")
		}
		out = append(out, row)
	}

	return out, nil
}

func ensureSeedUser(gdb *gorm.DB) (*model.User, error) {
	var user model.User
	err := gdb.Where("email = ?", "seed@chocolog.app").First(&user).Error
	if err == nil {
		return &user, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hashed, err := util.HashPassword("seed-account-disabled-login")
	if err != nil {
		return nil, err
	}

	user = model.User{
		Email:        "seed@chocolog.app",
		PasswordHash: hashed,
		Name:         "Catalogue Import",
		Role:         model.RoleAdmin,
	}
	if err := gdb.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func loadCategoriesByName(gdb *gorm.DB) (map[string]uint, error) {
	var categories []model.Category
	if err := gdb.Find(&categories).Error; err != nil {
		return nil, err
	}
	byName := make(map[string]uint, len(categories))
	for _, c := range categories {
		byName[strings.ToLower(c.Name)] = c.ID
	}
	return byName, nil
}

func parseYesNo(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "true", "1":
		return true
	}
	return false
}

func splitNotes(s string) []string {
	var notes []string
	for _, note := range strings.Split(s, ",") {
		note = strings.TrimSpace(note)
		if note != "" {
			notes = append(notes, note)
		}
	}
	return notes
}
