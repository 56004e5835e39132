package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/bellapizza/bellapizza-backend/config"
	"github.com/bellapizza/bellapizza-backend/internal/app/model"
	"github.com/bellapizza/bellapizza-backend/internal/app/repository"
	"github.com/bellapizza/bellapizza-backend/internal/db"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// Seeds the pizza menu. Without arguments it inserts the starter menu;
// with an XLSX path it imports extra menu rows from the spreadsheet.
//
// Expected columns: name, description, price, category, image_filename
func main() {
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

	if len(os.Args) < 2 {
		fmt.Println("Starter menu seeded.")
		return
	}

	filePath := os.Args[1]
	fmt.Printf("Reading XLSX file: %s\n", filePath)
	pizzas, err := readPizzasFromXLSX(filePath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	fmt.Printf("Total pizzas to import: %d\n", len(pizzas))

	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	pizzaRepo := repository.NewPizzaRepository(db.GetDB())

	imported := 0
	skipped := 0
	for i := range pizzas {
		_, err := pizzaRepo.FindByName(pizzas[i].Name)
		if err == nil {
			skipped++
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatal("Failed to check existing pizza:", err)
		}

		if err := pizzaRepo.Create(&pizzas[i]); err != nil {
			log.Fatal("Failed to create pizza:", err)
		}
		imported++
	}

	fmt.Println("Import completed successfully!")
	fmt.Printf("Imported: %d, skipped (already on the menu): %d\n", imported, skipped)
}

func readPizzasFromXLSX(filePath string) ([]model.Pizza, error) {
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
		return nil, fmt.Errorf("no data rows found in XLSX file")
	}

	var pizzas []model.Pizza
	seen := make(map[string]bool)
	skipped := 0

	// Row 0 is the header
	for i, row := range rows[1:] {
		if len(row) < 3 {
			skipped++
			continue
		}

		name := strings.TrimSpace(row[0])
		description := strings.TrimSpace(row[1])
		priceStr := strings.TrimSpace(row[2])

		if name == "" || priceStr == "" {
			skipped++
			continue
		}
		if seen[name] {
			skipped++
			continue
		}

		price, err := strconv.ParseFloat(strings.ReplaceAll(priceStr, ",", "."), 64)
		if err != nil || price <= 0 {
			fmt.Printf("Skipping row %d: invalid price %q\n", i+2, priceStr)
			skipped++
			continue
		}

		pizza := model.Pizza{
			Name:        name,
			Description: description,
			Price:       price,
		}
		if len(row) > 3 {
			pizza.Category = strings.TrimSpace(row[3])
		}
		if len(row) > 4 {
			pizza.ImageFilename = strings.TrimSpace(row[4])
		}

		seen[name] = true
		pizzas = append(pizzas, pizza)
	}

	if skipped > 0 {
		fmt.Printf("Skipped %d invalid or duplicate rows\n", skipped)
	}

	return pizzas, nil
}
