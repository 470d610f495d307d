package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/kaard-farm/farm-api/internal/config"
	"github.com/kaard-farm/farm-api/internal/database"
	"github.com/kaard-farm/farm-api/internal/models"
	"github.com/kaard-farm/farm-api/internal/repository"
	"github.com/kaard-farm/farm-api/internal/services"
	"github.com/spf13/cobra"
)

var (
	importFile string
	strictMode bool
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import crop inventory from a JSON file",
	Long: `Import crop inventory records from a JSON file.

Expected JSON format:
[
  {"cropName": "Maize", "quantity": 500, "unit": "kg"},
  {"cropName": "Wheat", "quantity": 12, "unit": "tons", "status": "Reserved"}
]

Each record goes through the same validation as the API. By default,
records that fail validation are skipped and logged. Use --strict to
abort on the first invalid record instead.`,
	Example: `  farm-api import -f crops.json
  farm-api import --file crops.json --strict`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runImport(); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "JSON file to import (required)")
	importCmd.Flags().BoolVar(&strictMode, "strict", false, "Fail on the first invalid record")
	importCmd.MarkFlagRequired("file")
}

func runImport() error {
	data, err := os.ReadFile(importFile)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	var candidates []json.RawMessage
	if err := json.Unmarshal(data, &candidates); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := database.Connect(cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	cropRepo := repository.NewResourceRepository[models.Crop](db)
	cropService := services.NewResourceService[models.Crop, *models.Crop](cropRepo, "created_at DESC, id DESC")

	log.Printf("Starting import of %d crop records from %s", len(candidates), importFile)

	imported := 0
	skipped := 0

	for i, candidate := range candidates {
		crop, err := cropService.Create(candidate)
		if err != nil {
			if strictMode {
				return fmt.Errorf("import failed at record %d: %w", i+1, err)
			}
			log.Printf("Skipped record %d: %v", i+1, err)
			skipped++
			continue
		}
		log.Printf("Imported %s (%g %s)", crop.CropName, *crop.Quantity, crop.Unit)
		imported++
	}

	log.Printf("Import complete: %d imported, %d skipped", imported, skipped)
	return nil
}
