package database

import (
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phonedrive/api/internal/config"
	"github.com/phonedrive/api/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin creates the bootstrap administrator as a regular user row with an
// explicit role column. Authorization code never special-cases an email; this
// row is the single source of admin privilege until a role-management UI
// exists.
func SeedAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		slog.Warn("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	var existing models.User
	err := db.Where("email = ?", cfg.AdminEmail).First(&existing).Error
	if err == nil {
		if !existing.IsAdmin() {
			return db.Model(&existing).Update("role", models.RoleAdmin).Error
		}
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		ID:       uuid.New(),
		Email:    cfg.AdminEmail,
		Password: string(hash),
		Name:     cfg.ShopName,
		Role:     models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	slog.Info("bootstrap admin seeded", "email", cfg.AdminEmail)
	return nil
}

var seedProducts = []models.Product{
	{Model: "iPhone 13", Storage: "128 Go", Color: "Minuit", Price: 590, Condition: "Parfait état", Description: "iPhone 13 en excellent état. Batterie neuve. Câble inclus.", Image: "https://images.unsplash.com/photo-1632661674596-df8be070a5c5?auto=format&fit=crop&w=500&q=80"},
	{Model: "iPhone 12", Storage: "64 Go", Color: "Bleu", Price: 399, Condition: "Très bon état", Description: "Quelques micro-rayures invisibles écran allumé. 100% fonctionnel.", Image: "https://images.unsplash.com/photo-1605236453806-6ff36a86fa83?auto=format&fit=crop&w=500&q=80"},
	{Model: "iPhone 11", Storage: "64 Go", Color: "Noir", Price: 290, Condition: "Bon état", Description: "Traces d'usure sur le châssis. Écran parfait.", Image: "https://images.unsplash.com/photo-1573148195900-7845dcb9b858?auto=format&fit=crop&w=500&q=80"},
	{Model: "iPhone 13 Pro", Storage: "256 Go", Color: "Alpin", Price: 790, Condition: "Parfait état", Description: "Le top du top. Photos incroyables.", Image: "https://images.unsplash.com/photo-1632661674596-df8be070a5c5?auto=format&fit=crop&w=500&q=80"},
	{Model: "iPhone XR", Storage: "64 Go", Color: "Rouge", Price: 199, Condition: "État correct", Description: "Idéal premier téléphone. Fonctionne parfaitement.", Image: "https://images.unsplash.com/photo-1552374196-c4e7ffc6e126?auto=format&fit=crop&w=500&q=80"},
	{Model: "iPhone 14", Storage: "128 Go", Color: "Lumière stellaire", Price: 720, Condition: "Comme neuf", Description: "À peine utilisé, batterie 100%.", Image: "https://images.unsplash.com/photo-1663499482523-1c0c16692233?auto=format&fit=crop&w=500&q=80"},
}

// SeedCatalog inserts the demo catalog once. Re-runs are no-ops keyed on
// (model, storage, color).
func SeedCatalog(db *gorm.DB) error {
	seeded := 0

	for _, p := range seedProducts {
		var existing models.Product
		err := db.Where("model = ? AND storage = ? AND color = ?", p.Model, p.Storage, p.Color).
			First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := db.Create(&p).Error; err != nil {
			return err
		}
		seeded++
	}

	if seeded > 0 {
		slog.Info("seeded catalog", "new", seeded, "total", len(seedProducts))
	}
	return nil
}
