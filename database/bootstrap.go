// database/bootstrap.go
package database

import (
	"log"
	"strings"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"agritrust/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	// Trim category spellings left by older builds BEFORE AutoMigrate so the
	// emergent category list doesn't fragment on load.
	if err := migrateTrimProductCategories(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.User{},
		&entities.PasswordReset{},
		&entities.Product{},
		&entities.Passport{},
		&entities.Article{},
		&entities.ArticleChunk{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	return db
}

// migrateTrimProductCategories rewrites products whose category carries
// leading/trailing whitespace. Comparison stays case-insensitive at the
// catalog layer; only the stored spelling is cleaned here.
func migrateTrimProductCategories(db *gorm.DB) error {
	var tbl string
	if err := db.Raw(`SELECT name FROM sqlite_master WHERE type='table' AND name='products'`).Scan(&tbl).Error; err != nil {
		return err
	}
	if tbl == "" {
		// fresh DB, nothing to do
		return nil
	}

	type row struct {
		ProductID string
		Category  string
	}
	var rows []row
	if err := db.Raw(`SELECT product_id, category FROM products`).Scan(&rows).Error; err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, r := range rows {
			clean := strings.TrimSpace(r.Category)
			if clean == r.Category {
				continue
			}
			if err := tx.Exec(`UPDATE products SET category = ? WHERE product_id = ?`, clean, r.ProductID).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
