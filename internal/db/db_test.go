package db

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-manager/internal/domain/catalog"
	"github.com/BruksfildServices01/salon-manager/internal/models"
)

func TestMigrateSeedsCatalogOnce(t *testing.T) {
	dbi, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := Migrate(dbi); err != nil {
			t.Fatalf("migrate #%d: %v", i+1, err)
		}
	}

	var count int64
	dbi.Model(&models.Service{}).Count(&count)
	if int(count) != len(catalog.DefaultServices) {
		t.Errorf("services = %d, want %d", count, len(catalog.DefaultServices))
	}
}
