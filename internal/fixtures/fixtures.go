// Package fixtures seeds a demo dataset: the catalog categories, one
// association with a branch and an upcoming occurrence, and a handful of
// products. Seeding is idempotent and gated behind configuration so it only
// runs in development environments.
package fixtures

import (
	"context"
	"log/slog"
	"time"

	"localmarket/internal/adapters/out/postgres/associationrepo"
	"localmarket/internal/adapters/out/postgres/occurrencerepo"
	"localmarket/internal/adapters/out/postgres/productrepo"
	"localmarket/internal/core/domain/model/product"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var categoryNames = []string{
	"Fruits and vegetables",
	"Dairy produce",
	"Meat",
}

// Loader seeds the demo dataset.
type Loader struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewLoader creates a fixture loader.
func NewLoader(db *gorm.DB, logger *slog.Logger) *Loader {
	return &Loader{
		db:     db,
		logger: logger.With("component", "fixtures"),
	}
}

// Load seeds categories, a demo association with one branch and an upcoming
// occurrence, and a few products. Reruns leave existing records untouched.
func (l *Loader) Load(ctx context.Context) error {
	categories, err := l.loadCategories(ctx)
	if err != nil {
		return err
	}

	associationID, err := l.loadAssociation(ctx)
	if err != nil {
		return err
	}

	if err = l.loadBranchWithOccurrence(ctx, associationID); err != nil {
		return err
	}

	if err = l.loadProducts(ctx, categories); err != nil {
		return err
	}

	l.logger.InfoContext(ctx, "Demo fixtures loaded")
	return nil
}

// loadCategories seeds the catalog categories and returns their IDs by name.
func (l *Loader) loadCategories(ctx context.Context) (map[string]uuid.UUID, error) {
	categories := make(map[string]uuid.UUID, len(categoryNames))

	for _, name := range categoryNames {
		dto := productrepo.CategoryDTO{ID: uuid.New(), Name: name}
		err := l.db.WithContext(ctx).
			Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
			Create(&dto).Error
		if err != nil {
			return nil, err
		}

		var stored productrepo.CategoryDTO
		if err = l.db.WithContext(ctx).First(&stored, "name = ?", name).Error; err != nil {
			return nil, err
		}
		categories[name] = stored.ID
	}

	return categories, nil
}

func (l *Loader) loadAssociation(ctx context.Context) (uuid.UUID, error) {
	dto := associationrepo.AssociationDTO{
		ID:   uuid.New(),
		Name: "Friends of the Market",
	}
	err := l.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&dto).Error
	if err != nil {
		return uuid.Nil, err
	}

	var stored associationrepo.AssociationDTO
	if err = l.db.WithContext(ctx).First(&stored, "name = ?", dto.Name).Error; err != nil {
		return uuid.Nil, err
	}

	return stored.ID, nil
}

func (l *Loader) loadBranchWithOccurrence(ctx context.Context, associationID uuid.UUID) error {
	var count int64
	err := l.db.WithContext(ctx).Model(&occurrencerepo.BranchDTO{}).
		Where("association_id = ?", associationID).Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	branch := occurrencerepo.BranchDTO{
		ID:            uuid.New(),
		AssociationID: associationID,
		Name:          "Market Square",
	}
	if err = l.db.WithContext(ctx).Create(&branch).Error; err != nil {
		return err
	}

	begins := time.Now().Add(7 * 24 * time.Hour).Truncate(time.Hour)
	occurrence := occurrencerepo.BranchOccurrenceDTO{
		ID:            uuid.New(),
		BranchID:      branch.ID,
		AssociationID: associationID,
		Begins:        begins,
		Ends:          begins.Add(4 * time.Hour),
	}
	return l.db.WithContext(ctx).Create(&occurrence).Error
}

func (l *Loader) loadProducts(ctx context.Context, categories map[string]uuid.UUID) error {
	var count int64
	if err := l.db.WithContext(ctx).Model(&productrepo.ProductDTO{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	producerID := uuid.New()
	vegetablesID := categories["Fruits and vegetables"]
	dairyID := categories["Dairy produce"]

	products := []productrepo.ProductDTO{
		{
			ID: uuid.New(), ProducerID: producerID, CategoryID: &vegetablesID,
			Name: "Tomatoes", Ref: "TOM1", IsBio: true, Price: 2.5,
			Availability: int(product.AccordingToStock), Stock: 40,
		},
		{
			ID: uuid.New(), ProducerID: producerID, CategoryID: &vegetablesID,
			Name: "Carrots", Ref: "CAR1", IsBio: false, Price: 1.8,
			Availability: int(product.AccordingToStock), Stock: 25,
		},
		{
			ID: uuid.New(), ProducerID: producerID, CategoryID: &dairyID,
			Name: "Goat cheese", Ref: "CHE1", IsBio: true, Price: 4.2,
			Availability: int(product.Available), Stock: 0,
		},
	}

	return l.db.WithContext(ctx).Create(&products).Error
}
