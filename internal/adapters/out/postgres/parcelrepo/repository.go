package parcelrepo

import (
	"context"
	"errors"

	"parceltracking/internal/core/domain/model/kernel"
	"parceltracking/internal/core/domain/model/parcel"
	"parceltracking/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormParcelRepository implements ParcelRepository using GORM.
//
// Duplicate barcodes are detected through gorm.ErrDuplicatedKey, so the
// connection must be opened with gorm.Config{TranslateError: true}.
type GormParcelRepository struct {
	db *gorm.DB
}

// NewGormParcelRepository creates a new GORM parcel repository.
func NewGormParcelRepository(db *gorm.DB) *GormParcelRepository {
	return &GormParcelRepository{db: db}
}

// Add saves a new parcel together with its history.
func (r *GormParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("barcode", dto.Barcode, err)
		}
		return err
	}

	return nil
}

// Update writes status and lastUpdated and replaces the stored history. An
// appended entry may land anywhere in the trail, so the whole trail is
// rewritten rather than appended to.
func (r *GormParcelRepository) Update(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&ParcelDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"status":       dto.Status,
		"last_updated": dto.LastUpdated,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("barcode", dto.Barcode)
	}

	if err := db.Where("parcel_id = ?", dto.ID).Delete(&AuditEntryDTO{}).Error; err != nil {
		return err
	}

	if len(dto.History) > 0 {
		if err := db.Create(&dto.History).Error; err != nil {
			return err
		}
	}

	return nil
}

// Get retrieves a parcel by barcode.
func (r *GormParcelRepository) Get(ctx context.Context, barcode kernel.Barcode) (*parcel.Parcel, error) {
	return r.get(ctx, barcode, false)
}

// GetForUpdate retrieves a parcel by barcode and locks its row
// (SELECT ... FOR UPDATE) until the surrounding transaction ends.
func (r *GormParcelRepository) GetForUpdate(ctx context.Context, barcode kernel.Barcode) (*parcel.Parcel, error) {
	return r.get(ctx, barcode, true)
}

// Exists reports whether a parcel carries barcode.
func (r *GormParcelRepository) Exists(ctx context.Context, barcode kernel.Barcode) (bool, error) {
	if err := barcode.Validate(); err != nil {
		return false, err
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&ParcelDTO{}).
		Where("barcode = ?", barcode.String()).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *GormParcelRepository) get(ctx context.Context, barcode kernel.Barcode, lock bool) (*parcel.Parcel, error) {
	if err := barcode.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)
	query := db
	if lock {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto ParcelDTO
	if err := query.First(&dto, "barcode = ?", barcode.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("barcode", barcode.String())
		}
		return nil, err
	}

	if err := db.Where("parcel_id = ?", dto.ID).Order("position").Find(&dto.History).Error; err != nil {
		return nil, err
	}

	return toDomain(dto)
}
