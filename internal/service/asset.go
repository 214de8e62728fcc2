// Package service provides the PPM Desk read models and single-entity
// operations. Multi-step mutation flows live in internal/usecase.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"ppmdesk.io/ppmdesk/internal/domain"
	apperrors "ppmdesk.io/ppmdesk/internal/pkg/errors"
	"ppmdesk.io/ppmdesk/internal/pkg/logger"
	"ppmdesk.io/ppmdesk/internal/pkg/worker"
	"ppmdesk.io/ppmdesk/internal/provider"
)

// AssetService handles asset reads and single-asset mutations.
type AssetService struct {
	assets provider.AssetProvider
	estate provider.EstateProvider
	pool   *worker.Pool
	now    func() time.Time
}

// NewAssetService creates a new AssetService. Parallel reads run on pool.
func NewAssetService(assets provider.AssetProvider, estate provider.EstateProvider, pool *worker.Pool) *AssetService {
	return &AssetService{assets: assets, estate: estate, pool: pool, now: time.Now}
}

// Overview loads the three overview collections in parallel, projects them
// and keeps the rows whose archived flag equals archived.
func (s *AssetService) Overview(ctx context.Context, archived bool) ([]AssetRow, error) {
	var (
		overview   []domain.AssetOverview
		details    []domain.Asset
		categories []domain.AssetCategory
	)

	g := s.pool.Group(ctx)
	g.Go(func(ctx context.Context) (err error) {
		overview, err = s.assets.AssetOverview(ctx)
		return err
	})
	g.Go(func(ctx context.Context) (err error) {
		details, err = s.assets.AssetDetails(ctx)
		return err
	})
	g.Go(func(ctx context.Context) (err error) {
		categories, err = s.assets.CategoryHierarchy(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load asset overview: %w", err)
	}

	rows := FilterArchived(ProjectAssetOverview(overview, details, categories), archived)
	sortAssetRows(rows)
	return rows, nil
}

// AssetDetail is the asset detail screen.
type AssetDetail struct {
	Asset        domain.Asset              `json:"asset"`
	Location     domain.LocationContext    `json:"location"`
	ServicePlans []domain.AssetServicePlan `json:"service_plans"`
}

// Detail returns the asset with its location context and linked plans.
// A dangling location reference leaves the context empty.
func (s *AssetService) Detail(ctx context.Context, asID int) (*AssetDetail, error) {
	asset, err := s.assets.GetAsset(ctx, asID)
	if err != nil {
		return nil, fmt.Errorf("get asset: %w", err)
	}

	detail := &AssetDetail{Asset: asset}
	g := s.pool.Group(ctx)
	g.Go(func(ctx context.Context) error {
		lc, err := s.estate.LocationContext(ctx, asset.LocationID)
		if apperrors.CodeOf(err) == apperrors.CodeLocationNotFound {
			logger.FromContext(ctx).Warn("Asset references a missing location",
				zap.Int("as_id", asID),
				zap.Int("fk_loc_id", asset.LocationID),
			)
			return nil
		}
		detail.Location = lc
		return err
	})
	g.Go(func(ctx context.Context) (err error) {
		detail.ServicePlans, err = s.assets.ServicePlansByAsset(ctx, asID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load asset detail: %w", err)
	}
	if detail.ServicePlans == nil {
		detail.ServicePlans = []domain.AssetServicePlan{}
	}
	return detail, nil
}

// CreateAssetInput is the new-asset form.
type CreateAssetInput struct {
	Name                 string `json:"as_name" validate:"required"`
	Manufacturer         string `json:"as_manufacturer" validate:"required"`
	ModelName            string `json:"as_model_name" validate:"required"`
	SerialNum            string `json:"as_serial_num" validate:"required"`
	LocationID           int    `json:"fk_loc_id" validate:"required"`
	PPMDisciplineID      int    `json:"fk_disc_id" validate:"required"`
	ReactiveDisciplineID int    `json:"fk_r_disc_id" validate:"required"`

	CategoryID         *int        `json:"fk_as_cat_id,omitempty" validate:"omitempty,gt=0"`
	ParentID           *int        `json:"as_parent_id,omitempty" validate:"omitempty,gt=0"`
	ManufactureYear    *int        `json:"as_manufacture_year,omitempty" validate:"omitempty,gte=1900,lte=2200"`
	ExpectedLife       *int        `json:"as_expected_life,omitempty" validate:"omitempty,gte=0"`
	Warranty           bool        `json:"as_warranty"`
	WarrantyLength     *int        `json:"as_warranty_length,omitempty" validate:"omitempty,gte=0"`
	WarrantyExpiry     domain.Date `json:"as_warranty_expiry,omitzero"`
	BusinessCritical   bool        `json:"as_business_critical"`
	Status             bool        `json:"as_status"`
	Standard           string      `json:"as_standard,omitempty"`
	ExtraInfo          string      `json:"as_extra_info,omitempty"`
	AccessRestrictions string      `json:"as_access_restrictions,omitempty"`
}

func (in *CreateAssetInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Manufacturer = strings.TrimSpace(in.Manufacturer)
	in.ModelName = strings.TrimSpace(in.ModelName)
	in.SerialNum = strings.TrimSpace(in.SerialNum)
}

func (in CreateAssetInput) columns(createdBy string) provider.Columns {
	cols := provider.Columns{
		"as_name":              in.Name,
		"as_manufacturer":      in.Manufacturer,
		"as_model_name":        in.ModelName,
		"as_serial_num":        in.SerialNum,
		"fk_loc_id":            in.LocationID,
		"fk_disc_id":           in.PPMDisciplineID,
		"fk_r_disc_id":         in.ReactiveDisciplineID,
		"as_warranty":          in.Warranty,
		"as_business_critical": in.BusinessCritical,
		"as_status":            in.Status,
	}
	putInt(cols, "fk_as_cat_id", in.CategoryID)
	putInt(cols, "as_parent_id", in.ParentID)
	putInt(cols, "as_manufacture_year", in.ManufactureYear)
	putInt(cols, "as_expected_life", in.ExpectedLife)
	putInt(cols, "as_warranty_length", in.WarrantyLength)
	if !in.WarrantyExpiry.IsZero() {
		cols["as_warranty_expiry"] = in.WarrantyExpiry
	}
	putString(cols, "as_standard", in.Standard)
	putString(cols, "as_extra_info", in.ExtraInfo)
	putString(cols, "as_access_restrictions", in.AccessRestrictions)
	putString(cols, "as_created_by", createdBy)
	return cols
}

// Create validates in and inserts the asset. Nothing is sent when a
// required field is missing.
func (s *AssetService) Create(ctx context.Context, in CreateAssetInput, createdBy string) (int, error) {
	in.normalize()
	if err := Validate(in); err != nil {
		return 0, err
	}

	id, err := s.assets.CreateAsset(ctx, in.columns(createdBy))
	if err != nil {
		return 0, fmt.Errorf("create asset: %w", err)
	}
	logger.FromContext(ctx).Info("Asset created",
		zap.Int("as_id", id),
		zap.Int("fk_loc_id", in.LocationID),
	)
	return id, nil
}

// AssetPatch carries the editable detail fields. Nil fields are left
// unchanged. Disciplines are changed through the reassignment flow.
type AssetPatch struct {
	Name               *string      `json:"as_name,omitempty" validate:"omitempty,min=1"`
	Manufacturer       *string      `json:"as_manufacturer,omitempty" validate:"omitempty,min=1"`
	ModelName          *string      `json:"as_model_name,omitempty" validate:"omitempty,min=1"`
	SerialNum          *string      `json:"as_serial_num,omitempty" validate:"omitempty,min=1"`
	ManufactureYear    *int         `json:"as_manufacture_year,omitempty" validate:"omitempty,gte=1900,lte=2200"`
	ExpectedLife       *int         `json:"as_expected_life,omitempty" validate:"omitempty,gte=0"`
	Warranty           *bool        `json:"as_warranty,omitempty"`
	WarrantyLength     *int         `json:"as_warranty_length,omitempty" validate:"omitempty,gte=0"`
	WarrantyExpiry     *domain.Date `json:"as_warranty_expiry,omitempty"`
	BusinessCritical   *bool        `json:"as_business_critical,omitempty"`
	Status             *bool        `json:"as_status,omitempty"`
	Standard           *string      `json:"as_standard,omitempty"`
	LastServiceDate    *domain.Date `json:"as_last_service_date,omitempty"`
	NextServiceDate    *domain.Date `json:"as_next_service_date,omitempty"`
	ExtraInfo          *string      `json:"as_extra_info,omitempty"`
	AccessRestrictions *string      `json:"as_access_restrictions,omitempty"`
	LocationID         *int         `json:"fk_loc_id,omitempty" validate:"omitempty,gt=0"`
	CategoryID         *int         `json:"fk_as_cat_id,omitempty" validate:"omitempty,gt=0"`
	ParentID           *int         `json:"as_parent_id,omitempty" validate:"omitempty,gt=0"`
}

func (p AssetPatch) columns() provider.Columns {
	cols := provider.Columns{}
	putStringPtr(cols, "as_name", p.Name)
	putStringPtr(cols, "as_manufacturer", p.Manufacturer)
	putStringPtr(cols, "as_model_name", p.ModelName)
	putStringPtr(cols, "as_serial_num", p.SerialNum)
	putInt(cols, "as_manufacture_year", p.ManufactureYear)
	putInt(cols, "as_expected_life", p.ExpectedLife)
	putBool(cols, "as_warranty", p.Warranty)
	putInt(cols, "as_warranty_length", p.WarrantyLength)
	putDate(cols, "as_warranty_expiry", p.WarrantyExpiry)
	putBool(cols, "as_business_critical", p.BusinessCritical)
	putBool(cols, "as_status", p.Status)
	putStringPtr(cols, "as_standard", p.Standard)
	putDate(cols, "as_last_service_date", p.LastServiceDate)
	putDate(cols, "as_next_service_date", p.NextServiceDate)
	putStringPtr(cols, "as_extra_info", p.ExtraInfo)
	putStringPtr(cols, "as_access_restrictions", p.AccessRestrictions)
	putInt(cols, "fk_loc_id", p.LocationID)
	putInt(cols, "fk_as_cat_id", p.CategoryID)
	putInt(cols, "as_parent_id", p.ParentID)
	return cols
}

// Update applies the non-nil fields of patch. An asset cannot be its own parent.
func (s *AssetService) Update(ctx context.Context, asID int, patch AssetPatch) error {
	if err := Validate(patch); err != nil {
		return err
	}
	if patch.ParentID != nil && *patch.ParentID == asID {
		return fieldError("as_parent_id", "ne", "an asset cannot be its own parent")
	}
	cols := patch.columns()
	if len(cols) == 0 {
		return fieldError("patch", "required", "at least one field must be set")
	}

	if err := s.assets.UpdateAsset(ctx, asID, cols); err != nil {
		return fmt.Errorf("update asset: %w", err)
	}
	logger.FromContext(ctx).Info("Asset updated",
		zap.Int("as_id", asID),
		zap.Int("columns", len(cols)),
	)
	return nil
}

// SetArchived archives or restores an asset. Archiving is the soft delete
// for assets; the archiving operator and date are recorded.
func (s *AssetService) SetArchived(ctx context.Context, asID int, archived bool, by string) error {
	if err := s.assets.SetAssetArchived(ctx, asID, archived, by, domain.NewDate(s.now())); err != nil {
		return fmt.Errorf("set asset archived: %w", err)
	}
	logger.FromContext(ctx).Info("Asset archive flag changed",
		zap.Int("as_id", asID),
		zap.Bool("archived", archived),
	)
	return nil
}

// Verify marks the asset verified by the operator as of today.
func (s *AssetService) Verify(ctx context.Context, asID int, by string) error {
	if strings.TrimSpace(by) == "" {
		return fieldError("as_verified_by", "required", "as_verified_by is required")
	}
	if err := s.assets.VerifyAsset(ctx, asID, by, domain.NewDate(s.now())); err != nil {
		return fmt.Errorf("verify asset: %w", err)
	}
	logger.FromContext(ctx).Info("Asset verified", zap.Int("as_id", asID), zap.String("verified_by", by))
	return nil
}

func putString(cols provider.Columns, key, v string) {
	if v != "" {
		cols[key] = v
	}
}

func putStringPtr(cols provider.Columns, key string, v *string) {
	if v != nil {
		cols[key] = *v
	}
}

func putInt(cols provider.Columns, key string, v *int) {
	if v != nil {
		cols[key] = *v
	}
}

func putBool(cols provider.Columns, key string, v *bool) {
	if v != nil {
		cols[key] = *v
	}
}

func putFloat(cols provider.Columns, key string, v *float64) {
	if v != nil {
		cols[key] = *v
	}
}

// putDate maps a zero date to null so a patch can clear the column.
func putDate(cols provider.Columns, key string, v *domain.Date) {
	if v == nil {
		return
	}
	if v.IsZero() {
		cols[key] = nil
		return
	}
	cols[key] = *v
}
