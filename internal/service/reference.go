package service

import (
	"context"
	"fmt"

	"ppmdesk.io/ppmdesk/internal/domain"
	"ppmdesk.io/ppmdesk/internal/provider"
)

// ReferenceService serves the pick lists behind the forms.
type ReferenceService struct {
	ref provider.ReferenceProvider
}

// NewReferenceService creates a new ReferenceService.
func NewReferenceService(ref provider.ReferenceProvider) *ReferenceService {
	return &ReferenceService{ref: ref}
}

func (s *ReferenceService) PPMDisciplines(ctx context.Context) ([]domain.Discipline, error) {
	d, err := s.ref.PPMDisciplines(ctx)
	if err != nil {
		return nil, fmt.Errorf("list ppm disciplines: %w", err)
	}
	return orNonNil(d), nil
}

func (s *ReferenceService) ReactiveDisciplines(ctx context.Context) ([]domain.Discipline, error) {
	d, err := s.ref.ReactiveDisciplines(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reactive disciplines: %w", err)
	}
	return orNonNil(d), nil
}

func (s *ReferenceService) Suppliers(ctx context.Context) ([]domain.Supplier, error) {
	sups, err := s.ref.Suppliers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	return orNonNil(sups), nil
}

func (s *ReferenceService) AssetGroups(ctx context.Context) ([]domain.AssetGroup, error) {
	groups, err := s.ref.AssetGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("list asset groups: %w", err)
	}
	return orNonNil(groups), nil
}

// AssetTypes lists the types of one group.
func (s *ReferenceService) AssetTypes(ctx context.Context, groupID int) ([]domain.AssetType, error) {
	types, err := s.ref.AssetTypes(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("list asset types: %w", err)
	}
	return orNonNil(types), nil
}

// AssetCategories lists the categories of one type.
func (s *ReferenceService) AssetCategories(ctx context.Context, typeID int) ([]domain.AssetCategory, error) {
	cats, err := s.ref.AssetCategories(ctx, typeID)
	if err != nil {
		return nil, fmt.Errorf("list asset categories: %w", err)
	}
	return orNonNil(cats), nil
}
