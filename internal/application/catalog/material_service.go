package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/somvi/backend/internal/domain/catalog"
	"github.com/somvi/backend/internal/domain/shared"
)

// MaterialService handles catalog business operations
type MaterialService struct {
	materialRepo catalog.MaterialRepository
	offerRepo    catalog.MaterialSupplierRepository
}

// NewMaterialService creates a new MaterialService
func NewMaterialService(materialRepo catalog.MaterialRepository, offerRepo catalog.MaterialSupplierRepository) *MaterialService {
	return &MaterialService{
		materialRepo: materialRepo,
		offerRepo:    offerRepo,
	}
}

// Create creates a new catalog material
func (s *MaterialService) Create(ctx context.Context, req CreateMaterialRequest) (*MaterialResponse, error) {
	material, err := catalog.NewMaterial(req.Name, req.SomaliName, req.Category, req.Unit)
	if err != nil {
		return nil, err
	}

	if req.Subcategory != "" {
		if err := material.SetCategory(req.Category, req.Subcategory); err != nil {
			return nil, err
		}
	}
	if req.Description != "" {
		if err := material.Update(req.Name, req.SomaliName, req.Description); err != nil {
			return nil, err
		}
	}
	if req.ImageURL != "" {
		if err := material.SetImageURL(req.ImageURL); err != nil {
			return nil, err
		}
	}

	if err := s.materialRepo.Save(ctx, material); err != nil {
		return nil, err
	}

	response := ToMaterialResponse(material)
	return &response, nil
}

// GetByID retrieves a material by ID
func (s *MaterialService) GetByID(ctx context.Context, materialID uuid.UUID) (*MaterialResponse, error) {
	material, err := s.materialRepo.FindByID(ctx, materialID)
	if err != nil {
		return nil, err
	}
	response := ToMaterialResponse(material)
	return &response, nil
}

// List retrieves catalog materials with search and category filtering
func (s *MaterialService) List(ctx context.Context, filter MaterialListFilter) ([]MaterialResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "name"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "asc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]interface{}),
	}
	if filter.Category != "" {
		domainFilter.Filters["category"] = filter.Category
	}
	if filter.ActiveOnly {
		domainFilter.Filters["active"] = true
	}

	materials, err := s.materialRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.materialRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToMaterialResponses(materials), total, nil
}

// ListCategories returns the distinct catalog categories
func (s *MaterialService) ListCategories(ctx context.Context) ([]string, error) {
	return s.materialRepo.ListCategories(ctx)
}

// Update updates a material
func (s *MaterialService) Update(ctx context.Context, materialID uuid.UUID, req UpdateMaterialRequest) (*MaterialResponse, error) {
	material, err := s.materialRepo.FindByID(ctx, materialID)
	if err != nil {
		return nil, err
	}

	name := material.Name
	if req.Name != nil {
		name = *req.Name
	}
	somaliName := material.SomaliName
	if req.SomaliName != nil {
		somaliName = *req.SomaliName
	}
	description := material.Description
	if req.Description != nil {
		description = *req.Description
	}
	if err := material.Update(name, somaliName, description); err != nil {
		return nil, err
	}

	if req.Category != nil || req.Subcategory != nil {
		category := material.Category
		if req.Category != nil {
			category = *req.Category
		}
		subcategory := material.Subcategory
		if req.Subcategory != nil {
			subcategory = *req.Subcategory
		}
		if err := material.SetCategory(category, subcategory); err != nil {
			return nil, err
		}
	}

	if req.Unit != nil {
		if err := material.SetUnit(*req.Unit); err != nil {
			return nil, err
		}
	}
	if req.ImageURL != nil {
		if err := material.SetImageURL(*req.ImageURL); err != nil {
			return nil, err
		}
	}

	if req.Active != nil {
		if *req.Active {
			err = material.Activate()
		} else {
			err = material.Deactivate()
		}
		if err != nil {
			return nil, err
		}
	}

	if err := s.materialRepo.Save(ctx, material); err != nil {
		return nil, err
	}

	response := ToMaterialResponse(material)
	return &response, nil
}

// Delete removes a material from the catalog
func (s *MaterialService) Delete(ctx context.Context, materialID uuid.UUID) error {
	if _, err := s.materialRepo.FindByID(ctx, materialID); err != nil {
		return err
	}
	return s.materialRepo.Delete(ctx, materialID)
}

// SaveSupplierOffer records or refreshes a standing supplier offer on a
// material. An existing offer from the same supplier is updated in place.
func (s *MaterialService) SaveSupplierOffer(ctx context.Context, materialID uuid.UUID, req SupplierOfferRequest) (*SupplierOfferResponse, error) {
	if _, err := s.materialRepo.FindByID(ctx, materialID); err != nil {
		return nil, err
	}

	offers, err := s.offerRepo.FindByMaterial(ctx, materialID)
	if err != nil {
		return nil, err
	}

	for i := range offers {
		if offers[i].SupplierID == req.SupplierID {
			if err := offers[i].UpdateOffer(req.Price, req.LeadTimeDays); err != nil {
				return nil, err
			}
			if err := s.offerRepo.Save(ctx, &offers[i]); err != nil {
				return nil, err
			}
			response := ToSupplierOfferResponse(&offers[i])
			return &response, nil
		}
	}

	offer, err := catalog.NewMaterialSupplier(materialID, req.SupplierID, req.Price, req.LeadTimeDays)
	if err != nil {
		return nil, err
	}
	if err := s.offerRepo.Save(ctx, offer); err != nil {
		return nil, err
	}

	response := ToSupplierOfferResponse(offer)
	return &response, nil
}

// ListSupplierOffers lists the standing supplier offers for a material
func (s *MaterialService) ListSupplierOffers(ctx context.Context, materialID uuid.UUID) ([]SupplierOfferResponse, error) {
	offers, err := s.offerRepo.FindByMaterial(ctx, materialID)
	if err != nil {
		return nil, err
	}
	return ToSupplierOfferResponses(offers), nil
}
