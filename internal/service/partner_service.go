package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/1mikez1/BonusTracker-sub001/internal/api/request"
	"github.com/1mikez1/BonusTracker-sub001/internal/model"
	"github.com/1mikez1/BonusTracker-sub001/internal/repository"
)

// PartnerService handles partner-related business logic: listing, lookup,
// and the write path where split pairs are validated before storage.
type PartnerService struct {
	partnerRepo *repository.PartnerRepository
}

// NewPartnerService creates a new PartnerService with the provided repository dependency.
func NewPartnerService(partnerRepo *repository.PartnerRepository) *PartnerService {
	return &PartnerService{partnerRepo: partnerRepo}
}

// GetPartners retrieves partners, optionally filtered by a name query.
func (s *PartnerService) GetPartners(filter model.PartnerFilter) ([]model.Partner, error) {
	return s.partnerRepo.GetPartners(filter)
}

// GetPartner retrieves a single partner by ID.
func (s *PartnerService) GetPartner(partnerID string) (model.Partner, error) {
	return s.partnerRepo.GetPartnerOnID(partnerID)
}

// CreatePartner creates a new partner from a validated request. Validation of
// the split pair has already happened at the HTTP boundary.
func (s *PartnerService) CreatePartner(req request.CreatePartnerRequest) (model.Partner, error) {
	partner := model.Partner{
		ID:                  uuid.New().String(),
		Name:                req.Name,
		DefaultSplitPartner: req.DefaultSplitPartner,
		DefaultSplitOwner:   req.DefaultSplitOwner,
		Contact:             req.Contact,
		Notes:               req.Notes,
		CreatedAt:           time.Now().UTC(),
	}

	if err := s.partnerRepo.CreatePartner(partner); err != nil {
		return model.Partner{}, err
	}

	return partner, nil
}

// UpdatePartner applies a partial update to an existing partner and returns
// the updated record.
func (s *PartnerService) UpdatePartner(partnerID string, req request.UpdatePartnerRequest) (model.Partner, error) {
	partner, err := s.partnerRepo.GetPartnerOnID(partnerID)
	if err != nil {
		return model.Partner{}, err
	}

	if req.Name != nil {
		partner.Name = *req.Name
	}
	if req.DefaultSplitPartner != nil && req.DefaultSplitOwner != nil {
		partner.DefaultSplitPartner = *req.DefaultSplitPartner
		partner.DefaultSplitOwner = *req.DefaultSplitOwner
	}
	if req.Contact != nil {
		partner.Contact = *req.Contact
	}
	if req.Notes != nil {
		partner.Notes = *req.Notes
	}

	if err := s.partnerRepo.UpdatePartner(partner); err != nil {
		return model.Partner{}, err
	}

	return partner, nil
}
