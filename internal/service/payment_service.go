package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/1mikez1/BonusTracker-sub001/internal/api/request"
	"github.com/1mikez1/BonusTracker-sub001/internal/model"
	"github.com/1mikez1/BonusTracker-sub001/internal/repository"
	"github.com/1mikez1/BonusTracker-sub001/internal/validation"
)

// PaymentService handles the append-only payment trail. The ledger picks new
// payments up on its next recomputation; nothing here touches balances.
type PaymentService struct {
	paymentRepo *repository.PaymentRepository
	partnerRepo *repository.PartnerRepository
}

// NewPaymentService creates a new PaymentService with the provided repository dependencies.
func NewPaymentService(
	paymentRepo *repository.PaymentRepository,
	partnerRepo *repository.PartnerRepository,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		partnerRepo: partnerRepo,
	}
}

// RecordPayment appends a payment to the given partner.
func (s *PaymentService) RecordPayment(partnerID string, req request.CreatePaymentRequest) (model.Payment, error) {
	// The partner must exist; a payment to a deleted partner would silently
	// vanish from every balance.
	if _, err := s.partnerRepo.GetPartnerOnID(partnerID); err != nil {
		return model.Payment{}, err
	}

	paidAt := time.Now().UTC()
	if req.PaidAt != "" {
		parsed, err := validation.ParseTime(req.PaidAt)
		if err != nil {
			return model.Payment{}, err
		}
		paidAt = parsed
	}

	payment := model.Payment{
		ID:        uuid.New().String(),
		PartnerID: partnerID,
		Amount:    req.Amount,
		Note:      req.Note,
		PaidAt:    paidAt,
	}

	if err := s.paymentRepo.CreatePayment(payment); err != nil {
		return model.Payment{}, err
	}

	return payment, nil
}

// GetPaymentsForPartner lists all payments made to one partner.
func (s *PaymentService) GetPaymentsForPartner(partnerID string) ([]model.Payment, error) {
	if _, err := s.partnerRepo.GetPartnerOnID(partnerID); err != nil {
		return nil, err
	}
	return s.paymentRepo.GetPaymentsOnPartnerID(partnerID)
}
