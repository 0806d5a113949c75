package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/1mikez1/BonusTracker-sub001/internal/api/request"
	"github.com/1mikez1/BonusTracker-sub001/internal/apperrors"
	"github.com/1mikez1/BonusTracker-sub001/internal/autoassign"
	"github.com/1mikez1/BonusTracker-sub001/internal/model"
	"github.com/1mikez1/BonusTracker-sub001/internal/repository"
)

// AssignmentService handles linking clients to partners, per-client override
// terms, and the trigger for the external auto-assignment procedure.
type AssignmentService struct {
	assignmentRepo *repository.AssignmentRepository
	clientRepo     *repository.ClientRepository
	partnerRepo    *repository.PartnerRepository
	autoAssigner   *autoassign.Client
}

// NewAssignmentService creates a new AssignmentService with the provided dependencies.
// autoAssigner may be nil when no endpoint is configured.
func NewAssignmentService(
	assignmentRepo *repository.AssignmentRepository,
	clientRepo *repository.ClientRepository,
	partnerRepo *repository.PartnerRepository,
	autoAssigner *autoassign.Client,
) *AssignmentService {
	return &AssignmentService{
		assignmentRepo: assignmentRepo,
		clientRepo:     clientRepo,
		partnerRepo:    partnerRepo,
		autoAssigner:   autoAssigner,
	}
}

// GetAssignments lists all active assignments.
func (s *AssignmentService) GetAssignments() ([]model.Assignment, error) {
	return s.assignmentRepo.GetAssignments()
}

// AssignClient links a client to a partner. Both must exist, and the client
// must not already be assigned; reassignment goes through Unassign first.
func (s *AssignmentService) AssignClient(req request.CreateAssignmentRequest) (model.Assignment, error) {
	if _, err := s.clientRepo.GetClientOnID(req.ClientID); err != nil {
		return model.Assignment{}, err
	}
	if _, err := s.partnerRepo.GetPartnerOnID(req.PartnerID); err != nil {
		return model.Assignment{}, err
	}

	assignment := model.Assignment{
		ID:        uuid.New().String(),
		ClientID:  req.ClientID,
		PartnerID: req.PartnerID,
		CreatedAt: time.Now().UTC(),
	}
	if req.SplitPartnerOverride != nil && req.SplitOwnerOverride != nil {
		assignment.Override = &model.Split{
			Partner: *req.SplitPartnerOverride,
			Owner:   *req.SplitOwnerOverride,
		}
	}

	if err := s.assignmentRepo.CreateAssignment(assignment); err != nil {
		return model.Assignment{}, err
	}

	return assignment, nil
}

// UpdateOverride sets or clears an assignment's override split pair.
func (s *AssignmentService) UpdateOverride(assignmentID string, req request.UpdateOverrideRequest) error {
	var override *model.Split
	if req.SplitPartnerOverride != nil && req.SplitOwnerOverride != nil {
		override = &model.Split{
			Partner: *req.SplitPartnerOverride,
			Owner:   *req.SplitOwnerOverride,
		}
	}
	return s.assignmentRepo.UpdateOverride(assignmentID, override)
}

// Unassign removes a client's active assignment.
func (s *AssignmentService) Unassign(assignmentID string) error {
	return s.assignmentRepo.DeleteAssignment(assignmentID)
}

// AutoAssign sends the currently unassigned clients to the external
// procedure and relays its per-client outcomes. The procedure writes
// assignments server-side; callers re-read the assignment collection (or the
// ledger, which reloads its snapshot anyway) to see the result.
func (s *AssignmentService) AutoAssign(ctx context.Context) ([]autoassign.Outcome, error) {
	if !s.autoAssigner.Configured() {
		return nil, apperrors.ErrAutoAssignNotConfigured
	}

	clients, err := s.clientRepo.GetClients(model.ClientFilter{UnassignedOnly: true})
	if err != nil {
		return nil, err
	}

	clientIDs := make([]string, len(clients))
	for i, c := range clients {
		clientIDs[i] = c.ID
	}

	return s.autoAssigner.AssignClients(ctx, clientIDs)
}
