package ledger

import "github.com/1mikez1/BonusTracker-sub001/internal/model"

// ResolveSplit returns the effective split for one client assignment: the
// assignment's override pair when present, otherwise the owning partner's
// default pair.
//
// No validation happens here. The 100% invariant is a write-time concern of
// the partner and assignment editors; the resolver passes stored values
// through verbatim, without clamping or normalizing.
func ResolveSplit(assignment model.Assignment, partner model.Partner) model.Split {
	if assignment.Override != nil {
		return *assignment.Override
	}
	return model.Split{
		Partner: partner.DefaultSplitPartner,
		Owner:   partner.DefaultSplitOwner,
	}
}
