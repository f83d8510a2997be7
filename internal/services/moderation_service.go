package services

import (
	"fmt"

	"campusmarket/internal/domain"
	"campusmarket/internal/repositories"
	"campusmarket/internal/utils"
)

// Notifier is the fire-and-forget feedback sink the presentation
// layer surfaces to the user. The success and error channels are
// distinct and must never be conflated.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// ModerationService enforces legal lifecycle transitions. Each
// operation is a single conditional write; a no-op (row already moved
// on, or unknown id) and a storage fault both surface on the error
// channel, while the returned error keeps them apart for callers.
type ModerationService struct {
	Listings  repositories.ListingRepository
	Notifier  Notifier
	RequestID string
}

// Approve moves an Unapproved listing to Active.
func (s ModerationService) Approve(id int64) error {
	return s.transition(id, "approve",
		[]domain.ListingStatus{domain.StatusUnapproved}, domain.StatusActive,
		"Successfully approved item", "Error approving item")
}

// Disapprove moves an Unapproved listing to Disapproved.
func (s ModerationService) Disapprove(id int64) error {
	return s.transition(id, "disapprove",
		[]domain.ListingStatus{domain.StatusUnapproved}, domain.StatusDisapproved,
		"Successfully disapproved item", "Error disapproving item")
}

// Remove takes down any non-terminal listing. Removed is its own
// terminal state, distinct from Disapproved.
func (s ModerationService) Remove(id int64) error {
	from := []domain.ListingStatus{domain.StatusUnapproved, domain.StatusActive, domain.StatusEnded}
	return s.transition(id, "remove", from, domain.StatusRemoved,
		"Successfully removed item", "Error removing item")
}

func (s ModerationService) transition(id int64, action string, from []domain.ListingStatus, to domain.ListingStatus, okMsg, failMsg string) error {
	applied, err := s.Listings.UpdateStatus(id, from, to)
	if err != nil {
		s.notifyError(failMsg)
		utils.LogEvent(s.RequestID, "moderation", action, fmt.Sprintf("listing_id=%d storage_fault=%v", id, err))
		return domain.InternalError{Msg: failMsg, Err: err}
	}
	if !applied {
		s.notifyError(failMsg)
		utils.LogEvent(s.RequestID, "moderation", action, fmt.Sprintf("listing_id=%d no_op", id))
		return domain.NotFoundError{Resource: "listing"}
	}

	s.notifySuccess(okMsg)
	utils.LogEvent(s.RequestID, "moderation", action, fmt.Sprintf("listing_id=%d applied", id))
	return nil
}

func (s ModerationService) notifySuccess(msg string) {
	if s.Notifier != nil {
		s.Notifier.Success(msg)
	}
}

func (s ModerationService) notifyError(msg string) {
	if s.Notifier != nil {
		s.Notifier.Error(msg)
	}
}
