package entities

// DomainError is a rule violation with a stable machine-readable code.
//
// The code is part of the external contract: handlers map it to an HTTP
// status, clients key their messaging on it. Messages are human hints only.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func newDomainError(code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

var (
	ErrInvalidID       = newDomainError("INVALID_ID", "identifier is not a valid UUID")
	ErrInvalidWeight   = newDomainError("INVALID_WEIGHT", "weight must be strictly positive")
	ErrInvalidImageURL = newDomainError("INVALID_IMAGE_URL", "image url must be a well-formed https url")

	ErrCenterInactive = newDomainError("CENTER_INACTIVE", "center is inactive and read-only")

	ErrStoreAlreadyClosed = newDomainError("STORE_ALREADY_CLOSED", "store is closed and can no longer change")
	ErrStoreImageNotFound = newDomainError("STORE_IMAGE_NOT_FOUND", "store has no image with this url")
	ErrStatusReasonNeeded = newDomainError("STATUS_REASON_REQUIRED", "a reason is required for this status change")

	ErrInvalidCampaignPeriod      = newDomainError("INVALID_CAMPAIGN_PERIOD", "campaign dates are inconsistent")
	ErrInvalidStatusTransition    = newDomainError("INVALID_STATUS_TRANSITION", "campaign status transition is not allowed")
	ErrCampaignNotModifiable      = newDomainError("CAMPAIGN_NOT_MODIFIABLE", "only planned campaigns can be modified")
	ErrCannotCloseCampaign        = newDomainError("CANNOT_CLOSE_CAMPAIGN", "campaign cannot be closed from its current status")
	ErrCannotCancelClosedCampaign = newDomainError("CANNOT_CANCEL_CLOSED_CAMPAIGN", "a closed campaign cannot be cancelled")

	ErrEntryAlreadyValidated = newDomainError("ENTRY_ALREADY_VALIDATED", "entry is validated and immutable")
	ErrEmptyEntry            = newDomainError("ENTRY_EMPTY", "entry has no items to validate")
	ErrEntryItemIndex        = newDomainError("ENTRY_ITEM_INDEX_OUT_OF_RANGE", "no item at this index")

	ErrProductArchived = newDomainError("PRODUCT_ARCHIVED", "product is archived")

	ErrNoActiveCenter = newDomainError("NO_ACTIVE_CENTER", "volunteer has no active center")
)
