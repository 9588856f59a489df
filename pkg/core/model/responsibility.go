package model

// ResolutionKind tags a ResponsibilityResolution variant.
type ResolutionKind string

const (
	ResolutionResolved   ResolutionKind = "RESOLVED"
	ResolutionUnassigned ResolutionKind = "UNASSIGNED"
)

// UnassignedReason explains why no responsible party exists.
type UnassignedReason string

const (
	// ReasonCoverageFailed marks a coverage record that cannot be honoured
	// (covering person gone, or a covered badge with no backing record).
	ReasonCoverageFailed UnassignedReason = "COVERAGE_FAILED"
	// ReasonNoResponsible marks a slot with no plan entry at all.
	ReasonNoResponsible UnassignedReason = "NO_RESPONSIBLE"
)

// ResponsibilityResolution is a tagged variant: exactly one of RESOLVED
// or UNASSIGNED is produced for any responsibility query. The resolver
// never invents a responsible person.
type ResponsibilityResolution struct {
	Kind           ResolutionKind   `json:"kind"`
	TargetPersonID string           `json:"targetPersonId,omitempty"`
	SlotOwnerID    string           `json:"slotOwnerId,omitempty"`
	Source         IncidentSource   `json:"source,omitempty"`
	Reason         UnassignedReason `json:"reason,omitempty"`
}

func Resolved(targetPersonID, slotOwnerID string, source IncidentSource) ResponsibilityResolution {
	return ResponsibilityResolution{
		Kind:           ResolutionResolved,
		TargetPersonID: targetPersonID,
		SlotOwnerID:    slotOwnerID,
		Source:         source,
	}
}

func Unassigned(reason UnassignedReason) ResponsibilityResolution {
	return ResponsibilityResolution{Kind: ResolutionUnassigned, Reason: reason}
}
