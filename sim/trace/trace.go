package trace

// GovernanceTrace collects governance decisions during one simulation run.
type GovernanceTrace struct {
	Records []GovernanceRecord
}

// NewGovernanceTrace creates a GovernanceTrace ready for recording.
func NewGovernanceTrace() *GovernanceTrace {
	return &GovernanceTrace{
		Records: make([]GovernanceRecord, 0),
	}
}

// Record appends a governance decision record.
func (gt *GovernanceTrace) Record(record GovernanceRecord) {
	gt.Records = append(gt.Records, record)
}

// Reset drops all recorded decisions.
func (gt *GovernanceTrace) Reset() {
	gt.Records = gt.Records[:0]
}
