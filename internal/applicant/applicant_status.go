package applicant

// Status adalah vocabulary kanonik untuk pipeline rekrutmen.
type Status string

const (
	StatusPending     Status = "pending"
	StatusInterviewed Status = "interviewed"
	StatusApproved    Status = "approved"
	StatusRejected    Status = "rejected"
	StatusOnboarding  Status = "onboarding"
	StatusHired       Status = "hired"
)

// legacyStatusMap menerjemahkan vocabulary lama (employment status) yang masih
// mungkin dikirim oleh client lama ke set kanonik.
var legacyStatusMap = map[string]Status{
	"Active":     StatusHired,
	"Finished":   StatusHired,
	"Inactive":   StatusRejected,
	"Terminated": StatusRejected,
}

var validStatuses = map[Status]bool{
	StatusPending:     true,
	StatusInterviewed: true,
	StatusApproved:    true,
	StatusRejected:    true,
	StatusOnboarding:  true,
	StatusHired:       true,
}

// ParseStatus menormalkan input bebas menjadi Status kanonik.
// Nilai legacy dipetakan, nilai tidak dikenal jatuh ke pending.
func ParseStatus(raw string) Status {
	if raw == "" {
		return StatusPending
	}
	if s, ok := legacyStatusMap[raw]; ok {
		return s
	}
	if validStatuses[Status(raw)] {
		return Status(raw)
	}
	return StatusPending
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) String() string {
	return string(s)
}
