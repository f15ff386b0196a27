package entity

// ListQuery carries validated pagination, search and sort values down to the
// repositories. SortBy is already allow-listed by the DTO layer, so it is
// safe to interpolate into an ORDER BY clause.
type ListQuery struct {
	Page      int
	Limit     int
	Search    string
	SortBy    string
	SortOrder string
}

func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

func (q ListQuery) Order() string {
	return q.SortBy + " " + q.SortOrder
}

// AttendanceFilter narrows attendance listings.
type AttendanceFilter struct {
	Type      *AttendanceType
	PatientID string
}

// AppointmentFilter narrows appointment listings for the calendar and the
// status board.
type AppointmentFilter struct {
	Status  *AppointmentStatus
	StartAt string
	EndAt   string
}

// TransactionFilter narrows ledger listings.
type TransactionFilter struct {
	Kind *TransactionKind
	Paid *bool
}
