package entity

import (
	"fmt"
	"time"
)

const (
	// DefaultListLimit applies when the caller does not set a page size.
	DefaultListLimit = 10
	// MaxListLimit caps the page size regardless of what the caller asks for.
	MaxListLimit = 100
)

// Sort keys recognized per entity. Anything outside the entity's set is
// rejected by NewListQuery rather than silently ignored.
var (
	ProfessionOrderKeys  = []string{"name", "-name", "created_at", "-created_at"}
	DoctorOrderKeys      = []string{"first_name", "last_name", "-last_name", "created_at", "-created_at"}
	ClientOrderKeys      = []string{"first_name", "last_name", "-last_name", "created_at", "-created_at"}
	CategoryOrderKeys    = []string{"name", "-name", "created_at", "-created_at"}
	DiseaseOrderKeys     = []string{"name", "-name", "created_at", "-created_at"}
	DiagnosisOrderKeys   = []string{"created_at", "-created_at"}
	AppointmentOrderKeys = []string{"start_time", "-start_time", "end_time", "-end_time"}
)

// ListQuery is a domain-level search/sort/page directive consumed by the
// repository layer. Used to avoid coupling repositories with delivery DTOs.
type ListQuery struct {
	Search string // case-insensitive substring match over name-like columns
	Order  string // validated against the entity's sort-key set
	Limit  int
	Offset int
}

// NewListQuery builds a ListQuery with defaults applied and the order key
// checked against the allowed set for the entity.
func NewListQuery(search, order string, limit, offset int, orderKeys []string) (*ListQuery, error) {
	if order != "" && !containsKey(orderKeys, order) {
		return nil, fmt.Errorf("unsupported order key: %q", order)
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return &ListQuery{
		Search: search,
		Order:  order,
		Limit:  limit,
		Offset: offset,
	}, nil
}

// AppointmentListQuery extends ListQuery with the appointment-specific
// window and reference filters.
type AppointmentListQuery struct {
	ListQuery
	StartDate *time.Time
	EndDate   *time.Time
	DoctorID  uint
	ClientID  uint
}

// NewAppointmentListQuery builds an appointment list directive with the same
// defaulting and order-key validation as NewListQuery.
func NewAppointmentListQuery(order string, limit, offset int, startDate, endDate *time.Time, doctorID, clientID uint) (*AppointmentListQuery, error) {
	base, err := NewListQuery("", order, limit, offset, AppointmentOrderKeys)
	if err != nil {
		return nil, err
	}
	return &AppointmentListQuery{
		ListQuery: *base,
		StartDate: startDate,
		EndDate:   endDate,
		DoctorID:  doctorID,
		ClientID:  clientID,
	}, nil
}

func containsKey(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}
