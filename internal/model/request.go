package model

import "time"

type RequestStatus string

const (
	StatusNotStarted RequestStatus = "not_started"
	StatusLoading    RequestStatus = "loading"
	StatusInTransit  RequestStatus = "in_transit"
	StatusUnloading  RequestStatus = "unloading"
	StatusCompleted  RequestStatus = "completed"
)

// RequestStatuses lists every recognized status in lifecycle order.
var RequestStatuses = []RequestStatus{
	StatusNotStarted,
	StatusLoading,
	StatusInTransit,
	StatusUnloading,
	StatusCompleted,
}

func (s RequestStatus) Valid() bool {
	switch s {
	case StatusNotStarted, StatusLoading, StatusInTransit, StatusUnloading, StatusCompleted:
		return true
	}
	return false
}

// Label is the total mapping from status to its display name.
func (s RequestStatus) Label() string {
	switch s {
	case StatusNotStarted:
		return "Не начато"
	case StatusLoading:
		return "Погрузка"
	case StatusInTransit:
		return "В пути"
	case StatusUnloading:
		return "Разгрузка"
	case StatusCompleted:
		return "Завершено"
	}
	return "Неизвестно"
}

// InProgress reports whether the request is actively moving cargo.
func (s RequestStatus) InProgress() bool {
	return s == StatusLoading || s == StatusInTransit
}

type Route struct {
	From      string
	To        string
	Waypoints []string
}

type RequestDates struct {
	Loading   time.Time
	Unloading time.Time
}

type Driver struct {
	Name string
	IIN  string
}

type Vehicle struct {
	StateNumber string
	Type        string
	HasTractor  bool
	HasTrailer  bool
}

type Cargo struct {
	Name            string
	Weight          float64
	PalletCount     int
	TemperatureMode string
}

type Payment struct {
	CostToDriver      float64
	PriceFromCustomer float64
	Advance           float64
	TotalMargin       float64
}

// DocumentRefs holds optional ids of documents attached to a request.
type DocumentRefs struct {
	TTN string
	CMR string
	SMR string
}

type TransportRequest struct {
	ID        string
	Status    RequestStatus
	Route     Route
	Dates     RequestDates
	Driver    Driver
	Vehicle   Vehicle
	Cargo     Cargo
	Payment   Payment
	Documents DocumentRefs
	IssuedBy  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ComputeMargin is the single source of truth for a request's margin.
// TotalMargin is always derived through it and never taken from input.
func ComputeMargin(priceFromCustomer, costToDriver float64) float64 {
	return priceFromCustomer - costToDriver
}
