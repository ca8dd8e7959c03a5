package entity

import "time"

// Known listing types. The type-counts endpoint reports exactly these.
const (
	TypeBeach    = "beach"
	TypeMountain = "mountain"
	TypeVillage  = "village"
)

// PropertyTypes lists the known listing types in reporting order.
var PropertyTypes = []string{TypeBeach, TypeMountain, TypeVillage}

// Property is an owner-scoped listing. Only the user referenced by
// CurrentOwner may update or delete it.
type Property struct {
	ID           string
	Title        string
	Type         string
	Description  string
	ImageURL     string
	Price        int64
	Sqmeters     int
	Beds         int
	Featured     bool
	CurrentOwner string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
