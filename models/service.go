package models

// Service categories form a closed set.
const (
	CategoryVideography = "videography"
	CategoryPhotography = "photography"
	CategoryEditing     = "editing"
	CategoryDesign      = "design"
)

// Package is a priced variant of a service with its own feature set.
type Package struct {
	Name         string   `json:"name"`
	Price        string   `json:"price"` // formatted, e.g. "$1,000"
	Description  string   `json:"description"`
	Duration     string   `json:"duration"`
	DeliveryTime string   `json:"deliveryTime"`
	Features     []string `json:"features"`
}

// Service represents a bookable service with its package offerings.
type Service struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	Icon            string    `json:"icon"`
	Description     string    `json:"description"`
	LongDescription string    `json:"longDescription"`
	Packages        []Package `json:"packages"`
}

// FindPackage returns the named package of this service, if present.
func (s *Service) FindPackage(name string) (*Package, bool) {
	for i := range s.Packages {
		if s.Packages[i].Name == name {
			return &s.Packages[i], true
		}
	}
	return nil, false
}
