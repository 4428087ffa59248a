package catalog

import (
	"errors"

	"shotz/models"
)

// ErrServiceNotFound is returned when a lookup by ID matches no service.
var ErrServiceNotFound = errors.New("service not found")

// ErrPackageNotFound is returned when a service has no package by that name.
var ErrPackageNotFound = errors.New("package not found")

// Catalog is the read-only list of offerable services, fixed at process start.
type Catalog struct {
	services []models.Service
}

// Default returns the catalog backed by the built-in service data.
func Default() *Catalog {
	return &Catalog{services: serviceData}
}

// New returns a catalog over the given services. Used by tests.
func New(services []models.Service) *Catalog {
	return &Catalog{services: services}
}

// ListAll returns the full ordered list of services.
func (c *Catalog) ListAll() []models.Service {
	return c.services
}

// FindByID returns the service with the given ID.
func (c *Catalog) FindByID(id string) (*models.Service, error) {
	for i := range c.services {
		if c.services[i].ID == id {
			return &c.services[i], nil
		}
	}
	return nil, ErrServiceNotFound
}

// FilterByCategory returns the services matching the given category tag,
// preserving catalog order.
func (c *Catalog) FilterByCategory(category string) []models.Service {
	var out []models.Service
	for _, s := range c.services {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out
}

// FindPackage resolves a package by service ID and package name.
func (c *Catalog) FindPackage(serviceID, packageName string) (*models.Package, error) {
	svc, err := c.FindByID(serviceID)
	if err != nil {
		return nil, err
	}
	pkg, ok := svc.FindPackage(packageName)
	if !ok {
		return nil, ErrPackageNotFound
	}
	return pkg, nil
}
