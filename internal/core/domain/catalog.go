package domain

import "errors"

var (
	ErrProviderNotFound  = errors.New("provider not found")
	ErrServiceNotFound   = errors.New("service not found")
	ErrInvalidOnboarding = errors.New("invalid onboarding data")
)

// Service is a priced offering of a provider.
type Service struct {
	ID          int    `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Price       int64  `json:"price" yaml:"price"`
	PointsCost  int64  `json:"points_cost" yaml:"points_cost"`
	Duration    int    `json:"duration" yaml:"duration"`
	Description string `json:"description" yaml:"description"`
}

// AmountFor returns what the service costs under the given payment method.
func (s Service) AmountFor(m PaymentMethod) int64 {
	if m == PaymentPoints {
		return s.PointsCost
	}
	return s.Price
}

// ScheduleEntry is one weekly working window.
type ScheduleEntry struct {
	Day       string `json:"day" yaml:"day" validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	StartTime string `json:"start_time" yaml:"start_time" validate:"required"`
	EndTime   string `json:"end_time" yaml:"end_time" validate:"required"`
}

// Review is a client's rating of a provider.
type Review struct {
	ID         int    `json:"id" yaml:"id"`
	ClientName string `json:"client_name" yaml:"client_name"`
	Rating     int    `json:"rating" yaml:"rating"`
	Comment    string `json:"comment" yaml:"comment"`
	Date       string `json:"date" yaml:"date"`
}

// Provider is a directory listing.
type Provider struct {
	ID          int             `json:"id" yaml:"id"`
	Name        string          `json:"name" yaml:"name"`
	Location    string          `json:"location" yaml:"location"`
	Rating      float64         `json:"rating" yaml:"rating"`
	ReviewCount int             `json:"review_count" yaml:"review_count"`
	Image       string          `json:"image" yaml:"image"`
	Bio         string          `json:"bio" yaml:"bio"`
	Specialties string          `json:"specialties" yaml:"specialties"`
	Experience  string          `json:"experience" yaml:"experience"`
	Services    []Service       `json:"services" yaml:"services"`
	Schedule    []ScheduleEntry `json:"schedule" yaml:"schedule"`
	Reviews     []Review        `json:"reviews" yaml:"reviews"`
}

// Service looks up one of the provider's services by id.
func (p *Provider) Service(id int) (Service, bool) {
	for _, s := range p.Services {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}

// Offers reports whether the provider lists a service with exactly this name.
func (p *Provider) Offers(name string) bool {
	for _, s := range p.Services {
		if s.Name == name {
			return true
		}
	}
	return false
}

// OfferedService is a service a provider defines during onboarding.
type OfferedService struct {
	Name        string `json:"name" validate:"required"`
	Price       int64  `json:"price" validate:"required,gt=0"`
	Duration    int    `json:"duration" validate:"required,gt=0"`
	Description string `json:"description"`
}

// LowestPrice is the cheapest money price among the provider's services.
func (p *Provider) LowestPrice() int64 {
	var lowest int64
	for i, s := range p.Services {
		if i == 0 || s.Price < lowest {
			lowest = s.Price
		}
	}
	return lowest
}
