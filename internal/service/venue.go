package service

import "github.com/vietanh2810/ticket-desk/internal/domain"

type VenueService struct {
	venue domain.VenueMap
}

func NewVenueService(venue domain.VenueMap) *VenueService {
	return &VenueService{
		venue: venue,
	}
}

func (s *VenueService) Map() domain.VenueMap {
	grandstands := make([]domain.Grandstand, len(s.venue.Grandstands))
	copy(grandstands, s.venue.Grandstands)

	return domain.VenueMap{
		Title:       s.venue.Title,
		Grandstands: grandstands,
	}
}
