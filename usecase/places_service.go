package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/zonaelectrica/zeia-server/domain/entities"
	"github.com/zonaelectrica/zeia-server/domain/repositories"
)

// searchRadiusSuffix widens the distributor query to the supported radius
const searchRadiusSuffix = " en un radio de 50 kilómetros a la redonda de mi ciudad"

// FeaturedPlace is the headquarters entry shown first in every result set
var FeaturedPlace = entities.Place{
	Title:    "ZONA ELÉCTRICA - Sede Principal",
	URI:      "https://www.google.com/maps/search/?api=1&query=Zona+Eléctrica+Calle+56+%2344-127+Barranquilla",
	Address:  "Calle 56 #44-127, Barranquilla, Atlántico",
	Snippets: []string{"Distribuidor líder en soluciones eléctricas e industriales. Soporte técnico especializado ZE."},
	Featured: true,
}

// PlacesService locates distributors near the user. The featured entry is
// always first; a gateway failure degrades the list to just that entry.
type PlacesService struct {
	assistant repositories.Assistant
	logger    *zap.Logger
}

// NewPlacesService creates a new places service
func NewPlacesService(assistant repositories.Assistant, logger *zap.Logger) *PlacesService {
	return &PlacesService{assistant: assistant, logger: logger}
}

// Default returns the result set before any search has run
func (s *PlacesService) Default() []entities.Place {
	return []entities.Place{FeaturedPlace}
}

// Search finds distributors around the user location
func (s *PlacesService) Search(ctx context.Context, query string, location entities.LatLng) []entities.Place {
	results, err := s.assistant.FindPlaces(ctx, query+searchRadiusSuffix, location)
	if err != nil {
		s.logger.Error("Distributor search failed", zap.Error(err))
		return []entities.Place{FeaturedPlace}
	}

	places := make([]entities.Place, 0, len(results)+1)
	places = append(places, FeaturedPlace)
	places = append(places, results...)
	return places
}
