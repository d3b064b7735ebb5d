// Package profiling gerencia o perfil do criador. As métricas do perfil
// servem de padrão para a calculadora quando o criador não informa
// valores explícitos.
package profiling

import (
	"fmt"

	"github.com/vfg2006/creator-pricing-api/infrastructure/repository"
	"github.com/vfg2006/creator-pricing-api/internal/catalog"
	"github.com/vfg2006/creator-pricing-api/internal/domain"
)

type UpdateProfileRequest struct {
	DisplayName     string   `json:"display_name"`
	PrimaryPlatform string   `json:"primary_platform"`
	Niche           string   `json:"niche"`
	GeoRegion       string   `json:"geo_region"`
	Followers       *int64   `json:"followers"`
	AvgViews        *int64   `json:"avg_views"`
	EngagementRate  *float64 `json:"engagement_rate"`
}

type Profiler interface {
	GetProfile(userID int) (*domain.CreatorProfile, error)
	UpdateProfile(userID int, request UpdateProfileRequest) (*domain.CreatorProfile, error)
}

type Service struct {
	profileRepo repository.ProfileRepository
}

func NewService(profileRepo repository.ProfileRepository) Profiler {
	return &Service{
		profileRepo: profileRepo,
	}
}

// GetProfile retorna o perfil do usuário ou nil quando ainda não criado.
func (s *Service) GetProfile(userID int) (*domain.CreatorProfile, error) {
	profile, err := s.profileRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar perfil do criador: %w", err)
	}

	return profile, nil
}

// UpdateProfile cria ou substitui o perfil do usuário. Os códigos passam
// pelo catálogo antes de persistir.
func (s *Service) UpdateProfile(userID int, request UpdateProfileRequest) (*domain.CreatorProfile, error) {
	profile := &domain.CreatorProfile{
		UserID:          userID,
		DisplayName:     request.DisplayName,
		PrimaryPlatform: catalog.NormalizePlatform(request.PrimaryPlatform),
		Niche:           catalog.NormalizeNiche(request.Niche),
		GeoRegion:       catalog.NormalizeGeoRegion(request.GeoRegion),
		Followers:       request.Followers,
		AvgViews:        request.AvgViews,
		EngagementRate:  request.EngagementRate,
	}

	saved, err := s.profileRepo.SaveOrUpdate(profile)
	if err != nil {
		return nil, fmt.Errorf("erro ao salvar perfil do criador: %w", err)
	}

	return saved, nil
}
