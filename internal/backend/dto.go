package backend

import "virtue/internal/domain"

// favoriteDTO mirrors the backend's favorite representation
type favoriteDTO struct {
	ID                 string `json:"id,omitempty"`
	StreamerUUID       string `json:"streamerUuid"`
	StreamerHrName     string `json:"streamerHrName"`
	StreamerType       string `json:"streamerType"`
	ConfigTemplateName string `json:"configTemplateName"`
	ComputeUnitIP      string `json:"computeUnitIP"`
	IsAlive            string `json:"isAlive,omitempty"`
	IPAddress          string `json:"ipAddress,omitempty"`
	AddedAt            string `json:"addedAt,omitempty"`
}

// streamerDTO mirrors the backend's fleet listing representation
type streamerDTO struct {
	ID                 string `json:"id,omitempty"`
	StreamerUUID       string `json:"streamer_uuid"`
	StreamerHrName     string `json:"streamer_hr_name"`
	StreamerType       string `json:"streamer_type"`
	ConfigTemplateName string `json:"config_template_name"`
	ComputeUnitIP      string `json:"compute_unit_ip"`
	IsAlive            string `json:"is_alive,omitempty"`
	IPAddress          string `json:"ip_address,omitempty"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

func toFavoriteDTO(f domain.Favorite) favoriteDTO {
	return favoriteDTO{
		ID:                 f.ID,
		StreamerUUID:       f.StreamerUUID,
		StreamerHrName:     f.StreamerHrName,
		StreamerType:       f.StreamerType,
		ConfigTemplateName: f.ConfigTemplateName,
		ComputeUnitIP:      f.ComputeUnitIP,
		IsAlive:            f.IsAlive,
		IPAddress:          f.IPAddress,
		AddedAt:            f.AddedAt,
	}
}

func mapFavorite(d favoriteDTO) domain.Favorite {
	return domain.Favorite{
		ID:                 d.ID,
		StreamerUUID:       d.StreamerUUID,
		StreamerHrName:     d.StreamerHrName,
		StreamerType:       d.StreamerType,
		ConfigTemplateName: d.ConfigTemplateName,
		ComputeUnitIP:      d.ComputeUnitIP,
		IsAlive:            d.IsAlive,
		IPAddress:          d.IPAddress,
		AddedAt:            d.AddedAt,
	}
}

func mapFavorites(dtos []favoriteDTO) []domain.Favorite {
	favs := make([]domain.Favorite, 0, len(dtos))
	for _, d := range dtos {
		favs = append(favs, mapFavorite(d))
	}
	return favs
}

func mapStreamers(dtos []streamerDTO) []domain.Streamer {
	streamers := make([]domain.Streamer, 0, len(dtos))
	for _, d := range dtos {
		streamers = append(streamers, domain.Streamer{
			ID:                 d.ID,
			StreamerUUID:       d.StreamerUUID,
			StreamerHrName:     d.StreamerHrName,
			StreamerType:       d.StreamerType,
			ConfigTemplateName: d.ConfigTemplateName,
			ComputeUnitIP:      d.ComputeUnitIP,
			IsAlive:            d.IsAlive,
			IPAddress:          d.IPAddress,
		})
	}
	return streamers
}
