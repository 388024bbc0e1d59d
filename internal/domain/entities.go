package domain

import "time"

// Favorite is a saved reference to a streamer, keyed by its stable UUID.
// Field names follow the admin backend's wire format.
type Favorite struct {
	ID                 string `json:"id,omitempty"`
	StreamerUUID       string `json:"streamerUuid"`
	StreamerHrName     string `json:"streamerHrName"`
	StreamerType       string `json:"streamerType"`
	ConfigTemplateName string `json:"configTemplateName"`
	ComputeUnitIP      string `json:"computeUnitIP"`
	IsAlive            string `json:"isAlive"` // backend encodes this as "true"/"false"
	IPAddress          string `json:"ipAddress,omitempty"`
	AddedAt            string `json:"addedAt,omitempty"` // RFC 3339
}

// Alive reports whether the backend last saw the streamer as live.
func (f Favorite) Alive() bool {
	return f.IsAlive == "true"
}

// StampAddedAt sets AddedAt to now if it has not been set.
func (f *Favorite) StampAddedAt(now time.Time) {
	if f.AddedAt == "" {
		f.AddedAt = now.UTC().Format(time.RFC3339)
	}
}

// FavoriteUpdate is a partial update applied to a cached favorite.
// Nil fields are left untouched.
type FavoriteUpdate struct {
	StreamerHrName     *string
	StreamerType       *string
	ConfigTemplateName *string
	ComputeUnitIP      *string
	IsAlive            *string
	IPAddress          *string
}

// Apply mutates f with the non-nil fields of the update.
func (u FavoriteUpdate) Apply(f *Favorite) {
	if u.StreamerHrName != nil {
		f.StreamerHrName = *u.StreamerHrName
	}
	if u.StreamerType != nil {
		f.StreamerType = *u.StreamerType
	}
	if u.ConfigTemplateName != nil {
		f.ConfigTemplateName = *u.ConfigTemplateName
	}
	if u.ComputeUnitIP != nil {
		f.ComputeUnitIP = *u.ComputeUnitIP
	}
	if u.IsAlive != nil {
		f.IsAlive = *u.IsAlive
	}
	if u.IPAddress != nil {
		f.IPAddress = *u.IPAddress
	}
}

// Streamer is one entry in the fleet listing served by the admin backend.
type Streamer struct {
	ID                 string `json:"id,omitempty"`
	StreamerUUID       string `json:"streamer_uuid"`
	StreamerHrName     string `json:"streamer_hr_name"`
	StreamerType       string `json:"streamer_type"`
	ConfigTemplateName string `json:"config_template_name"`
	ComputeUnitIP      string `json:"compute_unit_ip"`
	IsAlive            string `json:"is_alive"`
	IPAddress          string `json:"ip_address,omitempty"`
}

// AsFavorite converts a fleet entry into the favorite that would pin it.
func (s Streamer) AsFavorite() Favorite {
	return Favorite{
		StreamerUUID:       s.StreamerUUID,
		StreamerHrName:     s.StreamerHrName,
		StreamerType:       s.StreamerType,
		ConfigTemplateName: s.ConfigTemplateName,
		ComputeUnitIP:      s.ComputeUnitIP,
		IsAlive:            s.IsAlive,
		IPAddress:          s.IPAddress,
	}
}
