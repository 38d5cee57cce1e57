// ABOUTME: Farmer profile models, distinct from the auth provider's User identity
// ABOUTME: Every field is optional — a signed-in user may not have onboarded yet

package models

// Profile is the application-level farmer record served by the backend.
type Profile struct {
	ID         string   `json:"id"`
	FullName   *string  `json:"full_name"`
	Username   *string  `json:"username"`
	AvatarURL  *string  `json:"avatar_url"`
	Location   *string  `json:"location"`
	FarmSize   *float64 `json:"farm_size"`
	DistrictID *int     `json:"district_id"`
	SoilTypeID *int     `json:"soil_type_id"`
}

// Complete reports whether the basic onboarding fields are filled in.
func (p *Profile) Complete() bool {
	return p != nil && p.FullName != nil && p.DistrictID != nil
}

// ProfileUpdate is a partial update; nil fields are left untouched.
type ProfileUpdate struct {
	FullName   *string  `json:"full_name,omitempty"`
	Username   *string  `json:"username,omitempty"`
	Location   *string  `json:"location,omitempty"`
	FarmSize   *float64 `json:"farm_size,omitempty"`
	DistrictID *int     `json:"district_id,omitempty"`
	SoilTypeID *int     `json:"soil_type_id,omitempty"`
}

// Empty reports whether the update would change nothing. The backend rejects
// empty updates with a 400, so callers check first.
func (u ProfileUpdate) Empty() bool {
	return u.FullName == nil && u.Username == nil && u.Location == nil &&
		u.FarmSize == nil && u.DistrictID == nil && u.SoilTypeID == nil
}
