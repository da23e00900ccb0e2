package dto

import "encoding/json"

type RegisterRequest struct {
	Email        string  `json:"email"`
	Username     string  `json:"username"`
	Password     string  `json:"password"`
	ProfileImage *string `json:"profileImage"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// NullableString distinguishes an explicit JSON null from an absent field,
// which a plain *string cannot.
type NullableString struct {
	Set   bool
	Value *string
}

func (s *NullableString) UnmarshalJSON(data []byte) error {
	s.Set = true
	if string(data) == "null" {
		s.Value = nil
		return nil
	}
	return json.Unmarshal(data, &s.Value)
}

// UpdateProfileRequest carries partial profile updates; absent fields are left
// untouched, a null profileImage clears the stored one.
type UpdateProfileRequest struct {
	Username     *string        `json:"username"`
	ProfileImage NullableString `json:"profileImage"`
}
