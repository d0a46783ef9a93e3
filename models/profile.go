package models

// Profile is the singleton user profile. ProfilePicture holds a data-URL
// encoded image when set.
type Profile struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	ProfilePicture string `json:"profilePicture"`
}

// Complete reports whether name, email and phone are all filled in.
// Completing the profile is what earns the Profile Master badge.
func (p Profile) Complete() bool {
	return p.Name != "" && p.Email != "" && p.Phone != ""
}
