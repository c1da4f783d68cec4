package domain

type ContactChannels struct {
	Email bool `json:"email"`
	Phone bool `json:"phone"`
	Mail  bool `json:"mail"`
}

type ContactPreferences struct {
	Phone    string          `json:"phone"`
	Email    string          `json:"email"`
	Channels ContactChannels `json:"channels"`
}
