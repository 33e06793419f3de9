package request

// RegisterRequest is the request body for creating a user
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// GuessRequest is the request body for making a move in a game
type GuessRequest struct {
	Guess string `json:"guess"`
}
