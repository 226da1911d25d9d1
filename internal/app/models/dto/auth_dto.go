package dto

// StudentLoginRequest represents a roll-number login. Login is an upsert:
// an unknown roll number creates the student record.
type StudentLoginRequest struct {
	Name       string `json:"name" binding:"required,min=2,max=100"`
	Branch     string `json:"branch" binding:"required"`
	Year       string `json:"year" binding:"required"`
	RollNumber string `json:"rollNumber" binding:"required,rollnumber"`
}

// AdminLoginRequest represents the admin password credential
type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int    `json:"expiresIn"`
}

// AdminLoginResponse represents a successful admin login
type AdminLoginResponse struct {
	Success bool          `json:"success" example:"true"`
	Message string        `json:"message" example:"Admin login successful"`
	Token   TokenResponse `json:"token"`
}
