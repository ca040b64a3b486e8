package dto

// LoginRequest entrada para login con username y password.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenPairResponse salida del login: access corto + refresh largo.
type TokenPairResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// RefreshRequest entrada para canjear un refresh token.
type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

// AccessTokenResponse salida del canje de refresh.
type AccessTokenResponse struct {
	Access string `json:"access"`
}

// RegisterCompanyRequest registro público: empresa + su usuario admin inicial,
// creados en una sola transacción. La empresa nace inactiva.
type RegisterCompanyRequest struct {
	Name          string `json:"name"`
	Domain        string `json:"domain"`
	Email         string `json:"email"`
	AdminUsername string `json:"admin_username"`
	AdminEmail    string `json:"admin_email"`
	AdminPassword string `json:"admin_password"`
}

// RegisterCompanyResponse salida del registro de empresa.
type RegisterCompanyResponse struct {
	Company CompanyResponse `json:"company"`
	Admin   UserResponse    `json:"admin"`
}
