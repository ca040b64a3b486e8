package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Tipos de token emitidos. El refresh solo sirve para canjear un nuevo access.
const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Role e IsSuperuser viajan en el token para que el middleware RBAC pueda tomar
// decisiones sin consultar la DB.
type Claims struct {
	jwt.RegisteredClaims
	UserID      string `json:"user_id"`
	CompanyID   string `json:"company_id"`
	Role        string `json:"role"` // ver entity.Roles
	IsSuperuser bool   `json:"is_superuser"`
	TokenType   string `json:"token_type"` // "access" | "refresh"
}

// Identity datos del usuario que se embeben en el token.
type Identity struct {
	UserID      string
	CompanyID   string
	Role        string
	IsSuperuser bool
}

// GenerateAccess genera el token de acceso de vida corta (minutos).
func GenerateAccess(secret string, id Identity, issuer string, expMinutes int) (string, error) {
	return generate(secret, id, issuer, TypeAccess, time.Duration(expMinutes)*time.Minute)
}

// GenerateRefresh genera el token de refresco de vida larga (horas).
func GenerateRefresh(secret string, id Identity, issuer string, expHours int) (string, error) {
	return generate(secret, id, issuer, TypeRefresh, time.Duration(expHours)*time.Hour)
}

func generate(secret string, id Identity, issuer, tokenType string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   id.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID:      id.UserID,
		CompanyID:   id.CompanyID,
		Role:        id.Role,
		IsSuperuser: id.IsSuperuser,
		TokenType:   tokenType,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve sus claims.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}
