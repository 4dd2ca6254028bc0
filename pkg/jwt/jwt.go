package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Tipos de token emitidos por la aplicación.
const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

// Claims incluye los claims estándar JWT más los campos propios del trabajador.
// Type distingue access de refresh para que /auth/refresh no acepte un access token.
type Claims struct {
	jwt.RegisteredClaims
	TrabajadorID int    `json:"idtrabajador"`
	Usuario      string `json:"usuario"`
	Rol          string `json:"rol"`
	Type         string `json:"type"`
}

// GenerateAccess genera un access token firmado con los datos del trabajador.
func GenerateAccess(secret string, trabajadorID int, usuario, rol, issuer string, expMinutes int) (string, error) {
	return generate(secret, trabajadorID, usuario, rol, issuer, TypeAccess, expMinutes)
}

// GenerateRefresh genera un refresh token; solo lleva la identidad del trabajador.
func GenerateRefresh(secret string, trabajadorID int, issuer string, expMinutes int) (string, error) {
	return generate(secret, trabajadorID, "", "", issuer, TypeRefresh, expMinutes)
}

func generate(secret string, trabajadorID int, usuario, rol, issuer, typ string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   fmt.Sprintf("%d", trabajadorID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		TrabajadorID: trabajadorID,
		Usuario:      usuario,
		Rol:          rol,
		Type:         typ,
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
