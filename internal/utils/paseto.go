package utils

import (
	"encoding/hex"
	"fmt"
	"time"

	"aidanwoods.dev/go-paseto"
)

const (
	tokenAudience = "arbeitszeit-meister"
	tokenIssuer   = "AZM-service"
)

// PasetoMaker verarbeitet lokale PASETO-Operationen der Version 4 (symmetrisch).
// Tokens werden vom externen Login-Dienst mit demselben Schlüssel ausgestellt.
type PasetoMaker struct {
	symmetricKey paseto.V4SymmetricKey
}

func NewPasetoMaker(keyHex string) (*PasetoMaker, error) {
	key, err := paseto.V4SymmetricKeyFromHex(keyHex)
	if err != nil {
		return nil, fmt.Errorf("Ungültiger symmetrischer Schlüssel: %w", err)
	}

	return &PasetoMaker{
		symmetricKey: key,
	}, nil
}

// GenerateSymmetricKey generiert einen neuen symmetrischen V4-Schlüssel als Hex-String.
func GenerateSymmetricKey() string {
	key := paseto.NewV4SymmetricKey()
	return hex.EncodeToString(key.ExportBytes())
}

// TokenClaims sind die Angaben, aus denen der Actor einer Anfrage gebildet wird.
type TokenClaims struct {
	UserID    string
	Name      string
	Role      string
	CompanyID string
	ExpiresAt time.Time
}

// CreateToken erstellt ein lokales V4 Token (encrypted).
func (m *PasetoMaker) CreateToken(claims TokenClaims, duration time.Duration) (string, error) {
	if claims.UserID == "" || claims.Role == "" {
		return "", fmt.Errorf("user id und rolle sind Pflicht")
	}

	now := time.Now()
	token := paseto.NewToken()
	token.SetIssuedAt(now)
	token.SetNotBefore(now)
	token.SetExpiration(now.Add(duration))
	token.SetAudience(tokenAudience)
	token.SetIssuer(tokenIssuer)
	token.SetSubject(claims.UserID)

	token.SetString("name", claims.Name)
	token.SetString("role", claims.Role)
	if claims.CompanyID != "" {
		token.SetString("company_id", claims.CompanyID)
	}

	return token.V4Encrypt(m.symmetricKey, nil), nil
}

// VerifyToken entschlüsselt und prüft das lokale V4 Token.
func (m *PasetoMaker) VerifyToken(tokenString string) (*TokenClaims, error) {
	parser := paseto.NewParser()
	parser.AddRule(paseto.NotExpired())
	parser.AddRule(paseto.ForAudience(tokenAudience))
	parser.AddRule(paseto.IssuedBy(tokenIssuer))
	parser.AddRule(paseto.ValidAt(time.Now()))

	parsed, err := parser.ParseV4Local(m.symmetricKey, tokenString, nil)
	if err != nil {
		return nil, fmt.Errorf("Token decryption/verification failed: %w", err)
	}

	userID, err := parsed.GetSubject()
	if err != nil {
		return nil, fmt.Errorf("Token ohne Subject: %w", err)
	}
	role, err := parsed.GetString("role")
	if err != nil {
		return nil, fmt.Errorf("Token ohne Rolle: %w", err)
	}

	// name und company_id sind optional.
	name, _ := parsed.GetString("name")
	companyID, _ := parsed.GetString("company_id")
	exp, _ := parsed.GetExpiration()

	return &TokenClaims{
		UserID:    userID,
		Name:      name,
		Role:      role,
		CompanyID: companyID,
		ExpiresAt: exp,
	}, nil
}
