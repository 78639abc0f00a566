package auth

import (
	"crypto/subtle"
	"fmt"

	"github.com/jhoicas/customer-api/internal/application/dto"
	"github.com/jhoicas/customer-api/internal/domain"
	"github.com/jhoicas/customer-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Credentials usuario de la API; Password se hashea al construir el caso de uso
// salvo que se entregue PasswordHash (bcrypt) directamente.
type Credentials struct {
	Username     string
	Password     string
	PasswordHash string
}

// AuthUseCase valida credenciales HTTP Basic y emite/valida tokens Bearer.
type AuthUseCase struct {
	username     string
	passwordHash []byte
	jwtCfg       JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth. cost es el costo bcrypt usado
// cuando solo hay password en texto plano (0 = bcrypt.DefaultCost).
func NewAuthUseCase(creds Credentials, jwtCfg JWTConfig, cost int) (*AuthUseCase, error) {
	if creds.Username == "" {
		return nil, fmt.Errorf("auth: usuario vacío")
	}
	hash := []byte(creds.PasswordHash)
	if len(hash) == 0 {
		if creds.Password == "" {
			return nil, fmt.Errorf("auth: se requiere password o password hash")
		}
		if cost == 0 {
			cost = bcrypt.DefaultCost
		}
		var err error
		hash, err = bcrypt.GenerateFromPassword([]byte(creds.Password), cost)
		if err != nil {
			return nil, fmt.Errorf("auth: hashear password: %w", err)
		}
	} else if _, err := bcrypt.Cost(hash); err != nil {
		return nil, fmt.Errorf("auth: password hash inválido: %w", err)
	}
	return &AuthUseCase{username: creds.Username, passwordHash: hash, jwtCfg: jwtCfg}, nil
}

// Authenticate verifica usuario y password (Basic).
func (uc *AuthUseCase) Authenticate(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(uc.username)) == 1
	passOK := bcrypt.CompareHashAndPassword(uc.passwordHash, []byte(password)) == nil
	return userOK && passOK
}

// TokensEnabled indica si hay secret configurado para emitir tokens Bearer.
func (uc *AuthUseCase) TokensEnabled() bool { return uc.jwtCfg.Secret != "" }

// IssueToken genera un JWT para un usuario ya autenticado por Basic.
func (uc *AuthUseCase) IssueToken(username string) (*dto.TokenResponse, error) {
	if !uc.TokensEnabled() {
		return nil, domain.ErrUnauthorized
	}
	token, exp, err := jwt.Generate(uc.jwtCfg.Secret, username, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{Token: token, TokenType: "Bearer", ExpiresAt: exp}, nil
}

// ValidateToken valida un token Bearer y devuelve el usuario.
func (uc *AuthUseCase) ValidateToken(token string) (string, error) {
	if !uc.TokensEnabled() {
		return "", domain.ErrUnauthorized
	}
	username, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	if username != uc.username {
		return "", domain.ErrUnauthorized
	}
	return username, nil
}
