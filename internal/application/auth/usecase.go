package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/inventario-core/internal/application/dto"
	"github.com/jhoicas/inventario-core/internal/domain"
	"github.com/jhoicas/inventario-core/pkg/jwt"
	"github.com/jhoicas/inventario-core/pkg/logger"
)

// RoleOperator rol con permiso para mutar existencias.
const RoleOperator = "operador"

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Operator credenciales configuradas (hash bcrypt).
type Operator struct {
	User         string
	PasswordHash string
}

// AuthUseCase emite tokens para el operador configurado.
type AuthUseCase struct {
	operator Operator
	jwtCfg   JWTConfig
	log      *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(operator Operator, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{operator: operator, jwtCfg: jwtCfg, log: log.Named("auth")}
}

// Enabled indica si hay hash y secret configurados; sin ellos no se emiten tokens.
func (uc *AuthUseCase) Enabled() bool {
	return uc.operator.PasswordHash != "" && uc.jwtCfg.Secret != ""
}

// Login verifica usuario/password y genera el JWT del operador.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if !uc.Enabled() {
		return nil, domain.ErrForbidden
	}
	if in.User == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.User != uc.operator.User {
		uc.log.Warn().Str("user", in.User).Msg("login rechazado: usuario desconocido")
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(uc.operator.PasswordHash), []byte(in.Password)); err != nil {
		uc.log.Warn().Str("user", in.User).Msg("login rechazado: password incorrecto")
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, in.User, RoleOperator, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("user", in.User).Msg("token emitido")
	return &dto.LoginResponse{Token: token, ExpiresIn: uc.jwtCfg.ExpMinutes * 60, Role: RoleOperator}, nil
}
