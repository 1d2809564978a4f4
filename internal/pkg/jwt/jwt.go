package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Service verifies access tokens issued by the platform's auth service.
// This dashboard never issues tokens itself; it only checks the shared-
// secret signature and reads the role claim.
type Service interface {
	JWTAuth() *jwtauth.JWTAuth
}

type verifier struct {
	tokenAuth *jwtauth.JWTAuth
}

func NewVerifier(secretKey string) Service {
	return &verifier{
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (v *verifier) JWTAuth() *jwtauth.JWTAuth {
	return v.tokenAuth
}
