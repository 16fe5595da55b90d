package auth

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/time/rate"
)

var (
	// ErrInvalidToken is returned for any access token that fails verification.
	ErrInvalidToken = errors.New("invalid access token")
	// ErrKeyNotFound is returned when no verification key matches the token kid.
	ErrKeyNotFound = errors.New("verification key not found")
)

// Claims are the verified fields of an identity provider access token.
type Claims struct {
	UserID    string
	SessionID string
	ExpiresAt time.Time
}

type privyClaims struct {
	SessionID string `json:"sid,omitempty"`
	jwt.RegisteredClaims
}

// JWTValidator verifies ES256 access tokens issued for one app. Keys come from
// a static PEM verification key or from a JWKS endpoint cached by kid.
type JWTValidator struct {
	appID     string
	issuer    string
	staticKey *ecdsa.PublicKey

	jwksURL string
	keys    map[string]*ecdsa.PublicKey
	keysMu  sync.RWMutex
	client  *http.Client
	// refresh bounds JWKS fetches triggered by unknown kids
	refresh *rate.Limiter
}

// JWKS represents a JSON Web Key Set
type JWKS struct {
	Keys []JWK `json:"keys"`
}

// JWK represents an EC JSON Web Key
type JWK struct {
	Kid string `json:"kid"`
	Kty string `json:"kty"`
	Alg string `json:"alg"`
	Use string `json:"use"`
	Crv string `json:"crv"`
	X   string `json:"x"`
	Y   string `json:"y"`
}

// NewJWTValidator creates a validator. When verificationKey is set it is used
// for every token and jwksURL is ignored.
func NewJWTValidator(appID, issuer, verificationKey, jwksURL string) (*JWTValidator, error) {
	v := &JWTValidator{
		appID:   appID,
		issuer:  issuer,
		jwksURL: jwksURL,
		keys:    make(map[string]*ecdsa.PublicKey),
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		refresh: rate.NewLimiter(rate.Every(30*time.Second), 1),
	}

	if strings.TrimSpace(verificationKey) != "" {
		key, err := jwt.ParseECPublicKeyFromPEM([]byte(normalizePEM(verificationKey)))
		if err != nil {
			return nil, fmt.Errorf("failed to parse verification key: %w", err)
		}
		v.staticKey = key
		return v, nil
	}

	if jwksURL == "" {
		return nil, errors.New("either a verification key or a JWKS URL is required")
	}
	return v, nil
}

// normalizePEM accepts a bare base64 SPKI body as copied from a dashboard.
func normalizePEM(key string) string {
	key = strings.TrimSpace(key)
	if strings.HasPrefix(key, "-----BEGIN") {
		return key
	}
	return "-----BEGIN PUBLIC KEY-----\n" + key + "\n-----END PUBLIC KEY-----"
}

// ValidateToken validates an access token and returns its claims
func (v *JWTValidator) ValidateToken(ctx context.Context, tokenString string) (*Claims, error) {
	claims := &privyClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if v.staticKey != nil {
			return v.staticKey, nil
		}

		kid, ok := token.Header["kid"].(string)
		if !ok || kid == "" {
			return nil, fmt.Errorf("missing kid in token header")
		}
		return v.getKey(ctx, kid)
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodES256.Alg()}),
		jwt.WithIssuer(v.issuer),
		jwt.WithAudience(v.appID),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	out := &Claims{
		UserID:    claims.Subject,
		SessionID: claims.SessionID,
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}

// getKey retrieves a key by ID, refreshing from JWKS if needed
func (v *JWTValidator) getKey(ctx context.Context, kid string) (*ecdsa.PublicKey, error) {
	v.keysMu.RLock()
	key, exists := v.keys[kid]
	v.keysMu.RUnlock()

	if exists {
		return key, nil
	}

	if !v.refresh.Allow() {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, kid)
	}
	if err := v.refreshKeys(ctx); err != nil {
		return nil, err
	}

	v.keysMu.RLock()
	key, exists = v.keys[kid]
	v.keysMu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, kid)
	}
	return key, nil
}

// refreshKeys fetches and parses the JWKS
func (v *JWTValidator) refreshKeys(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.jwksURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch JWKS: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("JWKS endpoint returned status %d", resp.StatusCode)
	}

	var jwks JWKS
	if err := json.NewDecoder(resp.Body).Decode(&jwks); err != nil {
		return fmt.Errorf("failed to decode JWKS: %w", err)
	}

	v.keysMu.Lock()
	defer v.keysMu.Unlock()

	for _, key := range jwks.Keys {
		if key.Kty != "EC" || key.Crv != "P-256" {
			continue
		}
		pubKey, err := parseECPublicKey(key.X, key.Y)
		if err != nil {
			continue // Skip invalid keys
		}
		v.keys[key.Kid] = pubKey
	}

	return nil
}

// parseECPublicKey parses P-256 point coordinates from base64url-encoded strings
func parseECPublicKey(xStr, yStr string) (*ecdsa.PublicKey, error) {
	xBytes, err := base64.RawURLEncoding.DecodeString(xStr)
	if err != nil {
		return nil, fmt.Errorf("failed to decode x: %w", err)
	}
	yBytes, err := base64.RawURLEncoding.DecodeString(yStr)
	if err != nil {
		return nil, fmt.Errorf("failed to decode y: %w", err)
	}

	key := &ecdsa.PublicKey{
		Curve: elliptic.P256(),
		X:     new(big.Int).SetBytes(xBytes),
		Y:     new(big.Int).SetBytes(yBytes),
	}
	if !key.Curve.IsOnCurve(key.X, key.Y) {
		return nil, errors.New("point is not on curve")
	}
	return key, nil
}
