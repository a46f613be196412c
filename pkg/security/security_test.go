package security

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"
)

func genTestKeyPair(t *testing.T) (privPEM, pubPEM []byte) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("Failed to generate rsa key: %v", err)
	}

	privPEM = pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})

	pubBytes, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		t.Fatalf("Failed to marshal public key: %v", err)
	}
	pubPEM = pem.EncodeToMemory(&pem.Block{
		Type:  "PUBLIC KEY",
		Bytes: pubBytes,
	})
	return
}

func TestJWTRoundTrip(t *testing.T) {
	privPEM, pubPEM := genTestKeyPair(t)

	claims := NewTokenClaims("tga", "tga", "user-1", "member", time.Now().Add(time.Hour).Unix())
	token, err := GenerateJWT(claims, privPEM)
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	parsed, err := VerifyToken(token, pubPEM)
	if err != nil {
		t.Fatalf("VerifyToken failed: %v", err)
	}
	if parsed.Appid != claims.Appid || parsed.User != claims.User {
		t.Errorf("Claims mismatch, got %+v", parsed)
	}
	if parsed.GetRoleType() != "member" {
		t.Errorf("Expected role type member, got %s", parsed.GetRoleType())
	}
}

func TestVerifyToken_Expired(t *testing.T) {
	privPEM, pubPEM := genTestKeyPair(t)

	claims := NewTokenClaims("tga", "tga", "user-1", "member", time.Now().Add(-time.Hour).Unix())
	token, err := GenerateJWT(claims, privPEM)
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	if _, err = VerifyToken(token, pubPEM); err == nil {
		t.Error("Expected error on expired token")
	}
}

func TestNewTokenClaims(t *testing.T) {
	expire := time.Now().Add(time.Hour).Unix()
	claims := NewTokenClaims("tga", "tga", "user-1", "admin", expire)

	if claims.Appid != "tga" {
		t.Errorf("Expected appid tga, got %s", claims.Appid)
	}
	if claims.GetUser() != "user-1" {
		t.Errorf("Expected user-1, got %s", claims.GetUser())
	}
	if claims.GetRoleType() != "admin" {
		t.Errorf("Expected role type admin, got %s", claims.GetRoleType())
	}
	if claims.ExpireTime != expire {
		t.Errorf("Expected expire %d, got %d", expire, claims.ExpireTime)
	}
	if claims.NotBefore >= time.Now().Unix()+1 {
		t.Error("NotBefore should be in the past")
	}
}

func TestTokenClaims_Field(t *testing.T) {
	claims := TokenClaims{}
	if claims.Field("role") != "" {
		t.Error("Expected empty field on nil Fields map")
	}
	if claims.GetRole() != "" {
		t.Error("Expected empty role on nil Fields map")
	}

	claims.Fields = map[string]string{ROLE_KEY: "role-admin"}
	if claims.GetRole() != "role-admin" {
		t.Errorf("Expected role-admin, got %s", claims.GetRole())
	}
}
