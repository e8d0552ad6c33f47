package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTCarriesOwnerID(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	signed, err := GenerateJWT(42, "owner@gera.example")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	token, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("parse: %v", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("claims not a map")
	}
	if id, _ := claims["userId"].(float64); uint(id) != 42 {
		t.Errorf("userId claim = %v, want 42", claims["userId"])
	}
	if claims["email"] != "owner@gera.example" {
		t.Errorf("email claim = %v", claims["email"])
	}
}
