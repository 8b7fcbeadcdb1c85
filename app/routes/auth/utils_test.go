package auth

import "testing"

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret-password")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	if !CheckPasswordHash("secret-password", hash) {
		t.Fatalf("expected password to match")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Fatalf("expected password mismatch")
	}
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("u-1", "coach@club.test", "Ana", "Paredes", "c-1", []string{"TEACHER"})
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		t.Fatalf("validate error: %v", err)
	}
	if claims.UserID != "u-1" {
		t.Fatalf("expected user id u-1, got %s", claims.UserID)
	}
	if claims.Email != "coach@club.test" {
		t.Fatalf("expected email to survive the round trip, got %s", claims.Email)
	}
	if claims.ClubID != "c-1" {
		t.Fatalf("expected club id c-1, got %s", claims.ClubID)
	}
	if len(claims.Roles) != 1 || claims.Roles[0] != "TEACHER" {
		t.Fatalf("expected roles [TEACHER], got %v", claims.Roles)
	}
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	if _, err := ValidateJWT("not-a-token"); err == nil {
		t.Fatalf("expected garbage token to error")
	}
	if _, err := ValidateJWT(""); err == nil {
		t.Fatalf("expected empty token to error")
	}
}
