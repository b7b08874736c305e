package crypto

import (
	"strings"
	"testing"
)

func TestGenerateHashedToken(t *testing.T) {
	pair, err := GenerateHashedToken()
	if err != nil {
		t.Fatalf("GenerateHashedToken() error = %v", err)
	}
	if pair.Token == "" || pair.Hash == "" {
		t.Fatal("empty token or hash")
	}
	if pair.Hash == pair.Token {
		t.Error("hash equals raw token")
	}
	if HashToken(pair.Token) != pair.Hash {
		t.Error("hash does not match token")
	}
}

func TestVerifyToken(t *testing.T) {
	pair, err := GenerateHashedToken()
	if err != nil {
		t.Fatalf("GenerateHashedToken() error = %v", err)
	}

	tests := []struct {
		name    string
		token   string
		hash    string
		want    bool
		wantErr bool
	}{
		{name: "valid pair", token: pair.Token, hash: pair.Hash, want: true},
		{name: "wrong token", token: pair.Token + "x", hash: pair.Hash, want: false},
		{name: "empty token", token: "", hash: pair.Hash, wantErr: true},
		{name: "empty hash", token: pair.Token, hash: "", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ok, err := VerifyToken(test.token, test.hash)
			if (err != nil) != test.wantErr {
				t.Fatalf("VerifyToken() error = %v, wantErr %v", err, test.wantErr)
			}
			if ok != test.want {
				t.Errorf("VerifyToken() = %v, want %v", ok, test.want)
			}
		})
	}
}

func TestGenerateToken_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for range 64 {
		tok, err := GenerateToken(0)
		if err != nil {
			t.Fatalf("GenerateToken() error = %v", err)
		}
		if seen[tok] {
			t.Fatal("duplicate token generated")
		}
		seen[tok] = true
		if strings.ContainsAny(tok, "+/=") {
			t.Errorf("token %q not URL-safe", tok)
		}
	}
}
