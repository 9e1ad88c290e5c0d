package argon2id

import (
	"errors"
	"strings"
	"testing"
)

// Cheap parameters keep the suite fast.
var testParams = ArgonParams{
	Memory:      8 * 1024,
	Iterations:  1,
	Parallelism: 1,
	SaltLength:  DefaultSaltLength,
	KeyLength:   DefaultKeyLength,
}

func TestEncodeHash_RoundTrip(t *testing.T) {
	encoded, err := EncodeHash("Tiramisu-Lover-42", testParams)
	if err != nil {
		t.Fatalf("EncodeHash: %v", err)
	}
	if !strings.HasPrefix(encoded, "$argon2id$v=19$m=8192,t=1,p=1$") {
		t.Errorf("unexpected encoding prefix: %q", encoded)
	}

	p, salt, hash, err := DecodeHash(encoded)
	if err != nil {
		t.Fatalf("DecodeHash: %v", err)
	}
	if *p != testParams {
		t.Errorf("decoded params = %+v, want %+v", *p, testParams)
	}
	if len(salt) != int(testParams.SaltLength) || len(hash) != int(testParams.KeyLength) {
		t.Errorf("salt/hash lengths = %d/%d", len(salt), len(hash))
	}
}

func TestCompare(t *testing.T) {
	encoded, err := EncodeHash("correct horse", testParams)
	if err != nil {
		t.Fatalf("EncodeHash: %v", err)
	}

	tests := []struct {
		name     string
		password string
		hash     string
		want     bool
		wantErr  error
	}{
		{name: "match", password: "correct horse", hash: encoded, want: true},
		{name: "mismatch", password: "correct horse!", hash: encoded, want: false},
		{name: "empty password", password: "", hash: encoded, want: false},
		{name: "not a hash", password: "x", hash: "plaintext", wantErr: ErrInvalidHash},
		{name: "wrong algorithm", password: "x", hash: "$argon2i$v=19$m=8192,t=1,p=1$c2FsdA$aGFzaA", wantErr: ErrInvalidHash},
		{name: "wrong version", password: "x", hash: "$argon2id$v=16$m=8192,t=1,p=1$c2FsdA$aGFzaA", wantErr: ErrIncompatibleVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compare(tt.password, tt.hash)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Compare error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Compare = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEncodeHash_SaltIsRandom(t *testing.T) {
	a, err := EncodeHash("same", testParams)
	if err != nil {
		t.Fatal(err)
	}
	b, err := EncodeHash("same", testParams)
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Error("expected different encodings for the same password")
	}
}
