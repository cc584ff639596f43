package password

import (
	"fmt"

	"github.com/alexedwards/argon2id"
)

// Hasher produces and checks argon2id PHC strings.
type Hasher struct {
	Params Params
}

func NewHasher(p Params) Hasher { return Hasher{Params: p} }

// Hash returns a PHC string like `$argon2id$v=19$m=65536,t=3,p=1$...`
func (h Hasher) Hash(plain string) (string, error) {
	phc, err := argon2id.CreateHash(plain, h.Params.argon())
	if err != nil {
		return "", fmt.Errorf("password: hash: %w", err)
	}
	return phc, nil
}

// Verify checks plain against phc and reports whether the hash is weaker
// than the current params.
func (h Hasher) Verify(plain, phc string) (ok, needsRehash bool, err error) {
	ok, err = argon2id.ComparePasswordAndHash(plain, phc)
	if err != nil || !ok {
		return ok, false, err
	}
	return true, h.NeedsRehash(phc), nil
}

func (h Hasher) NeedsRehash(phc string) bool {
	stored, _, _, err := argon2id.DecodeHash(phc)
	if err != nil {
		return true
	}
	p := h.Params
	return stored.Memory < p.Memory ||
		stored.Iterations < p.Iterations ||
		stored.Parallelism < p.Parallelism ||
		stored.SaltLength < p.SaltLength ||
		stored.KeyLength < p.KeyLength
}
