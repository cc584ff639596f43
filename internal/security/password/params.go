package password

import (
	"os"
	"strconv"

	"github.com/alexedwards/argon2id"
)

type Params struct {
	Memory      uint32 // kibibytes
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

func (p Params) argon() *argon2id.Params {
	return &argon2id.Params{
		Memory:      p.Memory,
		Iterations:  p.Iterations,
		Parallelism: p.Parallelism,
		SaltLength:  p.SaltLength,
		KeyLength:   p.KeyLength,
	}
}

// DefaultParams is ~64MB, t=3. A single admin login does not need more.
var DefaultParams = Params{Memory: 64 * 1024, Iterations: 3, Parallelism: 1, SaltLength: 16, KeyLength: 32}

// ParamsFromEnv overrides DefaultParams with ARGON2_MEMORY, ARGON2_ITER and
// ARGON2_PAR when they parse.
func ParamsFromEnv() Params {
	p := DefaultParams
	p.Memory = envUint32("ARGON2_MEMORY", p.Memory)
	p.Iterations = envUint32("ARGON2_ITER", p.Iterations)
	if v := os.Getenv("ARGON2_PAR"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 8); err == nil && n > 0 {
			p.Parallelism = uint8(n)
		}
	}
	return p
}

func envUint32(key string, def uint32) uint32 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseUint(v, 10, 32); err == nil && n > 0 {
			return uint32(n)
		}
	}
	return def
}
