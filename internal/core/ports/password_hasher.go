package ports

// PasswordHasher one-way hashes plaintext secrets and verifies them against
// stored hashes. Implementations decide the algorithm and cost.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Matches(plaintext, hash string) bool
}
