package booking_wizard

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// passwordAlphabet без неоднозначных символов (0/O, 1/l/I)
const passwordAlphabet = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// generatePassword генерирует пароль для контакта, создаваемого в ходе
// анонимного бронирования
func generatePassword(length int) (string, error) {
	out := make([]byte, length)
	max := big.NewInt(int64(len(passwordAlphabet)))

	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("%w: failed to generate password: %v", ErrInternal, err)
		}
		out[i] = passwordAlphabet[n.Int64()]
	}

	return string(out), nil
}
