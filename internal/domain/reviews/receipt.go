package reviews

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/speps/go-hashids/v2"
)

const receiptAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// ReceiptGenerator produces the short opaque code a submitter can quote
// when writing in about their review.
type ReceiptGenerator struct {
	h *hashids.HashID
}

func NewReceiptGenerator(salt string) (*ReceiptGenerator, error) {
	h, err := hashids.NewWithData(&hashids.HashIDData{
		Alphabet:  receiptAlphabet,
		Salt:      salt,
		MinLength: 8,
	})
	if err != nil {
		return nil, fmt.Errorf("building receipt generator: %w", err)
	}
	return &ReceiptGenerator{h: h}, nil
}

// Generate encodes the fountain id, the submission second and a nonce.
// The receipt column is UNIQUE; the nonce keeps same-second submissions
// for one fountain from colliding.
func (g *ReceiptGenerator) Generate(fountainID int64) (string, error) {
	code, err := g.h.EncodeInt64([]int64{fountainID, time.Now().Unix(), rand.Int63n(1 << 20)})
	if err != nil {
		return "", fmt.Errorf("encoding receipt: %w", err)
	}
	return "YVR-" + code, nil
}
