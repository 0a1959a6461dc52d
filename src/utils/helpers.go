package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"math/big"
	"os"
	"path"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/yeqown/go-qrcode"
)

const passwordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GeneratePassword returns a random alphanumeric password of the given length.
func GeneratePassword(length int) (string, error) {
	out := make([]byte, length)
	max := big.NewInt(int64(len(passwordAlphabet)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = passwordAlphabet[n.Int64()]
	}
	return string(out), nil
}

// DeviceID derives a stable identifier from the raw device fingerprint a
// phone sends on badge scan.
func DeviceID(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

func MakeSlug(name string) string {
	return slug.Make(name)
}

// SaveQRCode renders content as a QR image in the temp dir and returns the
// file path. Callers own cleanup.
func SaveQRCode(content string) (string, error) {
	qrc, err := qrcode.New(content)
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("%s.jpeg", uuid.NewString())
	filepath := path.Join(os.TempDir(), filename)
	if err := qrc.Save(filepath); err != nil {
		log.Printf("Could not save qrcode to file [%s]: %s\n", filepath, err.Error())
		return "", err
	}
	return filepath, nil
}
