// Package storage holds product images in external object storage.
package storage

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"regexp"
)

// ObjectStore is the capability the catalog needs from object storage.
type ObjectStore interface {
	// Put stores data under key and returns its public URL.
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

var whitespace = regexp.MustCompile(`\s+`)

// ImageKey derives a fresh key for a product image:
// "products/<name without whitespace>-<16 hex chars>".
func ImageKey(productName string) (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return "products/" + whitespace.ReplaceAllString(productName, "") + "-" + hex.EncodeToString(buf), nil
}
