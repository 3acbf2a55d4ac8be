package utils

import (
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UUIDGenerator produces time-ordered identifiers for trace ids and object
// storage keys.
type UUIDGenerator struct {
	now func() time.Time
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{now: time.Now}
}

// Generate returns a UUIDv7, falling back to a random UUIDv4.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// ObjectKey returns "prefix/yyyy/mm/dd/<uuid><ext>" where ext is the
// lower-cased extension of fileName.
func (g *UUIDGenerator) ObjectKey(prefix, fileName string) string {
	ext := strings.ToLower(path.Ext(fileName))
	return path.Join(prefix, g.now().UTC().Format("2006/01/02"), g.Generate()+ext)
}
