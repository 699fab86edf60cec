// Package geo holds the offline geocoding and distance adapters used by route planning.
//
// HashGeocoder is a placeholder: it derives a stable coordinate from the address text
// instead of looking the address up. It satisfies ports.Geocoder so a real geocoding
// service can replace it without touching the core.
package geo

import (
	"context"
	"crypto/sha256"
	"encoding/binary"

	"courier/internal/core/domain/model/kernel"
)

const (
	// DefaultCenterLat and DefaultCenterLng place synthetic coordinates around central London.
	DefaultCenterLat = 51.50
	DefaultCenterLng = -0.12

	offsetBuckets = 10000
	offsetScale   = 100000.0
	offsetShift   = 0.05
)

// HashGeocoder maps an address to a point within ±0.05° of a centre. The SHA-256 digest
// of the address is read as two big-endian 32-bit integers (the first 8 and the next 8 hex
// digits); each is reduced modulo 10000, scaled by 1e-5 and shifted by -0.05.
//
// The same text always yields the same point, in any process. Different texts collide
// rarely, and that is acceptable for sequencing.
type HashGeocoder struct {
	centerLat float64
	centerLng float64
}

// NewHashGeocoder returns a geocoder centred on (DefaultCenterLat, DefaultCenterLng).
func NewHashGeocoder() HashGeocoder {
	return HashGeocoder{
		centerLat: DefaultCenterLat,
		centerLng: DefaultCenterLng,
	}
}

// NewHashGeocoderAround returns a geocoder centred on center.
func NewHashGeocoderAround(center kernel.Location) HashGeocoder {
	return HashGeocoder{
		centerLat: center.Lat(),
		centerLng: center.Lng(),
	}
}

func (g HashGeocoder) Geocode(ctx context.Context, address kernel.Address) (kernel.Location, error) {
	if err := ctx.Err(); err != nil {
		return kernel.Location{}, err
	}

	sum := sha256.Sum256([]byte(address))
	latBucket := binary.BigEndian.Uint32(sum[0:4]) % offsetBuckets
	lngBucket := binary.BigEndian.Uint32(sum[4:8]) % offsetBuckets

	lat := g.centerLat + (float64(latBucket)/offsetScale - offsetShift)
	lng := g.centerLng + (float64(lngBucket)/offsetScale - offsetShift)
	return kernel.NewLocation(lat, lng)
}
