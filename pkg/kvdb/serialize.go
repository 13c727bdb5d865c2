package kvdb

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/myyapa/discover/pkg/datastructure"
)

func GetFloat(bb *bytes.Buffer, offset int) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(bb.Bytes()[offset:]))
}

func PutFloat(bb *bytes.Buffer, offset int, val float64) {
	binary.LittleEndian.PutUint64(bb.Bytes()[offset:], math.Float64bits(val))
}

func GetInt(bb *bytes.Buffer, offset int) int {
	return int(binary.LittleEndian.Uint32(bb.Bytes()[offset:]))
}

// PutInt. set int ke byte array page at position = offset.
func PutInt(bb *bytes.Buffer, offset int, val int) {
	binary.LittleEndian.PutUint32(bb.Bytes()[offset:], uint32(val))
}

// GetBytes. length-prefixed read: the 4 bytes at offset hold the payload length.
func GetBytes(bb *bytes.Buffer, offset int) []byte {
	length := GetInt(bb, offset)
	b := make([]byte, length)
	copy(b, bb.Bytes()[offset+4:offset+4+length])
	return b
}

func PutBytes(bb *bytes.Buffer, offset int, b []byte) {
	PutInt(bb, offset, len(b))
	copy(bb.Bytes()[offset+4:], b)
}

func GetString(bb *bytes.Buffer, offset int) string {
	return string(GetBytes(bb, offset))
}

// PutString writes a length-prefixed string and returns the payload byte length.
func PutString(bb *bytes.Buffer, offset int, s string) int {
	PutBytes(bb, offset, []byte(s))
	return len([]byte(s))
}

func placeSize(place datastructure.Place) int {
	size := 4 + len([]byte(place.ID)) +
		4 + len([]byte(place.Name)) +
		8 + 8 + // lat, lng
		4 + len([]byte(place.Address)) +
		4 + // category count
		4 + len([]byte(place.DiscountDescription)) +
		8 // avg rating
	for _, category := range place.Categories {
		size += 4 + len([]byte(category))
	}
	return size
}

func serializePlace(place datastructure.Place) ([]byte, error) {
	bb := bytes.NewBuffer(make([]byte, placeSize(place)))

	leftPos := 0

	stringLen := PutString(bb, leftPos, place.ID)
	leftPos += stringLen + 4

	stringLen = PutString(bb, leftPos, place.Name)
	leftPos += stringLen + 4

	PutFloat(bb, leftPos, place.Lat)
	leftPos += 8

	PutFloat(bb, leftPos, place.Lng)
	leftPos += 8

	stringLen = PutString(bb, leftPos, place.Address)
	leftPos += stringLen + 4

	PutInt(bb, leftPos, len(place.Categories))
	leftPos += 4

	for _, category := range place.Categories {
		stringLen = PutString(bb, leftPos, category)
		leftPos += stringLen + 4
	}

	stringLen = PutString(bb, leftPos, place.DiscountDescription)
	leftPos += stringLen + 4

	PutFloat(bb, leftPos, place.AvgRating)
	leftPos += 8

	return bb.Bytes(), nil
}

func deserializePlace(buf []byte) (datastructure.Place, error) {
	bb := bytes.NewBuffer(buf)
	place := datastructure.Place{}
	leftPos := 0

	place.ID = GetString(bb, leftPos)
	leftPos += len([]byte(place.ID)) + 4

	place.Name = GetString(bb, leftPos)
	leftPos += len([]byte(place.Name)) + 4

	place.Lat = GetFloat(bb, leftPos)
	leftPos += 8

	place.Lng = GetFloat(bb, leftPos)
	leftPos += 8

	place.Address = GetString(bb, leftPos)
	leftPos += len([]byte(place.Address)) + 4

	categoryCount := GetInt(bb, leftPos)
	leftPos += 4

	place.Categories = make([]string, 0, categoryCount)
	for i := 0; i < categoryCount; i++ {
		category := GetString(bb, leftPos)
		leftPos += len([]byte(category)) + 4
		place.Categories = append(place.Categories, category)
	}

	place.DiscountDescription = GetString(bb, leftPos)
	leftPos += len([]byte(place.DiscountDescription)) + 4

	place.AvgRating = GetFloat(bb, leftPos)
	leftPos += 8

	return place, nil
}
