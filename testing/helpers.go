// Package testing provides test utilities for hexcore.
package testing

import (
	"github.com/zoobzio/hexcore"
)

// Vector is a known byte sequence with its lowercase and uppercase encodings.
type Vector struct {
	Name  string
	Bytes []byte
	Lower string
	Upper string
}

// Vectors returns the reference encoding vectors.
func Vectors() []Vector {
	return []Vector{
		{
			Name:  "empty",
			Bytes: []byte{},
			Lower: "",
			Upper: "",
		},
		{
			Name:  "ascending",
			Bytes: []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef},
			Lower: "0123456789abcdef",
			Upper: "0123456789ABCDEF",
		},
		{
			Name:  "edges",
			Bytes: []byte{0x00, 0x0f, 0xf0, 0xff},
			Lower: "000ff0ff",
			Upper: "000FF0FF",
		},
	}
}

// AllBytes returns every byte value 0x00-0xff in order.
func AllBytes() []byte {
	b := make([]byte, 256)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

// Record is a test type carrying binary fields for codecs and Render.
type Record struct {
	ID  string        `json:"id" xml:"id" yaml:"id" msgpack:"id" bson:"id"`
	Sum hexcore.Bytes `json:"sum" xml:"sum" yaml:"sum" msgpack:"sum" bson:"sum" hex:"lower"`
	Key hexcore.Bytes `json:"key" xml:"key" yaml:"key" msgpack:"key" bson:"key" hex:"upper"`
}

// NewRecord returns a Record whose Sum is the SHA-256 of id.
func NewRecord(id string) Record {
	sum, err := hexcore.DecodeString(hexcore.SHA256().Fingerprint([]byte(id)))
	if err != nil {
		panic(err)
	}
	return Record{ID: id, Sum: sum, Key: hexcore.Bytes{0x0a, 0xbc, 0xde}}
}
