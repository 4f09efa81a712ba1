// Package bson provides a BSON codec implementation.
package bson

import (
	"github.com/zoobzio/hexcore"
	"go.mongodb.org/mongo-driver/bson"
)

// bsonCodec implements hexcore.Codec for BSON.
type bsonCodec struct{}

// New returns a BSON codec.
func New() hexcore.Codec {
	return &bsonCodec{}
}

// ContentType returns the MIME type for BSON.
func (c *bsonCodec) ContentType() string {
	return "application/bson"
}

// Marshal encodes v as BSON.
func (c *bsonCodec) Marshal(v any) ([]byte, error) {
	return bson.Marshal(v)
}

// Unmarshal decodes BSON data into v.
func (c *bsonCodec) Unmarshal(data []byte, v any) error {
	return bson.Unmarshal(data, v)
}
