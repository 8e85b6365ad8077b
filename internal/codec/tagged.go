// Package codec implements the runtime-dispatch JSON decoding shared by
// every tag-discriminated envelope on the Discord wire: a sibling integer
// "type" field selects which concrete shape the rest of the object has.
package codec

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/composure-bot/composure/internal/domain"
)

// DecodeFunc decodes one concrete variant from the full envelope bytes.
type DecodeFunc[T any] func(data []byte) (T, error)

// TaggedDecoder dispatches an envelope to a concrete decoder by its "type"
// discriminant. Dispatch is a pure function of the discriminant value;
// unknown discriminants are a hard error so future variants are never
// silently misread as an existing one.
type TaggedDecoder[T any] struct {
	family   string
	variants map[uint64]DecodeFunc[T]
}

// NewTaggedDecoder builds a decoder for one envelope family. The family name
// only appears in error messages.
func NewTaggedDecoder[T any](family string, variants map[uint64]DecodeFunc[T]) *TaggedDecoder[T] {
	return &TaggedDecoder[T]{family: family, variants: variants}
}

// Decode reads the discriminant and runs the matching variant decoder.
//
// Failure modes: missing_discriminant when the type field is absent or not
// an unsigned integer, unknown_variant when no decoder is registered for the
// tag, and schema_mismatch (wrapping the inner error) when the selected
// decoder rejects the envelope.
func (d *TaggedDecoder[T]) Decode(data []byte) (T, error) {
	var zero T

	tag, err := PeekTag(d.family, data)
	if err != nil {
		return zero, err
	}

	decode, ok := d.variants[tag]
	if !ok {
		return zero, domain.ErrUnknownVariant(d.family, tag)
	}

	v, err := decode(data)
	if err != nil {
		return zero, domain.ErrSchemaMismatch(d.family, tag, err)
	}
	return v, nil
}

// DecodeRaw is Decode for pre-parsed list elements.
func (d *TaggedDecoder[T]) DecodeRaw(raw json.RawMessage) (T, error) {
	return d.Decode([]byte(raw))
}

// PeekTag extracts the unsigned integer "type" field without committing to a
// concrete shape.
func PeekTag(family string, data []byte) (uint64, error) {
	var head struct {
		Type json.RawMessage `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil || head.Type == nil {
		return 0, domain.ErrMissingDiscriminant(family)
	}

	tag, err := strconv.ParseUint(string(bytes.TrimSpace(head.Type)), 10, 64)
	if err != nil {
		return 0, domain.ErrMissingDiscriminant(family)
	}
	return tag, nil
}

// Variant adapts a plain struct unmarshal into a DecodeFunc, upcasting the
// concrete type C into the family's interface type T.
func Variant[T any, C any](wrap func(*C) T) DecodeFunc[T] {
	return func(data []byte) (T, error) {
		var c C
		if err := json.Unmarshal(data, &c); err != nil {
			var zero T
			return zero, err
		}
		return wrap(&c), nil
	}
}
