package codec

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/composure-bot/composure/internal/domain"
)

type animal interface {
	legs() int
}

type biped struct {
	Name string `json:"name"`
}

func (biped) legs() int { return 2 }

type quadruped struct {
	Name string `json:"name"`
	Tail bool   `json:"tail"`
}

func (quadruped) legs() int { return 4 }

func testDecoder() *TaggedDecoder[animal] {
	return NewTaggedDecoder("animal", map[uint64]DecodeFunc[animal]{
		1: Variant(func(b *biped) animal { return *b }),
		2: Variant(func(q *quadruped) animal { return *q }),
	})
}

func TestTaggedDecoderDispatch(t *testing.T) {
	d := testDecoder()

	v, err := d.Decode([]byte(`{"type":1,"name":"crow"}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if v.legs() != 2 {
		t.Errorf("legs = %d, want 2", v.legs())
	}

	v, err = d.Decode([]byte(`{"type":2,"name":"fox","tail":true}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	q, ok := v.(quadruped)
	if !ok || !q.Tail {
		t.Errorf("decoded %#v, want quadruped with tail", v)
	}
}

func TestTaggedDecoderMissingDiscriminant(t *testing.T) {
	d := testDecoder()

	for _, in := range []string{
		`{"name":"crow"}`,
		`{"type":"1","name":"crow"}`,
		`{"type":-2,"name":"crow"}`,
		`{"type":1.5,"name":"crow"}`,
		`{"type":null}`,
		`[]`,
		`not json`,
	} {
		_, err := d.Decode([]byte(in))
		if domain.KindOf(err) != domain.KindMissingDiscriminant {
			t.Errorf("Decode(%s) err = %v, want missing_discriminant", in, err)
		}
	}
}

func TestTaggedDecoderUnknownVariant(t *testing.T) {
	d := testDecoder()

	_, err := d.Decode([]byte(`{"type":99}`))
	if domain.KindOf(err) != domain.KindUnknownVariant {
		t.Fatalf("err = %v, want unknown_variant", err)
	}

	var pe *domain.ProtocolError
	if !errors.As(err, &pe) || pe.Tag != 99 {
		t.Errorf("tag = %v, want 99", err)
	}
}

func TestTaggedDecoderSchemaMismatch(t *testing.T) {
	d := testDecoder()

	// known tag, wrong field type for the selected variant
	_, err := d.Decode([]byte(`{"type":2,"tail":"yes"}`))
	if domain.KindOf(err) != domain.KindSchemaMismatch {
		t.Fatalf("err = %v, want schema_mismatch", err)
	}

	// the inner decode error is preserved
	var pe *domain.ProtocolError
	if !errors.As(err, &pe) || pe.Err == nil {
		t.Error("schema_mismatch does not wrap the inner decode error")
	}
}

func TestPeekTag(t *testing.T) {
	tag, err := PeekTag("test", []byte(`{"type": 7, "x": 1}`))
	if err != nil {
		t.Fatalf("PeekTag: %v", err)
	}
	if tag != 7 {
		t.Errorf("tag = %d, want 7", tag)
	}
}

func TestDecodeRaw(t *testing.T) {
	d := testDecoder()

	var list []json.RawMessage
	if err := json.Unmarshal([]byte(`[{"type":1,"name":"crow"},{"type":2,"name":"fox"}]`), &list); err != nil {
		t.Fatalf("unmarshal list: %v", err)
	}

	want := []int{2, 4}
	for i, raw := range list {
		v, err := d.DecodeRaw(raw)
		if err != nil {
			t.Fatalf("DecodeRaw[%d]: %v", i, err)
		}
		if v.legs() != want[i] {
			t.Errorf("legs[%d] = %d, want %d", i, v.legs(), want[i])
		}
	}
}
