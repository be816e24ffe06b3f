//go:build cgo

package cabi

import (
	"errors"
	"testing"
	"unsafe"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	tests := []string{
		"",
		"hello",
		"Hello World",
		"多模块项目",
		"tab\tand\nnewline",
		"emoji 🚀",
	}

	for _, s := range tests {
		p, err := EncodeString(s)
		if err != nil {
			t.Fatalf("EncodeString(%q) error: %v", s, err)
		}
		got, err := DecodeString(p)
		FreeBuffer(p)
		if err != nil {
			t.Fatalf("DecodeString(EncodeString(%q)) error: %v", s, err)
		}
		if got != s {
			t.Errorf("round trip = %q, want %q", got, s)
		}
	}
}

func TestEncodeString_Terminates(t *testing.T) {
	p, err := EncodeString("abc")
	if err != nil {
		t.Fatalf("EncodeString error: %v", err)
	}
	defer FreeBuffer(p)

	raw := unsafe.Slice((*byte)(p), 4)
	if string(raw[:3]) != "abc" || raw[3] != 0 {
		t.Errorf("buffer = %v, want \"abc\\x00\"", raw)
	}
}

func TestEncodeString_Rejects(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"embedded NUL", "a\x00b", ErrEmbeddedNUL},
		{"invalid utf8", "\xff\xfe", ErrInvalidEncoding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := EncodeString(tt.in)
			if !errors.Is(err, tt.want) {
				t.Errorf("EncodeString(%q) error = %v, want %v", tt.in, err, tt.want)
			}
			if p != nil {
				FreeBuffer(p)
				t.Error("EncodeString returned a buffer on error")
			}
		})
	}
}

func TestDecodeString_Errors(t *testing.T) {
	if _, err := DecodeString(nil); !errors.Is(err, ErrNullPointer) {
		t.Errorf("DecodeString(nil) error = %v, want ErrNullPointer", err)
	}

	bad := AllocBytes([]byte{'o', 'k', 0xff, 0xfe})
	defer FreeBuffer(bad)
	if _, err := DecodeString(bad); !errors.Is(err, ErrInvalidEncoding) {
		t.Errorf("DecodeString(invalid) error = %v, want ErrInvalidEncoding", err)
	}
}

func TestDecodeString_StopsAtTerminator(t *testing.T) {
	p := AllocBytes([]byte("abc\x00\xff\xfe"))
	defer FreeBuffer(p)

	got, err := DecodeString(p)
	if err != nil {
		t.Fatalf("DecodeString error: %v", err)
	}
	if got != "abc" {
		t.Errorf("DecodeString = %q, want abc", got)
	}
}

func TestFreeBuffer_Nil(t *testing.T) {
	// Must not panic.
	FreeBuffer(nil)
}

func TestStringArray_RoundTrip(t *testing.T) {
	tests := [][]string{
		{},
		{"only"},
		{"Rust", "Mono", "Project"},
		{"", "empty first", ""},
	}

	for _, in := range tests {
		arr, err := EncodeStringArray(in)
		if err != nil {
			t.Fatalf("EncodeStringArray(%q) error: %v", in, err)
		}
		if arr.Len() != len(in) {
			t.Errorf("Len = %d, want %d", arr.Len(), len(in))
		}

		got, err := DecodeStringArray(arr.Pointer(), arr.Len())
		if err != nil {
			t.Fatalf("DecodeStringArray error: %v", err)
		}
		if len(got) != len(in) {
			t.Fatalf("decoded %d strings, want %d", len(got), len(in))
		}
		for i := range in {
			if got[i] != in[i] {
				t.Errorf("element %d = %q, want %q", i, got[i], in[i])
			}
		}

		arr.Free()
		arr.Free()
	}
}

func TestEncodeStringArray_RejectsBadElement(t *testing.T) {
	_, err := EncodeStringArray([]string{"fine", "bad\x00"})
	if !errors.Is(err, ErrEmbeddedNUL) {
		t.Errorf("EncodeStringArray error = %v, want ErrEmbeddedNUL", err)
	}
}

func TestDecodeStringArray_Errors(t *testing.T) {
	if _, err := DecodeStringArray(nil, 2); !errors.Is(err, ErrNullPointer) {
		t.Errorf("nil array error = %v, want ErrNullPointer", err)
	}
	if _, err := DecodeStringArray(nil, -1); err == nil {
		t.Error("negative count returned no error")
	}
	got, err := DecodeStringArray(nil, 0)
	if err != nil || len(got) != 0 {
		t.Errorf("empty array = (%v, %v), want ([], nil)", got, err)
	}
}
