package settings

import (
	"net/netip"
	"reflect"
	"testing"
	"time"
)

func TestCoerceCoversDocumentShapes(t *testing.T) {
	check := func(expected any, raw any, target reflect.Type) {
		t.Helper()
		got, err := coerce(raw, target)
		if err != nil {
			t.Fatalf("coerce(%v, %s) error: %v", raw, target, err)
		}
		if !reflect.DeepEqual(got, expected) {
			t.Fatalf("expected %v (%T), got %v (%T)", expected, expected, got, got)
		}
	}
	check("hello", "hello", reflect.TypeOf(""))
	check(true, true, reflect.TypeOf(true))
	check(true, "true", reflect.TypeOf(true))
	check(42, int64(42), reflect.TypeOf(0))
	check(42, "42", reflect.TypeOf(0))
	check(42, float64(42), reflect.TypeOf(0))
	check(int32(7), int64(7), reflect.TypeOf(int32(0)))
	check(uint16(9), int64(9), reflect.TypeOf(uint16(0)))
	check(1.5, 1.5, reflect.TypeOf(0.0))
	check(float32(1.5), "1.5", reflect.TypeOf(float32(0)))
	check(2.0, int64(2), reflect.TypeOf(0.0))
	check(5*time.Second, "5s", reflect.TypeOf(time.Duration(0)))
	check(5*time.Second, 5*time.Second, reflect.TypeOf(time.Duration(0)))
}

func TestCoerceNamedTypes(t *testing.T) {
	type theme string
	got, err := coerce("dark", reflect.TypeOf(theme("")))
	if err != nil {
		t.Fatalf("coerce error: %v", err)
	}
	if got.(theme) != "dark" {
		t.Fatalf("expected named string conversion, got %v (%T)", got, got)
	}
}

func TestCoerceTextUnmarshaler(t *testing.T) {
	got, err := coerce("127.0.0.1", reflect.TypeOf(netip.Addr{}))
	if err != nil {
		t.Fatalf("coerce error: %v", err)
	}
	want := netip.MustParseAddr("127.0.0.1")
	if got.(netip.Addr) != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestCoerceRejections(t *testing.T) {
	reject := func(raw any, target reflect.Type) {
		t.Helper()
		if _, err := coerce(raw, target); err == nil {
			t.Fatalf("expected coerce(%v, %s) to fail", raw, target)
		}
	}
	reject(nil, reflect.TypeOf(""))
	reject(42, reflect.TypeOf(""))
	reject("nope", reflect.TypeOf(0))
	reject(2.5, reflect.TypeOf(0))
	reject(int64(-1), reflect.TypeOf(uint(0)))
	reject(int64(300), reflect.TypeOf(int8(0)))
	reject(int64(500), reflect.TypeOf(time.Duration(0)))
	reject("forever", reflect.TypeOf(time.Duration(0)))
	reject([]any{"x"}, reflect.TypeOf(""))
	reject(map[string]any{"x": 1}, reflect.TypeOf(struct{ X int }{}))
}
