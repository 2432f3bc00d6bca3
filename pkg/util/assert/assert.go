package assert

import (
	"encoding/hex"
	"reflect"
	"testing"
)

// Equal errors if actual is not equal to expected.
func Equal(t *testing.T, expected, actual any, msg ...any) {
	t.Helper()

	if reflect.DeepEqual(expected, actual) {
		return
	}

	t.Errorf("expected: %v, actual: %v", expected, actual)

	if len(msg) != 0 {
		t.Errorf(msg[0].(string), msg[1:]...)
	}

	t.FailNow()
}

// NotEqual errors if actual is equal to expected.
func NotEqual(t *testing.T, expected, actual any, msg ...any) {
	t.Helper()

	if !reflect.DeepEqual(expected, actual) {
		return
	}

	t.Errorf("unexpectedly equal: %v", actual)

	if len(msg) != 0 {
		t.Errorf(msg[0].(string), msg[1:]...)
	}

	t.FailNow()
}

// True errors if the given condition does not hold.
func True(t *testing.T, condition bool, msg ...any) {
	t.Helper()

	if condition {
		return
	}

	t.Errorf("condition does not hold")

	if len(msg) != 0 {
		t.Errorf(msg[0].(string), msg[1:]...)
	}

	t.FailNow()
}

// False errors if the given condition holds.
func False(t *testing.T, condition bool, msg ...any) {
	t.Helper()
	True(t, !condition, msg...)
}

// BytesEqual errors if the two byte sequences differ, reporting both in
// hexadecimal since raw tag bytes are unreadable otherwise.
func BytesEqual(t *testing.T, expected, actual []byte, msg ...any) {
	t.Helper()

	if reflect.DeepEqual(expected, actual) {
		return
	}

	t.Errorf("expected: %s, actual: %s",
		hex.EncodeToString(expected), hex.EncodeToString(actual))

	if len(msg) != 0 {
		t.Errorf(msg[0].(string), msg[1:]...)
	}

	t.FailNow()
}
