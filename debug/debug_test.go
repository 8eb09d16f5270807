package debug

import "testing"

func TestBoolEnv(t *testing.T) {
	t.Setenv("SCHEMATA_TEST_BOOL", "true")
	if !boolEnv("SCHEMATA_TEST_BOOL") {
		t.Errorf("expected true")
	}
	t.Setenv("SCHEMATA_TEST_BOOL", "nope")
	if boolEnv("SCHEMATA_TEST_BOOL") {
		t.Errorf("unparsable value should be false")
	}
	if boolEnv("SCHEMATA_TEST_UNSET") {
		t.Errorf("unset value should be false")
	}
}
