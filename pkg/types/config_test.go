package types

import "testing"

func TestConfig_Validate(t *testing.T) {
	if err := (Config{DataDir: "/tmp/agripos"}).Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}
	if err := (Config{}).Validate(); err == nil {
		t.Error("empty DataDir accepted")
	}
}
