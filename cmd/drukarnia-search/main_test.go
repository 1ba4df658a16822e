package main

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("DRUKARNIA_TEST_KEY", "value")

	if got := getEnv("DRUKARNIA_TEST_KEY", "default"); got != "value" {
		t.Errorf("getEnv() = %q, want %q", got, "value")
	}
	if got := getEnv("DRUKARNIA_MISSING_KEY", "default"); got != "default" {
		t.Errorf("getEnv() = %q, want %q", got, "default")
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("DRUKARNIA_TEST_INT", "42")
	t.Setenv("DRUKARNIA_TEST_BAD_INT", "nope")

	if got := getEnvInt("DRUKARNIA_TEST_INT", 7); got != 42 {
		t.Errorf("getEnvInt() = %d, want 42", got)
	}
	if got := getEnvInt("DRUKARNIA_TEST_BAD_INT", 7); got != 7 {
		t.Errorf("getEnvInt() = %d, want 7", got)
	}
	if got := getEnvInt("DRUKARNIA_MISSING_INT", 7); got != 7 {
		t.Errorf("getEnvInt() = %d, want 7", got)
	}
}
