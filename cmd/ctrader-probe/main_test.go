package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestVersionFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-version"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit = %d, stderr = %s", code, stderr.String())
	}
	if !strings.HasPrefix(stdout.String(), "ctrader-probe ") {
		t.Fatalf("stdout = %q", stdout.String())
	}
}

func TestAuthURLPrintsConsentURL(t *testing.T) {
	t.Setenv("CTRADER_CLIENT_ID", "app-1")
	t.Setenv("CTRADER_CLIENT_SECRET", "s3cret")
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-auth-url"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit = %d, stderr = %s", code, stderr.String())
	}
	out := stdout.String()
	if !strings.Contains(out, "client_id=app-1") {
		t.Fatalf("stdout = %q", out)
	}
	if strings.Contains(out, "s3cret") {
		t.Fatalf("secret leaked into consent URL")
	}
}

func TestMissingCredentials(t *testing.T) {
	t.Setenv("CTRADER_CLIENT_ID", "")
	t.Setenv("CTRADER_CLIENT_SECRET", "")
	t.Setenv("CTRADER_CREDENTIALS_FILE", "")
	var stdout, stderr bytes.Buffer
	if code := run(nil, &stdout, &stderr); code != 2 {
		t.Fatalf("exit = %d", code)
	}
	if !strings.Contains(stderr.String(), "missing client credentials") {
		t.Fatalf("stderr = %q", stderr.String())
	}
}

func TestBadFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-definitely-not-a-flag"}, &stdout, &stderr); code != 2 {
		t.Fatalf("exit = %d", code)
	}
}
