package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRun_DefaultScenarios(t *testing.T) {
	var stdout, stderr bytes.Buffer

	if code := run(nil, &stdout, &stderr); code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, stderr.String())
	}

	out := stdout.String()
	for _, want := range []string{
		"=== Prix d'achat + prix de vente ===",
		"Prix de vente TTC          : 180.00 €",
		"Marge brute                : 50.00 € (33.33 %)",
		"Impôt sur les sociétés     : 12.50 € (25.00 %)",
		"Résultat net               : 37.50 €",
		"=== Prix d'achat + marge cible ===",
		"Marge cible                : 35.00 %",
		"Prix de vente HT           : 153.85 €",
		"Résultat net               : 40.38 €",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q\n%s", want, out)
		}
	}
}

func TestRun_Flags(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"-purchase", "150", "-sale", "100"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Marge brute                : -50.00 € (-50.00 %)") {
		t.Errorf("expected a loss row, got\n%s", stdout.String())
	}
}

func TestRun_CalculationError(t *testing.T) {
	var stdout, stderr bytes.Buffer

	if code := run([]string{"-margin", "100"}, &stdout, &stderr); code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "Prix d'achat + marge cible") {
		t.Errorf("expected the failing scenario to be named, got %q", stderr.String())
	}
}

func TestRun_BadFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer

	if code := run([]string{"-vat", "abc"}, &stdout, &stderr); code != 2 {
		t.Errorf("expected exit 2, got %d", code)
	}
}
