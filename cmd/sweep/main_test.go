package main

import (
	"errors"
	"slices"
	test "testing"

	"nickandperla.net/sortbench"
)

func TestParseSizes(t *test.T) {
	sizes, err := parseSizes(" 100, 1000,,10000 ")
	if err != nil {
		t.Fatalf("parseSizes returned error: %v", err)
	}
	if !slices.Equal(sizes, []int{100, 1000, 10000}) {
		t.Errorf("Unexpected sizes [%v]", sizes)
	}
}

func TestParseSizesInvalid(t *test.T) {
	if _, err := parseSizes("10,-1"); !errors.Is(err, sortbench.ErrInvalidSize) {
		t.Errorf("Expected ErrInvalidSize for a negative size, got: %v", err)
	}
	if _, err := parseSizes(""); !errors.Is(err, sortbench.ErrInvalidSize) {
		t.Errorf("Expected ErrInvalidSize for an empty list, got: %v", err)
	}
	if _, err := parseSizes("ten"); err == nil {
		t.Errorf("Expected an error for a non-integer size")
	}
}
