// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestRequestIDCtxKey(t *testing.T) {
	if RequestIDCtxKey.String() != "requestID" {
		t.Errorf("expected 'requestID', got '%s'", RequestIDCtxKey.String())
	}
}

func TestGetRequestIDFromContext_Success(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")

	id, ok := GetRequestIDFromContext(ctx)
	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if id != "req-1" {
		t.Errorf("expected id=req-1, got %s", id)
	}
}

func TestGetRequestIDFromContext_Missing(t *testing.T) {
	id, ok := GetRequestIDFromContext(context.Background())
	if ok {
		t.Fatal("expected ok=false for missing value")
	}
	if id != "" {
		t.Errorf("expected empty id, got %s", id)
	}
}

func TestGetRequestIDFromContext_Empty(t *testing.T) {
	_, ok := GetRequestIDFromContext(WithRequestID(context.Background(), ""))
	if ok {
		t.Fatal("expected ok=false for empty id")
	}
}

func TestGetRequestIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), RequestIDCtxKey, 42)

	if _, ok := GetRequestIDFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong type")
	}
}

func TestGetRequestIDFromContext_DifferentKey(t *testing.T) {
	ctx := context.WithValue(context.Background(), contextKey("other"), "req-1")

	if _, ok := GetRequestIDFromContext(ctx); ok {
		t.Fatal("expected ok=false for a different key")
	}
}
