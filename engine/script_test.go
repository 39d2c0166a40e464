package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExtractScriptIdenticalPair(t *testing.T) {
	a, b := idsOf("ab"), idsOf("ab")
	mx := fillMatrix(a, b)
	tokA, tokB := TokenizeBytes([]byte("ab")), TokenizeBytes([]byte("ab"))

	got := extractScript(mx, a, b, tokA, tokB, len(a), len(b))
	want := []Op{
		{Kind: OpKeep, From: []byte("a"), To: []byte("a")},
		{Kind: OpKeep, From: []byte("b"), To: []byte("b")},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("extractScript mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractScriptSingleSubstitution(t *testing.T) {
	a, b := idsOf("a"), idsOf("b")
	mx := fillMatrix(a, b)
	tokA, tokB := TokenizeBytes([]byte("a")), TokenizeBytes([]byte("b"))

	got := extractScript(mx, a, b, tokA, tokB, len(a), len(b))
	want := []Op{
		{Kind: OpSubstitute, From: []byte("a"), To: []byte("b")},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("extractScript mismatch (-want +got):\n%s", diff)
	}
}
