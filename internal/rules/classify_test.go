package rules

import (
	"reflect"
	"testing"
)

func TestClassify(t *testing.T) {
	input := []Rule{
		{Type: Suffix, Value: "b.example.com"},
		{Type: Suffix, Value: "a.example.com"},
		{Type: Full, Value: "exact.example.com"},
		{Type: Regex, Value: `^ads\d+\.example\.com$`},
		{Type: Keyword, Value: "tracker"},
	}

	buckets, tlds := Classify(input)

	wantSuffix := []string{"a.example.com", "b.example.com"}
	if !reflect.DeepEqual(buckets.Suffix, wantSuffix) {
		t.Errorf("Suffix = %v, want %v", buckets.Suffix, wantSuffix)
	}
	if !reflect.DeepEqual(buckets.Full, []string{"exact.example.com"}) {
		t.Errorf("Full = %v, want [exact.example.com]", buckets.Full)
	}
	if !reflect.DeepEqual(buckets.Regex, []string{`^ads\d+\.example\.com$`}) {
		t.Errorf("Regex = %v", buckets.Regex)
	}
	if !reflect.DeepEqual(buckets.Keyword, []string{"tracker"}) {
		t.Errorf("Keyword = %v", buckets.Keyword)
	}
	if len(tlds) != 0 {
		t.Errorf("tlds = %v, want empty", tlds)
	}
}

func TestClassify_InvalidDomainsDropped(t *testing.T) {
	input := []Rule{
		{Type: Suffix, Value: "-bad.com"},
		{Type: Suffix, Value: "good.com"},
		{Type: Full, Value: "also-.bad.com"},
	}

	buckets, tlds := Classify(input)

	if !reflect.DeepEqual(buckets.Suffix, []string{"good.com"}) {
		t.Errorf("Suffix = %v, want [good.com]", buckets.Suffix)
	}
	if len(buckets.Full) != 0 {
		t.Errorf("Full = %v, want empty", buckets.Full)
	}
	if len(tlds) != 0 {
		t.Errorf("tlds = %v, want empty", tlds)
	}
}

func TestClassify_BareLabelsRoutedToTLDList(t *testing.T) {
	input := []Rule{
		{Type: Suffix, Value: "localhost"},
		{Type: Suffix, Value: "example.com"},
		{Type: Full, Value: "google"},
	}

	buckets, tlds := Classify(input)

	if !reflect.DeepEqual(buckets.Suffix, []string{"example.com"}) {
		t.Errorf("Suffix = %v, want [example.com]", buckets.Suffix)
	}
	if len(buckets.Full) != 0 {
		t.Errorf("Full = %v, want empty", buckets.Full)
	}
	if !reflect.DeepEqual(tlds, []string{"google", "localhost"}) {
		t.Errorf("tlds = %v, want [google localhost]", tlds)
	}
}

func TestClassify_RegexNeverValidated(t *testing.T) {
	input := []Rule{
		{Type: Regex, Value: `^-not-a-domain-$`},
		{Type: Keyword, Value: "--"},
	}

	buckets, _ := Classify(input)

	if len(buckets.Regex) != 1 || len(buckets.Keyword) != 1 {
		t.Errorf("Regex/Keyword values must pass through unvalidated, got %+v", buckets)
	}
}

func TestBuckets_Empty(t *testing.T) {
	var b Buckets
	if !b.Empty() {
		t.Error("zero Buckets should be empty")
	}
	b.Keyword = append(b.Keyword, "ad")
	if b.Empty() {
		t.Error("Buckets with a keyword should not be empty")
	}
	if b.Total() != 1 {
		t.Errorf("Total() = %d, want 1", b.Total())
	}
}
