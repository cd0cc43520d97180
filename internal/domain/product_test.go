package domain

import (
	"encoding/json"
	"testing"
)

// The upsert payload must carry every column, with unknown optionals as
// explicit nulls rather than omitted keys.
func TestProductJSONShape(t *testing.T) {
	p := Product{
		ID:       MakeID("https://www.mymall.com.tw/pro-123"),
		Title:    "測試商品",
		URL:      "https://www.mymall.com.tw/pro-123",
		Currency: "TWD",
		Source:   SourceScrape,
	}

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := []string{"id", "title", "url", "price", "currency", "image", "stock", "source"}
	if len(m) != len(want) {
		t.Errorf("payload has %d keys, want %d: %s", len(m), len(want), data)
	}
	for _, key := range want {
		if _, ok := m[key]; !ok {
			t.Errorf("payload is missing key %q: %s", key, data)
		}
	}

	for _, key := range []string{"price", "image", "stock"} {
		v, ok := m[key]
		if !ok {
			continue
		}
		if v != nil {
			t.Errorf("unset optional %q should serialize as null, got %v", key, v)
		}
	}
}

func TestProductJSONSetOptionals(t *testing.T) {
	price, stock := 299, 100
	image := "https://img.mymall.com.tw/pro-123.jpg"
	p := Product{
		ID:       MakeID("https://www.mymall.com.tw/pro-123"),
		Title:    "測試商品",
		URL:      "https://www.mymall.com.tw/pro-123",
		Price:    &price,
		Currency: "TWD",
		Image:    &image,
		Stock:    &stock,
		Source:   SourceScrape,
	}

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m["price"] != float64(299) {
		t.Errorf("price = %v, want 299", m["price"])
	}
	if m["stock"] != float64(100) {
		t.Errorf("stock = %v, want 100", m["stock"])
	}
	if m["image"] != image {
		t.Errorf("image = %v, want %s", m["image"], image)
	}
}
