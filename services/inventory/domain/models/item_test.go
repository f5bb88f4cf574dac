package models

import "testing"

func TestItem_PhotoURL(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want string
	}{
		{"with photo", Item{ID: 42, Name: "Laptop", PhotoRef: "20260101T000000.000000000-abcd.jpg"}, "/inventory/42/photo"},
		{"without photo", Item{ID: 42, Name: "Laptop"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.PhotoURL(); got != tt.want {
				t.Fatalf("PhotoURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestItem_HasPhoto(t *testing.T) {
	withPhoto := Item{ID: 1, PhotoRef: "ref.jpg"}
	if !withPhoto.HasPhoto() {
		t.Fatal("expected HasPhoto true")
	}
	withoutPhoto := Item{ID: 1}
	if withoutPhoto.HasPhoto() {
		t.Fatal("expected HasPhoto false")
	}
}
