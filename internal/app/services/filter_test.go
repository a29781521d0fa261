package services

import "testing"

func TestMatchText(t *testing.T) {
	tests := []struct {
		name   string
		term   string
		fields []string
		want   bool
	}{
		{name: "empty term matches anything", term: "", fields: []string{"whatever"}, want: true},
		{name: "substring match", term: "lib", fields: []string{"Library hours"}, want: true},
		{name: "case-insensitive", term: "LIBRARY", fields: []string{"library hours"}, want: true},
		{name: "any field may match", term: "gym", fields: []string{"Library", "Gym schedule"}, want: true},
		{name: "no match", term: "pool", fields: []string{"Library", "Gym"}, want: false},
		{name: "no fields", term: "x", fields: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchText(tt.term, tt.fields...); got != tt.want {
				t.Errorf("matchText(%q, %v) = %v, want %v", tt.term, tt.fields, got, tt.want)
			}
		})
	}
}

func TestMatchEquals(t *testing.T) {
	tests := []struct {
		filter string
		value  string
		want   bool
	}{
		{filter: "", value: "water", want: true},
		{filter: "all", value: "water", want: true},
		{filter: "water", value: "water", want: true},
		{filter: "water", value: "internet", want: false},
		{filter: "Water", value: "water", want: false},
	}

	for _, tt := range tests {
		if got := matchEquals(tt.filter, tt.value); got != tt.want {
			t.Errorf("matchEquals(%q, %q) = %v, want %v", tt.filter, tt.value, got, tt.want)
		}
	}
}
