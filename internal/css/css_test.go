package css

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Decl
	}{
		{"empty", "", nil},
		{"single", "width: 100px", []Decl{{"width", "100px"}}},
		{"trailing semicolon", "width: 100px;", []Decl{{"width", "100px"}}},
		{"multiple", "color: red; width: 100px", []Decl{{"color", "red"}, {"width", "100px"}}},
		{"no spaces", "color:red;width:100px", []Decl{{"color", "red"}, {"width", "100px"}}},
		{"uppercase property", "COLOR: red", []Decl{{"color", "red"}}},
		{"value keeps case", "font-family: Iosevka", []Decl{{"font-family", "Iosevka"}}},
		{"colon in value", "background: url(a:b)", []Decl{{"background", "url(a:b)"}}},
		{"malformed segment dropped", "color red; width: 100px", []Decl{{"width", "100px"}}},
		{"empty segments", ";; color: red ;;", []Decl{{"color", "red"}}},
		{"duplicates kept in order", "color: red; color: blue", []Decl{{"color", "red"}, {"color", "blue"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestMap(t *testing.T) {
	tests := []struct {
		name string
		text string
		want map[string]string
	}{
		{"empty", "", nil},
		{"single", "width: 100px", map[string]string{"width": "100px"}},
		{"last wins", "color: red; color: blue", map[string]string{"color": "blue"}},
		{"mixed", "color: red; width: 100px;", map[string]string{"color": "red", "width": "100px"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Map(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Map(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		m    map[string]string
		want string
	}{
		{"nil", nil, ""},
		{"empty", map[string]string{}, ""},
		{"single", map[string]string{"width": "100px"}, "width: 100px"},
		{"sorted", map[string]string{"width": "100px", "color": "red"}, "color: red; width: 100px"},
		{"property lowercased", map[string]string{"COLOR": "red"}, "color: red"},
		{"sorted after lowercasing", map[string]string{"Width": "100px", "color": "red"}, "color: red; width: 100px"},
		{"case-insensitive collapse", map[string]string{"COLOR": "blue", "color": "red"}, "color: red"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.m); got != tt.want {
				t.Errorf("Format(%v) = %q, want %q", tt.m, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"empty", "", ""},
		{"canonical unchanged", "color: red; width: 100px", "color: red; width: 100px"},
		{"reordered", "width:100px;color:red", "color: red; width: 100px"},
		{"spacing and case", "  WIDTH : 100px ; ", "width: 100px"},
		{"duplicate collapsed", "color: red; color: blue", "color: blue"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.text); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
