package styles

import (
	"encoding/json"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#3b82f6", Color{0x3b, 0x82, 0xf6, 255}, false},
		{"#3B82F6", Color{0x3b, 0x82, 0xf6, 255}, false},
		{"#fff", Color{255, 255, 255, 255}, false},
		{" #000000 ", Color{0, 0, 0, 255}, false},

		{"", Color{}, true},
		{"blue", Color{}, true},
		{"#12345", Color{}, true},
		{"#1234567", Color{}, true},
		{"#ggg", Color{}, true},
		{"3b82f6", Color{}, true},
		{"rgb(1, 2, 3)", Color{}, true},
		{"rgba(59,130,246,0.4)", Color{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColorString(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{RGB(0x25, 0x63, 0xeb), "#2563eb"},
		{RGB(59, 130, 246).WithAlpha(0.4), "rgba(59,130,246,0.4)"},
		{RGB(0, 0, 0).WithAlpha(0.1), "rgba(0,0,0,0.1)"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestColorRGBA(t *testing.T) {
	r, g, b, a := RGB(255, 0, 0).RGBA()
	if r != 0xffff || g != 0 || b != 0 || a != 0xffff {
		t.Errorf("RGBA() = %x %x %x %x, want ffff 0 0 ffff", r, g, b, a)
	}

	r, _, _, a = Color{R: 255, A: 0}.RGBA()
	if r != 0 || a != 0 {
		t.Errorf("transparent RGBA() = %x, %x, want premultiplied zero", r, a)
	}
}

func TestColorJSON(t *testing.T) {
	in := struct {
		Fill Color `json:"fill"`
	}{Fill: RadarFill}

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `{"fill":"rgba(59,130,246,0.4)"}` {
		t.Errorf("Marshal() = %s", data)
	}
}
