package theme

import "testing"

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{in: "system", want: ModeSystem},
		{in: "light", want: ModeLight},
		{in: "dark", want: ModeDark},
		{in: "midnight", wantErr: true},
		{in: "", wantErr: true},
		{in: "Dark", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseMode(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStylesFor_DistinctPalettes(t *testing.T) {
	light := StylesFor(ModeLight)
	dark := StylesFor(ModeDark)

	if light.Title.GetForeground() == dark.Title.GetForeground() {
		t.Error("light and dark title styles share a foreground")
	}
}

func TestStylesFor_SystemEnvHint(t *testing.T) {
	t.Setenv("MEDISCAN_COLOR_SCHEME", "light")
	got := StylesFor(ModeSystem)
	if got.Title.GetForeground() != lightStyles.Title.GetForeground() {
		t.Error("system mode with light hint did not resolve to light palette")
	}

	t.Setenv("MEDISCAN_COLOR_SCHEME", "")
	got = StylesFor(ModeSystem)
	if got.Title.GetForeground() != darkStyles.Title.GetForeground() {
		t.Error("system mode without hint did not resolve to dark palette")
	}
}
