package aggie

import "testing"

func TestParseKind(t *testing.T) {
	for _, c := range []struct {
		in   string
		want Kind
	}{
		{"Sponsored", Sponsored},
		{" sponsored ", Sponsored},
		{"INTERNAL", Internal},
		{"Internal", Internal},
	} {
		got, ok := ParseKind(c.in)
		if !ok {
			t.Errorf("ParseKind(%q) unmatched, want %v", c.in, c.want)
			continue
		}
		if got != c.want {
			t.Errorf("ParseKind(%q) = %v, want %v", c.in, got, c.want)
		}
	}

	for _, in := range []string{"Capital", "", "Sponsored Internal"} {
		if got, ok := ParseKind(in); ok {
			t.Errorf("ParseKind(%q) = %v, want no match", in, got)
		}
	}
}
