package aggie

import "testing"

func TestParseMoney(t *testing.T) {
	for _, c := range []struct{ in, want string }{
		{"1234.56", "1234.56"},
		{"-42", "-42.00"},
		// Excel stores some numerics in exponent notation.
		{"1.5E+3", "1500.00"},
	} {
		m, err := ParseMoney(c.in)
		if err != nil {
			t.Errorf("ParseMoney(%q) error = %v", c.in, err)
			continue
		}
		if got := m.String(); got != c.want {
			t.Errorf("ParseMoney(%q) = %s, want %s", c.in, got, c.want)
		}
	}

	if _, err := ParseMoney("12,000"); err == nil {
		t.Error(`ParseMoney("12,000") should fail; separators are stripped by the caller`)
	}
}

func TestMoneyCents(t *testing.T) {
	for _, c := range []struct {
		in   string
		want int64
	}{
		{"0", 0},
		{"1234.56", 123456},
		// Half-cents round away from zero.
		{"19.995", 2000},
		{"-19.995", -2000},
		{"-0.004", 0},
	} {
		m, err := ParseMoney(c.in)
		if err != nil {
			t.Fatalf("ParseMoney(%q) error = %v", c.in, err)
		}
		if got := m.Cents(); got != c.want {
			t.Errorf("Cents(%s) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestMoneyZeroValue(t *testing.T) {
	var m Money
	if !m.IsZero() {
		t.Error("zero value should be zero")
	}
	if got, want := m.String(), "0.00"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	// Absent projects diff against the zero value, so arithmetic on it
	// must behave.
	if got, want := m.Sub(USD(5)), USD(-5); !got.Equal(want) {
		t.Errorf("Sub() = %v, want %v", got, want)
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a, b := USD(130000.25), USD(100000)
	if got, want := a.Sub(b), USD(30000.25); !got.Equal(want) {
		t.Errorf("Sub() = %v, want %v", got, want)
	}
	if got, want := a.Add(b.Neg()), USD(30000.25); !got.Equal(want) {
		t.Errorf("Add(Neg()) = %v, want %v", got, want)
	}
	if !USD(-1).IsNegative() || USD(1).IsNegative() {
		t.Error("IsNegative() misreports sign")
	}
}
