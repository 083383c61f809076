package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	valid := []string{"123", "0", "9876543210", "1250.50"}
	invalid := []string{"abc", "123a", "", "-123", "1.", ".5"}
	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "01-01-2023", "2023/01/01", "", "yesterday"}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidUsername(t *testing.T) {
	valid := []string{"john", "john.doe", "a_b-c1", "ravi1234"}
	invalid := []string{"ab", "", "has space", "way@bad", "x"}
	for _, s := range valid {
		if !IsValidUsername(s) {
			t.Errorf("IsValidUsername(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidUsername(s) {
			t.Errorf("IsValidUsername(%q) = true, want false", s)
		}
	}
}

func TestIsValidOTP(t *testing.T) {
	valid := []string{"000000", "123456", "999999"}
	invalid := []string{"12345", "1234567", "12a456", "", "12 456"}
	for _, s := range valid {
		if !IsValidOTP(s) {
			t.Errorf("IsValidOTP(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidOTP(s) {
			t.Errorf("IsValidOTP(%q) = true, want false", s)
		}
	}
}

func TestLatitudeLongitudeBounds(t *testing.T) {
	if !IsValidLatitude(0) || !IsValidLatitude(-90) || !IsValidLatitude(90) {
		t.Error("expected boundary latitudes to be valid")
	}
	if IsValidLatitude(90.0001) || IsValidLatitude(-91) {
		t.Error("expected out-of-range latitudes to be invalid")
	}
	if !IsValidLongitude(180) || !IsValidLongitude(-180) {
		t.Error("expected boundary longitudes to be valid")
	}
	if IsValidLongitude(180.5) {
		t.Error("expected out-of-range longitude to be invalid")
	}
}
