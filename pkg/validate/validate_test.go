package validate

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmail(t *testing.T) {
	for _, v := range []string{"ravi@example.com", "a.b+c@farm.co.in", " kisan_99@mail.org "} {
		ok, msg := Email(v)
		assert.True(t, ok, v)
		assert.Empty(t, msg)
	}

	cases := map[string]string{
		"":                 "Email is required.",
		"   ":              "Email is required.",
		"ravi.example.com": "Enter a valid email address.",
		"ravi@localhost":   "Enter a valid email address.",
		"ravi@farm.c":      "Enter a valid email address.",
		"@farm.com":        "Enter a valid email address.",
	}
	for in, want := range cases {
		ok, msg := Email(in)
		assert.False(t, ok, in)
		assert.Equal(t, want, msg, in)
	}

	long := strings.Repeat("a", 110) + "@example.com"
	ok, msg := Email(long)
	assert.False(t, ok)
	assert.Equal(t, "Email is too long.", msg)

	// exactly at the limit is fine
	edge := strings.Repeat("a", EmailMaxLen-len("@example.com")) + "@example.com"
	require.Len(t, edge, EmailMaxLen)
	ok, _ = Email(edge)
	assert.True(t, ok)
}

func TestMobile(t *testing.T) {
	valid := []string{"9876543210", "+919876543210", "09876543210", "98765 43210", "6000000000"}
	for _, v := range valid {
		ok, _ := Mobile(v, true)
		assert.True(t, ok, v)
	}
	invalid := []string{"5876543210", "987654321", "98765432100", "+929876543210", "abcdefghij", "+91 5876543210"}
	for _, v := range invalid {
		ok, msg := Mobile(v, true)
		assert.False(t, ok, v)
		assert.Equal(t, "Enter a valid 10-digit mobile number (e.g. 9876543210).", msg)
	}

	ok, msg := Mobile("", true)
	assert.False(t, ok)
	assert.Equal(t, "Mobile number is required.", msg)
	ok, _ = Mobile("", false)
	assert.True(t, ok)
}

func TestNormalizeMobileAfterValidation(t *testing.T) {
	inputs := []string{"9876543210", "+919876543210", "09876543210", " 7 0 1 2 3 4 5 6 7 8 ", "+91 8123456789", "5555555555", "12", ""}
	for _, in := range inputs {
		if ok, _ := Mobile(in, true); !ok {
			assert.Empty(t, NormalizeMobile(in), in)
			continue
		}
		out := NormalizeMobile(in)
		require.Len(t, out, 10, in)
		assert.Contains(t, "6789", string(out[0]), in)
		for _, r := range out {
			assert.True(t, r >= '0' && r <= '9', in)
		}
	}
	assert.Equal(t, "9876543210", NormalizeMobile("+919876543210"))
	assert.Equal(t, "9876543210", NormalizeMobile("09876543210"))
}

func TestName(t *testing.T) {
	for _, v := range []string{"Ravi Kumar", "D'Souza", "Anne-Marie", "रमेश पाटील"} {
		ok, _ := Name(v, "Name", true)
		assert.True(t, ok, v)
	}

	ok, msg := Name("R", "Farmer full name", true)
	assert.False(t, ok)
	assert.Equal(t, "Farmer full name must be at least 2 characters.", msg)

	ok, msg = Name(strings.Repeat("a", 151), "Name", true)
	assert.False(t, ok)
	assert.Equal(t, "Name must be at most 150 characters.", msg)

	ok, msg = Name("Ravi 2", "Name", true)
	assert.False(t, ok)
	assert.Equal(t, "Name can only contain letters, spaces, hyphens and apostrophe.", msg)

	ok, msg = Name("", "Admin name", true)
	assert.False(t, ok)
	assert.Equal(t, "Admin name is required.", msg)
	ok, _ = Name("", "Admin name", false)
	assert.True(t, ok)
}

func TestPassword(t *testing.T) {
	ok, _ := Password("abc123")
	assert.True(t, ok)

	cases := map[string]string{
		"":         "Password is required.",
		"ab1":      "Password must be at least 6 characters.",
		"abcdefgh": "Password must contain at least one letter and one number.",
		"12345678": "Password must contain at least one letter and one number.",
	}
	for in, want := range cases {
		ok, msg := Password(in)
		assert.False(t, ok, in)
		assert.Equal(t, want, msg, in)
	}
}

func TestConfirmPassword(t *testing.T) {
	ok, _ := ConfirmPassword("abc123", "abc123")
	assert.True(t, ok)
	_, msg := ConfirmPassword("abc123", "")
	assert.Equal(t, "Please confirm your password.", msg)
	_, msg = ConfirmPassword("abc123", "abc124")
	assert.Equal(t, "Passwords do not match.", msg)
}

func TestNumbers(t *testing.T) {
	ok, _ := NonNegative("0", "Price", true)
	assert.True(t, ok)
	ok, _ = NonNegative("", "Price", false)
	assert.True(t, ok)
	_, msg := NonNegative("", "Price", true)
	assert.Equal(t, "Price is required.", msg)
	_, msg = NonNegative("-1", "Price", true)
	assert.Equal(t, "Price cannot be negative.", msg)
	_, msg = NonNegative("12.3.4", "Price", true)
	assert.Equal(t, "Enter a valid number for Price.", msg)

	_, msg = Positive("0", "Quantity", true)
	assert.Equal(t, "Quantity must be greater than zero.", msg)
	ok, _ = Positive("0.01", "Quantity", true)
	assert.True(t, ok)

	ok, _ = DecimalRange("100", "Discount", 0, 100, false)
	assert.True(t, ok)
	_, msg = DecimalRange("100.5", "Discount", 0, 100, false)
	assert.Equal(t, "Discount cannot be more than 100.", msg)
	_, msg = DecimalRange("-0.5", "Discount", 0, 100, false)
	assert.Equal(t, "Discount cannot be less than 0.", msg)
	_, msg = DecimalRange("ten", "Discount", 0, 100, false)
	assert.Equal(t, "Enter a valid number for Discount.", msg)

	ok, _ = IntRange("7", "Quantity", 1, NoMax, true)
	assert.True(t, ok)
	_, msg = IntRange("0", "Quantity", 1, NoMax, true)
	assert.Equal(t, "Quantity must be at least 1.", msg)
	_, msg = IntRange("11", "Quantity", 1, 10, true)
	assert.Equal(t, "Quantity must be at most 10.", msg)
	_, msg = IntRange("99999999999999", "Quantity", 1, NoMax, true)
	assert.Equal(t, "Enter a valid number for Quantity.", msg)

	_, msg = LandArea("100000", false)
	assert.Equal(t, "Land area is too large.", msg)
	_, msg = LandArea("x", false)
	assert.Equal(t, "Enter a valid number for land area.", msg)
}

func TestStrings(t *testing.T) {
	_, msg := CropName(" ")
	assert.Equal(t, "Crop name is required.", msg)
	_, msg = CropName(strings.Repeat("w", 151))
	assert.Equal(t, "Crop name is too long.", msg)

	_, msg = Identifier("", "Farmer ID, Email or Mobile")
	assert.Equal(t, "Please enter Farmer ID, Email or Mobile.", msg)

	_, msg = RequiredString(strings.Repeat("s", 201), "Scheme name", 1, 200)
	assert.Equal(t, "Scheme name must be at most 200 characters.", msg)
}

func TestFirst(t *testing.T) {
	ok, msg := First(C(Email("a@b.co")), C(Password("short")), C(Password("")))
	assert.False(t, ok)
	assert.Equal(t, "Password must be at least 6 characters.", msg)

	ok, msg = First(C(Email("a@b.co")), C(Password("abc123")))
	assert.True(t, ok)
	assert.Empty(t, msg)
}

func TestParse(t *testing.T) {
	assert.Equal(t, "12.5", ParseDecimal(" 12.50 ").String())
	assert.True(t, ParseDecimal("").IsZero())
	assert.Nil(t, ParseDecimalPtr(" "))
	assert.Equal(t, "3", ParseDecimalPtr("3").String())
	assert.Equal(t, 4, ParseInt("4.9"))
	assert.Equal(t, "7", fmt.Sprint(ParseInt("7")))
}
