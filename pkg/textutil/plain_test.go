package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainText(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", ""},
		{"  Sow in June.\r\nHarvest in Oct.  ", "Sow in June.\nHarvest in Oct."},
		{"Yield < 5 t per acre", "Yield < 5 t per acre"},
		{
			"<p>Good for <b>black</b>   soil.</p><ul><li>Kharif</li><li>Rabi</li></ul><script>x()</script>",
			"Good for black soil.\nKharif\nRabi",
		},
		{"Line one<br>Line two<br/>", "Line one\nLine two"},
		{"<h2>Benefits</h2><p>&#8377;6000 per year &amp; insurance</p>", "Benefits\n₹6000 per year & insurance"},
		{"<style>p{color:red}</style><div>Aadhaar card</div>", "Aadhaar card"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, PlainText(tc.in), tc.in)
	}
}
