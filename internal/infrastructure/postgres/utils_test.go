package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLike(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"employee:", "employee:"},
		{"user_profile:", `user\_profile:`},
		{"100%:", `100\%:`},
		{`back\slash`, `back\\slash`},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, escapeLike(c.in), "entrada %q", c.in)
	}
}
