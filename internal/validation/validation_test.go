package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type signupSample struct {
	Name  string `validate:"required,min=2,max=100"`
	Email string `validate:"required,email"`
	Phone string `validate:"required,phone"`
	Year  string `validate:"required,oneof=1st 2nd 3rd 4th"`
}

func TestStructAcceptsValidInput(t *testing.T) {
	details := Struct(signupSample{
		Name:  "Asha Rao",
		Email: "asha@example.com",
		Phone: "+91 98765-43210",
		Year:  "3rd",
	})
	assert.Nil(t, details)
}

func TestStructCollectsAllFieldErrors(t *testing.T) {
	details := Struct(signupSample{
		Name:  "A",
		Email: "not-an-email",
		Phone: "abc",
		Year:  "5th",
	})
	assert.Len(t, details, 4)
	assert.Contains(t, details, "name must be at least 2 characters")
	assert.Contains(t, details, "email must be a valid email")
	assert.Contains(t, details, "phone must be a valid phone number")
	assert.Contains(t, details, "year must be one of 1st 2nd 3rd 4th")
}

func TestStructRequiredMessages(t *testing.T) {
	details := Struct(signupSample{})
	assert.Len(t, details, 4)
	assert.Contains(t, details, "name is required")
	assert.Contains(t, details, "email is required")
}

func TestPhoneValidator(t *testing.T) {
	type p struct {
		Phone string `validate:"phone"`
	}

	valid := []string{"1234567", "123-456-7890", "+91 98765 43210"}
	for _, v := range valid {
		assert.Nil(t, Struct(p{Phone: v}), "phone %q", v)
	}

	invalid := []string{"123456", "phone-number", "123456789012345678901"}
	for _, v := range invalid {
		assert.NotNil(t, Struct(p{Phone: v}), "phone %q", v)
	}
}
