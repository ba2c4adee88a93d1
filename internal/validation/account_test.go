package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"Valid", "secret123", false},
		{"Exactly Min Length", "abcdefg1", false},
		{"Exactly Max Length", strings.Repeat("a", 71) + "1", false},
		{"Too Short", "abc1", true},
		{"Too Long", strings.Repeat("a", 72) + "1", true},
		{"No Digit", "secretpassword", true},
		{"No Letter", "1234567890", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateUsername(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"Valid", "test_user123", false},
		{"Too Short", "tu", true},
		{"Too Long", strings.Repeat("u", 31), true},
		{"Illegal Chars", "user@123", true},
		{"Hyphen", "user-name", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"Valid", "test@example.com", false},
		{"Subdomain", "cook@mail.example.co", false},
		{"Invalid Format", "not-an-email", true},
		{"Missing Domain", "user@", true},
		{"Multiple At Symbols", "user@@example.com", true},
		{"Space In Local Part", "user @example.com", true},
		{"Trailing Dot In Domain", "user@example.com.", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateSignup(t *testing.T) {
	t.Parallel()

	valid := SignupInput{
		FullName: ptr("Ada Lovelace"),
		Username: ptr("ada_l"),
		Email:    ptr("ada@example.com"),
		Password: ptr("engine1843"),
	}
	assert.True(t, ValidateSignup(valid).IsValid())

	missing := valid
	missing.Password = nil
	assert.Equal(t, "All or some fields are not defined", ValidateSignup(missing).Message)

	bad := SignupInput{FullName: ptr("Ada 99"), Username: ptr(""), Email: ptr("ada"), Password: ptr("short")}
	res := ValidateSignup(bad)
	assert.Equal(t, "Full name must contain only alphabets", res.Errors["fullName"])
	assert.Equal(t, "Username is required", res.Errors["username"])
	assert.Equal(t, "Email is invalid", res.Errors["email"])
	assert.Contains(t, res.Errors["password"], "at least 8")
}

func TestValidateSignin(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Username or password is not defined", ValidateSignin(SigninInput{Username: ptr("ada")}).Message)
	res := ValidateSignin(SigninInput{Username: ptr(" "), Password: ptr("")})
	assert.Equal(t, "Username is required", res.Errors["username"])
	assert.Equal(t, "Password is required", res.Errors["password"])
	assert.True(t, ValidateSignin(SigninInput{Username: ptr("ada"), Password: ptr("x")}).IsValid())
}

func TestValidateProfileUpdate(t *testing.T) {
	t.Parallel()

	assert.True(t, ValidateProfileUpdate(ProfileInput{}).IsValid())
	assert.True(t, ValidateProfileUpdate(ProfileInput{Email: ptr(""), Location: ptr("Lagos")}).IsValid())

	res := ValidateProfileUpdate(ProfileInput{Email: ptr("nope"), AboutMe: ptr(strings.Repeat("x", 1001))})
	assert.Equal(t, "Email is invalid", res.Errors["email"])
	assert.Contains(t, res.Errors, "aboutMe")
}
