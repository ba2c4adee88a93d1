package validation

import (
	"fmt"
	"regexp"
	"unicode"
	"unicode/utf8"
)

const (
	minPasswordLen = 8
	maxPasswordLen = 72
	maxLocationLen = 100
	maxAboutMeLen  = 1000
	maxEmailLen    = 254
)

var (
	usernameRegex = regexp.MustCompile(`^[A-Za-z0-9_]{3,30}$`)
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9\-]+(\.[a-zA-Z0-9\-]+)*\.[a-zA-Z]{2,}$`)
	fullNameRegex = regexp.MustCompile(`^[\p{L}]+([\s'\-][\p{L}]+)*$`)
)

// SignupInput is the body of a signup request.
type SignupInput struct {
	FullName *string `json:"fullName"`
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// SigninInput is the body of a signin request.
type SigninInput struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

// ProfileInput is the body of a profile update. Every field is optional.
type ProfileInput struct {
	FullName     *string `json:"fullName"`
	Username     *string `json:"username"`
	Email        *string `json:"email"`
	ProfileImage *string `json:"profileImage"`
	Location     *string `json:"location"`
	AboutMe      *string `json:"aboutMe"`
}

// ValidatePassword checks length and requires a letter and a digit.
// bcrypt reads at most 72 bytes, so longer passwords are rejected.
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < minPasswordLen {
		return fmt.Errorf("Password must be at least %d characters long", minPasswordLen)
	}
	if len(password) > maxPasswordLen {
		return fmt.Errorf("Password must not exceed %d characters", maxPasswordLen)
	}

	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return fmt.Errorf("Password must contain at least one letter and one digit")
	}
	return nil
}

// ValidateUsername allows 3 to 30 letters, digits and underscores.
func ValidateUsername(username string) error {
	if !usernameRegex.MatchString(username) {
		return fmt.Errorf("Username must be 3 to 30 characters of letters, numbers or underscores")
	}
	return nil
}

// ValidateEmail checks basic email format
func ValidateEmail(email string) error {
	if len(email) > maxEmailLen {
		return fmt.Errorf("Email must not exceed %d characters", maxEmailLen)
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("Email is invalid")
	}
	return nil
}

// ValidateFullName allows letters separated by single spaces, hyphens or apostrophes.
func ValidateFullName(name string) error {
	if !fullNameRegex.MatchString(name) {
		return fmt.Errorf("Full name must contain only alphabets")
	}
	return nil
}

// ValidateSignup requires every account field.
func ValidateSignup(in SignupInput) Result {
	if anyUndefined(in.FullName, in.Username, in.Email, in.Password) {
		return notDefined("All or some fields are not defined")
	}

	errs := fieldErrors{}
	checkRequired(errs, "fullName", "Full name is required", Trimmed(in.FullName), ValidateFullName)
	checkRequired(errs, "username", "Username is required", Trimmed(in.Username), ValidateUsername)
	checkRequired(errs, "email", "Email is required", Trimmed(in.Email), ValidateEmail)
	// Passwords are checked untrimmed.
	if *in.Password == "" {
		errs.add("password", "Password is required")
	} else if err := ValidatePassword(*in.Password); err != nil {
		errs.add("password", err.Error())
	}
	return errs.result()
}

// ValidateSignin requires both credentials.
func ValidateSignin(in SigninInput) Result {
	if anyUndefined(in.Username, in.Password) {
		return notDefined("Username or password is not defined")
	}
	errs := fieldErrors{}
	if blank(in.Username) {
		errs.add("username", "Username is required")
	}
	if *in.Password == "" {
		errs.add("password", "Password is required")
	}
	return errs.result()
}

// ValidateProfileUpdate checks only fields that carry a value. Absent or blank
// fields leave the stored value untouched.
func ValidateProfileUpdate(in ProfileInput) Result {
	errs := fieldErrors{}
	if v := Trimmed(in.FullName); v != "" {
		addErr(errs, "fullName", ValidateFullName(v))
	}
	if v := Trimmed(in.Username); v != "" {
		addErr(errs, "username", ValidateUsername(v))
	}
	if v := Trimmed(in.Email); v != "" {
		addErr(errs, "email", ValidateEmail(v))
	}
	if utf8.RuneCountInString(Trimmed(in.Location)) > maxLocationLen {
		errs.add("location", fmt.Sprintf("Location must not exceed %d characters", maxLocationLen))
	}
	if utf8.RuneCountInString(Trimmed(in.AboutMe)) > maxAboutMeLen {
		errs.add("aboutMe", fmt.Sprintf("About me must not exceed %d characters", maxAboutMeLen))
	}
	return errs.result()
}

func checkRequired(errs fieldErrors, field, requiredMsg, value string, check func(string) error) {
	if value == "" {
		errs.add(field, requiredMsg)
		return
	}
	addErr(errs, field, check(value))
}

func addErr(errs fieldErrors, field string, err error) {
	if err != nil {
		errs.add(field, err.Error())
	}
}
