package cli

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Form messages, as the web forms show them.
const (
	msgFieldsRequired   = "جميع الحقول مطلوبة"
	msgPasswordTooShort = "كلمة المرور يجب أن تكون 6 أحرف على الأقل"
	msgPasswordMismatch = "كلمات المرور غير متطابقة"
	msgInvalidEmail     = "البريد الإلكتروني غير صالح"
	msgInvalidRole      = "الدور غير صالح"
	msgInvalidStatus    = "الحالة غير صالحة"
	msgInvalidSlots     = "عدد المقاعد يجب أن يكون 1 على الأقل"
	msgInvalidDate      = "تنسيق التاريخ غير صالح"
	msgEndBeforeStart   = "تاريخ الانتهاء يجب أن يكون بعد تاريخ البدء"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type registerForm struct {
	FullName string `validate:"required"`
	Username string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
	Confirm  string `validate:"eqfield=Password"`
	Role     string `validate:"required,oneof=student employee"`
}

type loginForm struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
	Role     string `validate:"required,oneof=student employee"`
}

type applicationForm struct {
	Name           string
	ActivityType   string `validate:"required"`
	ActivityNumber string `validate:"required"`
	College        string `validate:"required"`
	Department     string `validate:"required"`
	Specialization string `validate:"required"`
	Phone          string `validate:"required"`
	Details        string
}

type requestForm struct {
	StudentID    int64  `validate:"gte=0"`
	RequestType  string `validate:"required"`
	Title        string `validate:"required"`
	Description  string `validate:"required"`
	ActivityName string
	ActivityCode string
	Deadline     string
}

type activityForm struct {
	Name        string `validate:"required"`
	Description string `validate:"required"`
	Category    string `validate:"required"`
	Slots       int    `validate:"gte=1"`
	Location    string `validate:"required"`
	Start       string `validate:"required"`
	End         string `validate:"required"`
}

type decisionForm struct {
	Status string `validate:"required,oneof=approved rejected"`
}

// formError is a validation failure, reported like a failed envelope.
type formError struct {
	message string
}

func (e *formError) Error() string { return e.message }

// checkForm validates form and returns the message for the first failed
// rule, or nil.
func checkForm(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("validate form: %w", err)
	}
	return &formError{message: messageFor(verrs[0])}
}

func messageFor(fe validator.FieldError) string {
	switch {
	case fe.Field() == "Password" && fe.Tag() == "min":
		return msgPasswordTooShort
	case fe.Tag() == "eqfield":
		return msgPasswordMismatch
	case fe.Tag() == "email":
		return msgInvalidEmail
	case fe.Field() == "Role":
		return msgInvalidRole
	case fe.Field() == "Status":
		return msgInvalidStatus
	case fe.Field() == "Slots":
		return msgInvalidSlots
	default:
		return msgFieldsRequired
	}
}
