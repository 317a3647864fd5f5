package domain

// Registration form field names.
const (
	FieldName            = "name"
	FieldUsername        = "username"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
)

// User-facing field error strings.
const (
	MsgNameRequired      = "Name is required"
	MsgUsernameRequired  = "Username is required"
	MsgEmailRequired     = "Email is required"
	MsgPasswordRequired  = "Password is required"
	MsgPasswordMismatch  = "Passwords do not match"
	MsgUsernameTaken     = "Username is already taken"
	MsgEmailRegistered   = "Email is already registered"
	MsgAccountCreated    = "Account created successfully!"
	MsgAccountCreateFail = "Failed to create account"
)

// FormField holds one input's live value and its inline error. The error is
// cleared the instant the value changes; a stale error never survives an edit.
type FormField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Error string `json:"error,omitempty"`
}

// RegistrationSnapshot is an immutable copy of the form taken at submit time so
// the checks and the provisioning calls all see one consistent view.
type RegistrationSnapshot struct {
	Name            string `json:"name"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// SubmissionState is the registration submission lifecycle. Only one submission
// may be in Validating/Provisioning at a time.
type SubmissionState int32

const (
	SubmissionIdle SubmissionState = iota
	SubmissionValidating
	SubmissionProvisioning
	SubmissionFailed
	SubmissionSucceeded
)

func (s SubmissionState) String() string {
	switch s {
	case SubmissionIdle:
		return "idle"
	case SubmissionValidating:
		return "validating"
	case SubmissionProvisioning:
		return "provisioning"
	case SubmissionFailed:
		return "failed"
	case SubmissionSucceeded:
		return "succeeded"
	}
	return "unknown"
}
