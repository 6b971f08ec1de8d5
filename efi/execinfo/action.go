package execinfo

// Section 32.5.3.1 - EFI_IMAGE_EXECUTION_ACTION
type Action uint32

const (
	EFI_IMAGE_EXECUTION_AUTHENTICATION     Action = 0x00000007
	EFI_IMAGE_EXECUTION_AUTH_UNTESTED      Action = 0x00000000
	EFI_IMAGE_EXECUTION_AUTH_SIG_FAILED    Action = 0x00000001
	EFI_IMAGE_EXECUTION_AUTH_SIG_PASSED    Action = 0x00000002
	EFI_IMAGE_EXECUTION_AUTH_SIG_NOT_FOUND Action = 0x00000003
	EFI_IMAGE_EXECUTION_AUTH_SIG_FOUND     Action = 0x00000004
	EFI_IMAGE_EXECUTION_POLICY_FAILED      Action = 0x00000005
	EFI_IMAGE_EXECUTION_INITIALIZED        Action = 0x00000008
)

var authenticationStates = [8]string{
	"Untested",
	"Signature Verification Failed",
	"Signature Verification Passed",
	"Signature Not Found",
	"Signature Found",
	"Policy Failed",
	"Unknown verification state",
	"Unknown verification state",
}

// Authentication returns the authentication state in the low three bits.
func (a Action) Authentication() Action {
	return a & EFI_IMAGE_EXECUTION_AUTHENTICATION
}

// Initialized reports whether the image was started.
func (a Action) Initialized() bool {
	return a&EFI_IMAGE_EXECUTION_INITIALIZED != 0
}

func (a Action) String() string {
	s := authenticationStates[a.Authentication()]
	if a.Initialized() {
		s += ", Initialized"
	}
	return s
}
