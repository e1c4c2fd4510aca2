package status

import "fmt"

// Code is a raw status value returned across the native boundary.
type Code uint32

// Success is the only non-failure code.
const Success Code = 0x0000

// Generic engine errors.
const (
	ErrorUnexpected       Code = 0x0001
	ErrorInvalidParameter Code = 0x0002
	ErrorOutOfMemory      Code = 0x0003
	ErrorEnclaveLost      Code = 0x0004
	ErrorInvalidState     Code = 0x0005
)

// Enclave call errors.
const (
	ErrorInvalidFunction Code = 0x1001
	ErrorOutOfTCS        Code = 0x1003
	ErrorEnclaveCrashed  Code = 0x1006
	ErrorECallNotAllowed Code = 0x1007
	ErrorOCallNotAllowed Code = 0x1008
	ErrorStackOverrun    Code = 0x1009
)

// Enclave image and loading errors.
const (
	ErrorUndefinedSymbol   Code = 0x2000
	ErrorInvalidEnclave    Code = 0x2001
	ErrorInvalidEnclaveID  Code = 0x2002
	ErrorInvalidSignature  Code = 0x2003
	ErrorNDebugEnclave     Code = 0x2004
	ErrorOutOfEPC          Code = 0x2005
	ErrorNoDevice          Code = 0x2006
	ErrorMemoryMapConflict Code = 0x2007
	ErrorInvalidMetadata   Code = 0x2009
	ErrorDeviceBusy        Code = 0x200c
	ErrorInvalidVersion    Code = 0x200d
	ErrorModeIncompatible  Code = 0x200e
	ErrorEnclaveFileAccess Code = 0x200f
	ErrorInvalidMisc       Code = 0x2010
)

// Provisioning and attestation errors.
const (
	ErrorMACMismatch      Code = 0x3001
	ErrorInvalidAttribute Code = 0x3002
	ErrorInvalidCPUSVN    Code = 0x3003
	ErrorInvalidISVSVN    Code = 0x3004
	ErrorInvalidKeyname   Code = 0x3005
)

// Platform service errors.
const (
	ErrorServiceUnavailable      Code = 0x4001
	ErrorServiceTimeout          Code = 0x4002
	ErrorAEInvalidEPIDBlob       Code = 0x4003
	ErrorServiceInvalidPrivilege Code = 0x4004
	ErrorEPIDMemberRevoked       Code = 0x4005
	ErrorUpdateNeeded            Code = 0x4006
	ErrorNetworkFailure          Code = 0x4007
	ErrorAESessionInvalid        Code = 0x4008
	ErrorBusy                    Code = 0x400a
	ErrorMCNotFound              Code = 0x400c
	ErrorMCNoAccessRight         Code = 0x400d
	ErrorMCUsedUp                Code = 0x400e
	ErrorMCOverQuota             Code = 0x400f
	ErrorKDFMismatch             Code = 0x4011
)

var names = map[Code]string{
	Success: "SGX_SUCCESS",

	ErrorUnexpected:       "SGX_ERROR_UNEXPECTED",
	ErrorInvalidParameter: "SGX_ERROR_INVALID_PARAMETER",
	ErrorOutOfMemory:      "SGX_ERROR_OUT_OF_MEMORY",
	ErrorEnclaveLost:      "SGX_ERROR_ENCLAVE_LOST",
	ErrorInvalidState:     "SGX_ERROR_INVALID_STATE",

	ErrorInvalidFunction: "SGX_ERROR_INVALID_FUNCTION",
	ErrorOutOfTCS:        "SGX_ERROR_OUT_OF_TCS",
	ErrorEnclaveCrashed:  "SGX_ERROR_ENCLAVE_CRASHED",
	ErrorECallNotAllowed: "SGX_ERROR_ECALL_NOT_ALLOWED",
	ErrorOCallNotAllowed: "SGX_ERROR_OCALL_NOT_ALLOWED",
	ErrorStackOverrun:    "SGX_ERROR_STACK_OVERRUN",

	ErrorUndefinedSymbol:   "SGX_ERROR_UNDEFINED_SYMBOL",
	ErrorInvalidEnclave:    "SGX_ERROR_INVALID_ENCLAVE",
	ErrorInvalidEnclaveID:  "SGX_ERROR_INVALID_ENCLAVE_ID",
	ErrorInvalidSignature:  "SGX_ERROR_INVALID_SIGNATURE",
	ErrorNDebugEnclave:     "SGX_ERROR_NDEBUG_ENCLAVE",
	ErrorOutOfEPC:          "SGX_ERROR_OUT_OF_EPC",
	ErrorNoDevice:          "SGX_ERROR_NO_DEVICE",
	ErrorMemoryMapConflict: "SGX_ERROR_MEMORY_MAP_CONFLICT",
	ErrorInvalidMetadata:   "SGX_ERROR_INVALID_METADATA",
	ErrorDeviceBusy:        "SGX_ERROR_DEVICE_BUSY",
	ErrorInvalidVersion:    "SGX_ERROR_INVALID_VERSION",
	ErrorModeIncompatible:  "SGX_ERROR_MODE_INCOMPATIBLE",
	ErrorEnclaveFileAccess: "SGX_ERROR_ENCLAVE_FILE_ACCESS",
	ErrorInvalidMisc:       "SGX_ERROR_INVALID_MISC",

	ErrorMACMismatch:      "SGX_ERROR_MAC_MISMATCH",
	ErrorInvalidAttribute: "SGX_ERROR_INVALID_ATTRIBUTE",
	ErrorInvalidCPUSVN:    "SGX_ERROR_INVALID_CPUSVN",
	ErrorInvalidISVSVN:    "SGX_ERROR_INVALID_ISVSVN",
	ErrorInvalidKeyname:   "SGX_ERROR_INVALID_KEYNAME",

	ErrorServiceUnavailable:      "SGX_ERROR_SERVICE_UNAVAILABLE",
	ErrorServiceTimeout:          "SGX_ERROR_SERVICE_TIMEOUT",
	ErrorAEInvalidEPIDBlob:       "SGX_ERROR_AE_INVALID_EPIDBLOB",
	ErrorServiceInvalidPrivilege: "SGX_ERROR_SERVICE_INVALID_PRIVILEGE",
	ErrorEPIDMemberRevoked:       "SGX_ERROR_EPID_MEMBER_REVOKED",
	ErrorUpdateNeeded:            "SGX_ERROR_UPDATE_NEEDED",
	ErrorNetworkFailure:          "SGX_ERROR_NETWORK_FAILURE",
	ErrorAESessionInvalid:        "SGX_ERROR_AE_SESSION_INVALID",
	ErrorBusy:                    "SGX_ERROR_BUSY",
	ErrorMCNotFound:              "SGX_ERROR_MC_NOT_FOUND",
	ErrorMCNoAccessRight:         "SGX_ERROR_MC_NO_ACCESS_RIGHT",
	ErrorMCUsedUp:                "SGX_ERROR_MC_USED_UP",
	ErrorMCOverQuota:             "SGX_ERROR_MC_OVER_QUOTA",
	ErrorKDFMismatch:             "SGX_ERROR_KDF_MISMATCH",
}

// OK reports whether c is Success.
func (c Code) OK() bool { return c == Success }

// Known reports whether c is one of the named codes.
func (c Code) Known() bool {
	_, ok := names[c]
	return ok
}

// String returns the symbolic name of c, or a hex form for unnamed codes.
func (c Code) String() string {
	if n, ok := names[c]; ok {
		return n
	}
	return fmt.Sprintf("status(0x%04x)", uint32(c))
}

// Category groups codes by the subsystem that raised them.
type Category int

const (
	CategoryNone Category = iota
	CategoryGeneric
	CategoryEnclave
	CategoryEnclaveImage
	CategoryProvisioning
	CategoryPlatformService
	CategoryUnknown
)

func (c Category) String() string {
	switch c {
	case CategoryNone:
		return "none"
	case CategoryGeneric:
		return "generic"
	case CategoryEnclave:
		return "enclave"
	case CategoryEnclaveImage:
		return "enclave-image"
	case CategoryProvisioning:
		return "provisioning"
	case CategoryPlatformService:
		return "platform-service"
	default:
		return "unknown"
	}
}

// Category returns the range c falls in. Success maps to CategoryNone.
func (c Code) Category() Category {
	switch {
	case c == Success:
		return CategoryNone
	case c >= 0x0001 && c <= 0x0005:
		return CategoryGeneric
	case c >= 0x1001 && c <= 0x1009:
		return CategoryEnclave
	case c >= 0x2000 && c <= 0x2010:
		return CategoryEnclaveImage
	case c >= 0x3001 && c <= 0x3005:
		return CategoryProvisioning
	case c >= 0x4001 && c <= 0x4011:
		return CategoryPlatformService
	default:
		return CategoryUnknown
	}
}

// Codes returns every named code, success included.
func Codes() []Code {
	out := make([]Code, 0, len(names))
	for c := range names {
		out = append(out, c)
	}
	return out
}
