package txscript

import "fmt"

// ErrorCode identifies a class of script failure. Comparing against
// these constants (rather than matching error strings) is the
// supported way for a caller to branch on a specific failure mode.
type ErrorCode int

const (
	// ErrInternal covers invariant violations in the engine itself
	// rather than a defect in the script under evaluation.
	ErrInternal ErrorCode = iota

	// Script parsing / structure.
	ErrEarlyReturn
	ErrEmptyStack
	ErrInvalidFlags
	ErrInvalidIndex
	ErrUnsupportedAddress
	ErrShortScript
	ErrMalformedPush
	ErrScriptTooBig
	ErrElementTooBig
	ErrTooManyOperations
	ErrStackOverflow
	ErrInvalidPubKeyCount
	ErrInvalidSignatureCount

	// Execution-time failures.
	ErrDisabledOpcode
	ErrReservedOpcode
	ErrBadOpcode
	ErrNotABranch
	ErrUnbalancedConditional
	ErrMinimalData
	ErrInvalidStackOperation
	ErrInvalidAltStackOperation
	ErrVerify
	ErrEqualVerify
	ErrNumEqualVerify
	ErrCheckSigVerify
	ErrCheckMultiSigVerify
	ErrNumberTooBig
	ErrDivideByZero
	ErrNegativeShift

	// Signature / pubkey encoding.
	ErrSigTooShort
	ErrSigTooLong
	ErrSigInvalidSeqID
	ErrSigInvalidDataLen
	ErrSigMissingSTypeID
	ErrSigMissingSLen
	ErrSigInvalidSLen
	ErrSigInvalidRIntID
	ErrSigZeroRLen
	ErrSigNegativeR
	ErrSigTooMuchRPadding
	ErrSigInvalidSIntID
	ErrSigZeroSLen
	ErrSigNegativeS
	ErrSigTooMuchSPadding
	ErrSigHighS
	ErrNotPushOnly
	ErrSigNullDummy
	ErrPubKeyType
	ErrCleanStack
	ErrNullFail
	ErrWitnessProgramWrongLength
	ErrWitnessProgramEmpty
	ErrWitnessUnexpected

	// Locktime family.
	ErrNegativeLockTime
	ErrUnsatisfiedLockTime
	ErrMinimalIf

	// Discouraged / unknown.
	ErrDiscourageUpgradableNOPs
	ErrDiscourageUpgradableWitnessProgram
)

var errorCodeStrings = map[ErrorCode]string{
	ErrInternal:                            "ErrInternal",
	ErrEarlyReturn:                         "ErrEarlyReturn",
	ErrEmptyStack:                          "ErrEmptyStack",
	ErrInvalidFlags:                        "ErrInvalidFlags",
	ErrInvalidIndex:                        "ErrInvalidIndex",
	ErrUnsupportedAddress:                  "ErrUnsupportedAddress",
	ErrShortScript:                         "ErrShortScript",
	ErrMalformedPush:                       "ErrMalformedPush",
	ErrScriptTooBig:                        "ErrScriptTooBig",
	ErrElementTooBig:                       "ErrElementTooBig",
	ErrTooManyOperations:                   "ErrTooManyOperations",
	ErrStackOverflow:                       "ErrStackOverflow",
	ErrInvalidPubKeyCount:                  "ErrInvalidPubKeyCount",
	ErrInvalidSignatureCount:               "ErrInvalidSignatureCount",
	ErrDisabledOpcode:                      "ErrDisabledOpcode",
	ErrReservedOpcode:                      "ErrReservedOpcode",
	ErrBadOpcode:                           "ErrBadOpcode",
	ErrNotABranch:                          "ErrNotABranch",
	ErrUnbalancedConditional:               "ErrUnbalancedConditional",
	ErrMinimalData:                         "ErrMinimalData",
	ErrInvalidStackOperation:               "ErrInvalidStackOperation",
	ErrInvalidAltStackOperation:            "ErrInvalidAltStackOperation",
	ErrVerify:                              "ErrVerify",
	ErrEqualVerify:                         "ErrEqualVerify",
	ErrNumEqualVerify:                      "ErrNumEqualVerify",
	ErrCheckSigVerify:                      "ErrCheckSigVerify",
	ErrCheckMultiSigVerify:                 "ErrCheckMultiSigVerify",
	ErrNumberTooBig:                        "ErrNumberTooBig",
	ErrDivideByZero:                        "ErrDivideByZero",
	ErrNegativeShift:                       "ErrNegativeShift",
	ErrSigTooShort:                         "ErrSigTooShort",
	ErrSigTooLong:                          "ErrSigTooLong",
	ErrSigInvalidSeqID:                     "ErrSigInvalidSeqID",
	ErrSigInvalidDataLen:                   "ErrSigInvalidDataLen",
	ErrSigMissingSTypeID:                   "ErrSigMissingSTypeID",
	ErrSigMissingSLen:                      "ErrSigMissingSLen",
	ErrSigInvalidSLen:                      "ErrSigInvalidSLen",
	ErrSigInvalidRIntID:                    "ErrSigInvalidRIntID",
	ErrSigZeroRLen:                         "ErrSigZeroRLen",
	ErrSigNegativeR:                        "ErrSigNegativeR",
	ErrSigTooMuchRPadding:                  "ErrSigTooMuchRPadding",
	ErrSigInvalidSIntID:                    "ErrSigInvalidSIntID",
	ErrSigZeroSLen:                         "ErrSigZeroSLen",
	ErrSigNegativeS:                        "ErrSigNegativeS",
	ErrSigTooMuchSPadding:                  "ErrSigTooMuchSPadding",
	ErrSigHighS:                            "ErrSigHighS",
	ErrNotPushOnly:                         "ErrNotPushOnly",
	ErrSigNullDummy:                        "ErrSigNullDummy",
	ErrPubKeyType:                          "ErrPubKeyType",
	ErrCleanStack:                          "ErrCleanStack",
	ErrNullFail:                            "ErrNullFail",
	ErrWitnessProgramWrongLength:           "ErrWitnessProgramWrongLength",
	ErrWitnessProgramEmpty:                 "ErrWitnessProgramEmpty",
	ErrWitnessUnexpected:                   "ErrWitnessUnexpected",
	ErrNegativeLockTime:                    "ErrNegativeLockTime",
	ErrUnsatisfiedLockTime:                 "ErrUnsatisfiedLockTime",
	ErrMinimalIf:                           "ErrMinimalIf",
	ErrDiscourageUpgradableNOPs:            "ErrDiscourageUpgradableNOPs",
	ErrDiscourageUpgradableWitnessProgram:  "ErrDiscourageUpgradableWitnessProgram",
}

// String returns the constant's symbolic name, used by Error.Error.
func (e ErrorCode) String() string {
	if s, ok := errorCodeStrings[e]; ok {
		return s
	}
	return fmt.Sprintf("ErrorCode(%d)", int(e))
}

// Error is the error type returned by every fallible operation in this
// package. It carries a stable ErrorCode a caller can branch on, plus a
// human-readable description of the specific failure.
type Error struct {
	ErrorCode   ErrorCode
	Description string
}

func (e Error) Error() string {
	return e.Description
}

// scriptError creates an Error for the given code and description,
// matching the small-helper idiom used throughout the pack's engine
// implementations instead of ad hoc fmt.Errorf calls.
func scriptError(c ErrorCode, desc string) Error {
	return Error{ErrorCode: c, Description: desc}
}

// IsErrorCode reports whether err is a txscript.Error carrying the
// given code.
func IsErrorCode(err error, c ErrorCode) bool {
	serr, ok := err.(Error)
	return ok && serr.ErrorCode == c
}
