// Package guard provides fail-fast precondition checks for function arguments.
//
// Each guard inspects a single value and returns nil when the precondition
// holds, or an *InvalidArgumentError when it is violated. Guards never log,
// retry or substitute fallback values: the caller decides whether to return
// the error up the stack or to panic via Must.
//
// # Checks
//
//   - NotNil / NotNilMsg         – value is not nil (typed nils included)
//   - AllNotNil                  – at least one value given, none of them nil
//   - NotEmpty / NotEmptyMap     – slice or map has at least one element
//   - NotBlank / NotBlankPtr     – text is non-empty after trimming whitespace
//   - IsTrue / IsTrueMsg         – condition holds
//   - NotNilUUID                 – identifier is not uuid.Nil
//
// Every check has a Msg variant that attaches a caller-supplied message to the
// returned error. The underlying predicates (IsNil, IsEmpty, IsBlank, ...) are
// exported for callers that only need a boolean answer.
//
// # Usage
//
//	func NewInvoice(customerID uuid.UUID, lines []Line, currency string) (*Invoice, error) {
//	    if err := guard.NotNilUUID(customerID); err != nil {
//	        return nil, err
//	    }
//	    if err := guard.NotEmptyMsg(lines, "invoice must have at least one line"); err != nil {
//	        return nil, err
//	    }
//	    if err := guard.NotBlank(currency); err != nil {
//	        return nil, err
//	    }
//	    // ...
//	}
//
// # Error Handling
//
// All failures match ErrInvalidArgument with errors.Is, including when they
// are wrapped. MessageOf extracts the caller message, if any.
//
// # Thread Safety
//
// The package holds no state. All functions are safe for concurrent use and
// return the same result for the same input.
package guard
