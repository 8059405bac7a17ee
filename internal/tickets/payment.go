package tickets

// PaymentMethod is a payment_method_enum value
type PaymentMethod string

const (
	PaymentCBEBranch       PaymentMethod = "CBE_Branch"
	PaymentCBEBirr         PaymentMethod = "CBE_Birr"
	PaymentCash            PaymentMethod = "Cash"
	PaymentAwashBranch     PaymentMethod = "Awash_Branch"
	PaymentNibBranch       PaymentMethod = "Nib_Branch"
	PaymentAbyssiniaBranch PaymentMethod = "Abyssinia_branch"
)

// SystemPrice is the platform fee recorded on every payment history row
const SystemPrice = 10

var issuingMethods = map[PaymentMethod]struct{}{
	PaymentCBEBranch:       {},
	PaymentCBEBirr:         {},
	PaymentCash:            {},
	PaymentAwashBranch:     {},
	PaymentNibBranch:       {},
	PaymentAbyssiniaBranch: {},
}

// IssuesTickets reports whether tickets are written for this method.
// Other methods get the success response with no writes.
func (m PaymentMethod) IssuesTickets() bool {
	_, ok := issuingMethods[m]
	return ok
}
