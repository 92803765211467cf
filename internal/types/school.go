package types

// SchoolInfo is the school/contact draft a user fills in while building a
// quote or order. Created with defaults at session start, mutated
// field-by-field and persisted as a whole document on every change.
type SchoolInfo struct {
	// Identity
	SchoolName string `json:"school_name"`
	SchoolABN  string `json:"school_abn"`

	// Contact
	CoordinatorName     string `json:"coordinator_name"`
	CoordinatorPosition string `json:"coordinator_position"`
	CoordinatorEmail    string `json:"coordinator_email"`
	ContactPhone        string `json:"contact_phone"`

	// Addresses
	SchoolAddress        AddressComponents `json:"school_address"`
	DeliveryAddress      AddressComponents `json:"delivery_address"`
	BillingAddress       AddressComponents `json:"billing_address"`
	DeliverySameAsSchool bool              `json:"delivery_same_as_school"`
	BillingSameAsSchool  bool              `json:"billing_same_as_school"`

	// Order-only fields
	AccountsEmail       string `json:"accounts_email"`
	PurchaseOrderNumber string `json:"purchase_order_number"`
	PaymentPreference   string `json:"payment_preference"`
	SupplierSetupForms  string `json:"supplier_setup_forms"`
	QuestionsComments   string `json:"questions_comments"`
}

// DefaultSchoolInfo returns the draft a new session starts with: country
// preset to Australia and delivery/billing mirroring the school address.
func DefaultSchoolInfo() SchoolInfo {
	au := AddressComponents{Country: "Australia"}
	return SchoolInfo{
		SchoolAddress:        au,
		DeliveryAddress:      au,
		BillingAddress:       au,
		DeliverySameAsSchool: true,
		BillingSameAsSchool:  true,
	}
}
