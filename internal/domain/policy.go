package domain

type PolicyType string

const (
	PolicyTypeLife     PolicyType = "life"
	PolicyTypeAnnuity  PolicyType = "annuity"
	PolicyTypeProperty PolicyType = "property"
	PolicyTypeCasualty PolicyType = "casualty"
)

type PolicyStatus string

const (
	PolicyStatusActive    PolicyStatus = "active"
	PolicyStatusPending   PolicyStatus = "pending"
	PolicyStatusLapsed    PolicyStatus = "lapsed"
	PolicyStatusCancelled PolicyStatus = "cancelled"
)

type PaymentFrequency string

const (
	PaymentFrequencyMonthly    PaymentFrequency = "monthly"
	PaymentFrequencyQuarterly  PaymentFrequency = "quarterly"
	PaymentFrequencySemiAnnual PaymentFrequency = "semi-annual"
	PaymentFrequencyAnnual     PaymentFrequency = "annual"
)

type Policy struct {
	ID               string           `json:"id"`
	PolicyNumber     string           `json:"policy_number"`
	Type             PolicyType       `json:"type"`
	ProductName      string           `json:"product_name"`
	Status           PolicyStatus     `json:"status"`
	EffectiveDate    string           `json:"effective_date"`
	ExpirationDate   string           `json:"expiration_date,omitempty"`
	Premium          float64          `json:"premium"`
	CoverageAmount   float64          `json:"coverage_amount"`
	PaymentFrequency PaymentFrequency `json:"payment_frequency"`
	NextPaymentDate  string           `json:"next_payment_date"`
	Beneficiaries    []Beneficiary    `json:"beneficiaries,omitempty"`
	Coverages        []Coverage       `json:"coverages,omitempty"`
	Insured          Insured          `json:"insured"`
}

type Beneficiary struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Relationship string  `json:"relationship"`
	Percentage   float64 `json:"percentage"`
	IsPrimary    bool    `json:"is_primary"`
}

type Coverage struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Limit       float64 `json:"limit"`
	Deductible  float64 `json:"deductible"`
	Description string  `json:"description"`
}

type Insured struct {
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	DateOfBirth string  `json:"date_of_birth"`
	Address     Address `json:"address"`
	Phone       string  `json:"phone"`
	Email       string  `json:"email"`
}

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
}

type PolicyDocument struct {
	ID       string `json:"id"`
	PolicyID string `json:"policy_id"`
	Name     string `json:"name"`
	URL      string `json:"url"`
}

type ActionStatus string

const (
	ActionStatusPending   ActionStatus = "pending"
	ActionStatusInReview  ActionStatus = "in_review"
	ActionStatusApproved  ActionStatus = "approved"
	ActionStatusCompleted ActionStatus = "completed"
	ActionStatusRejected  ActionStatus = "rejected"
)

type ActionPriority string

const (
	ActionPriorityLow    ActionPriority = "low"
	ActionPriorityMedium ActionPriority = "medium"
	ActionPriorityHigh   ActionPriority = "high"
)

type CustomerAction struct {
	ID            string            `json:"id"`
	PolicyID      string            `json:"policy_id"`
	PolicyNumber  string            `json:"policy_number"`
	Type          string            `json:"type"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	Status        ActionStatus      `json:"status"`
	Priority      ActionPriority    `json:"priority"`
	CreatedDate   string            `json:"created_date"`
	DueDate       string            `json:"due_date,omitempty"`
	CompletedDate string            `json:"completed_date,omitempty"`
	Lifecycle     []ActionLifecycle `json:"lifecycle"`
}

type ActionLifecycle struct {
	Status    ActionStatus `json:"status"`
	Timestamp string       `json:"timestamp"`
	Note      string       `json:"note,omitempty"`
	Performer string       `json:"performer,omitempty"`
}

type UpdateActionStatusDTO struct {
	Status ActionStatus `json:"status" binding:"required,oneof=pending in_review approved completed rejected"`
	Note   string       `json:"note"`
}
