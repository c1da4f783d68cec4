package domain

type IllustrationType string

const (
	IllustrationTypeInforce      IllustrationType = "inforce"
	IllustrationTypePolicyChange IllustrationType = "policy_change"
	IllustrationTypeQuote        IllustrationType = "quote"
)

type IllustrationRequestStatus string

const (
	IllustrationRequestStatusPending    IllustrationRequestStatus = "pending"
	IllustrationRequestStatusProcessing IllustrationRequestStatus = "processing"
	IllustrationRequestStatusCompleted  IllustrationRequestStatus = "completed"
	IllustrationRequestStatusFailed     IllustrationRequestStatus = "failed"
)

type Illustration struct {
	ID               string                    `json:"id"`
	PolicyID         string                    `json:"policy_id"`
	PolicyNumber     string                    `json:"policy_number"`
	GeneratedDate    string                    `json:"generated_date"`
	IllustrationType IllustrationType          `json:"illustration_type"`
	PolicyDetails    IllustrationPolicyDetails `json:"policy_details"`
	CurrentValues    IllustrationCurrentValues `json:"current_values"`
	Projections      []IllustrationProjection  `json:"projections"`
	Assumptions      IllustrationAssumptions   `json:"assumptions"`
	Disclosures      []string                  `json:"disclosures"`
}

type IllustrationPolicyDetails struct {
	InsuredName  string  `json:"insured_name"`
	Age          int     `json:"age"`
	Gender       string  `json:"gender"`
	IssueDate    string  `json:"issue_date"`
	ProductName  string  `json:"product_name"`
	FaceAmount   float64 `json:"face_amount"`
	ModalPremium float64 `json:"modal_premium"`
	PremiumMode  string  `json:"premium_mode"`
}

type IllustrationCurrentValues struct {
	PolicyYear         int     `json:"policy_year"`
	CashSurrenderValue float64 `json:"cash_surrender_value"`
	DeathBenefit       float64 `json:"death_benefit"`
	LoanBalance        float64 `json:"loan_balance"`
}

type IllustrationAssumptions struct {
	GuaranteedInterestRate  float64 `json:"guaranteed_interest_rate"`
	IllustratedInterestRate float64 `json:"illustrated_interest_rate"`
	CurrentCostOfInsurance  bool    `json:"current_cost_of_insurance"`
	TaxBracket              string  `json:"tax_bracket,omitempty"`
}

type IllustrationProjection struct {
	Year               int             `json:"year"`
	Age                int             `json:"age"`
	Premium            float64         `json:"premium"`
	CashSurrenderValue ProjectedValues `json:"cash_surrender_value"`
	DeathBenefit       ProjectedValues `json:"death_benefit"`
}

type ProjectedValues struct {
	Guaranteed  float64 `json:"guaranteed"`
	Illustrated float64 `json:"illustrated"`
}

type IllustrationRequest struct {
	ID             string                    `json:"id"`
	PolicyID       string                    `json:"policy_id"`
	PolicyNumber   string                    `json:"policy_number"`
	RequestDate    string                    `json:"request_date"`
	Status         IllustrationRequestStatus `json:"status"`
	RequestedBy    string                    `json:"requested_by"`
	RequestType    IllustrationType          `json:"request_type"`
	ScenarioType   string                    `json:"scenario_type,omitempty"`
	ProjectionYears int                      `json:"projection_years,omitempty"`
	AdditionalPremium float64                `json:"additional_premium,omitempty"`
	Notes          string                    `json:"notes,omitempty"`
}

type CreateIllustrationRequestDTO struct {
	PolicyID        string           `json:"policy_id" binding:"required"`
	RequestedBy     string           `json:"requested_by" binding:"required"`
	RequestType     IllustrationType `json:"request_type" binding:"required,oneof=inforce policy_change quote"`
	ScenarioType    string           `json:"scenario_type" binding:"omitempty,oneof=guaranteed illustrated custom"`
	ProjectionYears int              `json:"projection_years" binding:"omitempty,min=1,max=50"`
	AdditionalPremium float64        `json:"additional_premium" binding:"omitempty,min=0"`
	Notes           string           `json:"notes"`
}

type PayoutRequestType string

const (
	PayoutRequestTypeLoan       PayoutRequestType = "loan"
	PayoutRequestTypeWithdrawal PayoutRequestType = "withdrawal"
)

type PayoutFrequency string

const (
	PayoutFrequencyOneTime    PayoutFrequency = "one-time"
	PayoutFrequencySystematic PayoutFrequency = "systematic"
)

type SystematicFrequency string

const (
	SystematicFrequencyMonthly   SystematicFrequency = "monthly"
	SystematicFrequencyQuarterly SystematicFrequency = "quarterly"
	SystematicFrequencyAnnual    SystematicFrequency = "annual"
)

type PayoutIllustrationInput struct {
	RequestType         PayoutRequestType   `json:"request_type" binding:"required,oneof=loan withdrawal"`
	Amount              float64             `json:"amount" binding:"min=0"`
	Frequency           PayoutFrequency     `json:"frequency" binding:"required,oneof=one-time systematic"`
	SystematicAmount    float64             `json:"systematic_amount" binding:"omitempty,min=0"`
	SystematicFrequency SystematicFrequency `json:"systematic_frequency" binding:"omitempty,oneof=monthly quarterly annual"`
	ProjectionYears     int                 `json:"projection_years" binding:"omitempty,min=1,max=50"`

	CurrentValue                 float64 `json:"current_value" binding:"required,min=0"`
	Age                          float64 `json:"age" binding:"required,min=0"`
	AnnualGrowthRate             float64 `json:"annual_growth_rate"`
	SurrenderChargePercent       float64 `json:"surrender_charge_percent" binding:"omitempty,min=0"`
	SurrenderChargeYearsRemaining int    `json:"surrender_charge_years_remaining" binding:"omitempty,min=0"`
}

type PayoutIllustration struct {
	RequestAmount          float64            `json:"request_amount"`
	SurrenderCharge        float64            `json:"surrender_charge"`
	EarlyWithdrawalPenalty float64            `json:"early_withdrawal_penalty"`
	EstimatedIncomeTax     float64            `json:"estimated_income_tax"`
	NetAmountReceived      float64            `json:"net_amount_received"`
	RemainingValue         float64            `json:"remaining_value"`
	LoanInterest           float64            `json:"loan_interest"`
	Projections            []PayoutProjection `json:"projections"`
}

type PayoutProjection struct {
	Year        int     `json:"year"`
	Value       float64 `json:"value"`
	Withdrawals float64 `json:"withdrawals"`
}

type CoverageNeedsInput struct {
	AnnualIncome      float64 `json:"annual_income" binding:"min=0"`
	IncomeYears       int     `json:"income_years" binding:"min=0"`
	MortgageBalance   float64 `json:"mortgage_balance" binding:"min=0"`
	OtherDebts        float64 `json:"other_debts" binding:"min=0"`
	ChildrenCount     int     `json:"children_count" binding:"min=0"`
	EducationPerChild float64 `json:"education_per_child" binding:"min=0"`
	FinalExpenses     float64 `json:"final_expenses" binding:"min=0"`
	EmergencyFund     float64 `json:"emergency_fund" binding:"min=0"`
	ExistingSavings   float64 `json:"existing_savings" binding:"min=0"`
	CurrentCoverage   float64 `json:"current_coverage" binding:"min=0"`
}

type CoverageNeeds struct {
	IncomeReplacement   float64 `json:"income_replacement"`
	DebtCoverage        float64 `json:"debt_coverage"`
	EducationFunding    float64 `json:"education_funding"`
	FinalExpenses       float64 `json:"final_expenses"`
	EmergencyFund       float64 `json:"emergency_fund"`
	TotalNeeds          float64 `json:"total_needs"`
	RecommendedCoverage float64 `json:"recommended_coverage"`
	CoveragePercentage  float64 `json:"coverage_percentage"`
}
