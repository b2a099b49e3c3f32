package usecase

// Console messages.
const (
	PromptAmount      = "Enter the amount spent: "
	PromptDescription = "Enter a brief description: "
	PromptCategory    = "Enter the expense category (e.g., food, transportation, entertainment): "
	PromptChoice      = "Enter your choice (1-5): "

	MsgExpenseAdded  = "Expense added successfully!"
	MsgInvalidAmount = "Invalid amount. Please enter a numeric value."
	MsgNoExpenses    = "No expenses recorded."
	MsgInvalidChoice = "Invalid choice. Please enter a number between 1 and 5."
	MsgExit          = "Exiting the Expense Tracker."

	HeaderCategory = "Category-wise Summary:"
	HeaderMonthly  = "Monthly Summary:"
)

// Labels passed to Recorder.
const (
	InputAmount = "amount"
	InputChoice = "choice"

	ReportAll      = "all"
	ReportCategory = "category"
	ReportMonthly  = "month"
)
