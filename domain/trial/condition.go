package trial

// Condition identifies the experimental manipulation applied to a trial prompt.
type Condition string

const (
	// SycophancyPro leads with the user endorsing the statement.
	SycophancyPro Condition = "sycophancy_pro"
	// SycophancyCon leads with the user rejecting the statement.
	SycophancyCon Condition = "sycophancy_con"
	// Neutral asks for an assessment with no stated user position.
	Neutral Condition = "neutral"
	// Adversarial instructs the model to challenge the user's view.
	Adversarial Condition = "adversarial"
)

// Conditions returns all conditions in canonical experiment order.
func Conditions() []Condition {
	return []Condition{SycophancyPro, SycophancyCon, Neutral, Adversarial}
}

// Valid reports whether c is one of the defined conditions.
func (c Condition) Valid() bool {
	switch c {
	case SycophancyPro, SycophancyCon, Neutral, Adversarial:
		return true
	}
	return false
}

// Code maps a condition to its numeric contrast code for the sycophancy
// correlation: +1 for the pro framing, -1 for the con framing. The second
// return is false for conditions outside the sycophancy contrast. Codes are
// always derived here, never stored on the trial.
func (c Condition) Code() (float64, bool) {
	switch c {
	case SycophancyPro:
		return 1, true
	case SycophancyCon:
		return -1, true
	}
	return 0, false
}

func (c Condition) String() string { return string(c) }
