package cfa

// Rule describes how a register's prior value is recovered during
// unwinding. How a rule's Value operand is applied is the consumer's
// concern; the table only stores the pair.
type Rule uint8

const (
	// RuleOffset: the value is saved in memory at CFA + Value.
	RuleOffset Rule = iota

	// RuleValOffset: the value itself is CFA + Value.
	RuleValOffset

	// RuleRegister: the value lives in the register numbered Value.
	RuleRegister

	// RuleExpression: the value is saved at the address computed by the
	// DWARF expression at Value.
	RuleExpression

	// RuleValExpression: the value is the result of the DWARF expression
	// at Value.
	RuleValExpression

	// RuleSameValue: the register is unchanged in this frame.
	RuleSameValue
)

func (r Rule) String() string {
	switch r {
	case RuleOffset:
		return "offset"
	case RuleValOffset:
		return "val-offset"
	case RuleRegister:
		return "register"
	case RuleExpression:
		return "expression"
	case RuleValExpression:
		return "val-expression"
	case RuleSameValue:
		return "same-value"
	}
	return "unknown"
}

// RegRule is one register's recovery rule: the triple stored in the table
// and produced by iteration.
type RegRule struct {
	RegNum uint32
	Rule   Rule
	Value  int64
}
