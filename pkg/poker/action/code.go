package action

import "fmt"

// Code is a raw action index in the discrete action space
// The first three codes are fold, check and call. Every code after that selects
// an entry of the bet-size ladder.
type Code int

// fixed codes
const (
	CodeFold  Code = 0
	CodeCheck Code = 1
	CodeCall  Code = 2

	// FirstLadderCode is the code of the first bet-size ratio
	FirstLadderCode Code = 3
)

// NumCodes returns the size of the action space for a ladder of n ratios
func NumCodes(ladderSize int) int {
	return int(FirstLadderCode) + ladderSize
}

// CodeForRatio returns the code for the ladder entry at index i
func CodeForRatio(i int) Code {
	return FirstLadderCode + Code(i)
}

// LadderIndex returns the ladder index for the code and whether the code selects a ratio
func (c Code) LadderIndex() (int, bool) {
	if c < FirstLadderCode {
		return 0, false
	}

	return int(c - FirstLadderCode), true
}

func (c Code) String() string {
	switch c {
	case CodeFold:
		return "fold"
	case CodeCheck:
		return "check"
	case CodeCall:
		return "call"
	}

	if i, ok := c.LadderIndex(); ok {
		return fmt.Sprintf("ratio[%d]", i)
	}

	return fmt.Sprintf("invalid(%d)", int(c))
}
